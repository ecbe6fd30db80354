package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "PRSDR_SVC_"
)

const (
	URLParamOrderID         = "orderID"
	URLParamSearchSessionID = "searchSessionID"
	URLParamSelectionID     = "selectionID"
)

// Workspace directive values returned to the form client.
const (
	SubmissionStateIdle       = "idle"
	SubmissionStateSubmitting = "submitting"
	SubmissionStateSucceeded  = "succeeded"
	SubmissionStateFailed     = "failed"
)

const (
	NotificationKindSuccess = "success"
	NotificationKindError   = "error"
)

// Incremental search session states.
const (
	SearchStateIdle           = "idle"
	SearchStateDebouncing     = "debouncing"
	SearchStateSearching      = "searching"
	SearchStateResultsVisible = "results_visible"
)
