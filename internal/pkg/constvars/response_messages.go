package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Session messages
	CreateSessionSuccessMessage = "session created successfully"

	// Provider messages
	GetProvidersSuccessMessage = "get providers successfully"

	// Configuration messages
	GetProcedureConfigSuccessMessage = "get procedure configuration successfully"

	// Search session messages
	CreateSearchSessionSuccessMessage = "search session created successfully"
	GetSearchSessionSuccessMessage    = "get search session successfully"
	UpdateSearchQuerySuccessMessage   = "search query updated successfully"
	SelectComplicationSuccessMessage  = "complication selected successfully"
	RemoveComplicationSuccessMessage  = "complication removed successfully"
	ClearSearchSessionSuccessMessage  = "search session cleared successfully"

	// Procedure completion messages
	CompleteProcedureSuccessMessage = "procedure completion processed"
	ProcedureSavedSuccessMessage    = "Procedure saved"
	ProcedureSavedSuccessSubtitle   = "The procedure has been saved successfully"
	ProcedureFailedErrorMessage     = "Error saving procedure"
)

const (
	NotificationDefaultTimeoutInMilliseconds = 5000
)
