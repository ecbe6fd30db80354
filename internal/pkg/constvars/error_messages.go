package constvars

const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientFormIncomplete                = "please fill the required fields"
	ErrClientSearchSessionNotFound         = "search session not found or expired"
	ErrClientProcedureSaveFailed           = "error saving procedure test results"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevValidationFailed       = "validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevCannotParseDatetime    = "cannot parse datetime"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerParseSessionData = "failed to parse session data"
	ErrDevMissingRequestID       = "request ID not found in context"
)

const (
	ErrDevAuthSigningMethod  = "unexpected signing method"
	ErrDevAuthTokenMissing   = "token missing"
	ErrDevAuthTokenInvalid   = "invalid token"
	ErrDevAuthTokenExpired   = "token expired"
	ErrDevAuthInvalidSession = "invalid session"
	ErrDevAuthGenerateToken  = "failed to generate token"
	ErrDevInvalidAPIKey      = "invalid API key"
	ErrDevAPIKeyRequired     = "API key is required"
)

const (
	ErrDevEmrDecodeResponse   = "failed to decode response from EMR (%s)"
	ErrDevEmrGetResource      = "failed to get EMR resource (%s)"
	ErrDevEmrSearchResource   = "failed to search EMR resource (%s)"
	ErrDevEmrCreateResource   = "failed to create EMR resource (%s)"
	ErrDevEmrUnexpectedStatus = "unexpected status code from EMR (%s)"
)

const (
	ErrDevDBFailedToInsertDocument = "failed to insert document into database"
	ErrDevDBFailedToFindDocument   = "failed when do find document on database"
	ErrDevDBConnectionFailed       = "failed to connect to database"
)

const (
	ErrDevRedisSet          = "failed to set value into redis"
	ErrDevRedisGetNoData    = "failed to get value from redis for key %s"
	ErrDevRedisDelete       = "failed to delete value from redis"
	ErrDevRedisStoreSession = "failed to store session data into redis"
)

const (
	ErrDevQueuePublish = "failed to publish message to queue"
	ErrDevQueueConfirm = "publisher confirm not received from queue"
)

const (
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
)

const (
	ErrDevSearchSessionNotFound = "search session not found"
	ErrDevSearchNoCandidate     = "selected candidate missing display or concept uuid"
)
