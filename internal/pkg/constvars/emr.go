package constvars

const (
	ResourceOrder        = "Order"
	ResourceConcept      = "Concept"
	ResourceProvider     = "Provider"
	ResourceProcedure    = "Procedure"
	ResourceEncounter    = "Encounter"
	ResourceObservation  = "Observation"
	ResourceLocation     = "Location"
	ResourceProcedureLog = "ProcedureCompletionLog"
)

// EMR REST paths relative to the configured base URL.
const (
	EmrPathOrder     = "/order"
	EmrPathConcept   = "/concept"
	EmrPathProvider  = "/provider"
	EmrPathProcedure = "/procedure"
)

const (
	ProcedureStatusCompleted = "COMPLETED"

	ProcedureOutcomeSuccessful          = "SUCCESSFUL"
	ProcedureOutcomePartiallySuccessful = "PARTIALLY_SUCCESSFUL"
	ProcedureOutcomeNotSuccessful       = "NOT_SUCCESSFUL"
)

// EmrDatetimeFormat is the wire timestamp layout the EMR expects. The
// offset is always explicit, never Z.
const EmrDatetimeFormat = "2006-01-02T15:04:05.000-0700"
