package requests

// CompleteProcedureRequest is the post-procedure form state. Every field
// except the search session reference is required before submission is
// accepted.
type CompleteProcedureRequest struct {
	StartDatetime   string        `json:"startDatetime" validate:"required,emr_datetime"`
	EndDatetime     string        `json:"endDatetime" validate:"required,emr_datetime"`
	Outcome         string        `json:"outcome" validate:"required,procedure_outcome"`
	ProcedureReport string        `json:"procedureReport" validate:"required"`
	Participants    []Participant `json:"participants" validate:"required,min=1,dive"`
	SearchSessionID string        `json:"searchSessionId,omitempty"`
}

type Participant struct {
	UUID    string    `json:"uuid" validate:"required"`
	Display string    `json:"display"`
	Person  PersonRef `json:"person" validate:"required"`
}

type PersonRef struct {
	UUID    string `json:"uuid" validate:"required"`
	Display string `json:"display"`
}
