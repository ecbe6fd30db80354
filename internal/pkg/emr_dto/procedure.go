package emr_dto

// ProcedurePayload is the one-shot submission object assembled at completion
// time. It is never mutated after construction.
type ProcedurePayload struct {
	Patient         string             `json:"patient"`
	ProcedureOrder  string             `json:"procedureOrder"`
	Concept         string             `json:"concept"`
	ProcedureReason string             `json:"procedureReason,omitempty"`
	Category        string             `json:"category,omitempty"`
	Status          string             `json:"status"`
	Outcome         string             `json:"outcome"`
	Location        string             `json:"location"`
	StartDatetime   string             `json:"startDatetime"`
	EndDatetime     string             `json:"endDatetime"`
	ProcedureReport string             `json:"procedureReport"`
	Encounters      []EncounterPayload `json:"encounters"`
}

type EncounterPayload struct {
	EncounterDatetime  string              `json:"encounterDatetime"`
	Patient            string              `json:"patient"`
	EncounterType      string              `json:"encounterType"`
	Location           string              `json:"location"`
	EncounterProviders []EncounterProvider `json:"encounterProviders"`
	Obs                []ObsPayload        `json:"obs"`
}

type EncounterProvider struct {
	Provider      string `json:"provider"`
	EncounterRole string `json:"encounterRole"`
}

type ObsPayload struct {
	Concept      string       `json:"concept"`
	Value        string       `json:"value,omitempty"`
	GroupMembers []ObsPayload `json:"groupMembers,omitempty"`
}
