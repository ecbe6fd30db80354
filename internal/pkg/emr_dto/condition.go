package emr_dto

// ConditionCandidate is a coded condition matched by a free-text query.
type ConditionCandidate struct {
	Display string  `json:"display"`
	Concept Concept `json:"concept"`
}

type ConceptSearchResponse struct {
	Results []ConditionCandidate `json:"results"`
}
