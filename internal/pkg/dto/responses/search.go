package responses

// SearchSessionState is the snapshot of one incremental search session the
// form renders from.
type SearchSessionState struct {
	ID                     string                 `json:"id"`
	Query                  string                 `json:"query"`
	DebouncedQuery         string                 `json:"debouncedQuery"`
	State                  string                 `json:"state"`
	IsSearching            bool                   `json:"isSearching"`
	Candidates             []ConditionCandidate   `json:"candidates"`
	IsCandidateListVisible bool                   `json:"isCandidateListVisible"`
	Selected               []SelectedComplication `json:"selected"`
}

type ConditionCandidate struct {
	Display     string `json:"display"`
	ConceptUUID string `json:"conceptUuid"`
}

// SelectedComplication keeps its own selection ID so removal can match by
// identity even when the same concept was picked twice.
type SelectedComplication struct {
	SelectionID string `json:"selectionId"`
	Display     string `json:"display"`
	ConceptUUID string `json:"conceptUuid"`
}
