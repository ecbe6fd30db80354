package emr_dto

// Provider identifies a clinical staff member available for selection.
type Provider struct {
	UUID    string `json:"uuid"`
	Display string `json:"display"`
	Person  Person `json:"person"`
}

type ProviderListResponse struct {
	Results []Provider `json:"results"`
}
