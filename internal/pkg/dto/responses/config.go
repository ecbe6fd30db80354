package responses

type ProcedureConfigResponse struct {
	Schema map[string]ConfigProperty `json:"schema"`
	Values map[string]string         `json:"values"`
}

type ConfigProperty struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Default     string `json:"default"`
}
