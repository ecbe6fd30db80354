package responses

type Provider struct {
	UUID    string    `json:"uuid"`
	Display string    `json:"display"`
	Person  PersonRef `json:"person"`
}

type PersonRef struct {
	UUID    string `json:"uuid"`
	Display string `json:"display"`
}
