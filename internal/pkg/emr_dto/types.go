package emr_dto

type Concept struct {
	UUID    string `json:"uuid"`
	Display string `json:"display,omitempty"`
}

type Person struct {
	UUID    string `json:"uuid"`
	Display string `json:"display,omitempty"`
}

type Reference struct {
	UUID    string `json:"uuid"`
	Display string `json:"display,omitempty"`
}

// ErrorResponse is the EMR's error envelope.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
}
