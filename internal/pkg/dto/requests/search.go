package requests

// UpdateSearchQueryRequest carries the raw text value of the search box.
// An empty query is a clear signal, so no required rule applies here.
type UpdateSearchQueryRequest struct {
	Query string `json:"query"`
}

type SelectComplicationRequest struct {
	Display     string `json:"display" validate:"required"`
	ConceptUUID string `json:"conceptUuid" validate:"required"`
}
