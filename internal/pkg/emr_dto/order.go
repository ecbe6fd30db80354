package emr_dto

// ProcedureOrder is the clinical instruction this service completes.
type ProcedureOrder struct {
	UUID            string    `json:"uuid"`
	OrderNumber     string    `json:"orderNumber,omitempty"`
	Patient         Reference `json:"patient"`
	Concept         Concept   `json:"concept"`
	OrderType       Reference `json:"orderType,omitempty"`
	CareSetting     Reference `json:"careSetting,omitempty"`
	Category        *Concept  `json:"category,omitempty"`
	OrderReason     *Concept  `json:"orderReason,omitempty"`
	Instructions    string    `json:"instructions,omitempty"`
	Orderer         Reference `json:"orderer,omitempty"`
	DateActivated   string    `json:"dateActivated,omitempty"`
	FulfillerStatus string    `json:"fulfillerStatus,omitempty"`
}
