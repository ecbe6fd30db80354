package requests

type CreateSessionRequest struct {
	ProviderUUID string `json:"providerUuid" validate:"required"`
	LocationUUID string `json:"locationUuid" validate:"required"`
}
