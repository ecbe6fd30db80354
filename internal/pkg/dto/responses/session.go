package responses

type CreateSessionResponse struct {
	Token        string `json:"token"`
	ProviderUUID string `json:"providerUuid"`
	LocationUUID string `json:"locationUuid"`
}
