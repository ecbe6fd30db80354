package models

import "time"

// Session is the active clinical session of a form client: who is working
// and at which location.
type Session struct {
	SessionID    string    `json:"session_id"`
	ProviderUUID string    `json:"provider_uuid"`
	LocationUUID string    `json:"location_uuid"`
	ExpiresAt    time.Time `json:"expires_at"`
}
