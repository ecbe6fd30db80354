package models

// NotificationMessage is the payload published to the notification queue.
type NotificationMessage struct {
	ID                    string `json:"id"`
	Title                 string `json:"title"`
	Subtitle              string `json:"subtitle,omitempty"`
	Kind                  string `json:"kind"`
	TimeoutInMilliseconds int    `json:"timeout_in_milliseconds"`
	OrderUUID             string `json:"order_uuid,omitempty"`
	FailedCount           int    `json:"failed_count"`
}
