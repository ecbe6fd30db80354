package responses

// Notification mirrors the transient notice the form surface renders.
type Notification struct {
	Title                 string `json:"title"`
	Subtitle              string `json:"subtitle,omitempty"`
	Kind                  string `json:"kind"`
	TimeoutInMilliseconds int    `json:"timeoutInMilliseconds"`
}

// CompletionResult tells the form what happened and whether to close its
// hosting surface.
type CompletionResult struct {
	State          string       `json:"state"`
	Notification   Notification `json:"notification"`
	CloseWorkspace bool         `json:"closeWorkspace"`
}
