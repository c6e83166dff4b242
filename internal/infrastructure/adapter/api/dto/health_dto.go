package dto

// MessageResponse is a plain informational message
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports store reachability and pool usage
type HealthResponse struct {
	Status   string         `json:"status"`
	Database string         `json:"database"`
	Driver   string         `json:"driver"`
	Pool     map[string]any `json:"pool,omitempty"`
}
