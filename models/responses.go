package models

// Health status values reported by the /health endpoint.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthResponse is the JSON body of the /health endpoint.
type HealthResponse struct {
	// Status is StatusHealthy or StatusUnhealthy.
	Status string `json:"status"`

	// Addon is the add-on name the host reports, present when the
	// Supervisor was reachable.
	Addon string `json:"addon,omitempty"`

	// Database is "connected" when the optional event store is enabled
	// and answered the ping.
	Database string `json:"database,omitempty"`

	// Error carries the failure description when Status is unhealthy.
	Error string `json:"error,omitempty"`
}
