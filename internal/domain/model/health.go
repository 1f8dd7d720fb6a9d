package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// ComponentHealthStatus represents the health check structure of an application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse represents the health check response of the whole application
type HealthResponse struct {
	Status       HealthStatus          `json:"status"`
	Database     ComponentHealthStatus `json:"database"`
	Preferences  ComponentHealthStatus `json:"preferences"`
	Connectivity ComponentHealthStatus `json:"connectivity"`
}
