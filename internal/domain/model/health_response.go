package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// ComponentHealthStatus represents the health of one application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse is the detailed health report
type HealthResponse struct {
	Status  HealthStatus          `json:"status"`
	Cache   ComponentHealthStatus `json:"cache"`
	Sources ComponentHealthStatus `json:"sources"`
}

// HealthcheckResult is the static body of request_type=healthcheck
type HealthcheckResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
