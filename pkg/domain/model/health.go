package model

// HealthStatus represents the health check status
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// ErrorResponse is the body returned for non-success responses
type ErrorResponse struct {
	Message string `json:"message"`
}
