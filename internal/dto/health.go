package dto

// HealthResponse is the body of /healthz, /livez and /readyz
type HealthResponse struct {
	Status string `json:"status"`
	// Checks maps a dependency ("database", "uploads") to "ok" or its error
	Checks map[string]string `json:"checks,omitempty"`
}
