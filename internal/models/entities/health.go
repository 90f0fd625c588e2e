package entities

type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details,omitempty"`
}

type HealthCheckResponse struct {
	Services map[string]ServiceStatus `json:"services"`
	Status   string                   `json:"status"`
	Uptime   string                   `json:"uptime"`
}
