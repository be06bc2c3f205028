package core

import "time"

// HealthStatus reports dispatcher liveness. Engines are stateless
// value objects, so a constructed dispatcher is always healthy; the
// report exists so supervising processes have a uniform probe.
type HealthStatus struct {
	Status      string            `json:"status"`
	Components  map[string]string `json:"components"`
	Initialized bool              `json:"initialized"`
	Uptime      float64           `json:"uptime_seconds"`
}

// HealthCheck never fails.
func (d *Dispatcher) HealthCheck() HealthStatus {
	return HealthStatus{
		Status: "healthy",
		Components: map[string]string{
			"matrix_engine":       "active",
			"signal_engine":       "active",
			"vision_engine":       "active",
			"optimization_engine": "active",
		},
		Initialized: true,
		Uptime:      time.Since(d.started).Seconds(),
	}
}
