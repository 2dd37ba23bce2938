package middleware

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthStatus represents the health status
type HealthStatus struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Provider  string    `json:"provider"`
	DemoMode  bool      `json:"demo_mode"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthHandler reports liveness plus whether the gateway is running in
// demo mode (no provider credentials). Demo mode is still "healthy".
func HealthHandler(provider string, configured bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		health := HealthStatus{
			Status:    "healthy",
			Service:   "checkmycar-gateway",
			Provider:  provider,
			DemoMode:  !configured,
			Timestamp: time.Now(),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(health)
	}
}
