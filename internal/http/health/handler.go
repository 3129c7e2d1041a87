package health

import (
	"encoding/json"
	"net/http"
	"time"
)

// Response is the payload for the health endpoint.
type Response struct {
	Status        string `json:"status"`
	Version       string `json:"version,omitempty"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}

// Handler reports liveness together with the build version and the time
// elapsed since started. It bypasses Huma so it stays out of the API docs.
func Handler(version string, started time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(Response{
			Status:        "healthy",
			Version:       version,
			UptimeSeconds: int64(time.Since(started).Seconds()),
		})
	}
}
