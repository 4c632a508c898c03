// Package health serves the liveness probe outside the huma API so it stays
// out of the service catalog and OpenAPI document.
package health

import (
	"encoding/json"
	"net/http"
)

// StatusHealthy is the only status the probe reports.
const StatusHealthy = "healthy"

// Response is the payload for the health endpoint.
type Response struct {
	Status string `json:"status"`
}

// Handler answers GET and HEAD health probes.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	_ = json.NewEncoder(w).Encode(Response{Status: StatusHealthy})
}
