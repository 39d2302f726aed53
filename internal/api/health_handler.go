package api

import (
	"net/http"
	"time"

	"github.com/ignite/contact-directory/internal/pkg/httputil"
)

// HealthStatus is the body of the health endpoint.
type HealthStatus struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
	Contacts int    `json:"contacts"`
}

const healthVersion = "1.0.0"

// HealthCheck reports liveness and the current store size.
//
//	GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, HealthStatus{
		Status:   "ok",
		Version:  healthVersion,
		Uptime:   time.Since(h.startTime).Round(time.Second).String(),
		Contacts: h.contacts.Count(r.Context()),
	})
}
