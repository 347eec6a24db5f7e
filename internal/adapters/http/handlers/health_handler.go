package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// Probe states reported in the "status" field.
const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// checkStatus is one dependency in the readiness body.
type checkStatus struct {
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
	Optional bool   `json:"optional,omitempty"`
}

// Liveness handles GET /health/live. It never touches dependencies.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. A failing required check (database,
// blob store) answers 503 not_ready. A failing optional check (the event
// broker) still answers 200, with status degraded.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	report := h.registry.CheckAll(r.Context())

	checks := make(map[string]checkStatus, len(report))
	degraded := false
	for name, res := range report {
		cs := checkStatus{Status: statusOK, Optional: res.Optional}
		if res.Err != nil {
			cs.Status = "failing"
			cs.Error = res.Err.Error()
			degraded = true
		}
		checks[name] = cs
	}

	status, code := statusReady, http.StatusOK
	switch {
	case !report.Ready():
		status, code = statusNotReady, http.StatusServiceUnavailable
	case degraded:
		status = statusDegraded
	}

	writeJSON(w, code, map[string]any{"status": status, "checks": checks})
}
