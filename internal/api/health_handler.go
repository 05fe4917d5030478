package api

import (
	"context"
	"net/http"
	"time"

	"github.com/shutter-academy/academy-api/internal/api/shared"
)

// LivenessMessage is the plain-text body of GET /.
const LivenessMessage = "Shutter academy is running"

// Pinger checks that a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthHandler creates a HealthHandler that pings db on readiness checks.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// Liveness handles GET /.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	shared.RespondWithText(w, http.StatusOK, LivenessMessage)
}

// Readiness handles GET /health.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "Database unavailable", err)
		return
	}
	shared.RespondWithText(w, http.StatusOK, "OK")
}
