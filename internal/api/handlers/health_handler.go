package handlers

import (
	"context"
	"net/http"

	"github.com/hotel-booking/engine/internal/api/types"
	appErr "github.com/hotel-booking/engine/pkg/errors"
)

// Pinger reports whether a backing store is reachable.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	ping Pinger
}

func NewHealthHandler(ping Pinger) *HealthHandler { return &HealthHandler{ping: ping} }

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.StatusResponse{Status: "ok"})
}

func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		if err := h.ping(r.Context()); err != nil {
			writeError(w, r, appErr.Wrap(err, appErr.CodeUnavailable, "database unreachable"))
			return
		}
	}
	writeJSON(w, http.StatusOK, types.StatusResponse{Status: "ready"})
}
