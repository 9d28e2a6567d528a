package http

import (
	"context"
	"net/http"
	"time"

	"github.com/Abinash-k/Freelance-Portal/internal/api/respond"
)

// Pinger reports backing-store connectivity. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler serves liveness and store-connectivity checks.
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// CheckHealth GET /api/health
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// CheckStorageHealth GET /api/health/db
func (h *HealthHandler) CheckStorageHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		respond.WriteError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy", "database": "reachable"})
}
