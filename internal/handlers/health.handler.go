package handlers

import (
	"context"
	"time"

	"github.com/fasthttp/router"
	xhttp "github.com/nimasrn/ngo-backend/pkg/http"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	deps    map[string]Pinger
	started time.Time
	timeout time.Duration
}

type healthResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime"`
	Failed string  `json:"failed,omitempty"`
}

func RegisterHealthRoutes(r *router.Router, h *HealthHandler) {
	r.GET("/health", h.GetHealth)
}

// NewHealthHandler reports unhealthy when any named dependency fails to
// answer a ping.
func NewHealthHandler(deps map[string]Pinger) *HealthHandler {
	return &HealthHandler{
		deps:    deps,
		started: time.Now(),
		timeout: 2 * time.Second,
	}
}

func (h *HealthHandler) GetHealth(ctx *xhttp.RequestCtx) {
	pingCtx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	uptime := time.Since(h.started).Seconds()
	for name, dep := range h.deps {
		if err := dep.Ping(pingCtx); err != nil {
			writeJSON(ctx, xhttp.StatusInternalServerError, healthResponse{Status: "unavailable", Uptime: uptime, Failed: name})
			return
		}
	}
	writeJSON(ctx, xhttp.StatusOK, healthResponse{Status: "ok", Uptime: uptime})
}
