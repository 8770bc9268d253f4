package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse reports liveness plus which store backs the directory.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Store     string    `json:"store"`
	DB        string    `json:"db"`
	Uptime    string    `json:"uptime"`
}

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthOptions struct {
	ServiceName string
	Version     string
	// Store is the STORE_DRIVER in use.
	Store string
	// DB is nil for the memory store and then reports "disabled".
	DB Pinger
}

type HealthHandler struct {
	opt     HealthOptions
	started time.Time
	now     func() time.Time
}

func NewHealthHandler(opt HealthOptions) *HealthHandler {
	return &HealthHandler{opt: opt, started: time.Now(), now: time.Now}
}

// HealthCheck answers 200 while the directory can serve reads. A Postgres
// store that stops answering pings turns the status to "degraded" with 503.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status, code := "healthy", http.StatusOK
	dbStatus := "disabled"
	if h.opt.DB != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := h.opt.DB.Ping(pingCtx); err != nil {
			dbStatus = "down"
			status, code = "degraded", http.StatusServiceUnavailable
		} else {
			dbStatus = "up"
		}
	}

	now := h.now()
	c.JSON(code, HealthResponse{
		Status:    status,
		Timestamp: now.UTC(),
		Service:   h.opt.ServiceName,
		Version:   h.opt.Version,
		Store:     h.opt.Store,
		DB:        dbStatus,
		Uptime:    now.Sub(h.started).Truncate(time.Second).String(),
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
