package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// readinessTimeout bounds a single readiness probe.
const readinessTimeout = 2 * time.Second

// Pinger is the minimal contract I need from a dependency to check readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler exposes liveness and readiness endpoints.
type HealthHandler struct {
	target Pinger
}

func NewHealthHandler(target Pinger) *HealthHandler {
	return &HealthHandler{target: target}
}

// Liveness responds OK if the process is up; it doesn't check dependencies.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Readiness pings the target; a handler without one is never ready.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.target == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "not configured"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := h.target.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
