package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// healthTimeout bounds each dependency check.
const healthTimeout = 2 * time.Second

// HealthCheck pings one dependency.
type HealthCheck func(ctx context.Context) error

// HealthController handles health check endpoints.
type HealthController struct {
	database HealthCheck
	cache    HealthCheck
	now      func() time.Time
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance. A nil cache
// check reports the cache as disabled.
func NewHealthController(database, cache HealthCheck) *HealthController {
	return &HealthController{
		database: database,
		cache:    cache,
		now:      time.Now,
	}
}

// Check handles GET /health requests. The database is required; an
// unreachable cache only degrades the status.
func (h *HealthController) Check(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Database:  dependencyStatus(c.Request.Context(), h.database),
		Cache:     dependencyStatus(c.Request.Context(), h.cache),
		Timestamp: h.now().UTC().Format(time.RFC3339),
	}

	status := http.StatusOK
	switch {
	case response.Database != "connected":
		response.Status = "unavailable"
		status = http.StatusServiceUnavailable
	case response.Cache == "disconnected":
		response.Status = "degraded"
	}

	c.JSON(status, response)
}

func dependencyStatus(ctx context.Context, check HealthCheck) string {
	if check == nil {
		return "disabled"
	}

	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	if err := check(ctx); err != nil {
		return "disconnected"
	}
	return "connected"
}
