// Package handler maps the restaurant API routes onto the use cases. Each
// handler binds the JSON body, calls one service method and writes the
// response envelope.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant/src/core/usecase"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	healthService *usecase.HealthService
	started       time.Time
}

func NewHealthHandler(healthService *usecase.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService, started: time.Now()}
}

// LivenessResponse is the body of GET /health.
type LivenessResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// Health reports that the process is up without touching the database.
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, LivenessResponse{
		Status: "ok",
		Uptime: time.Since(h.started).Round(time.Second).String(),
	})
}

// DetailedHealth pings the database and reports pool usage. It answers 503
// while the database is unreachable so load balancers stop routing here.
// GET /health/detailed
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	status := h.healthService.Check(c.Request.Context())
	code := http.StatusOK
	if status.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
