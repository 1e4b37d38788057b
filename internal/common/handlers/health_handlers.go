package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teamhub/teamhub/internal/common/health"
)

// HealthHandler exposes health endpoints backed by a HealthChecker
type HealthHandler struct {
	checker *health.HealthChecker
}

func NewHealthHandler(checker *health.HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Health is the basic health endpoint
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.checker.Liveness())
}

// Liveness for orchestrator liveness probes
// GET /health/liveness
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, h.checker.Liveness())
}

// Readiness checks dependencies
// GET /health/readiness
func (h *HealthHandler) Readiness(c *gin.Context) {
	status := h.checker.Readiness()
	code := http.StatusOK
	if status.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}

// Detailed includes runtime stats
// GET /health/detailed
func (h *HealthHandler) Detailed(c *gin.Context) {
	c.JSON(http.StatusOK, h.checker.Detailed())
}
