package handler

import (
	"context"
	"net/http"

	coreport "github.com/amirhossein-jamali/gold-assistant/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// ServiceMessage is returned by GET /
const ServiceMessage = "Gold assistant API running. See /docs for Swagger UI."

// StoreChecker is implemented by database.Manager
type StoreChecker interface {
	Ping(ctx context.Context) error
	PoolMetrics() database.ConnectionPoolMetrics
	Driver() string
}

// HealthHandler reports service liveness
type HealthHandler struct {
	store  StoreChecker
	logger coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(store StoreChecker, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		store:  store,
		logger: logger,
	}
}

// Root handles GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: ServiceMessage})
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Health check failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   "unavailable",
			Database: "unreachable",
			Driver:   h.store.Driver(),
		})
		return
	}

	metrics := h.store.PoolMetrics()
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "ok",
		Database: "reachable",
		Driver:   h.store.Driver(),
		Pool: map[string]any{
			"open_connections": metrics.OpenConnections,
			"in_use":           metrics.InUse,
			"idle":             metrics.IdleConnections,
			"wait_count":       metrics.WaitCount,
		},
	})
}
