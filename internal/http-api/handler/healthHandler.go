package handler

import (
	"log/slog"
	"net/http"

	"feedback-service/internal/http-api/dto"

	"github.com/gin-gonic/gin"
)

// Pinger is the slice of the rating store the health check needs.
type Pinger interface {
	Ping() error
}

type HealthHandler struct {
	store  Pinger
	logger *slog.Logger
}

func NewHealthHandler(store Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: logger}
}

// Check reports process liveness and database reachability
// GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	health := dto.HealthResponse{Status: "ok", Database: "ok"}

	if err := h.store.Ping(); err != nil {
		h.logger.Error("health check failed: database connection error", "error", err)
		health.Database = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}

	c.JSON(http.StatusOK, health)
}
