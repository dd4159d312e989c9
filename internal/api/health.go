package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pantry-chef/internal/database"
	"github.com/pageza/pantry-chef/internal/types"
)

type HealthHandler struct {
	db *database.DB
}

func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.Health)
}

// Health reports process liveness and database reachability.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, types.HealthResponse{
			Status:   "degraded",
			Database: "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, types.HealthResponse{
		Status:   "ok",
		Database: "ok",
	})
}
