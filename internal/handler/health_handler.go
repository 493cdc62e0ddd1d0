package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/AliJone/Gaza/internal/utils"
)

var startTime = time.Now()

// HealthHandler provides the health endpoint.
type HealthHandler struct {
	db *sqlx.DB
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// GetHealth responds with service and store status.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	storeStatus := "connected"
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		storeStatus = "disconnected"
	}

	utils.Success(c, 200, "Service is healthy", gin.H{
		"status":  "healthy",
		"version": "1.0.0",
		"uptime":  int(time.Since(startTime).Seconds()),
		"store": gin.H{
			"status": storeStatus,
		},
	})
}
