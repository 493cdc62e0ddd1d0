package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/AliJone/Gaza/internal/models"
	"github.com/AliJone/Gaza/internal/service"
	"github.com/AliJone/Gaza/internal/utils"
)

// ModerationHandler handles the JWT-protected admin endpoints for the
// review queue.
type ModerationHandler struct {
	moderationService *service.ModerationService
}

// NewModerationHandler constructs a ModerationHandler.
func NewModerationHandler(moderationService *service.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderationService: moderationService}
}

// ListEntries returns all entries, pending included, with an optional
// exact status filter.
func (h *ModerationHandler) ListEntries(c *gin.Context) {
	entries, err := h.moderationService.ListEntries(c.Query("status"))
	if err != nil {
		utils.Error(c, 503, "STORE_UNAVAILABLE", "Failed to list entries")
		return
	}

	utils.SuccessWithCount(c, 200, "Entries retrieved successfully", gin.H{
		"entries": entries,
	}, len(entries))
}

// UpdateEntryStatus transitions an entry to a new moderation status.
func (h *ModerationHandler) UpdateEntryStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	err := h.moderationService.SetStatus(c.Request.Context(), c.Param("id"), models.EntryStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidIdentifier):
			utils.Error(c, 400, "INVALID_IDENTIFIER", "Entry id is not a valid identifier")
		case errors.Is(err, utils.ErrInvalidStatus):
			utils.Error(c, 400, "INVALID_STATUS", "Status must not be empty")
		case errors.Is(err, utils.ErrNotFound):
			utils.Error(c, 404, "NOT_FOUND", "Entry not found")
		default:
			utils.Error(c, 503, "STORE_UNAVAILABLE", "Failed to update entry status")
		}
		return
	}

	utils.Success(c, 200, "Entry status updated successfully", gin.H{
		"id":     c.Param("id"),
		"status": req.Status,
	})
}
