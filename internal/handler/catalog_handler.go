package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/AliJone/Gaza/internal/service"
	"github.com/AliJone/Gaza/internal/utils"
)

// CatalogHandler handles the public catalog read endpoints.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListEntries returns every visible catalog entry.
func (h *CatalogHandler) ListEntries(c *gin.Context) {
	entries, err := h.catalogService.ListVisible(c.Request.Context())
	if err != nil {
		utils.Error(c, 503, "STORE_UNAVAILABLE", "Failed to list entries")
		return
	}

	utils.SuccessWithCount(c, 200, "Entries retrieved successfully", gin.H{
		"entries": entries,
	}, len(entries))
}

// GetEntry returns a single entry by id.
func (h *CatalogHandler) GetEntry(c *gin.Context) {
	entry, err := h.catalogService.GetByID(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidIdentifier):
			utils.Error(c, 400, "INVALID_IDENTIFIER", "Entry id is not a valid identifier")
		case errors.Is(err, utils.ErrNotFound):
			utils.Error(c, 404, "NOT_FOUND", "Entry not found")
		default:
			utils.Error(c, 503, "STORE_UNAVAILABLE", "Failed to get entry")
		}
		return
	}

	utils.Success(c, 200, "Entry retrieved successfully", gin.H{
		"entry": entry,
	})
}

// SearchEntries returns visible entries matching the query parameter.
func (h *CatalogHandler) SearchEntries(c *gin.Context) {
	entries, err := h.catalogService.Search(c.Query("query"))
	if err != nil {
		utils.Error(c, 503, "STORE_UNAVAILABLE", "Failed to search entries")
		return
	}

	utils.SuccessWithCount(c, 200, "Search completed successfully", gin.H{
		"entries": entries,
	}, len(entries))
}
