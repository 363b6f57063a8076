package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobtrackhq/jobtrack-be/internal/api/dto"
)

// GetChecklist handles GET /api/v1/checklist
func (h *Handler) GetChecklist(c *gin.Context) {
	items, err := h.checklist.All(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load checklist", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load checklist",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
	})
}

// UpdateChecklistItem handles PUT /api/v1/checklist/:item_id
func (h *Handler) UpdateChecklistItem(c *gin.Context) {
	itemID := c.Param("item_id")

	var req dto.UpdateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if err := h.checklist.SetItem(c.Request.Context(), itemID, *req.Done); err != nil {
		h.logger.Error("Failed to update checklist item",
			slog.String("item_id", itemID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update checklist item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item_id": itemID,
		"done":    *req.Done,
	})
}
