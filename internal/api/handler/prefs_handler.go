package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobtrackhq/jobtrack-be/internal/api/dto"
	"github.com/jobtrackhq/jobtrack-be/internal/match"
)

// GetPreferences handles GET /api/v1/preferences
func (h *Handler) GetPreferences(c *gin.Context) {
	preferences, err := h.prefs.Get(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load preferences", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load preferences",
		})
		return
	}

	c.JSON(http.StatusOK, preferences)
}

// UpdatePreferences handles PUT /api/v1/preferences
// Replaces the stored preferences wholesale
func (h *Handler) UpdatePreferences(c *gin.Context) {
	var req dto.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	preferences := match.Preferences{
		RoleKeywords:  req.RoleKeywords,
		Locations:     req.Locations,
		Skills:        req.Skills,
		MinMatchScore: req.MinMatchScore,
	}

	if err := h.prefs.Save(c.Request.Context(), preferences); err != nil {
		h.logger.Error("Failed to save preferences", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save preferences",
		})
		return
	}

	h.logger.Info("Preferences updated",
		slog.Int("role_keywords", len(preferences.RoleKeywords)),
		slog.Int("skills", len(preferences.Skills)),
		slog.Int("min_match_score", preferences.MinMatchScore),
	)

	c.JSON(http.StatusOK, preferences)
}
