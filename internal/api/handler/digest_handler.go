package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobtrackhq/jobtrack-be/internal/api/dto"
	"github.com/jobtrackhq/jobtrack-be/internal/digest"
)

// GenerateDigest handles POST /api/v1/digest
// Snapshots today's top matches, replacing any earlier snapshot for the
// same day
func (h *Handler) GenerateDigest(c *gin.Context) {
	ctx := c.Request.Context()

	preferences, err := h.prefs.Get(ctx)
	if err != nil {
		h.logger.Error("Failed to load preferences", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load preferences",
		})
		return
	}

	data, err := h.digest.Generate(ctx, preferences)
	if err != nil {
		h.logger.Error("Failed to generate digest", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate digest",
		})
		return
	}

	h.logger.Info("Digest generated",
		slog.String("date", data.Date),
		slog.Int("jobs", len(data.Jobs)),
	)

	c.JSON(http.StatusOK, data)
}

// GetDigest handles GET /api/v1/digest
// Returns today's stored digest, 404 when none has been generated
func (h *Handler) GetDigest(c *gin.Context) {
	data, ok, err := h.digest.Today(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load digest", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load digest",
		})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No digest generated for today",
		})
		return
	}

	c.JSON(http.StatusOK, data)
}

// GetDigestText handles GET /api/v1/digest/text
// Returns the plain-text rendering plus the prefilled mailto link
func (h *Handler) GetDigestText(c *gin.Context) {
	data, ok, err := h.digest.Today(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load digest", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load digest",
		})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No digest generated for today",
		})
		return
	}

	c.JSON(http.StatusOK, dto.DigestTextResponse{
		Date:      data.Date,
		Text:      digest.Render(data),
		MailtoURL: digest.MailtoURL(data),
	})
}
