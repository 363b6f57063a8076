package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobtrackhq/jobtrack-be/internal/catalog"
)

// ListSaved handles GET /api/v1/saved
func (h *Handler) ListSaved(c *gin.Context) {
	ids, err := h.saved.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load saved jobs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load saved jobs",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_ids": ids,
		"total":   len(ids),
	})
}

// SaveJob handles POST /api/v1/saved/:job_id
func (h *Handler) SaveJob(c *gin.Context) {
	jobID := c.Param("job_id")

	if _, err := h.catalog.ByID(jobID); errors.Is(err, catalog.ErrJobNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Job not found",
		})
		return
	}

	added, err := h.saved.Add(c.Request.Context(), jobID)
	if err != nil {
		h.logger.Error("Failed to save job",
			slog.String("job_id", jobID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save job",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_id": jobID,
		"saved":  true,
		"added":  added,
	})
}

// UnsaveJob handles DELETE /api/v1/saved/:job_id
func (h *Handler) UnsaveJob(c *gin.Context) {
	jobID := c.Param("job_id")

	removed, err := h.saved.Remove(c.Request.Context(), jobID)
	if err != nil {
		h.logger.Error("Failed to remove saved job",
			slog.String("job_id", jobID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove saved job",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_id":  jobID,
		"saved":   false,
		"removed": removed,
	})
}
