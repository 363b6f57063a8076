package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jobtrackhq/jobtrack-be/internal/api/dto"
	"github.com/jobtrackhq/jobtrack-be/internal/catalog"
	"github.com/jobtrackhq/jobtrack-be/internal/tracker"
)

// GetStatus handles GET /api/v1/jobs/:job_id/status
func (h *Handler) GetStatus(c *gin.Context) {
	jobID := c.Param("job_id")

	if _, err := h.catalog.ByID(jobID); errors.Is(err, catalog.ErrJobNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Job not found",
		})
		return
	}

	status, err := h.tracker.Get(c.Request.Context(), jobID)
	if err != nil {
		h.logger.Error("Failed to get status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get status",
		})
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		JobID:  jobID,
		Status: string(status),
	})
}

// UpdateStatus handles PUT /api/v1/jobs/:job_id/status
// No-ops when the submitted status equals the stored one
func (h *Handler) UpdateStatus(c *gin.Context) {
	jobID := c.Param("job_id")

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	status, err := tracker.ParseStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	job, err := h.catalog.ByID(jobID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Job not found",
		})
		return
	}

	if err := h.tracker.Set(c.Request.Context(), jobID, status, job.Title, job.Company); err != nil {
		h.logger.Error("Failed to update status",
			slog.String("job_id", jobID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update status",
		})
		return
	}

	h.logger.Info("Status updated",
		slog.String("job_id", jobID),
		slog.String("status", string(status)),
	)

	c.JSON(http.StatusOK, dto.StatusResponse{
		JobID:  jobID,
		Status: string(status),
	})
}

// RecentStatusUpdates handles GET /api/v1/status/updates
// Returns history entries within the trailing window (default 7 days)
func (h *Handler) RecentStatusUpdates(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "days must be a positive integer",
			})
			return
		}
		days = parsed
	}

	updates, err := h.tracker.RecentUpdates(c.Request.Context(), days)
	if err != nil {
		h.logger.Error("Failed to load status history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load status history",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"updates": updates,
		"total":   len(updates),
	})
}
