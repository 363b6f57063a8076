package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobtrackhq/jobtrack-be/internal/api/dto"
	"github.com/jobtrackhq/jobtrack-be/internal/catalog"
	"github.com/jobtrackhq/jobtrack-be/internal/match"
	"github.com/jobtrackhq/jobtrack-be/internal/pipeline"
	"github.com/jobtrackhq/jobtrack-be/internal/tracker"
)

// ListJobs handles GET /api/v1/jobs
// Returns the scored catalog filtered and sorted per query parameters
func (h *Handler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Error("Invalid query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	sortKey, err := pipeline.ParseSortKey(req.Sort)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	ctx := c.Request.Context()

	preferences, err := h.prefs.Get(ctx)
	if err != nil {
		h.logger.Error("Failed to load preferences", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load preferences",
		})
		return
	}

	statuses, err := h.tracker.StatusMap(ctx)
	if err != nil {
		h.logger.Error("Failed to load status map", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load status map",
		})
		return
	}

	savedIDs, err := h.saved.List(ctx)
	if err != nil {
		h.logger.Error("Failed to load saved jobs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load saved jobs",
		})
		return
	}

	filter := pipeline.Filter{
		Keyword:    req.Keyword,
		Location:   req.Location,
		Mode:       req.Mode,
		Experience: req.Experience,
		Source:     req.Source,
		Status:     req.Status,
	}
	if req.MinScore {
		threshold := preferences.MinMatchScore
		filter.MinScore = &threshold
	}

	statusOf := func(jobID string) string {
		if status, ok := statuses[jobID]; ok {
			return string(status)
		}
		return string(tracker.DefaultStatus)
	}

	scored := h.scorer.ScoreAll(h.catalog.All(), preferences)
	scored = pipeline.Apply(scored, filter, statusOf)
	pipeline.Sort(scored, sortKey)

	savedSet := make(map[string]bool, len(savedIDs))
	for _, id := range savedIDs {
		savedSet[id] = true
	}

	jobs := make([]dto.JobDTO, len(scored))
	for i, job := range scored {
		jobs[i] = toJobDTO(job, statusOf(job.ID), savedSet[job.ID])
	}

	c.JSON(http.StatusOK, dto.ListJobsResponse{
		Jobs:  jobs,
		Total: len(jobs),
	})
}

// GetJob handles GET /api/v1/jobs/:job_id
// Returns one scored job with its tracked status
func (h *Handler) GetJob(c *gin.Context) {
	jobID := c.Param("job_id")

	job, err := h.catalog.ByID(jobID)
	if err != nil {
		if errors.Is(err, catalog.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Job not found",
			})
			return
		}
		h.logger.Error("Failed to get job", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get job",
		})
		return
	}

	ctx := c.Request.Context()

	preferences, err := h.prefs.Get(ctx)
	if err != nil {
		h.logger.Error("Failed to load preferences", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load preferences",
		})
		return
	}

	status, err := h.tracker.Get(ctx, jobID)
	if err != nil {
		h.logger.Error("Failed to get status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get status",
		})
		return
	}

	savedIDs, err := h.saved.List(ctx)
	if err != nil {
		h.logger.Error("Failed to load saved jobs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load saved jobs",
		})
		return
	}

	isSaved := false
	for _, id := range savedIDs {
		if id == jobID {
			isSaved = true
			break
		}
	}

	scored := match.ScoredJob{
		Job:      job,
		Score:    h.scorer.Score(job, preferences),
		HasScore: !preferences.IsEmpty(),
	}

	c.JSON(http.StatusOK, toJobDTO(scored, string(status), isSaved))
}

func toJobDTO(job match.ScoredJob, status string, isSaved bool) dto.JobDTO {
	out := dto.JobDTO{
		ID:            job.ID,
		Title:         job.Title,
		Company:       job.Company,
		Location:      job.Location,
		Mode:          job.Mode,
		Experience:    job.Experience,
		SalaryRange:   job.SalaryRange,
		Skills:        job.Skills,
		Source:        job.Source,
		PostedDaysAgo: job.PostedDaysAgo,
		ApplyURL:      job.ApplyURL,
		Status:        status,
		Saved:         isSaved,
	}
	if job.HasScore {
		score := job.Score
		out.Score = &score
	}
	return out
}
