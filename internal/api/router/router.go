package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobtrackhq/jobtrack-be/internal/api/handler"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "jobtrack-api-service",
		})
	})

	h := handler.New(deps)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		jobs := v1.Group("/jobs")
		{
			// GET /api/v1/jobs - Filtered, sorted, scored job list
			jobs.GET("", h.ListJobs)

			// GET /api/v1/jobs/:job_id - Single scored job
			jobs.GET("/:job_id", h.GetJob)

			// GET /api/v1/jobs/:job_id/status - Tracked application status
			jobs.GET("/:job_id/status", h.GetStatus)

			// PUT /api/v1/jobs/:job_id/status - Update application status
			jobs.PUT("/:job_id/status", h.UpdateStatus)
		}

		v1.GET("/preferences", h.GetPreferences)
		v1.PUT("/preferences", h.UpdatePreferences)

		v1.GET("/status/updates", h.RecentStatusUpdates)

		digest := v1.Group("/digest")
		{
			// POST /api/v1/digest - Generate (or regenerate) today's digest
			digest.POST("", h.GenerateDigest)

			// GET /api/v1/digest - Today's stored digest
			digest.GET("", h.GetDigest)

			// GET /api/v1/digest/text - Plain-text rendering and mailto link
			digest.GET("/text", h.GetDigestText)
		}

		saved := v1.Group("/saved")
		{
			saved.GET("", h.ListSaved)
			saved.POST("/:job_id", h.SaveJob)
			saved.DELETE("/:job_id", h.UnsaveJob)
		}

		checklist := v1.Group("/checklist")
		{
			checklist.GET("", h.GetChecklist)
			checklist.PUT("/:item_id", h.UpdateChecklistItem)
		}
	}

	return r
}
