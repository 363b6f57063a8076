package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobtrackhq/jobtrack-be/internal/api/handler"
	"github.com/jobtrackhq/jobtrack-be/internal/api/router"
	"github.com/jobtrackhq/jobtrack-be/internal/catalog"
	"github.com/jobtrackhq/jobtrack-be/internal/checklist"
	"github.com/jobtrackhq/jobtrack-be/internal/digest"
	"github.com/jobtrackhq/jobtrack-be/internal/match"
	"github.com/jobtrackhq/jobtrack-be/internal/prefs"
	"github.com/jobtrackhq/jobtrack-be/internal/saved"
	"github.com/jobtrackhq/jobtrack-be/internal/store"
	"github.com/jobtrackhq/jobtrack-be/internal/tracker"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jobs := []catalog.Job{
		{
			ID: "job-1", Title: "Backend Engineer", Company: "Flipkart",
			Location: "Bangalore", Mode: "Remote", Experience: 2,
			SalaryRange: "₹15-25 LPA", Skills: []string{"Go", "SQL"},
			Source: "LinkedIn", PostedDaysAgo: 1,
			ApplyURL: "https://example.com/job-1",
		},
		{
			ID: "job-2", Title: "Frontend Developer", Company: "Razorpay",
			Location: "Mumbai", Mode: "Onsite", Experience: 3,
			SalaryRange: "₹10-18 LPA", Skills: []string{"React"},
			Source: "Naukri", PostedDaysAgo: 4,
			ApplyURL: "https://example.com/job-2",
		},
	}

	c, err := catalog.New(jobs)
	require.NoError(t, err)

	kv := store.NewMemoryStore()
	scorer := match.NewScorer(match.DefaultWeights)

	deps := &handler.Dependencies{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Catalog:   c,
		Scorer:    scorer,
		Prefs:     prefs.New(kv),
		Tracker:   tracker.New(kv),
		Digest:    digest.NewGenerator(c, scorer, kv),
		Saved:     saved.New(kv),
		Checklist: checklist.New(kv),
	}

	return router.SetupRouter(deps)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestListJobs_NoPreferences(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/jobs", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Jobs []struct {
			ID    string `json:"id"`
			Score *int   `json:"score"`
		} `json:"jobs"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.Total)
	for _, job := range resp.Jobs {
		assert.Nil(t, job.Score, "no preferences means no score")
	}

	// Default sort is latest: job-1 (1 day) before job-2 (4 days).
	assert.Equal(t, "job-1", resp.Jobs[0].ID)
}

func TestListJobs_FilterAndSort(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/jobs?keyword=backend", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Jobs []struct {
			ID string `json:"id"`
		} `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, "job-1", resp.Jobs[0].ID)

	w = doJSON(t, r, http.MethodGet, "/api/v1/jobs?sort=salary-high", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Jobs, 2)
	assert.Equal(t, "job-1", resp.Jobs[0].ID, "₹15-25 LPA sorts above ₹10-18 LPA")

	w = doJSON(t, r, http.MethodGet, "/api/v1/jobs?sort=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreferencesRoundTrip(t *testing.T) {
	r := testRouter(t)

	body := map[string]interface{}{
		"role_keywords":   []string{"backend"},
		"locations":       []string{"Bangalore"},
		"skills":          []string{"Go"},
		"min_match_score": 40,
	}
	w := doJSON(t, r, http.MethodPut, "/api/v1/preferences", body)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/preferences", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var prefs struct {
		RoleKeywords  []string `json:"role_keywords"`
		MinMatchScore int      `json:"min_match_score"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prefs))
	assert.Equal(t, []string{"backend"}, prefs.RoleKeywords)
	assert.Equal(t, 40, prefs.MinMatchScore)

	// Scores now appear on the job list.
	w = doJSON(t, r, http.MethodGet, "/api/v1/jobs?sort=match-score", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Jobs []struct {
			ID    string `json:"id"`
			Score *int   `json:"score"`
		} `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Jobs, 2)
	require.NotNil(t, resp.Jobs[0].Score)
	assert.Equal(t, "job-1", resp.Jobs[0].ID)
	// keyword (15) + skill (12) + location (20)
	assert.Equal(t, 47, *resp.Jobs[0].Score)
}

func TestStatusFlow(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/jobs/job-1/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Not Applied")

	w = doJSON(t, r, http.MethodPut, "/api/v1/jobs/job-1/status", map[string]string{"status": "Applied"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/jobs/job-1/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Applied")

	w = doJSON(t, r, http.MethodPut, "/api/v1/jobs/job-1/status", map[string]string{"status": "Ghosted"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/v1/jobs/nope/status", map[string]string{"status": "Applied"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/status/updates", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var updates struct {
		Updates []struct {
			JobID  string `json:"job_id"`
			Status string `json:"status"`
		} `json:"updates"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updates))
	require.Equal(t, 1, updates.Total)
	assert.Equal(t, "job-1", updates.Updates[0].JobID)
	assert.Equal(t, "Applied", updates.Updates[0].Status)

	w = doJSON(t, r, http.MethodGet, "/api/v1/status/updates?days=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDigestFlow(t *testing.T) {
	r := testRouter(t)

	// Nothing generated yet.
	w := doJSON(t, r, http.MethodGet, "/api/v1/digest", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/digest", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Date string `json:"date"`
		Jobs []struct {
			ID string `json:"id"`
		} `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.NotEmpty(t, data.Date)
	assert.LessOrEqual(t, len(data.Jobs), 10)

	w = doJSON(t, r, http.MethodGet, "/api/v1/digest", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/digest/text", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var text struct {
		Text      string `json:"text"`
		MailtoURL string `json:"mailto_url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &text))
	assert.Contains(t, text.Text, "Daily Job Digest")
	assert.Contains(t, text.MailtoURL, "mailto:?subject=")
}

func TestSavedFlow(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/saved/job-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/saved/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/saved", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		JobIDs []string `json:"job_ids"`
		Total  int      `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, []string{"job-1"}, list.JobIDs)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/saved/job-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/saved", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 0, list.Total)
}

func TestChecklistFlow(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/v1/checklist/resume-updated", map[string]bool{"done": true})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/v1/checklist/resume-updated", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/checklist", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items map[string]bool `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Items["resume-updated"])
}

func TestGetJob(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/jobs/job-2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var job struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Status string `json:"status"`
		Saved  bool   `json:"saved"`
		Score  *int   `json:"score"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
	assert.Equal(t, "Frontend Developer", job.Title)
	assert.Equal(t, "Not Applied", job.Status)
	assert.False(t, job.Saved)
	assert.Nil(t, job.Score)

	w = doJSON(t, r, http.MethodGet, "/api/v1/jobs/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
