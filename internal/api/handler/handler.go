package handler

import (
	"log/slog"

	"github.com/jobtrackhq/jobtrack-be/internal/catalog"
	"github.com/jobtrackhq/jobtrack-be/internal/checklist"
	"github.com/jobtrackhq/jobtrack-be/internal/digest"
	"github.com/jobtrackhq/jobtrack-be/internal/match"
	"github.com/jobtrackhq/jobtrack-be/internal/prefs"
	"github.com/jobtrackhq/jobtrack-be/internal/saved"
	"github.com/jobtrackhq/jobtrack-be/internal/tracker"
)

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger    *slog.Logger
	Catalog   *catalog.Catalog
	Scorer    *match.Scorer
	Prefs     *prefs.Service
	Tracker   *tracker.Tracker
	Digest    *digest.Generator
	Saved     *saved.Service
	Checklist *checklist.Service
}

// Handler serves all job-tracking HTTP requests
type Handler struct {
	logger    *slog.Logger
	catalog   *catalog.Catalog
	scorer    *match.Scorer
	prefs     *prefs.Service
	tracker   *tracker.Tracker
	digest    *digest.Generator
	saved     *saved.Service
	checklist *checklist.Service
}

// New creates a new Handler instance
func New(deps *Dependencies) *Handler {
	return &Handler{
		logger:    deps.Logger,
		catalog:   deps.Catalog,
		scorer:    deps.Scorer,
		prefs:     deps.Prefs,
		tracker:   deps.Tracker,
		digest:    deps.Digest,
		saved:     deps.Saved,
		checklist: deps.Checklist,
	}
}
