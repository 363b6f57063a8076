// Package pipeline filters and orders scored job lists for the
// dashboard. Filters compose as a pure AND; applying them in any order
// yields the same result set.
package pipeline

import (
	"strings"

	"github.com/jobtrackhq/jobtrack-be/internal/match"
)

// Filter holds the active criteria. Zero-valued fields are inactive.
type Filter struct {
	Keyword    string // substring match on title or company, case-insensitive
	Location   string // exact match
	Mode       string // exact match
	Experience *int   // exact match on years
	Source     string // exact match
	Status     string // exact match on tracked application status
	MinScore   *int   // keep jobs with score >= threshold
}

// Matches reports whether a single job satisfies every active
// criterion. status is the job's tracked application status.
func (f Filter) Matches(job match.ScoredJob, status string) bool {
	if f.Keyword != "" {
		kw := strings.ToLower(f.Keyword)
		if !strings.Contains(strings.ToLower(job.Title), kw) &&
			!strings.Contains(strings.ToLower(job.Company), kw) {
			return false
		}
	}
	if f.Location != "" && job.Location != f.Location {
		return false
	}
	if f.Mode != "" && job.Mode != f.Mode {
		return false
	}
	if f.Experience != nil && job.Experience != *f.Experience {
		return false
	}
	if f.Source != "" && job.Source != f.Source {
		return false
	}
	if f.Status != "" && status != f.Status {
		return false
	}
	if f.MinScore != nil && job.Score < *f.MinScore {
		return false
	}
	return true
}

// Apply returns the jobs satisfying the filter, preserving input order.
// statusOf resolves a job id to its tracked status; it may be nil when
// the status criterion is inactive.
func Apply(jobs []match.ScoredJob, f Filter, statusOf func(jobID string) string) []match.ScoredJob {
	out := make([]match.ScoredJob, 0, len(jobs))
	for _, job := range jobs {
		status := ""
		if statusOf != nil {
			status = statusOf(job.ID)
		}
		if f.Matches(job, status) {
			out = append(out, job)
		}
	}
	return out
}
