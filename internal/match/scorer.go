// Package match computes how well a catalog job fits the user's stated
// preferences. Scoring is pure: same inputs, same score, no side
// effects.
package match

import (
	"strings"

	"github.com/jobtrackhq/jobtrack-be/internal/catalog"
)

// Preferences are the user's matching criteria, overwritten wholesale
// on every save.
type Preferences struct {
	RoleKeywords  []string `json:"role_keywords"`
	Locations     []string `json:"locations"`
	Skills        []string `json:"skills"`
	MinMatchScore int      `json:"min_match_score"`
}

// IsEmpty reports whether no matching criteria are set. An empty
// Preferences yields no score rather than a zero-valued one.
func (p Preferences) IsEmpty() bool {
	return len(p.RoleKeywords) == 0 && len(p.Locations) == 0 && len(p.Skills) == 0
}

// Weights is the scoring policy table. Each matched criterion adds its
// weight; the total saturates at 100.
type Weights struct {
	RoleKeyword int `yaml:"role_keyword"`
	Skill       int `yaml:"skill"`
	Location    int `yaml:"location"`
}

// DefaultWeights is the policy used when config does not override it.
var DefaultWeights = Weights{
	RoleKeyword: 15,
	Skill:       12,
	Location:    20,
}

// Scorer scores jobs against preferences with a fixed weight table.
type Scorer struct {
	weights Weights
}

// NewScorer creates a scorer. Zero or negative weights fall back to the
// defaults so a partial config section cannot silence a criterion.
func NewScorer(w Weights) *Scorer {
	if w.RoleKeyword <= 0 {
		w.RoleKeyword = DefaultWeights.RoleKeyword
	}
	if w.Skill <= 0 {
		w.Skill = DefaultWeights.Skill
	}
	if w.Location <= 0 {
		w.Location = DefaultWeights.Location
	}
	return &Scorer{weights: w}
}

// Score returns an integer in [0,100]. It counts role keywords found as
// substrings of the job title (case-insensitive), skills present in the
// job's skill list, and whether any preferred location matches the
// job's location, then sums the weighted contributions and clamps.
// Empty preferences score 0.
func (s *Scorer) Score(job catalog.Job, prefs Preferences) int {
	if prefs.IsEmpty() {
		return 0
	}

	score := 0

	title := strings.ToLower(job.Title)
	for _, kw := range prefs.RoleKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(title, kw) {
			score += s.weights.RoleKeyword
		}
	}

	jobSkills := make(map[string]bool, len(job.Skills))
	for _, skill := range job.Skills {
		jobSkills[strings.ToLower(strings.TrimSpace(skill))] = true
	}
	for _, skill := range prefs.Skills {
		if jobSkills[strings.ToLower(strings.TrimSpace(skill))] {
			score += s.weights.Skill
		}
	}

	location := strings.ToLower(job.Location)
	for _, loc := range prefs.Locations {
		loc = strings.ToLower(strings.TrimSpace(loc))
		if loc != "" && strings.Contains(location, loc) {
			score += s.weights.Location
			break
		}
	}

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// ScoredJob pairs a job with its computed score. HasScore is false when
// preferences were empty and the UI should show "no score".
type ScoredJob struct {
	catalog.Job
	Score    int  `json:"score"`
	HasScore bool `json:"has_score"`
}

// ScoreAll scores every job in catalog order.
func (s *Scorer) ScoreAll(jobs []catalog.Job, prefs Preferences) []ScoredJob {
	hasScore := !prefs.IsEmpty()

	scored := make([]ScoredJob, len(jobs))
	for i, job := range jobs {
		scored[i] = ScoredJob{
			Job:      job,
			Score:    s.Score(job, prefs),
			HasScore: hasScore,
		}
	}
	return scored
}
