package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog holds the static job list, read-only after construction.
type Catalog struct {
	jobs []Job
	byID map[string]Job
}

// New builds a catalog from the given jobs. Duplicate ids are rejected
// because every side store (status, saved, digest) keys on job id.
func New(jobs []Job) (*Catalog, error) {
	byID := make(map[string]Job, len(jobs))
	for _, job := range jobs {
		if job.ID == "" {
			return nil, fmt.Errorf("job %q has empty id", job.Title)
		}
		if _, ok := byID[job.ID]; ok {
			return nil, fmt.Errorf("duplicate job id %q", job.ID)
		}
		if job.PostedDaysAgo < 0 {
			return nil, fmt.Errorf("job %q has negative posted_days_ago", job.ID)
		}
		byID[job.ID] = job
	}

	return &Catalog{jobs: jobs, byID: byID}, nil
}

// LoadFile reads a YAML seed file holding the jobs list.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file: %w", err)
	}

	var seed struct {
		Jobs []Job `yaml:"jobs"`
	}
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse jobs file: %w", err)
	}

	return New(seed.Jobs)
}

// All returns the jobs in catalog order. Callers must not mutate the
// returned slice elements.
func (c *Catalog) All() []Job {
	out := make([]Job, len(c.jobs))
	copy(out, c.jobs)
	return out
}

// ByID looks a job up by id.
func (c *Catalog) ByID(id string) (Job, error) {
	job, ok := c.byID[id]
	if !ok {
		return Job{}, ErrJobNotFound
	}
	return job, nil
}

// Len reports the number of jobs in the catalog.
func (c *Catalog) Len() int {
	return len(c.jobs)
}
