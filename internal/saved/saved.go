// Package saved keeps the ordered list of job ids the user marked as
// favorites.
package saved

import (
	"context"
	"fmt"

	"github.com/jobtrackhq/jobtrack-be/internal/store"
)

const keySavedJobs = "saved_jobs"

// Service manages the saved job id list.
type Service struct {
	store store.Store
}

// New creates a saved-jobs service on the given store.
func New(s store.Store) *Service {
	return &Service{store: s}
}

// List returns the saved job ids in insertion order.
func (s *Service) List(ctx context.Context) ([]string, error) {
	ids := make([]string, 0)
	if err := store.GetJSON(ctx, s.store, keySavedJobs, &ids); err != nil {
		return nil, fmt.Errorf("failed to load saved jobs: %w", err)
	}
	return ids, nil
}

// Add appends jobID if it is not already saved. Returns true when the
// list changed.
func (s *Service) Add(ctx context.Context, jobID string) (bool, error) {
	ids, err := s.List(ctx)
	if err != nil {
		return false, err
	}

	for _, id := range ids {
		if id == jobID {
			return false, nil
		}
	}

	ids = append(ids, jobID)
	if err := store.SetJSON(ctx, s.store, keySavedJobs, ids); err != nil {
		return false, fmt.Errorf("failed to save job list: %w", err)
	}
	return true, nil
}

// Remove deletes jobID from the list. Returns true when the list
// changed.
func (s *Service) Remove(ctx context.Context, jobID string) (bool, error) {
	ids, err := s.List(ctx)
	if err != nil {
		return false, err
	}

	out := ids[:0]
	removed := false
	for _, id := range ids {
		if id == jobID {
			removed = true
			continue
		}
		out = append(out, id)
	}
	if !removed {
		return false, nil
	}

	if err := store.SetJSON(ctx, s.store, keySavedJobs, out); err != nil {
		return false, fmt.Errorf("failed to save job list: %w", err)
	}
	return true, nil
}

// Toggle adds jobID when absent and removes it when present, returning
// true when the job ended up saved.
func (s *Service) Toggle(ctx context.Context, jobID string) (bool, error) {
	added, err := s.Add(ctx, jobID)
	if err != nil {
		return false, err
	}
	if added {
		return true, nil
	}

	if _, err := s.Remove(ctx, jobID); err != nil {
		return false, err
	}
	return false, nil
}
