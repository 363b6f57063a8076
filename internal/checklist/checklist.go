// Package checklist persists the interview-prep checklist as a mapping
// of check-item id to done flag.
package checklist

import (
	"context"
	"fmt"

	"github.com/jobtrackhq/jobtrack-be/internal/store"
)

const keyChecklist = "test_checklist"

// Service manages checklist state.
type Service struct {
	store store.Store
}

// New creates a checklist service on the given store.
func New(s store.Store) *Service {
	return &Service{store: s}
}

// All returns the full item id -> done mapping.
func (s *Service) All(ctx context.Context) (map[string]bool, error) {
	items := make(map[string]bool)
	if err := store.GetJSON(ctx, s.store, keyChecklist, &items); err != nil {
		return nil, fmt.Errorf("failed to load checklist: %w", err)
	}
	return items, nil
}

// SetItem records whether a single item is done.
func (s *Service) SetItem(ctx context.Context, itemID string, done bool) error {
	items, err := s.All(ctx)
	if err != nil {
		return err
	}

	items[itemID] = done
	if err := store.SetJSON(ctx, s.store, keyChecklist, items); err != nil {
		return fmt.Errorf("failed to save checklist: %w", err)
	}
	return nil
}
