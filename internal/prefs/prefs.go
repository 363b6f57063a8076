// Package prefs persists the user's matching preferences under a
// single entry, overwritten wholesale on save.
package prefs

import (
	"context"
	"fmt"

	"github.com/jobtrackhq/jobtrack-be/internal/match"
	"github.com/jobtrackhq/jobtrack-be/internal/store"
)

const keyPreferences = "preferences"

// Service reads and writes preferences.
type Service struct {
	store store.Store
}

// New creates a preference service on the given store.
func New(s store.Store) *Service {
	return &Service{store: s}
}

// Get returns the stored preferences, or the zero value when none are
// stored or the stored entry is malformed.
func (s *Service) Get(ctx context.Context) (match.Preferences, error) {
	var prefs match.Preferences
	if err := store.GetJSON(ctx, s.store, keyPreferences, &prefs); err != nil {
		return match.Preferences{}, fmt.Errorf("failed to load preferences: %w", err)
	}
	return prefs, nil
}

// Save replaces the stored preferences. MinMatchScore is clamped into
// [0,100] so a bad client value cannot hide every job.
func (s *Service) Save(ctx context.Context, prefs match.Preferences) error {
	if prefs.MinMatchScore < 0 {
		prefs.MinMatchScore = 0
	}
	if prefs.MinMatchScore > 100 {
		prefs.MinMatchScore = 100
	}

	if err := store.SetJSON(ctx, s.store, keyPreferences, prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
