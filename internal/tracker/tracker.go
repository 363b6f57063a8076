package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jobtrackhq/jobtrack-be/internal/store"
)

// Persisted entry names.
const (
	keyStatusMap = "job_status_map"
	keyHistory   = "status_history"
)

// MaxHistoryEntries bounds the status change log; the oldest entry is
// evicted when a new change pushes past the cap.
const MaxHistoryEntries = 20

// DefaultRecentDays is the trailing window for RecentUpdates when the
// caller does not supply one.
const DefaultRecentDays = 7

// HistoryEntry records one status change, newest first in the log.
type HistoryEntry struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	JobTitle  string    `json:"job_title"`
	Company   string    `json:"company"`
	Status    Status    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}

// Tracker persists the status map and history log behind a store.
type Tracker struct {
	store store.Store
	now   func() time.Time
}

// New creates a tracker on the given store.
func New(s store.Store) *Tracker {
	return &Tracker{store: s, now: time.Now}
}

// Get returns the tracked status for a job, defaulting to Not Applied
// when no entry exists.
func (t *Tracker) Get(ctx context.Context, jobID string) (Status, error) {
	statuses, err := t.StatusMap(ctx)
	if err != nil {
		return "", err
	}

	status, ok := statuses[jobID]
	if !ok {
		return DefaultStatus, nil
	}
	return status, nil
}

// StatusMap returns the full job id -> status mapping. Jobs absent from
// the map are implicitly at the default status.
func (t *Tracker) StatusMap(ctx context.Context) (map[string]Status, error) {
	statuses := make(map[string]Status)
	if err := store.GetJSON(ctx, t.store, keyStatusMap, &statuses); err != nil {
		return nil, fmt.Errorf("failed to load status map: %w", err)
	}
	return statuses, nil
}

// Set records a status change for a job. Writing the current status
// again is a no-op. A change to a non-default status also appends a
// history entry, trimming the log to the cap.
func (t *Tracker) Set(ctx context.Context, jobID string, status Status, jobTitle, company string) error {
	statuses, err := t.StatusMap(ctx)
	if err != nil {
		return err
	}

	current, ok := statuses[jobID]
	if !ok {
		current = DefaultStatus
	}
	if status == current {
		return nil
	}

	statuses[jobID] = status
	if err := store.SetJSON(ctx, t.store, keyStatusMap, statuses); err != nil {
		return fmt.Errorf("failed to save status map: %w", err)
	}

	if status == DefaultStatus {
		return nil
	}

	history, err := t.History(ctx)
	if err != nil {
		return err
	}

	entry := HistoryEntry{
		ID:        uuid.New().String(),
		JobID:     jobID,
		JobTitle:  jobTitle,
		Company:   company,
		Status:    status,
		ChangedAt: t.now(),
	}

	history = append([]HistoryEntry{entry}, history...)
	if len(history) > MaxHistoryEntries {
		history = history[:MaxHistoryEntries]
	}

	if err := store.SetJSON(ctx, t.store, keyHistory, history); err != nil {
		return fmt.Errorf("failed to save status history: %w", err)
	}

	return nil
}

// History returns the full change log, newest first.
func (t *Tracker) History(ctx context.Context) ([]HistoryEntry, error) {
	history := make([]HistoryEntry, 0, MaxHistoryEntries)
	if err := store.GetJSON(ctx, t.store, keyHistory, &history); err != nil {
		return nil, fmt.Errorf("failed to load status history: %w", err)
	}
	return history, nil
}

// RecentUpdates returns history entries whose change time falls within
// the trailing window of the given number of days, lower bound
// inclusive. days <= 0 uses the default window.
func (t *Tracker) RecentUpdates(ctx context.Context, days int) ([]HistoryEntry, error) {
	if days <= 0 {
		days = DefaultRecentDays
	}

	history, err := t.History(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := t.now().AddDate(0, 0, -days)

	recent := make([]HistoryEntry, 0, len(history))
	for _, entry := range history {
		if !entry.ChangedAt.Before(cutoff) {
			recent = append(recent, entry)
		}
	}
	return recent, nil
}
