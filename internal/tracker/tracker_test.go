package tracker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobtrackhq/jobtrack-be/internal/store"
)

func newTestTracker(t *testing.T) (*Tracker, *time.Time) {
	t.Helper()

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	tr := New(store.NewMemoryStore())
	tr.now = func() time.Time { return now }
	return tr, &now
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"Not Applied", "Applied", "Rejected", "Selected"} {
		status, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, Status(valid), status)
	}

	_, err := ParseStatus("Ghosted")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown application status")
}

func TestTracker_GetDefaults(t *testing.T) {
	tr, _ := newTestTracker(t)

	status, err := tr.Get(context.Background(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, StatusNotApplied, status)
}

func TestTracker_SetAndGet(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	require.NoError(t, tr.Set(ctx, "job-1", StatusApplied, "Backend Engineer", "Flipkart"))

	status, err := tr.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, StatusApplied, status)

	history, err := tr.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "job-1", history[0].JobID)
	assert.Equal(t, "Backend Engineer", history[0].JobTitle)
	assert.Equal(t, "Flipkart", history[0].Company)
	assert.Equal(t, StatusApplied, history[0].Status)
	assert.NotEmpty(t, history[0].ID)
}

func TestTracker_SetSameStatusIsNoOp(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	require.NoError(t, tr.Set(ctx, "job-1", StatusApplied, "Backend Engineer", "Flipkart"))
	require.NoError(t, tr.Set(ctx, "job-1", StatusApplied, "Backend Engineer", "Flipkart"))

	history, err := tr.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestTracker_SetDefaultStatusSkipsHistory(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	require.NoError(t, tr.Set(ctx, "job-1", StatusApplied, "Backend Engineer", "Flipkart"))

	// Reverting to the default changes the map but logs nothing.
	require.NoError(t, tr.Set(ctx, "job-1", StatusNotApplied, "Backend Engineer", "Flipkart"))

	status, err := tr.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, StatusNotApplied, status)

	history, err := tr.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestTracker_HistoryCapped(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	// 21 distinct status changes across 21 jobs.
	for i := 0; i < 21; i++ {
		jobID := fmt.Sprintf("job-%02d", i)
		require.NoError(t, tr.Set(ctx, jobID, StatusApplied, "Title", "Company"))
	}

	history, err := tr.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, MaxHistoryEntries)

	// Newest first; the first change (job-00) fell off the end.
	assert.Equal(t, "job-20", history[0].JobID)
	assert.Equal(t, "job-01", history[len(history)-1].JobID)
	for _, entry := range history {
		assert.NotEqual(t, "job-00", entry.JobID)
	}
}

func TestTracker_RecentUpdates(t *testing.T) {
	tr, now := newTestTracker(t)
	ctx := context.Background()

	base := *now

	// Change 10 days ago.
	*now = base.AddDate(0, 0, -10)
	require.NoError(t, tr.Set(ctx, "job-old", StatusApplied, "Old", "OldCo"))

	// Change exactly at the 7 day lower bound (inclusive).
	*now = base.AddDate(0, 0, -7)
	require.NoError(t, tr.Set(ctx, "job-edge", StatusRejected, "Edge", "EdgeCo"))

	// Change yesterday.
	*now = base.AddDate(0, 0, -1)
	require.NoError(t, tr.Set(ctx, "job-new", StatusSelected, "New", "NewCo"))

	*now = base

	recent, err := tr.RecentUpdates(ctx, 0) // default window
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "job-new", recent[0].JobID)
	assert.Equal(t, "job-edge", recent[1].JobID)

	wide, err := tr.RecentUpdates(ctx, 30)
	require.NoError(t, err)
	assert.Len(t, wide, 3)
}

func TestTracker_MalformedPersistedState(t *testing.T) {
	kv := store.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "job_status_map", []byte("{not json")))
	require.NoError(t, kv.Set(ctx, "status_history", []byte("[broken")))

	tr := New(kv)

	status, err := tr.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, StatusNotApplied, status)

	history, err := tr.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}
