// Package digest snapshots the top scored jobs once per calendar day.
package digest

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jobtrackhq/jobtrack-be/internal/catalog"
	"github.com/jobtrackhq/jobtrack-be/internal/match"
	"github.com/jobtrackhq/jobtrack-be/internal/store"
)

// TopJobs is the number of jobs included in a digest.
const TopJobs = 10

// dateLayout keys one digest per calendar day.
const dateLayout = "2006-01-02"

// Data is the stored snapshot for one day. Regenerating on the same
// day replaces the record.
type Data struct {
	Date        string            `json:"date"`
	Jobs        []match.ScoredJob `json:"jobs"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// Generator computes and persists daily digests.
type Generator struct {
	catalog *catalog.Catalog
	scorer  *match.Scorer
	store   store.Store
	now     func() time.Time
}

// NewGenerator creates a digest generator.
func NewGenerator(c *catalog.Catalog, scorer *match.Scorer, s store.Store) *Generator {
	return &Generator{
		catalog: c,
		scorer:  scorer,
		store:   s,
		now:     time.Now,
	}
}

// Generate scores every catalog job against prefs (all zeros when prefs
// are empty), orders by score descending then posting recency, keeps
// the top ten, and stores the snapshot under today's key. A snapshot
// already stored for today is overwritten.
func (g *Generator) Generate(ctx context.Context, prefs match.Preferences) (Data, error) {
	scored := g.scorer.ScoreAll(g.catalog.All(), prefs)

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].PostedDaysAgo < scored[j].PostedDaysAgo
	})

	if len(scored) > TopJobs {
		scored = scored[:TopJobs]
	}

	now := g.now()
	data := Data{
		Date:        now.Format(dateLayout),
		Jobs:        scored,
		GeneratedAt: now,
	}

	if err := store.SetJSON(ctx, g.store, digestKey(data.Date), data); err != nil {
		return Data{}, fmt.Errorf("failed to save digest: %w", err)
	}

	return data, nil
}

// Today returns the stored digest for the current day. The second
// return value is false when none has been generated yet.
func (g *Generator) Today(ctx context.Context) (Data, bool, error) {
	return g.ForDate(ctx, g.now().Format(dateLayout))
}

// ForDate returns the stored digest for a YYYY-MM-DD date key.
func (g *Generator) ForDate(ctx context.Context, date string) (Data, bool, error) {
	var data Data
	if err := store.GetJSON(ctx, g.store, digestKey(date), &data); err != nil {
		return Data{}, false, fmt.Errorf("failed to load digest: %w", err)
	}
	if data.Date == "" {
		return Data{}, false, nil
	}
	return data, true, nil
}

func digestKey(date string) string {
	return "daily_digest_" + date
}
