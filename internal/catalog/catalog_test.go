package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		jobs      []Job
		wantErr   bool
		errString string
	}{
		{
			name: "valid jobs",
			jobs: []Job{
				{ID: "a", Title: "Backend Engineer"},
				{ID: "b", Title: "Frontend Developer"},
			},
			wantErr: false,
		},
		{
			name:    "empty list",
			jobs:    nil,
			wantErr: false,
		},
		{
			name: "duplicate id",
			jobs: []Job{
				{ID: "a", Title: "Backend Engineer"},
				{ID: "a", Title: "Frontend Developer"},
			},
			wantErr:   true,
			errString: "duplicate job id",
		},
		{
			name: "empty id",
			jobs: []Job{
				{Title: "Backend Engineer"},
			},
			wantErr:   true,
			errString: "empty id",
		},
		{
			name: "negative posted days",
			jobs: []Job{
				{ID: "a", Title: "Backend Engineer", PostedDaysAgo: -1},
			},
			wantErr:   true,
			errString: "negative posted_days_ago",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.jobs)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errString)
			} else {
				require.NoError(t, err)
				assert.Equal(t, len(tt.jobs), c.Len())
			}
		})
	}
}

func TestCatalog_ByID(t *testing.T) {
	c, err := New([]Job{{ID: "a", Title: "Backend Engineer"}})
	require.NoError(t, err)

	job, err := c.ByID("a")
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.Title)

	_, err = c.ByID("missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	c, err := New([]Job{{ID: "a", Title: "Backend Engineer"}})
	require.NoError(t, err)

	jobs := c.All()
	jobs[0].Title = "Mutated"

	again, err := c.ByID("a")
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", again.Title)
}

func TestLoadFile(t *testing.T) {
	c, err := LoadFile("testdata/jobs.yaml")
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	job, err := c.ByID("seed-001")
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, "₹14-22 LPA", job.SalaryRange)
	assert.Equal(t, []string{"Go", "SQL"}, job.Skills)
	assert.Equal(t, 1, job.PostedDaysAgo)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("testdata/nonexistent.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read jobs file")
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Greater(t, c.Len(), 0)

	// Sample ids stay unique and resolvable.
	for _, job := range c.All() {
		found, err := c.ByID(job.ID)
		require.NoError(t, err)
		assert.Equal(t, job.Title, found.Title)
	}
}
