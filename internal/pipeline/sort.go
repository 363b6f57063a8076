package pipeline

import (
	"fmt"
	"sort"
	"strconv"
	"unicode"

	"github.com/jobtrackhq/jobtrack-be/internal/match"
)

// Sort keys accepted by the dashboard.
const (
	SortLatest     = "latest"      // most recently posted first
	SortOldest     = "oldest"      // oldest posting first
	SortMatchScore = "match-score" // score descending
	SortSalaryHigh = "salary-high" // salary descending
	SortSalaryLow  = "salary-low"  // salary ascending
)

// ParseSortKey validates a raw sort key, defaulting empty to latest.
func ParseSortKey(s string) (string, error) {
	switch s {
	case "":
		return SortLatest, nil
	case SortLatest, SortOldest, SortMatchScore, SortSalaryHigh, SortSalaryLow:
		return s, nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// Sort orders jobs in place by the given key. The sort is stable, so
// ties keep their incoming (catalog) order.
func Sort(jobs []match.ScoredJob, key string) {
	switch key {
	case SortOldest:
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].PostedDaysAgo > jobs[j].PostedDaysAgo
		})
	case SortMatchScore:
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].Score > jobs[j].Score
		})
	case SortSalaryHigh:
		sort.SliceStable(jobs, func(i, j int) bool {
			return SalaryValue(jobs[i].SalaryRange) > SalaryValue(jobs[j].SalaryRange)
		})
	case SortSalaryLow:
		sort.SliceStable(jobs, func(i, j int) bool {
			return SalaryValue(jobs[i].SalaryRange) < SalaryValue(jobs[j].SalaryRange)
		})
	default: // SortLatest
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].PostedDaysAgo < jobs[j].PostedDaysAgo
		})
	}
}

// SalaryValue extracts the first integer embedded in a free-text salary
// string ("₹15-25 LPA" -> 15). A string with no digits is worth 0.
func SalaryValue(s string) int {
	start := -1
	for i, r := range s {
		if unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			value, _ := strconv.Atoi(s[start:i])
			return value
		}
	}
	if start >= 0 {
		value, _ := strconv.Atoi(s[start:])
		return value
	}
	return 0
}
