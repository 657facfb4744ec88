// Package stats computes rollup statistics over scored inspection records.
// It operates on finite, externally supplied slices and performs no I/O.
package stats

import (
	"sort"
	"time"

	"github.com/agds-alt/inspekta/internal/domain"
)

// Filter restricts aggregation to a location and/or submission window.
// The window is half-open, [PeriodStart, PeriodEnd): a record submitted
// exactly at PeriodEnd is excluded, one at PeriodStart is included.
// Zero values leave that dimension unbounded.
type Filter struct {
	LocationID  string
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// Matches reports whether a record is admitted by the filter.
func (f Filter) Matches(r domain.ScoredRecord) bool {
	if f.LocationID != "" && r.LocationID != f.LocationID {
		return false
	}
	if !f.PeriodStart.IsZero() && r.SubmittedAt.Before(f.PeriodStart) {
		return false
	}
	if !f.PeriodEnd.IsZero() && !r.SubmittedAt.Before(f.PeriodEnd) {
		return false
	}
	return true
}

// Aggregate computes one report over the records admitted by the filter.
// Zero admitted records yields Count 0 and AveragePercentage 0, never a
// division by zero, and StatusCounts always carries all five status keys so
// renderers never branch on key absence.
func Aggregate(records []domain.ScoredRecord, f Filter) domain.AggregateReport {
	report := domain.AggregateReport{
		LocationID:   f.LocationID,
		PeriodStart:  f.PeriodStart,
		PeriodEnd:    f.PeriodEnd,
		StatusCounts: emptyStatusCounts(),
	}

	var sum int
	for _, r := range records {
		if !f.Matches(r) {
			continue
		}
		report.Count++
		sum += r.Result.Percentage
		report.StatusCounts[r.Result.Status]++
	}

	if report.Count > 0 {
		report.AveragePercentage = float64(sum) / float64(report.Count)
	}

	return report
}

// ByLocation computes one report per location admitted by the filter,
// sorted by location id for deterministic output.
func ByLocation(records []domain.ScoredRecord, f Filter) []domain.AggregateReport {
	byLoc := make(map[string][]domain.ScoredRecord)
	for _, r := range records {
		if !f.Matches(r) {
			continue
		}
		byLoc[r.LocationID] = append(byLoc[r.LocationID], r)
	}

	ids := make([]string, 0, len(byLoc))
	for id := range byLoc {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	reports := make([]domain.AggregateReport, 0, len(ids))
	for _, id := range ids {
		locFilter := f
		locFilter.LocationID = id
		reports = append(reports, Aggregate(byLoc[id], locFilter))
	}
	return reports
}

func emptyStatusCounts() map[domain.Status]int {
	counts := make(map[domain.Status]int, len(domain.AllStatuses))
	for _, s := range domain.AllStatuses {
		counts[s] = 0
	}
	return counts
}
