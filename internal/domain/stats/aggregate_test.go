package stats_test

import (
	"testing"
	"time"

	"github.com/agds-alt/inspekta/internal/domain"
	"github.com/agds-alt/inspekta/internal/domain/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(location string, submittedAt time.Time, pct int, status domain.Status) domain.ScoredRecord {
	return domain.ScoredRecord{
		LocationID:  location,
		SubmittedAt: submittedAt,
		Result:      domain.ScoreResult{Percentage: pct, Status: status},
	}
}

func TestAggregate_Empty(t *testing.T) {
	report := stats.Aggregate(nil, stats.Filter{})

	assert.Equal(t, 0, report.Count)
	assert.Equal(t, 0.0, report.AveragePercentage)
	require.Len(t, report.StatusCounts, 5)
	for _, s := range domain.AllStatuses {
		assert.Equal(t, 0, report.StatusCounts[s], "status %s", s)
	}
}

func TestAggregate_CountsAndMean(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	records := []domain.ScoredRecord{
		record("hq", now, 100, domain.StatusExcellent),
		record("hq", now.Add(time.Hour), 50, domain.StatusFair),
		record("hq", now.Add(2*time.Hour), 47, domain.StatusPoor),
	}

	report := stats.Aggregate(records, stats.Filter{})

	assert.Equal(t, 3, report.Count)
	assert.InDelta(t, 65.667, report.AveragePercentage, 0.001)
	assert.Equal(t, 1, report.StatusCounts[domain.StatusExcellent])
	assert.Equal(t, 1, report.StatusCounts[domain.StatusFair])
	assert.Equal(t, 1, report.StatusCounts[domain.StatusPoor])
	assert.Equal(t, 0, report.StatusCounts[domain.StatusGood])
	assert.Equal(t, 0, report.StatusCounts[domain.StatusCritical])
}

func TestAggregate_LocationFilter(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	records := []domain.ScoredRecord{
		record("hq", now, 90, domain.StatusExcellent),
		record("depot", now, 40, domain.StatusPoor),
	}

	report := stats.Aggregate(records, stats.Filter{LocationID: "depot"})

	assert.Equal(t, 1, report.Count)
	assert.Equal(t, 40.0, report.AveragePercentage)
	assert.Equal(t, "depot", report.LocationID)
}

func TestAggregate_HalfOpenWindow(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC)
	// Exactly at start is included, exactly at end is excluded.
	records := []domain.ScoredRecord{
		record("hq", start, 80, domain.StatusGood),
		record("hq", end, 80, domain.StatusGood),
		record("hq", start.Add(-time.Second), 80, domain.StatusGood),
		record("hq", end.Add(-time.Second), 80, domain.StatusGood),
	}

	report := stats.Aggregate(records, stats.Filter{PeriodStart: start, PeriodEnd: end})

	assert.Equal(t, 2, report.Count)
	assert.Equal(t, start, report.PeriodStart)
	assert.Equal(t, end, report.PeriodEnd)
}

func TestAggregate_UnboundedDimensions(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	records := []domain.ScoredRecord{
		record("hq", now, 90, domain.StatusExcellent),
		record("depot", now.AddDate(0, 0, 30), 40, domain.StatusPoor),
	}

	// Only an end bound: everything before it counts, any location.
	report := stats.Aggregate(records, stats.Filter{PeriodEnd: now.AddDate(0, 0, 7)})
	assert.Equal(t, 1, report.Count)
}

func TestByLocation_SortedRollups(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	records := []domain.ScoredRecord{
		record("west", now, 100, domain.StatusExcellent),
		record("east", now, 60, domain.StatusFair),
		record("west", now.Add(time.Hour), 80, domain.StatusGood),
	}

	reports := stats.ByLocation(records, stats.Filter{})

	require.Len(t, reports, 2)
	assert.Equal(t, "east", reports[0].LocationID)
	assert.Equal(t, 1, reports[0].Count)
	assert.Equal(t, "west", reports[1].LocationID)
	assert.Equal(t, 2, reports[1].Count)
	assert.Equal(t, 90.0, reports[1].AveragePercentage)
}

func TestByLocation_RespectsFilter(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	records := []domain.ScoredRecord{
		record("west", now, 100, domain.StatusExcellent),
		record("east", now.AddDate(0, 1, 0), 60, domain.StatusFair),
	}

	reports := stats.ByLocation(records, stats.Filter{PeriodEnd: now.AddDate(0, 0, 7)})

	require.Len(t, reports, 1)
	assert.Equal(t, "west", reports[0].LocationID)
}
