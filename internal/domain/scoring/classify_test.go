package scoring_test

import (
	"testing"

	"github.com/agds-alt/inspekta/internal/domain"
	"github.com/agds-alt/inspekta/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func TestPercentage_RoundsToNearestInteger(t *testing.T) {
	assert.Equal(t, 47, scoring.Percentage(7, 15))   // 46.67 rounds up
	assert.Equal(t, 33, scoring.Percentage(5, 15))   // 33.33 rounds down
	assert.Equal(t, 100, scoring.Percentage(15, 15))
	assert.Equal(t, 0, scoring.Percentage(0, 15))
}

func TestClassify_PercentageBands(t *testing.T) {
	tests := []struct {
		pct    int
		status domain.Status
	}{
		{100, domain.StatusExcellent},
		{90, domain.StatusExcellent}, // lower bounds are inclusive
		{89, domain.StatusGood},
		{70, domain.StatusGood},
		{69, domain.StatusFair},
		{50, domain.StatusFair},
		{49, domain.StatusPoor},
		{47, domain.StatusPoor},
		{30, domain.StatusPoor},
		{29, domain.StatusCritical},
		{0, domain.StatusCritical},
	}

	for _, tt := range tests {
		tally := scoring.Tally{TotalPoints: float64(tt.pct), MaxPoints: 100}
		got := scoring.Classify(domain.ModePercentage, tally, scoring.DefaultThresholds())
		assert.Equal(t, tt.status, got, "percentage %d", tt.pct)
	}
}

func TestClassify_CriticalOverride(t *testing.T) {
	// 85% would be good, but a critical criterion at its worst forces
	// critical under the override lane.
	tally := scoring.Tally{TotalPoints: 85, MaxPoints: 100, CriticalAtWorst: true}

	got := scoring.Classify(domain.ModeCriticalOverride, tally, scoring.DefaultThresholds())
	assert.Equal(t, domain.StatusCritical, got)

	// The percentage lane ignores the flag entirely.
	got = scoring.Classify(domain.ModePercentage, tally, scoring.DefaultThresholds())
	assert.Equal(t, domain.StatusGood, got)
}

func TestClassify_CriticalOverrideFallsThrough(t *testing.T) {
	tally := scoring.Tally{TotalPoints: 85, MaxPoints: 100}

	got := scoring.Classify(domain.ModeCriticalOverride, tally, scoring.DefaultThresholds())
	assert.Equal(t, domain.StatusGood, got)
}

func TestThresholds_Validate(t *testing.T) {
	assert.NoError(t, scoring.DefaultThresholds().Validate())
	assert.NoError(t, scoring.Thresholds{Excellent: 95, Good: 80, Fair: 60, Poor: 40}.Validate())

	assert.Error(t, scoring.Thresholds{Excellent: 101, Good: 70, Fair: 50, Poor: 30}.Validate())
	assert.Error(t, scoring.Thresholds{Excellent: 90, Good: 70, Fair: 50, Poor: -1}.Validate())
	assert.Error(t, scoring.Thresholds{Excellent: 90, Good: 90, Fair: 50, Poor: 30}.Validate()) // not descending
	assert.Error(t, scoring.Thresholds{Excellent: 50, Good: 70, Fair: 40, Poor: 30}.Validate())
}

func TestClassify_CustomThresholds(t *testing.T) {
	strict := scoring.Thresholds{Excellent: 95, Good: 85, Fair: 70, Poor: 50}
	tally := scoring.Tally{TotalPoints: 90, MaxPoints: 100}

	got := scoring.Classify(domain.ModePercentage, tally, strict)
	assert.Equal(t, domain.StatusGood, got)
}
