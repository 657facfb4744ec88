package scoring

import (
	"fmt"
	"math"

	"github.com/agds-alt/inspekta/internal/domain"
)

// Thresholds are the inclusive lower percentage bounds of the four
// non-critical status bands, evaluated in descending order. Anything below
// Poor classifies as critical.
type Thresholds struct {
	Excellent int `yaml:"excellent" json:"excellent"`
	Good      int `yaml:"good"      json:"good"`
	Fair      int `yaml:"fair"      json:"fair"`
	Poor      int `yaml:"poor"      json:"poor"`
}

// DefaultThresholds returns the canonical band boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{Excellent: 90, Good: 70, Fair: 50, Poor: 30}
}

// Validate checks that the bands stay within 0..100 and strictly descend,
// which makes overlap impossible by construction.
func (t Thresholds) Validate() error {
	bounds := []struct {
		name  string
		value int
	}{
		{"excellent", t.Excellent}, {"good", t.Good}, {"fair", t.Fair}, {"poor", t.Poor},
	}
	for i, b := range bounds {
		if b.value < 0 || b.value > 100 {
			return fmt.Errorf("threshold %s = %d (must be between 0 and 100)", b.name, b.value)
		}
		if i > 0 && b.value >= bounds[i-1].value {
			return fmt.Errorf("threshold %s = %d must be below %s = %d", b.name, b.value, bounds[i-1].name, bounds[i-1].value)
		}
	}
	return nil
}

// Percentage rounds 100*points/max to the nearest integer. maxPoints > 0 is
// guaranteed by template construction (a template with no scorable criteria
// never loads).
func Percentage(points, maxPoints float64) int {
	return int(math.Round(100 * points / maxPoints))
}

// Classify picks the overall status for a tally under the template's
// classification lane. Under critical-override, a critical criterion at its
// worst value forces critical regardless of percentage; otherwise both lanes
// fall through to the percentage bands.
func Classify(mode domain.ClassificationMode, tally Tally, th Thresholds) domain.Status {
	if mode == domain.ModeCriticalOverride && tally.CriticalAtWorst {
		return domain.StatusCritical
	}
	return classifyPercentage(Percentage(tally.TotalPoints, tally.MaxPoints), th)
}

func classifyPercentage(pct int, th Thresholds) domain.Status {
	switch {
	case pct >= th.Excellent:
		return domain.StatusExcellent
	case pct >= th.Good:
		return domain.StatusGood
	case pct >= th.Fair:
		return domain.StatusFair
	case pct >= th.Poor:
		return domain.StatusPoor
	default:
		return domain.StatusCritical
	}
}
