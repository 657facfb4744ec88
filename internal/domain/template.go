package domain

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"
)

// CriterionKind identifies how a criterion is answered and scored.
type CriterionKind string

const (
	KindOrdinalRating   CriterionKind = "ordinal-rating"
	KindCategorical     CriterionKind = "categorical"
	KindBooleanPresence CriterionKind = "boolean-presence"
	KindFreeTextNote    CriterionKind = "free-text-note"
)

// ValidKinds enumerates all recognized criterion kinds.
var ValidKinds = []CriterionKind{
	KindOrdinalRating, KindCategorical, KindBooleanPresence, KindFreeTextNote,
}

// ClassificationMode selects the classification lane for a template.
type ClassificationMode string

const (
	ModePercentage       ClassificationMode = "percentage"
	ModeCriticalOverride ClassificationMode = "critical-override"
)

const (
	defaultRangeMin = 1
	defaultRangeMax = 5
)

// CriterionDefinition describes one assessable aspect of an inspection.
type CriterionDefinition struct {
	ID       string        `yaml:"id"                 json:"id"`
	Label    string        `yaml:"label,omitempty"    json:"label"`
	Kind     CriterionKind `yaml:"kind"               json:"kind"`
	Required bool          `yaml:"required,omitempty" json:"required"`
	Weight   float64       `yaml:"weight,omitempty"   json:"weight"`
	Order    int           `yaml:"order,omitempty"    json:"order,omitempty"`

	// Critical marks the criterion for the critical-override lane: scoring
	// it at its worst value forces the overall status to critical.
	Critical bool `yaml:"critical,omitempty" json:"critical,omitempty"`

	// Options lists categorical values best to worst. Categorical only.
	Options []string `yaml:"options,omitempty" json:"options,omitempty"`

	// RangeMin/RangeMax bound ordinal ratings. Zero values default to 1..5.
	RangeMin int `yaml:"range_min,omitempty" json:"range_min,omitempty"`
	RangeMax int `yaml:"range_max,omitempty" json:"range_max,omitempty"`
}

// EffectiveLabel returns the declared label, or one derived from the id
// ("floorCleanliness" becomes "Floor Cleanliness") when the author omitted it.
func (c CriterionDefinition) EffectiveLabel() string {
	if c.Label != "" {
		return c.Label
	}
	words := camelcase.Split(strings.ReplaceAll(strings.ReplaceAll(c.ID, "-", " "), "_", " "))
	for i, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(strings.Fields(strings.Join(words, " ")), " ")
}

// MaxPoints returns the maximum points this criterion can contribute.
// Free-text notes are informational only and never contribute points.
func (c CriterionDefinition) MaxPoints() float64 {
	switch c.Kind {
	case KindOrdinalRating:
		return float64(c.RangeMax) * c.Weight
	case KindCategorical, KindBooleanPresence:
		return c.Weight
	default:
		return 0
	}
}

// Template is the ordered, immutable set of criteria for one inspection type.
// Construct via NewTemplate; a zero Template is not usable.
type Template struct {
	Name     string
	Mode     ClassificationMode
	Criteria []CriterionDefinition
}

// NewTemplate validates and normalizes a criterion list into a Template.
// All failures wrap ErrInvalidTemplate.
func NewTemplate(name string, mode ClassificationMode, criteria []CriterionDefinition) (Template, error) {
	if len(criteria) == 0 {
		return Template{}, fmt.Errorf("%w: template %q has no criteria", ErrInvalidTemplate, name)
	}

	if mode == "" {
		mode = ModePercentage
	}
	if mode != ModePercentage && mode != ModeCriticalOverride {
		return Template{}, fmt.Errorf("%w: unknown classification mode %q (valid: percentage, critical-override)", ErrInvalidTemplate, mode)
	}

	normalized := make([]CriterionDefinition, len(criteria))
	seen := make(map[string]bool, len(criteria))

	for i, c := range criteria {
		if c.ID == "" {
			return Template{}, fmt.Errorf("%w: criterion %d has an empty id", ErrInvalidTemplate, i)
		}
		if seen[c.ID] {
			return Template{}, fmt.Errorf("%w: duplicate criterion id %q", ErrInvalidTemplate, c.ID)
		}
		seen[c.ID] = true

		if !isValidKind(c.Kind) {
			return Template{}, fmt.Errorf("%w: criterion %q has unknown kind %q", ErrInvalidTemplate, c.ID, c.Kind)
		}

		if c.Weight == 0 {
			c.Weight = 1
		}
		if c.Weight < 0 {
			return Template{}, fmt.Errorf("%w: criterion %q has non-positive weight %g", ErrInvalidTemplate, c.ID, c.Weight)
		}

		switch c.Kind {
		case KindOrdinalRating:
			if c.RangeMin == 0 && c.RangeMax == 0 {
				c.RangeMin, c.RangeMax = defaultRangeMin, defaultRangeMax
			}
			// Ratings start at 1; points are never negative.
			if c.RangeMin < 1 {
				return Template{}, fmt.Errorf("%w: criterion %q has rating range starting at %d (must be 1 or above)", ErrInvalidTemplate, c.ID, c.RangeMin)
			}
			if c.RangeMin >= c.RangeMax {
				return Template{}, fmt.Errorf("%w: criterion %q has invalid rating range %d..%d", ErrInvalidTemplate, c.ID, c.RangeMin, c.RangeMax)
			}
		case KindCategorical:
			if len(c.Options) == 0 {
				return Template{}, fmt.Errorf("%w: categorical criterion %q has no options", ErrInvalidTemplate, c.ID)
			}
			opts := make(map[string]bool, len(c.Options))
			for _, o := range c.Options {
				if o == "" {
					return Template{}, fmt.Errorf("%w: categorical criterion %q has an empty option", ErrInvalidTemplate, c.ID)
				}
				if opts[o] {
					return Template{}, fmt.Errorf("%w: categorical criterion %q lists option %q twice", ErrInvalidTemplate, c.ID, o)
				}
				opts[o] = true
			}
		case KindFreeTextNote:
			if c.Critical {
				return Template{}, fmt.Errorf("%w: free-text criterion %q cannot be critical (notes are never scored)", ErrInvalidTemplate, c.ID)
			}
		}

		normalized[i] = c
	}

	// Order is a display hint only; a stable sort keeps submission order
	// among equal values and never affects scoring.
	sortCriteriaByOrder(normalized)

	t := Template{Name: name, Mode: mode, Criteria: normalized}
	if t.MaxPossiblePoints() == 0 {
		return Template{}, fmt.Errorf("%w: template %q has no scorable criteria (free-text notes never score)", ErrInvalidTemplate, name)
	}
	return t, nil
}

// MaxPossiblePoints is the denominator for this template, computed on demand
// so it can never drift from the criterion list.
func (t Template) MaxPossiblePoints() float64 {
	var total float64
	for _, c := range t.Criteria {
		total += c.MaxPoints()
	}
	return total
}

// Criterion looks up a definition by id.
func (t Template) Criterion(id string) (CriterionDefinition, bool) {
	for _, c := range t.Criteria {
		if c.ID == id {
			return c, true
		}
	}
	return CriterionDefinition{}, false
}

func isValidKind(k CriterionKind) bool {
	for _, v := range ValidKinds {
		if k == v {
			return true
		}
	}
	return false
}

func sortCriteriaByOrder(criteria []CriterionDefinition) {
	for i := 1; i < len(criteria); i++ {
		for j := i; j > 0 && criteria[j].Order < criteria[j-1].Order; j-- {
			criteria[j], criteria[j-1] = criteria[j-1], criteria[j]
		}
	}
}
