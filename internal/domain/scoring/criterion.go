package scoring

import "github.com/agds-alt/inspekta/internal/domain"

// Tally is the scored outcome of a full response set before classification.
type Tally struct {
	Criteria    []domain.CriterionScore
	TotalPoints float64
	MaxPoints   float64

	// CriticalAtWorst is set when any critical-flagged criterion scored at
	// its worst possible value; the critical-override lane reads it.
	CriticalAtWorst bool
}

// ScoreCriterion converts one answer into earned and maximum points.
// A nil entry means the criterion went unanswered: it contributes zero
// points but its full maximum stays in the denominator.
func ScoreCriterion(def domain.CriterionDefinition, entry *domain.ResponseEntry) (points, maxPoints float64) {
	maxPoints = def.MaxPoints()

	if entry == nil || !entry.HasValue(def.Kind) {
		return 0, maxPoints
	}

	switch def.Kind {
	case domain.KindOrdinalRating:
		points = float64(*entry.Rating) * def.Weight
	case domain.KindCategorical:
		points = optionPoints(def, *entry.Option)
	case domain.KindBooleanPresence:
		if *entry.Present {
			points = def.Weight
		}
	}
	// Free-text notes contribute nothing either way.

	return points, maxPoints
}

// optionPoints scales a categorical answer so the best option yields the
// full weight and the worst yields zero. With a single declared option,
// best and worst coincide and choosing it yields the full weight.
func optionPoints(def domain.CriterionDefinition, option string) float64 {
	n := len(def.Options)
	if n == 1 {
		return def.Weight
	}
	for i, o := range def.Options {
		if o == option {
			rankFromWorst := n - 1 - i
			return def.Weight * float64(rankFromWorst) / float64(n-1)
		}
	}
	return 0
}

// AtWorst reports whether the answer is the worst possible value for the
// criterion. An unanswered criterion counts as worst for any scorable kind:
// it earns zero of a positive maximum. Notes have no worst value.
func AtWorst(def domain.CriterionDefinition, entry *domain.ResponseEntry) bool {
	if def.Kind == domain.KindFreeTextNote {
		return false
	}
	if entry == nil || !entry.HasValue(def.Kind) {
		return true
	}

	switch def.Kind {
	case domain.KindOrdinalRating:
		return *entry.Rating == def.RangeMin
	case domain.KindCategorical:
		return *entry.Option == def.Options[len(def.Options)-1]
	case domain.KindBooleanPresence:
		return !*entry.Present
	}
	return false
}

// ScoreResponses scores every criterion in the template against a validated
// response set. It assumes Validate has already passed; unknown entries are
// not consulted here because the template drives the iteration.
func ScoreResponses(t domain.Template, rs domain.ResponseSet) Tally {
	tally := Tally{Criteria: make([]domain.CriterionScore, 0, len(t.Criteria))}

	for _, def := range t.Criteria {
		var entry *domain.ResponseEntry
		if e, ok := rs.Entry(def.ID); ok {
			entry = &e
		}

		points, maxPoints := ScoreCriterion(def, entry)
		worst := AtWorst(def, entry)

		cs := domain.CriterionScore{
			CriterionID: def.ID,
			Label:       def.EffectiveLabel(),
			Points:      points,
			MaxPoints:   maxPoints,
			AtWorst:     worst,
		}
		if entry != nil {
			cs.Note = entry.Note
		}

		tally.Criteria = append(tally.Criteria, cs)
		tally.TotalPoints += points
		tally.MaxPoints += maxPoints
		if def.Critical && worst {
			tally.CriticalAtWorst = true
		}
	}

	return tally
}
