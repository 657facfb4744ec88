package application

import (
	"github.com/agds-alt/inspekta/internal/domain"
	"github.com/agds-alt/inspekta/internal/domain/scoring"
)

// ScoreService is the single entry point for scoring one submission:
// validate → score every criterion → classify. It is pure and stateless, so
// one instance is safe to share across goroutines.
type ScoreService struct {
	thresholds scoring.Thresholds
}

func NewScoreService(thresholds scoring.Thresholds) *ScoreService {
	return &ScoreService{thresholds: thresholds}
}

// Score produces a complete result or a *domain.ValidationFailedError,
// never both: an invalid submission gets no partial score.
func (s *ScoreService) Score(t domain.Template, rs domain.ResponseSet) (*domain.ScoreResult, error) {
	// 1. Validate; all-or-nothing
	vr := domain.Validate(t, rs)
	if !vr.Valid {
		return nil, &domain.ValidationFailedError{Errors: vr.Errors}
	}

	// 2. Score every criterion in template order
	tally := scoring.ScoreResponses(t, rs)

	// 3. Classify under the template's lane
	status := scoring.Classify(t.Mode, tally, s.thresholds)

	return &domain.ScoreResult{
		TotalPoints: tally.TotalPoints,
		MaxPoints:   tally.MaxPoints,
		Percentage:  scoring.Percentage(tally.TotalPoints, tally.MaxPoints),
		Status:      status,
		Criteria:    tally.Criteria,
	}, nil
}
