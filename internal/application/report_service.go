package application

import (
	"context"
	"fmt"

	"github.com/agds-alt/inspekta/internal/domain"
	"github.com/agds-alt/inspekta/internal/domain/stats"
)

// ReportService answers aggregate queries by pulling scored records from a
// store and running the stats engine over them. Concurrent queries over
// disjoint filters need no synchronization; each call works on its own slice.
type ReportService struct {
	store domain.RecordStore
}

func NewReportService(store domain.RecordStore) *ReportService {
	return &ReportService{store: store}
}

// Aggregate returns one report over all stored records admitted by the filter.
func (s *ReportService) Aggregate(ctx context.Context, f stats.Filter) (domain.AggregateReport, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return domain.AggregateReport{}, fmt.Errorf("loading records: %w", err)
	}
	return stats.Aggregate(records, f), nil
}

// AggregateByLocation returns one report per location, sorted by location id.
func (s *ReportService) AggregateByLocation(ctx context.Context, f stats.Filter) ([]domain.AggregateReport, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	return stats.ByLocation(records, f), nil
}
