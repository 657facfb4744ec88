package domain

import "time"

// Status is the five-valued classification of a scored inspection.
type Status string

const (
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusFair      Status = "fair"
	StatusPoor      Status = "poor"
	StatusCritical  Status = "critical"
)

// AllStatuses enumerates every status, best to worst.
var AllStatuses = []Status{
	StatusExcellent, StatusGood, StatusFair, StatusPoor, StatusCritical,
}

// ScoreResult is the outcome of scoring one response set against a template.
type ScoreResult struct {
	TotalPoints float64          `json:"total_points"`
	MaxPoints   float64          `json:"max_points"`
	Percentage  int              `json:"percentage"`
	Status      Status           `json:"status"`
	Criteria    []CriterionScore `json:"criteria,omitempty"`

	// MissingRequired is always empty on a successful score: validation
	// rejects the submission before a result is produced.
	MissingRequired []string `json:"missing_required,omitempty"`
}

// CriterionScore is the per-criterion breakdown inside a ScoreResult.
type CriterionScore struct {
	CriterionID string  `json:"criterion_id"`
	Label       string  `json:"label"`
	Points      float64 `json:"points"`
	MaxPoints   float64 `json:"max_points"`
	AtWorst     bool    `json:"at_worst,omitempty"`
	Note        string  `json:"note,omitempty"`
}

// ScoredRecord is one persisted scoring outcome, as supplied to the
// aggregation engine by the surrounding system.
type ScoredRecord struct {
	ID             string      `json:"id"`
	LocationID     string      `json:"location_id"`
	SubmittedAt    time.Time   `json:"submitted_at"`
	TemplateCommit string      `json:"template_commit,omitempty"`
	Result         ScoreResult `json:"result"`
}

// AggregateReport holds rollup statistics over many scored records.
// An empty LocationID means the report is global.
type AggregateReport struct {
	LocationID        string         `json:"location_id,omitempty"`
	PeriodStart       time.Time      `json:"period_start,omitzero"`
	PeriodEnd         time.Time      `json:"period_end,omitzero"`
	Count             int            `json:"count"`
	AveragePercentage float64        `json:"average_percentage"`
	StatusCounts      map[Status]int `json:"status_counts"`
}
