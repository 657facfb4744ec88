package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/agds-alt/inspekta/internal/adapters/outbound/config"
	"github.com/agds-alt/inspekta/internal/adapters/outbound/tui"
	"github.com/agds-alt/inspekta/internal/application"
	"github.com/agds-alt/inspekta/internal/domain"
	"github.com/agds-alt/inspekta/internal/domain/stats"
)

func newReportCmd() *cobra.Command {
	var (
		locationID string
		from       string
		to         string
		byLocation bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate saved inspection records",
		Long:  "Compute rollup statistics (count, average percentage, status distribution) over saved records, optionally filtered by location and a half-open [from, to) time window.",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.New()
			cfg, err := loader.LoadConfig(".")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			filter := stats.Filter{LocationID: locationID}
			if filter.PeriodStart, err = parseTimeFlag(from); err != nil {
				return fmt.Errorf("parsing --from: %w", err)
			}
			if filter.PeriodEnd, err = parseTimeFlag(to); err != nil {
				return fmt.Errorf("parsing --to: %w", err)
			}

			recordStore, closeStore, err := openRecordStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			svc := application.NewReportService(recordStore)

			var reports []domain.AggregateReport
			if byLocation {
				reports, err = svc.AggregateByLocation(cmd.Context(), filter)
			} else {
				var report domain.AggregateReport
				report, err = svc.Aggregate(cmd.Context(), filter)
				reports = []domain.AggregateReport{report}
			}
			if err != nil {
				return err
			}

			if jsonOutput {
				if byLocation {
					return renderJSON(cmd, reports)
				}
				return renderJSON(cmd, reports[0])
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReports(reports))
			return nil
		},
	}

	cmd.Flags().StringVarP(&locationID, "location", "l", "", "Only records for this location")
	cmd.Flags().StringVar(&from, "from", "", "Window start, inclusive (2006-01-02 or RFC3339)")
	cmd.Flags().StringVar(&to, "to", "", "Window end, exclusive (2006-01-02 or RFC3339)")
	cmd.Flags().BoolVar(&byLocation, "by-location", false, "One report per location")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")

	return cmd
}

// parseTimeFlag accepts a date or a full RFC3339 timestamp. Empty means
// unbounded.
func parseTimeFlag(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
