package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/agds-alt/inspekta/internal/adapters/outbound/config"
	"github.com/agds-alt/inspekta/internal/adapters/outbound/gitinfo"
	"github.com/agds-alt/inspekta/internal/adapters/outbound/tui"
	"github.com/agds-alt/inspekta/internal/application"
	"github.com/agds-alt/inspekta/internal/domain"
)

func newScoreCmd() *cobra.Command {
	var (
		templatePath string
		jsonOutput   bool
		save         bool
		ciMode       bool
		minPercent   int
	)

	cmd := &cobra.Command{
		Use:   "score <responses.yaml>",
		Short: "Score one inspection submission",
		Long:  "Validate a submitted response set against a template, score it, and classify it into one of the five statuses.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.New()
			cfg, err := loader.LoadConfig(".")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			tplPath := templatePath
			if tplPath == "" {
				tplPath = cfg.TemplatePath
			}
			if tplPath == "" {
				return fmt.Errorf("no template: pass --template or set 'template' in .inspekta.yaml")
			}

			tpl, err := loader.LoadTemplate(tplPath)
			if err != nil {
				return err
			}
			responses, err := loader.LoadResponseSet(args[0])
			if err != nil {
				return err
			}

			svc := application.NewScoreService(cfg.EffectiveThresholds())
			result, err := svc.Score(tpl, responses)

			var failed *domain.ValidationFailedError
			if errors.As(err, &failed) {
				vr := domain.ValidationResult{Valid: false, Errors: failed.Errors}
				if jsonOutput {
					_ = renderJSON(cmd, vr)
				} else {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidation(vr))
				}
				return err
			}
			if err != nil {
				return fmt.Errorf("scoring failed: %w", err)
			}

			if save {
				if err := saveRecord(cmd, cfg, tplPath, responses, result); err != nil {
					return fmt.Errorf("saving record: %w", err)
				}
			}

			if jsonOutput {
				if err := renderJSON(cmd, result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderScore(tpl.Name, result))
			}

			if ciMode && result.Percentage < minPercent {
				return fmt.Errorf("percentage %d is below minimum %d", result.Percentage, minPercent)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Template YAML file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "Save the scored record for later reports")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().IntVar(&minPercent, "min", 0, "Minimum percentage for CI mode")

	return cmd
}

func saveRecord(cmd *cobra.Command, cfg config.AppConfig, tplPath string, responses domain.ResponseSet, result *domain.ScoreResult) error {
	submittedAt := responses.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = time.Now().UTC()
	}

	record := domain.ScoredRecord{
		ID:          uuid.NewString(),
		LocationID:  responses.LocationID,
		SubmittedAt: submittedAt,
		Result:      *result,
	}

	// Template provenance is best-effort: not every template lives in git.
	if hash, err := gitinfo.New().CommitHash(tplPath); err == nil {
		record.TemplateCommit = hash
	}

	recordStore, closeStore, err := openRecordStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	return recordStore.Save(cmd.Context(), record)
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
