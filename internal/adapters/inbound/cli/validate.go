package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agds-alt/inspekta/internal/adapters/outbound/config"
	"github.com/agds-alt/inspekta/internal/adapters/outbound/tui"
	"github.com/agds-alt/inspekta/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		templatePath string
		jsonOutput   bool
	)

	cmd := &cobra.Command{
		Use:   "validate <responses.yaml>",
		Short: "Validate a submission without scoring it",
		Long:  "Check a response set against a template and list every violation in one pass: missing required criteria, unknown criteria, out-of-range ratings, unknown options.",
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

			result := domain.Validate(tpl, responses)

			if jsonOutput {
				if err := renderJSON(cmd, result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidation(result))
			}

			if !result.Valid {
				return &domain.ValidationFailedError{Errors: result.Errors}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Template YAML file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")

	return cmd
}
