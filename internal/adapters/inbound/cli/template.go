package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agds-alt/inspekta/internal/adapters/outbound/config"
	"github.com/agds-alt/inspekta/internal/adapters/outbound/tui"
	"github.com/agds-alt/inspekta/internal/domain"
)

func newTemplateCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "template <template.yaml>",
		Short: "Inspect a template definition",
		Long:  "Load and validate a template, then show its criteria and computed maximum points. A template that fails here must never be scored against.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := config.New().LoadTemplate(args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, templateInfo{
					Name:              tpl.Name,
					Mode:              tpl.Mode,
					Criteria:          tpl.Criteria,
					MaxPossiblePoints: tpl.MaxPossiblePoints(),
				})
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderTemplate(tpl))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output template as JSON")

	return cmd
}

// templateInfo is the JSON shape of `inspekta template`: the template plus
// its computed denominator, which is never stored in the file itself.
type templateInfo struct {
	Name              string                       `json:"name"`
	Mode              domain.ClassificationMode    `json:"classification_mode"`
	Criteria          []domain.CriterionDefinition `json:"criteria"`
	MaxPossiblePoints float64                      `json:"max_possible_points"`
}
