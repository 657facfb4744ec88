package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "inspekta",
		Short:         "Score facility inspections deterministically",
		Long:          "Inspekta validates facility-inspection submissions against a template, scores them into a five-band status, and aggregates results across locations and time windows.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newScoreCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newTemplateCmd())
	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
