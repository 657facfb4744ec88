package cli

import (
	mcpadapter "github.com/agds-alt/inspekta/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the inspekta MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var (
		workDir      string
		templatePath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start inspekta MCP server (stdio)",
		Long:  "Start the inspekta MCP server using stdio transport. This lets AI assistants score submissions, validate response sets, and query aggregate reports.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if workDir == "" {
				workDir = "."
			}
			s := mcpadapter.NewInspektaMCPServer(workDir, templatePath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&workDir, "path", "", "Working directory holding .inspekta.yaml and records (defaults to current directory)")
	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Template YAML file (overrides the configured default)")

	return cmd
}
