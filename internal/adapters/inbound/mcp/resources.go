package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/agds-alt/inspekta/internal/application"
	"github.com/agds-alt/inspekta/internal/domain/stats"
)

// registerResources registers all inspekta MCP resources on the given server.
func registerResources(s *server.MCPServer, workDir, templatePath string) {
	// 1. inspekta://template - the active template definition
	s.AddResource(
		mcplib.NewResource(
			"inspekta://template",
			"Inspection Template",
			mcplib.WithResourceDescription("The active template with its computed maximum points"),
			mcplib.WithMIMEType("application/json"),
		),
		handleTemplateResource(workDir, templatePath),
	)

	// 2. inspekta://report - global rollup over all saved records
	s.AddResource(
		mcplib.NewResource(
			"inspekta://report",
			"Global Report",
			mcplib.WithResourceDescription("Aggregate statistics over all saved inspection records"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(workDir),
	)
}

func handleTemplateResource(workDir, templatePath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		tpl, err := loadTemplate(workDir, templatePath)
		if err != nil {
			return nil, fmt.Errorf("loading template: %w", err)
		}

		data, err := json.MarshalIndent(templateView(tpl), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling template: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "inspekta://template",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleReportResource(workDir string) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		recordStore, closeStore, err := openRecordStore(ctx, workDir)
		if err != nil {
			return nil, fmt.Errorf("opening store: %w", err)
		}
		defer closeStore()

		report, err := application.NewReportService(recordStore).Aggregate(ctx, stats.Filter{})
		if err != nil {
			return nil, fmt.Errorf("aggregation failed: %w", err)
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "inspekta://report",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
