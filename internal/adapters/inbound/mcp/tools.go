package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/agds-alt/inspekta/internal/adapters/outbound/config"
	"github.com/agds-alt/inspekta/internal/adapters/outbound/history"
	"github.com/agds-alt/inspekta/internal/adapters/outbound/store"
	"github.com/agds-alt/inspekta/internal/application"
	"github.com/agds-alt/inspekta/internal/domain"
	"github.com/agds-alt/inspekta/internal/domain/stats"
)

// registerTools registers all inspekta MCP tools on the given server.
func registerTools(s *server.MCPServer, workDir, templatePath string) {
	// 1. inspekta_score
	s.AddTool(
		mcplib.NewTool("inspekta_score",
			mcplib.WithDescription("Validate and score one inspection submission, returning the full score result as JSON"),
			mcplib.WithString("responses",
				mcplib.Required(),
				mcplib.Description("Path to the response set YAML file"),
			),
		),
		handleScore(workDir, templatePath),
	)

	// 2. inspekta_validate
	s.AddTool(
		mcplib.NewTool("inspekta_validate",
			mcplib.WithDescription("Check a submission against the template and return every violation without scoring"),
			mcplib.WithString("responses",
				mcplib.Required(),
				mcplib.Description("Path to the response set YAML file"),
			),
		),
		handleValidate(workDir, templatePath),
	)

	// 3. inspekta_aggregate
	s.AddTool(
		mcplib.NewTool("inspekta_aggregate",
			mcplib.WithDescription("Aggregate saved inspection records: count, average percentage, status distribution"),
			mcplib.WithString("location", mcplib.Description("Only records for this location id")),
			mcplib.WithString("from", mcplib.Description("Window start, inclusive (2006-01-02 or RFC3339)")),
			mcplib.WithString("to", mcplib.Description("Window end, exclusive (2006-01-02 or RFC3339)")),
			mcplib.WithBoolean("by_location", mcplib.Description("Return one report per location")),
		),
		handleAggregate(workDir),
	)

	// 4. inspekta_template
	s.AddTool(
		mcplib.NewTool("inspekta_template",
			mcplib.WithDescription("Return the active template with its computed maximum points"),
		),
		handleTemplate(workDir, templatePath),
	)
}

// loadTemplate resolves and loads the active template for this server.
func loadTemplate(workDir, templatePath string) (domain.Template, error) {
	loader := config.New()
	if templatePath == "" {
		cfg, err := loader.LoadConfig(workDir)
		if err != nil {
			return domain.Template{}, fmt.Errorf("loading config: %w", err)
		}
		templatePath = cfg.TemplatePath
	}
	if templatePath == "" {
		return domain.Template{}, fmt.Errorf("no template configured")
	}
	return loader.LoadTemplate(templatePath)
}

func openRecordStore(ctx context.Context, workDir string) (domain.RecordStore, func(), error) {
	cfg, err := config.New().LoadConfig(workDir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if cfg.DSN != "" {
		pg, err := store.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return pg, func() { _ = pg.Close() }, nil
	}
	dir := cfg.RecordsDir
	if dir == "" {
		dir = workDir
	}
	return history.New(dir), func() {}, nil
}

func handleScore(workDir, templatePath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		responsesPath, err := request.RequireString("responses")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		tpl, err := loadTemplate(workDir, templatePath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading template: %v", err)), nil
		}

		loader := config.New()
		responses, err := loader.LoadResponseSet(responsesPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading responses: %v", err)), nil
		}

		cfg, err := loader.LoadConfig(workDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		svc := application.NewScoreService(cfg.EffectiveThresholds())
		result, err := svc.Score(tpl, responses)

		var failed *domain.ValidationFailedError
		if errors.As(err, &failed) {
			return jsonResult(domain.ValidationResult{Valid: false, Errors: failed.Errors})
		}
		if err != nil {
			return errorResult(fmt.Sprintf("scoring failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleValidate(workDir, templatePath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		responsesPath, err := request.RequireString("responses")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		tpl, err := loadTemplate(workDir, templatePath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading template: %v", err)), nil
		}

		responses, err := config.New().LoadResponseSet(responsesPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading responses: %v", err)), nil
		}

		return jsonResult(domain.Validate(tpl, responses))
	}
}

func handleAggregate(workDir string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()

		var filter stats.Filter
		filter.LocationID, _ = args["location"].(string)

		var err error
		if from, ok := args["from"].(string); ok && from != "" {
			if filter.PeriodStart, err = parseTime(from); err != nil {
				return errorResult(fmt.Sprintf("parsing from: %v", err)), nil
			}
		}
		if to, ok := args["to"].(string); ok && to != "" {
			if filter.PeriodEnd, err = parseTime(to); err != nil {
				return errorResult(fmt.Sprintf("parsing to: %v", err)), nil
			}
		}

		recordStore, closeStore, err := openRecordStore(ctx, workDir)
		if err != nil {
			return errorResult(fmt.Sprintf("opening store: %v", err)), nil
		}
		defer closeStore()

		svc := application.NewReportService(recordStore)

		if byLocation, _ := args["by_location"].(bool); byLocation {
			reports, err := svc.AggregateByLocation(ctx, filter)
			if err != nil {
				return errorResult(fmt.Sprintf("aggregation failed: %v", err)), nil
			}
			return jsonResult(reports)
		}

		report, err := svc.Aggregate(ctx, filter)
		if err != nil {
			return errorResult(fmt.Sprintf("aggregation failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleTemplate(workDir, templatePath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		tpl, err := loadTemplate(workDir, templatePath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading template: %v", err)), nil
		}
		return jsonResult(templateView(tpl))
	}
}

// templateView attaches the computed denominator, which the template file
// itself never stores.
func templateView(t domain.Template) map[string]any {
	return map[string]any{
		"name":                t.Name,
		"classification_mode": t.Mode,
		"criteria":            t.Criteria,
		"max_possible_points": t.MaxPossiblePoints(),
	}
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
