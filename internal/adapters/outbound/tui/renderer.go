package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agds-alt/inspekta/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(64)

	statusColors = map[domain.Status]lipgloss.Color{
		domain.StatusExcellent: success,
		domain.StatusGood:      lipgloss.Color("#A3E635"), // lime
		domain.StatusFair:      warning,
		domain.StatusPoor:      lipgloss.Color("#FB923C"), // orange
		domain.StatusCritical:  danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 60))
)

// RenderScore formats one scoring outcome for the terminal.
func RenderScore(templateName string, result *domain.ScoreResult) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("inspekta")
	subtitle := dimStyle.Render(templateName)
	pctStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(statusColor(result.Status)).
		Render(fmt.Sprintf("%d%%", result.Percentage))
	statusStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(statusColor(result.Status)).
		Render(string(result.Status))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + pctStyled + "  " + statusStyled))
	b.WriteString("\n\n")

	// ── Criteria ──
	points := dimStyle.Render(fmt.Sprintf("%.4g / %.4g points", result.TotalPoints, result.MaxPoints))
	b.WriteString("  " + titleStyle.Render("Criteria") + "  " + points + "\n\n")
	for _, cs := range result.Criteria {
		renderCriterion(&b, cs)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n")
	return b.String()
}

func renderCriterion(b *strings.Builder, cs domain.CriterionScore) {
	name := padRight(cs.Label, 28)

	if cs.MaxPoints == 0 {
		// Informational note, never scored.
		fmt.Fprintf(b, "    %s %s %s\n",
			dimStyle.Render("·"), dimStyle.Render(name), faintStyle.Render("note"))
		if cs.Note != "" {
			fmt.Fprintf(b, "      %s\n", faintStyle.Render(cs.Note))
		}
		return
	}

	pct := int(cs.Points * 100 / cs.MaxPoints)
	var icon string
	switch {
	case pct >= 80:
		icon = passStyle.Render("●")
	case pct >= 40:
		icon = warnStyle.Render("●")
	default:
		icon = failStyle.Render("●")
	}

	score := dimStyle.Render(fmt.Sprintf("%.4g/%.4g", cs.Points, cs.MaxPoints))
	line := fmt.Sprintf("    %s %s %s %s", icon, name, coloredBar(pct, 16), score)
	if cs.AtWorst {
		line += "  " + errorTagStyle.Render("worst")
	}
	b.WriteString(line + "\n")

	if cs.Note != "" {
		fmt.Fprintf(b, "      %s\n", faintStyle.Render(cs.Note))
	}
}

// RenderValidation formats the full violation list of a rejected submission.
func RenderValidation(vr domain.ValidationResult) string {
	if vr.Valid {
		return "  " + passStyle.Render("Submission is valid.") + "\n"
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(titleStyle.Render("Validation failed"))
	b.WriteString("  ")
	b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d violations", len(vr.Errors))))
	b.WriteString("\n\n")

	for _, v := range vr.Errors {
		fmt.Fprintf(&b, "    %s %s\n", errorTagStyle.Render(padRight(v.Kind, 18)), dimStyle.Render(v.Message))
	}

	b.WriteString("\n")
	return b.String()
}

// RenderReports formats aggregate reports as a terminal table.
func RenderReports(reports []domain.AggregateReport) string {
	if len(reports) == 0 {
		return "  " + dimStyle.Render("No records in the selected window.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Inspection Report") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	for _, r := range reports {
		renderReportRow(&b, r)
	}

	return b.String()
}

func renderReportRow(b *strings.Builder, r domain.AggregateReport) {
	scope := r.LocationID
	if scope == "" {
		scope = "all locations"
	}

	avg := int(r.AveragePercentage + 0.5)
	avgStyled := lipgloss.NewStyle().
		Foreground(percentColor(avg)).
		Render(fmt.Sprintf("%5.1f%%", r.AveragePercentage))

	fmt.Fprintf(b, "  %s %s  %s  %s\n",
		titleStyle.Render(padRight(scope, 22)),
		dimStyle.Render(fmt.Sprintf("%3d visits", r.Count)),
		coloredBar(avg, 16),
		avgStyled,
	)

	var parts []string
	for _, s := range domain.AllStatuses {
		if n := r.StatusCounts[s]; n > 0 {
			styled := lipgloss.NewStyle().Foreground(statusColor(s)).Render(fmt.Sprintf("%d %s", n, s))
			parts = append(parts, styled)
		}
	}
	if len(parts) > 0 {
		b.WriteString("    " + strings.Join(parts, dimStyle.Render("  ")) + "\n")
	}
	b.WriteString("\n")
}

func coloredBar(pct, width int) string {
	filled := max(0, min(pct*width/100, width))
	empty := width - filled

	color := percentColor(pct)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func percentColor(pct int) lipgloss.Color {
	switch {
	case pct >= 80:
		return success
	case pct >= 60:
		return lipgloss.Color("#A3E635") // lime
	case pct >= 40:
		return warning
	default:
		return danger
	}
}

func statusColor(s domain.Status) lipgloss.Color {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return fg
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
