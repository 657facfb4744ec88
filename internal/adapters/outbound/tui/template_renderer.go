package tui

import (
	"fmt"
	"strings"

	"github.com/agds-alt/inspekta/internal/domain"
)

// RenderTemplate formats a template inspection for the terminal: criteria in
// display order with kind, weight and the computed maximum.
func RenderTemplate(t domain.Template) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render(t.Name))
	b.WriteString("  " + dimStyle.Render(string(t.Mode)))
	b.WriteString("\n")
	b.WriteString("  " + separatorLine + "\n\n")

	for _, c := range t.Criteria {
		renderCriterionDef(&b, c)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n",
		titleStyle.Render("Max possible points:"),
		dimStyle.Render(fmt.Sprintf("%.4g", t.MaxPossiblePoints())),
	)

	return b.String()
}

func renderCriterionDef(b *strings.Builder, c domain.CriterionDefinition) {
	var tags []string
	if c.Required {
		tags = append(tags, warnStyle.Render("required"))
	}
	if c.Critical {
		tags = append(tags, errorTagStyle.Render("critical"))
	}
	if c.Weight != 1 {
		tags = append(tags, dimStyle.Render(fmt.Sprintf("weight %.4g", c.Weight)))
	}

	detail := string(c.Kind)
	switch c.Kind {
	case domain.KindOrdinalRating:
		detail = fmt.Sprintf("%s %d..%d", c.Kind, c.RangeMin, c.RangeMax)
	case domain.KindCategorical:
		detail = fmt.Sprintf("%s [%s]", c.Kind, strings.Join(c.Options, " > "))
	}

	fmt.Fprintf(b, "    %s %s",
		titleStyle.Render(padRight(c.EffectiveLabel(), 28)),
		dimStyle.Render(detail),
	)
	if len(tags) > 0 {
		b.WriteString("  " + strings.Join(tags, " "))
	}
	b.WriteString("\n")
}
