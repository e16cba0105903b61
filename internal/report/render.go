package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pulsework/okrboard/pkg/scoring"
	"github.com/pulsework/okrboard/pkg/types"
)

// Terminal palette keyed by the scoring color tokens.
var colorStyles = map[scoring.Color]lipgloss.Style{
	scoring.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	scoring.ColorOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	scoring.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	scoring.ColorGray:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	objectiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Render formats the report for the terminal. Status badges use the status
// palette; trend arrows are colored through scoring.TrendColor, so inverse
// metrics show a falling actual as favorable.
func Render(r *Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("OKR Report for %s", types.FormatMonth(r.Month))))
	b.WriteString("\n\n")

	if len(r.Sections) == 0 {
		b.WriteString(mutedStyle.Render("No key results with targets for this month."))
		b.WriteString("\n")
		return b.String()
	}

	for _, section := range r.Sections {
		b.WriteString(objectiveStyle.Render(section.Objective.Title))
		if section.Objective.Driver != "" {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  (driver: %s)", section.Objective.Driver)))
		}
		b.WriteString("\n")

		for _, row := range section.Rows {
			badge := colorStyles[scoring.StatusColor(row.Status.Status)].
				Render(fmt.Sprintf("[%s]", scoring.StatusLabel(row.Status.Status)))
			trend := colorStyles[scoring.TrendColor(row.Trend.Direction, row.KeyResult.Inverse)].
				Render(row.Trend.Display)

			b.WriteString(fmt.Sprintf("  %-13s %s", badge, row.KeyResult.Title))
			unit := row.KeyResult.Unit
			if unit != "" {
				unit = " " + unit
			}
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  %.2f/%.2f%s (%.1f%%)  ",
				row.Actual, row.Target, unit, row.Status.CompletionPercentage)))
			b.WriteString(trend)
			b.WriteString("\n")
		}

		if section.Comment != "" {
			b.WriteString(mutedStyle.Render("  > " + section.Comment))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(titleStyle.Render("Summary"))
	b.WriteString(fmt.Sprintf("  %d key results: ", r.Summary.Total))
	b.WriteString(colorStyles[scoring.ColorGreen].Render(fmt.Sprintf("%d on track", r.Summary.OnTrack)))
	b.WriteString(", ")
	b.WriteString(colorStyles[scoring.ColorOrange].Render(fmt.Sprintf("%d under watch", r.Summary.UnderWatch)))
	b.WriteString(", ")
	b.WriteString(colorStyles[scoring.ColorRed].Render(fmt.Sprintf("%d off track", r.Summary.OffTrack)))
	b.WriteString("\n")

	return b.String()
}
