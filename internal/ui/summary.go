package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/util"
)

// RunFailure describes one solution that failed to run or answered
// incorrectly.
type RunFailure struct {
	Lang    string
	Year    int
	Day     int
	Message string
}

// RunSummary holds the outcome counts of a run for summary rendering.
type RunSummary struct {
	Solved   int
	Failed   int
	Skipped  int
	Stars    int
	Failures []RunFailure
}

// SummaryRenderer formats run summaries for terminal display.
type SummaryRenderer struct {
	errorStyle   lipgloss.Style
	successStyle lipgloss.Style
	starStyle    lipgloss.Style
	mutedStyle   lipgloss.Style
}

// NewSummaryRenderer creates a new summary renderer with default styles.
func NewSummaryRenderer() *SummaryRenderer {
	return &SummaryRenderer{
		errorStyle:   lipgloss.NewStyle().Foreground(ColorError),
		successStyle: lipgloss.NewStyle().Foreground(ColorSuccess),
		starStyle:    lipgloss.NewStyle().Foreground(ColorStar),
		mutedStyle:   lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

// RenderSummary generates a formatted run summary.
func RenderSummary(summary *RunSummary) string {
	r := NewSummaryRenderer()
	return r.Render(summary)
}

// Render generates the formatted summary string. Failures are listed
// with their language and day so they can be re-run individually.
func (r *SummaryRenderer) Render(summary *RunSummary) string {
	if summary == nil {
		return ""
	}

	var sb strings.Builder

	if summary.Solved > 0 {
		word := util.Pluralize(summary.Solved, "solution", "solutions")
		sb.WriteString(r.successStyle.Render(fmt.Sprintf("%s %d %s ran", SymbolSuccess, summary.Solved, word)))
		sb.WriteString("\n")
	}
	if summary.Stars > 0 {
		sb.WriteString(r.starStyle.Render(fmt.Sprintf("%s %d stars", SymbolStar, summary.Stars)))
		sb.WriteString("\n")
	}
	if summary.Skipped > 0 {
		sb.WriteString(r.mutedStyle.Render(fmt.Sprintf("%s %d skipped", SymbolSkipped, summary.Skipped)))
		sb.WriteString("\n")
	}

	if len(summary.Failures) == 0 {
		return sb.String()
	}

	word := util.Pluralize(summary.Failed, "solution", "solutions")
	sb.WriteString(r.errorStyle.Render(fmt.Sprintf("%s %d %s failed", SymbolFail, summary.Failed, word)))
	sb.WriteString("\n")

	for _, failure := range summary.Failures {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("  %s %d day %d\n", failure.Lang, failure.Year, failure.Day))
		if failure.Message != "" {
			for _, line := range strings.Split(failure.Message, "\n") {
				sb.WriteString("    ")
				sb.WriteString(r.mutedStyle.Render(line))
				sb.WriteString("\n")
			}
		}
	}

	return sb.String()
}
