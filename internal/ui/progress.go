package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Progress bar block characters.
const (
	progressFilled = '█'
	progressEmpty  = '░'
)

// progressColor picks the bar color. Higher is better here, so the
// scale runs blue to yellow to green.
func progressColor(percent float64) lipgloss.Color {
	switch {
	case percent >= 80:
		return ColorSuccess
	case percent >= 50:
		return ColorWarning
	default:
		return ColorSecondary
	}
}

// RenderProgressBar creates a progress bar visualization.
// Percent should be 0-100 (values outside this range are clamped),
// width is the character width of the bar excluding brackets.
// Output format: [████████░░░░]  67%
func RenderProgressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}

	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}

	filledCount := int((percent / 100.0) * float64(width))
	emptyCount := width - filledCount

	var sb strings.Builder
	sb.Grow(width + 10)

	sb.WriteRune('[')
	for i := 0; i < filledCount; i++ {
		sb.WriteRune(progressFilled)
	}
	for i := 0; i < emptyCount; i++ {
		sb.WriteRune(progressEmpty)
	}
	sb.WriteRune(']')

	style := lipgloss.NewStyle().Foreground(progressColor(percent))
	percentStr := fmt.Sprintf(" %3.0f%%", percent)

	return style.Render(sb.String()) + percentStr
}

// RenderYearProgress shows how many of a year's 25 days have both parts
// solved. Output format: 2023 [██████░░░]  12/25
func RenderYearProgress(year, daysDone int, width int) string {
	if daysDone < 0 {
		daysDone = 0
	}
	if daysDone > 25 {
		daysDone = 25
	}
	percent := float64(daysDone) / 25.0 * 100.0

	filledCount := int(percent / 100.0 * float64(width))
	emptyCount := width - filledCount

	var bar strings.Builder
	bar.WriteRune('[')
	for i := 0; i < filledCount; i++ {
		bar.WriteRune(progressFilled)
	}
	for i := 0; i < emptyCount; i++ {
		bar.WriteRune(progressEmpty)
	}
	bar.WriteRune(']')

	style := lipgloss.NewStyle().Foreground(progressColor(percent))
	yearStyle := lipgloss.NewStyle().Foreground(ColorPrimary)

	return fmt.Sprintf("%s %s %2d/25",
		yearStyle.Render(fmt.Sprintf("%d", year)),
		style.Render(bar.String()),
		daysDone,
	)
}
