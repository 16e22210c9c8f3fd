package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

var sparklineBlockRunes = []rune(sparklineBlocks)

// RenderSparkline creates a sparkline from a slice of runtimes, one
// block per day. Width caps how many of the last values are shown.
// Values are mapped to 8 vertical levels over the min/max range, and
// the line is colored by where the slowest day sits relative to the
// rest: mostly even years render green, spiky ones yellow or red.
func RenderSparkline(data []float64, width int) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	if len(data) > width {
		data = data[len(data)-width:]
	}

	minVal, maxVal := data[0], data[0]
	sum := 0.0
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
		sum += v
	}

	var sb strings.Builder
	sb.Grow(len(data) * 4)

	numLevels := len(sparklineBlockRunes)
	valueRange := maxVal - minVal

	for _, v := range data {
		var level int
		if valueRange == 0 {
			level = numLevels / 2
		} else {
			normalized := (v - minVal) / valueRange
			level = int(normalized * float64(numLevels-1))
			if level < 0 {
				level = 0
			} else if level >= numLevels {
				level = numLevels - 1
			}
		}
		sb.WriteRune(sparklineBlockRunes[level])
	}

	// Spikiness: how far the slowest day is above the mean, as a share
	// of the mean. Even profiles stay green.
	mean := sum / float64(len(data))
	spike := 0.0
	if mean > 0 {
		spike = (maxVal - mean) / mean * 100
	}

	var color lipgloss.Color
	switch {
	case spike >= 300:
		color = ColorError
	case spike >= 100:
		color = ColorWarning
	default:
		color = ColorSuccess
	}

	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}
