package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic colors for status indication, as ANSI codes for broad
// terminal compatibility.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Calendar accent colors. Gold for collected stars, green for the tree.
const (
	ColorStar lipgloss.Color = "11" // Bright yellow
	ColorTree lipgloss.Color = "10" // Bright green
)

// GradientColors cycles green to gold for spinner animation.
var GradientColors = []lipgloss.Color{"2", "10", "11", "3"}

// Style constructors for the common semantic colors.

func SuccessStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(ColorSuccess) }
func ErrorStyle() lipgloss.Style   { return lipgloss.NewStyle().Foreground(ColorError) }
func WarningStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(ColorWarning) }
func InfoStyle() lipgloss.Style    { return lipgloss.NewStyle().Foreground(ColorInfo) }
func MutedStyle() lipgloss.Style   { return lipgloss.NewStyle().Foreground(ColorMuted) }
func StarStyle() lipgloss.Style    { return lipgloss.NewStyle().Foreground(ColorStar) }

// PrintWarning writes a styled warning line to stderr.
func PrintWarning(msg string) {
	fmt.Fprintln(os.Stderr, WarningStyle().Render(SymbolWarning+" "+msg))
}

// DetectColors lets lipgloss query the environment so styles degrade
// cleanly on dumb terminals and in pipes.
func DetectColors() {
	lipgloss.SetColorProfile(termenv.ColorProfile())
}

// DisableColors forces monochrome output, for --no-color and tests.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
