// Package ui provides terminal UI components for the runner's CLI output.
//
// The package includes spinners, progress bars, run summaries, and styled
// text output using the Lip Gloss library for consistent terminal styling
// across all commands.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Successful runs
//	ColorError     (red)    - Failures and wrong answers
//	ColorWarning   (yellow) - Warnings and skipped days
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text, timing info
//	ColorStar      (gold)   - Collected stars
//	ColorTree      (green)  - Branding accents
//
// Use DisableColors() for the --no-color flag and DetectColors() to let
// lipgloss adapt to the terminal's capabilities.
//
// # Spinner Usage
//
// The Spinner type provides an animated indicator while a solution runs:
//
//	s := ui.NewSpinner("python 2023 day 4")
//	s.Start()
//	// ... run the solution ...
//	s.Success() // or s.Fail() or s.Skip()
//
// # Run Summary
//
// RenderSummary formats the end-of-run counts with a failure listing so
// broken solutions can be re-run individually.
//
// # Bubble Tea Components
//
// RunDashboard is a Bubble Tea model showing one animated line per
// solution; SpinnerComponent is the embeddable spinner it is built from.
package ui
