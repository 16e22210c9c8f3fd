package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Solution ran and answered
	SymbolFail     = "✗" // Solution failed
	SymbolPending  = "○" // Not yet started
	SymbolProgress = "◐" // Currently running
	SymbolComplete = "●" // Done (alternative to success)
	SymbolSkipped  = "⊘" // Skipped (not released, filtered out)
	SymbolStar     = "★" // Collected star
	SymbolWarning  = "⚠" // Warning line prefix
)
