package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunDashboard(t *testing.T) {
	m := NewRunDashboard([]string{"python 2023 day 1", "rust 2023 day 1"})

	assert.Equal(t, 0, m.Done())
	view := m.View()
	assert.Contains(t, view, "python 2023 day 1")
	assert.Contains(t, view, "rust 2023 day 1")
	assert.Contains(t, view, "0/2 done")
}

func TestRunDashboardSolutionLifecycle(t *testing.T) {
	m := NewRunDashboard([]string{"python 2023 day 1"})

	updated, cmd := m.Update(SolutionStartedMsg{Index: 0})
	m = updated.(RunDashboard)
	assert.NotNil(t, cmd, "starting a row should schedule a tick")

	updated, cmd = m.Update(SolutionDoneMsg{Index: 0, Elapsed: time.Second})
	m = updated.(RunDashboard)
	require.Equal(t, 1, m.Done())
	assert.NotNil(t, cmd, "finishing the last row should quit")
	assert.Contains(t, m.View(), SymbolComplete)
}

func TestRunDashboardFailedAndSkipped(t *testing.T) {
	m := NewRunDashboard([]string{"a", "b", "c"})

	updated, _ := m.Update(SolutionDoneMsg{Index: 0, Failed: true})
	m = updated.(RunDashboard)
	updated, _ = m.Update(SolutionDoneMsg{Index: 1, Skipped: true})
	m = updated.(RunDashboard)

	view := m.View()
	assert.Contains(t, view, SymbolFail)
	assert.Contains(t, view, SymbolSkipped)
	assert.Equal(t, 2, m.Done())
}

func TestRunDashboardIgnoresOutOfRangeIndex(t *testing.T) {
	m := NewRunDashboard([]string{"a"})

	updated, cmd := m.Update(SolutionDoneMsg{Index: 5})
	m = updated.(RunDashboard)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Done())
}

func TestWidthFallback(t *testing.T) {
	// Whether or not tests run under a terminal, the result is positive.
	assert.Positive(t, Width(80))
}
