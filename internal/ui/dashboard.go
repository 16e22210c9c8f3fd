package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Messages driving the run dashboard. The run loop posts these through
// tea.Program.Send from its own goroutine.

// SolutionStartedMsg marks a solution as executing.
type SolutionStartedMsg struct {
	Index int
}

// SolutionDoneMsg records the outcome of one solution.
type SolutionDoneMsg struct {
	Index   int
	Failed  bool
	Skipped bool
	Elapsed time.Duration
}

// RunDashboard is a Bubble Tea model showing one line per solution
// during a run. Rows animate while executing and settle into their
// final symbol when done.
type RunDashboard struct {
	rows     []dashRow
	done     int
	timeCol  lipgloss.Style
	quitting bool
}

type dashRow struct {
	spinner SpinnerComponent
	elapsed time.Duration
}

// NewRunDashboard creates a dashboard with one pending row per label.
// Labels are typically "python 2023 day 4".
func NewRunDashboard(labels []string) RunDashboard {
	rows := make([]dashRow, len(labels))
	for i, label := range labels {
		rows[i] = dashRow{spinner: NewSpinnerComponent(label)}
	}
	return RunDashboard{
		rows:    rows,
		timeCol: lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

func (m RunDashboard) Init() tea.Cmd {
	return nil
}

func (m RunDashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case SolutionStartedMsg:
		if msg.Index < 0 || msg.Index >= len(m.rows) {
			return m, nil
		}
		cmd := m.rows[msg.Index].spinner.Start()
		return m, cmd

	case SolutionDoneMsg:
		if msg.Index < 0 || msg.Index >= len(m.rows) {
			return m, nil
		}
		row := &m.rows[msg.Index]
		switch {
		case msg.Skipped:
			row.spinner.Skip()
		case msg.Failed:
			row.spinner.Fail()
		default:
			row.spinner.Success()
		}
		row.elapsed = msg.Elapsed
		m.done++
		if m.done == len(m.rows) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	var cmds []tea.Cmd
	for i := range m.rows {
		var cmd tea.Cmd
		m.rows[i].spinner, cmd = m.rows[i].spinner.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m RunDashboard) View() string {
	var b []byte
	for i := range m.rows {
		b = append(b, m.rows[i].spinner.View()...)
		b = append(b, '\n')
	}
	if !m.quitting {
		b = append(b, m.timeCol.Render(fmt.Sprintf("%d/%d done, q to quit", m.done, len(m.rows)))...)
		b = append(b, '\n')
	}
	return string(b)
}

// Done reports how many rows have finished.
func (m RunDashboard) Done() int {
	return m.done
}
