// Package report turns a tracker tree into formatted tables. Every leaf
// is routed through the tracker kind's pivot to a (table, column, row)
// cell; tables are then rendered as bordered grids or as a markdown
// document with a table of contents.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/tracker"
)

// Style selects the border character set for rendered tables.
type Style int

const (
	StyleDefault Style = iota
	StyleSingleBorder
	StyleDoubleBorder
	StyleMarkdown
)

var styleNames = map[Style]string{
	StyleDefault:      "DEFAULT",
	StyleSingleBorder: "SINGLE_BORDER",
	StyleDoubleBorder: "DOUBLE_BORDER",
	StyleMarkdown:     "MARKDOWN",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle resolves a config-file style name, case insensitively.
func ParseStyle(name string) (Style, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for s, n := range styleNames {
		if n == upper {
			return s, nil
		}
	}
	return StyleDefault, errors.New(errors.ErrConfig,
		fmt.Sprintf("unknown table style %q", name),
		"valid styles are DEFAULT, SINGLE_BORDER, DOUBLE_BORDER, MARKDOWN")
}

// border maps each style onto a lipgloss border character set.
func (s Style) border() lipgloss.Border {
	switch s {
	case StyleSingleBorder:
		return lipgloss.NormalBorder()
	case StyleDoubleBorder:
		return lipgloss.DoubleBorder()
	case StyleMarkdown:
		return lipgloss.MarkdownBorder()
	default:
		return lipgloss.ASCIIBorder()
	}
}

// useDividers reports whether the style draws separator lines between
// leading row-index groups. The heavy border styles skip them.
func (s Style) useDividers() bool {
	return s == StyleDefault || s == StyleSingleBorder
}

// NoData is the placeholder rendered when the tree has no leaves.
const NoData = "No data to display"

// Render builds every table from the tracker and assembles the final
// document. labels are the row header names per tree level; title is
// only used by the markdown style.
func Render(trk *tracker.Tracker, labels []string, style Style, title string) (string, error) {
	tables, err := buildTables(trk, labels)
	if err != nil {
		return "", err
	}

	if style == StyleMarkdown {
		return renderMarkdown(tables, title), nil
	}
	return renderPlain(tables, style), nil
}

// Plain output lists year tables first, then the extra tables.
func renderPlain(tables []*table, style Style) string {
	if len(tables) == 0 {
		return NoData + "\n"
	}
	years, extras := splitTables(tables)

	var sections []string
	for _, tb := range append(years, extras...) {
		sections = append(sections, tb.title()+":\n"+tb.render(style))
	}
	return strings.Join(sections, "\n\n")
}

// Markdown output leads with the extra tables so the leaderboard and the
// incorrect log sit above the per-year grids.
func renderMarkdown(tables []*table, title string) string {
	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "# %s\n\n", title)
	}
	if len(tables) == 0 {
		b.WriteString(NoData + "\n")
		return b.String()
	}

	years, extras := splitTables(tables)
	ordered := append(extras, years...)

	b.WriteString("## Table of Contents\n\n")
	for _, tb := range ordered {
		fmt.Fprintf(&b, "- [%s](#%s)\n", tb.title(), anchor(tb.title()))
	}
	for _, tb := range ordered {
		fmt.Fprintf(&b, "\n## %s\n\n", tb.title())
		b.WriteString(tb.render(StyleMarkdown))
		b.WriteString("\n\n[Back to Top](#table-of-contents)\n")
	}
	return b.String()
}

// splitTables separates year tables from the rest. Years sort ascending,
// everything else alphabetically.
func splitTables(tables []*table) (years, extras []*table) {
	for _, tb := range tables {
		if _, err := strconv.Atoi(tb.name); err == nil {
			years = append(years, tb)
		} else {
			extras = append(extras, tb)
		}
	}
	sort.Slice(years, func(i, j int) bool {
		a, _ := strconv.Atoi(years[i].name)
		b, _ := strconv.Atoi(years[j].name)
		return a < b
	})
	sort.Slice(extras, func(i, j int) bool {
		return extras[i].name < extras[j].name
	})
	return years, extras
}

func anchor(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
