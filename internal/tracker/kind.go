package tracker

import (
	"strings"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
)

// Placement says where one leaf lands in the rendered report: which table,
// which column, and which row-index tuple. NumKeys counts how many leading
// path segments were consumed by the table and column names; the renderer
// uses the minimum over a table's leaves to pick row header labels.
type Placement struct {
	Table    string
	Column   string
	RowIndex []string
	Layout   Layout
	NumKeys  int
}

// Layout carries per-table presentation flags. All leaves of one table
// agree on these; the builder takes them from the first leaf placed.
type Layout struct {
	// AddIndexLabel prefixes the table name with the row-index header
	// label when fewer than two path segments named the table.
	AddIndexLabel bool
	// ReduceRowIndices blanks repeated leading row-index components on
	// consecutive rows.
	ReduceRowIndices bool
	// NoDividers suppresses divider lines between leading-index groups.
	NoDividers bool
	// RowOffset drops that many leading row-index components from
	// display (the leaderboard hides its reserved prefix segment).
	RowOffset int
}

// Pseudo is a synthetic aggregate leaf surfaced during a table walk.
type Pseudo struct {
	Seg string
	Val Value
}

// Kind is the per-tracker-kind policy: an aggregate hook run bottom-up on
// every insert, and a pure total pivot from leaf paths to placements.
type Kind interface {
	// Update recomputes the node's aggregates from its children.
	Update(n *Node)
	// KeysToIndices classifies one leaf path. ok=false skips the leaf
	// (it appears in no table); an error marks a path the kind cannot
	// classify at all.
	KeysToIndices(path []string) (Placement, bool, error)
}

// Aggregator is implemented by kinds that surface synthetic aggregate
// leaves (total, average) at interior nodes during a table walk.
type Aggregator interface {
	Aggregates(n *Node) []Pseudo
}

// Rebuilder is implemented by kinds that maintain derived side trees
// recomputed after every insert.
type Rebuilder interface {
	Rebuild(t *Tracker)
}

// IndexLabels are the row header labels shared by the concrete kinds,
// one per tree level.
var IndexLabels = []string{"Language", "Year", "Day", "Part"}

// Title uppercases the first letter of each space separated word.
func Title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// BaseKind is the default pivot: every leaf lands in a single "Data"
// table, the column is the kind's value label, and the full key path is
// the row index. It never skips and never errors.
type BaseKind struct {
	ValueLabel string
}

func (BaseKind) Update(n *Node) {}

func (k BaseKind) KeysToIndices(path []string) (Placement, bool, error) {
	if len(path) == 0 {
		return Placement{}, false, errors.NewInvalidKey("empty key path")
	}
	label := k.ValueLabel
	if label == "" {
		label = "Value"
	}
	return Placement{
		Table:    "Data",
		Column:   label,
		RowIndex: titled(path),
		Layout:   Layout{ReduceRowIndices: true},
	}, true, nil
}

// standardPlacement is the pivot shared by the answer and runtime kinds.
// The last segments of a path name the column and table; everything else
// becomes the row index:
//
//	[lang]                   -> table "Data", column lang, no rows
//	[lang year]              -> table "Data", column year, row (lang)
//	[lang year day]          -> table year,  column lang, row (day)
//	[lang year day part]     -> table year,  column lang, rows (day part)
//
// Deeper paths fold their extra leading segments into the row prefix.
func standardPlacement(path []string) (Placement, bool, error) {
	n := len(path)
	switch {
	case n == 0:
		return Placement{}, false, errors.NewInvalidKey("empty key path")
	case n < 3:
		return Placement{
			Table:    "Data",
			Column:   Title(path[n-1]),
			RowIndex: titled(path[:n-1]),
			Layout:   Layout{AddIndexLabel: true, ReduceRowIndices: true},
			NumKeys:  n - 1,
		}, true, nil
	default:
		// Day-level averages are noise next to day totals; drop them.
		if n == 4 && path[3] == "average" {
			return Placement{}, false, nil
		}
		start := 0
		if n >= 4 {
			start = n - 4
		}
		rows := append(titled(path[:start]), titled(path[start+2:])...)
		return Placement{
			Table:    Title(path[start+1]),
			Column:   Title(path[start]),
			RowIndex: rows,
			Layout:   Layout{AddIndexLabel: true, ReduceRowIndices: true},
			NumKeys:  2,
		}, true, nil
	}
}

func titled(segs []string) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = Title(s)
	}
	return out
}
