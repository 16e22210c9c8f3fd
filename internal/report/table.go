package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/tracker"
)

// row is one accumulated table row, keyed by its full row-index tuple.
type row struct {
	index []string
	cells map[string]string
}

// table accumulates cells during the tracker walk, then renders itself.
type table struct {
	name   string
	labels []string
	layout tracker.Layout

	// minNumKeys is the minimum segments consumed by any leaf placed
	// here; it anchors the row header labels.
	minNumKeys int

	columns []string
	rows    map[string]*row
}

// buildTables walks the tracker and buckets every leaf into its table.
func buildTables(trk *tracker.Tracker, labels []string) ([]*table, error) {
	byName := map[string]*table{}
	kind := trk.Kind()

	err := trk.Walk(func(path []string, v tracker.Value) error {
		p, ok, kerr := kind.KeysToIndices(path)
		if kerr != nil {
			return errors.WrapWithCode(kerr, errors.ErrPivot,
				fmt.Sprintf("cannot place %s", strings.Join(path, "/")), "")
		}
		if !ok || len(p.RowIndex) == 0 {
			return nil
		}

		tb, seen := byName[p.Table]
		if !seen {
			tb = &table{
				name:       p.Table,
				labels:     labels,
				layout:     p.Layout,
				minNumKeys: p.NumKeys,
				rows:       map[string]*row{},
			}
			byName[p.Table] = tb
		}
		if p.NumKeys < tb.minNumKeys {
			tb.minNumKeys = p.NumKeys
		}
		tb.place(p, v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	tables := make([]*table, 0, len(byName))
	for _, tb := range byName {
		tables = append(tables, tb)
	}
	return tables, nil
}

func (t *table) place(p tracker.Placement, v tracker.Value) {
	if !contains(t.columns, p.Column) {
		t.columns = append(t.columns, p.Column)
		sort.Strings(t.columns)
	}
	key := strings.Join(p.RowIndex, "\x00")
	r, ok := t.rows[key]
	if !ok {
		r = &row{index: p.RowIndex, cells: map[string]string{}}
		t.rows[key] = r
	}
	r.cells[p.Column] = v.Display()
}

// title prefixes the table name with a row header label when the name
// came from fewer than two key segments.
func (t *table) title() string {
	if t.layout.AddIndexLabel && t.minNumKeys < 2 && t.minNumKeys < len(t.labels) {
		return t.labels[t.minNumKeys] + " " + t.name
	}
	return t.name
}

// sortedRows orders rows by their full index tuples, comparing segments
// positionally by (length, value) so numeric segments sort naturally.
func (t *table) sortedRows() []*row {
	rows := make([]*row, 0, len(t.rows))
	for _, r := range t.rows {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i].index, rows[j].index
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return tracker.SegmentLess(a[k], b[k])
			}
		}
		return len(a) < len(b)
	})
	return rows
}

// grid lays the table out as a matrix of display strings. The first
// returned row is the header; dividers marks data rows that start a new
// leading-index group.
func (t *table) grid() (cells [][]string, dividers []bool) {
	offset := t.layout.RowOffset

	// Widest displayed row-index tuple decides the index column count.
	width := 0
	for _, r := range t.rows {
		if n := len(r.index) - offset; n > width {
			width = n
		}
	}

	header := make([]string, 0, width+len(t.columns))
	for i := 0; i < width; i++ {
		label := ""
		if t.minNumKeys+i < len(t.labels) {
			label = t.labels[t.minNumKeys+i]
		}
		header = append(header, label)
	}
	header = append(header, t.columns...)
	cells = append(cells, header)
	dividers = append(dividers, false)

	var prev []string
	for _, r := range t.sortedRows() {
		shown := r.index[min(offset, len(r.index)):]
		line := make([]string, width+len(t.columns))
		newGroup := len(prev) == 0 || len(shown) == 0 || prev[0] != shown[0]
		for i, seg := range shown {
			if t.layout.ReduceRowIndices && i < len(prev) && leadingEqual(shown, prev, i) {
				continue
			}
			line[i] = seg
		}
		for c, col := range t.columns {
			line[width+c] = r.cells[col]
		}
		cells = append(cells, line)
		dividers = append(dividers, newGroup && len(prev) > 0)
		prev = shown
	}
	return cells, dividers
}

// leadingEqual reports whether rows a and b agree on components 0..i.
func leadingEqual(a, b []string, i int) bool {
	for k := 0; k <= i; k++ {
		if k >= len(b) || a[k] != b[k] {
			return false
		}
	}
	return true
}

// render draws the grid with the style's border runes. Markdown tables
// get a header separator and no outer horizontal borders.
func (t *table) render(style Style) string {
	cells, dividers := t.grid()
	b := style.border()

	widths := make([]int, len(cells[0]))
	for _, line := range cells {
		for i, cell := range line {
			if len(cell)+2 > widths[i] {
				widths[i] = len(cell) + 2
			}
		}
	}

	var out strings.Builder
	writeRow := func(line []string) {
		out.WriteString(b.Left)
		for i, cell := range line {
			out.WriteString(center(cell, widths[i]))
			out.WriteString(b.Left)
		}
		out.WriteString("\n")
	}
	writeRule := func(left, mid, right string) {
		out.WriteString(left)
		for i := range widths {
			out.WriteString(strings.Repeat(b.Top, widths[i]))
			if i < len(widths)-1 {
				out.WriteString(mid)
			}
		}
		out.WriteString(right)
		out.WriteString("\n")
	}

	if style == StyleMarkdown {
		writeRow(cells[0])
		writeRule(b.Left, b.Left, b.Left)
		for _, line := range cells[1:] {
			writeRow(line)
		}
		return strings.TrimRight(out.String(), "\n")
	}

	drawDividers := style.useDividers() && !t.layout.NoDividers
	writeRule(b.TopLeft, b.MiddleTop, b.TopRight)
	writeRow(cells[0])
	writeRule(b.MiddleLeft, b.Middle, b.MiddleRight)
	for i, line := range cells[1:] {
		if drawDividers && dividers[i+1] {
			writeRule(b.MiddleLeft, b.Middle, b.MiddleRight)
		}
		writeRow(line)
	}
	writeRule(b.BottomLeft, b.MiddleBottom, b.BottomRight)
	return strings.TrimRight(out.String(), "\n")
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
