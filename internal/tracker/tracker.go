// Package tracker implements the recursive measurement store shared by all
// reporting sinks. A tracker is a tree of string key segments: interior
// nodes map segments to children, leaves hold a single scalar value (a
// puzzle answer or an elapsed time in seconds). Different tracker kinds
// give the same structure different meaning - which levels are languages,
// years, days, or parts is a property of the kind, not of the tree.
package tracker

import (
	"sort"
	"strconv"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
)

// Value is a scalar leaf: either a string answer or a float duration.
type Value struct {
	Str   string
	Num   float64
	IsNum bool
}

// StringValue wraps a string answer as a leaf value.
func StringValue(s string) Value {
	return Value{Str: s}
}

// NumberValue wraps a float measurement as a leaf value.
func NumberValue(f float64) Value {
	return Value{Num: f, IsNum: true}
}

// Display returns the value formatted for table cells.
// Floats use four decimal places, matching the report grid format.
func (v Value) Display() string {
	if v.IsNum {
		return strconv.FormatFloat(v.Num, 'f', 4, 64)
	}
	return v.Str
}

// Equal reports whether two values hold the same scalar.
func (v Value) Equal(o Value) bool {
	if v.IsNum != o.IsNum {
		return false
	}
	if v.IsNum {
		return v.Num == o.Num
	}
	return v.Str == o.Str
}

// Node is a single tree node: a leaf with a value, or an interior node
// with children. A node is never both - AddData rejects the collision.
type Node struct {
	children map[string]*Node
	value    Value
	leaf     bool

	// Running aggregates maintained by the kind's Update hook.
	// Only meaningful on interior nodes of numeric trackers.
	total   float64
	average float64

	// Flags inherited from the parent at creation time.
	dumpThis  bool
	printThis bool
}

// newNode creates an interior node inheriting the given flags.
func newNode(dump, print bool) *Node {
	return &Node{
		children:  make(map[string]*Node),
		dumpThis:  dump,
		printThis: print,
	}
}

// Leaf reports whether the node holds a terminal value.
func (n *Node) Leaf() bool { return n.leaf }

// Value returns the leaf value. Only meaningful when Leaf() is true.
func (n *Node) Value() Value { return n.value }

// Total returns the node's running sum aggregate.
func (n *Node) Total() float64 { return n.total }

// Average returns the node's running mean aggregate.
func (n *Node) Average() float64 { return n.average }

// Len returns the number of immediate children.
func (n *Node) Len() int { return len(n.children) }

// Child returns the child bound to seg, or nil.
func (n *Node) Child(seg string) *Node { return n.children[seg] }

// Segments returns the node's child segments in deterministic order:
// shorter segments first, then lexicographic. This keeps numeric-looking
// segments in natural order (day "2" before day "10").
func (n *Node) Segments() []string {
	segs := make([]string, 0, len(n.children))
	for seg := range n.children {
		segs = append(segs, seg)
	}
	sort.Slice(segs, func(i, j int) bool {
		return SegmentLess(segs[i], segs[j])
	})
	return segs
}

// SegmentLess orders key segments by (length, value), so "2" < "10" < "a".
func SegmentLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// Each child aggregate contributes its leaf value or its subtree total.
func (n *Node) childSum() float64 {
	var sum float64
	for _, c := range n.children {
		if c.leaf {
			sum += c.value.Num
		} else {
			sum += c.total
		}
	}
	return sum
}

// Tracker is a kind-tagged tree. All mutation goes through AddData; the
// kind's Update hook runs bottom-up on every insert so derived aggregates
// are never stale.
type Tracker struct {
	kind Kind
	root *Node

	// side holds derived subtrees (the runtime "longest" leaderboard)
	// that are walked for tables but excluded from aggregates and from
	// Size/Contains on the main tree.
	side map[string]*Node
}

// New creates an empty tracker of the given kind.
func New(kind Kind) *Tracker {
	return NewWithFlags(kind, true, true)
}

// NewWithFlags creates an empty tracker with explicit dump/print flags.
// dump controls persistence, print controls table output.
func NewWithFlags(kind Kind, dump, print bool) *Tracker {
	return &Tracker{
		kind: kind,
		root: newNode(dump, print),
		side: make(map[string]*Node),
	}
}

// Kind returns the tracker's kind.
func (t *Tracker) Kind() Kind { return t.kind }

// Root returns the root node.
func (t *Tracker) Root() *Node { return t.root }

// DumpThis reports whether the tracker participates in persistence.
func (t *Tracker) DumpThis() bool { return t.root.dumpThis }

// PrintThis reports whether the tracker participates in table output.
func (t *Tracker) PrintThis() bool { return t.root.printThis }

// AddData inserts or overwrites the leaf at path, creating interior nodes
// as needed. Overwriting an existing leaf is idempotent with respect to
// Size. Returns a KEY error for an empty path and a CONFLICT error when
// the path crosses an existing leaf or lands on an interior node.
func (t *Tracker) AddData(path []string, v Value) error {
	if len(path) == 0 {
		return errors.NewInvalidKey("empty key path")
	}
	if err := t.insert(t.root, path, path, v); err != nil {
		return err
	}
	if r, ok := t.kind.(Rebuilder); ok {
		r.Rebuild(t)
	}
	return nil
}

// insert recurses down the tree. full is the original path for error
// reporting; rest is what remains at this node.
func (t *Tracker) insert(n *Node, full, rest []string, v Value) error {
	seg := rest[0]
	if len(rest) == 1 {
		if existing, ok := n.children[seg]; ok && !existing.leaf {
			return errors.NewKeyConflict(full)
		}
		n.children[seg] = &Node{
			value:     v,
			leaf:      true,
			dumpThis:  n.dumpThis,
			printThis: n.printThis,
		}
	} else {
		child, ok := n.children[seg]
		if !ok {
			child = newNode(n.dumpThis, n.printThis)
			n.children[seg] = child
		}
		if child.leaf {
			return errors.NewKeyConflict(full[:len(full)-len(rest)+1])
		}
		if err := t.insert(child, full, rest[1:], v); err != nil {
			return err
		}
	}

	// Aggregates recompute bottom-up before the insert returns.
	t.kind.Update(n)
	return nil
}

// Get returns the leaf value at path. A miss on any segment, or a path
// ending at an interior node, is a NOT_FOUND error.
func (t *Tracker) Get(path []string) (Value, error) {
	n := t.node(path)
	if n == nil || !n.leaf {
		return Value{}, errors.NewKeyNotFound(path)
	}
	return n.value, nil
}

// Contains reports whether path resolves to a leaf or an interior node.
// Missing segments return false, never an error.
func (t *Tracker) Contains(path []string) bool {
	return t.node(path) != nil
}

// Total returns the running sum aggregate at the interior node at path.
func (t *Tracker) Total(path []string) (float64, error) {
	n := t.node(path)
	if n == nil || n.leaf {
		return 0, errors.NewKeyNotFound(path)
	}
	return n.total, nil
}

// Average returns the running mean aggregate at the interior node at path.
func (t *Tracker) Average(path []string) (float64, error) {
	n := t.node(path)
	if n == nil || n.leaf {
		return 0, errors.NewKeyNotFound(path)
	}
	return n.average, nil
}

// node resolves a path against the main tree, nil on any miss.
func (t *Tracker) node(path []string) *Node {
	n := t.root
	for _, seg := range path {
		if n.leaf {
			return nil
		}
		child, ok := n.children[seg]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// Size returns the number of leaves reachable from the root.
func (t *Tracker) Size() int {
	return countLeaves(t.root)
}

func countLeaves(n *Node) int {
	if n.leaf {
		return 1
	}
	total := 0
	for _, c := range n.children {
		total += countLeaves(c)
	}
	return total
}

// LeafFunc receives each leaf's full path and value during a walk.
type LeafFunc func(path []string, v Value) error

// WalkLeaves visits every concrete leaf of the main tree in deterministic
// segment order. Derived side trees and aggregate pseudo-leaves are not
// visited; this is the persistence view of the tracker.
func (t *Tracker) WalkLeaves(fn LeafFunc) error {
	return walkNode(t.root, nil, fn)
}

func walkNode(n *Node, path []string, fn LeafFunc) error {
	for _, seg := range n.Segments() {
		child := n.children[seg]
		childPath := append(append([]string{}, path...), seg)
		if child.leaf {
			if err := fn(childPath, child.value); err != nil {
				return err
			}
		} else if err := walkNode(child, childPath, fn); err != nil {
			return err
		}
	}
	return nil
}

// WalkNode visits the concrete leaves under an arbitrary node.
func WalkNode(n *Node, fn LeafFunc) error {
	return walkNode(n, nil, fn)
}

// Walk visits every leaf the table builder should see: concrete leaves,
// the kind's aggregate pseudo-leaves at each interior node, and any
// derived side trees under their reserved segment.
func (t *Tracker) Walk(fn LeafFunc) error {
	if err := t.walkWithAggregates(t.root, nil, fn); err != nil {
		return err
	}
	names := make([]string, 0, len(t.side))
	for name := range t.side {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := walkNode(t.side[name], []string{name}, fn); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tracker) walkWithAggregates(n *Node, path []string, fn LeafFunc) error {
	for _, seg := range n.Segments() {
		child := n.children[seg]
		childPath := append(append([]string{}, path...), seg)
		if child.leaf {
			if err := fn(childPath, child.value); err != nil {
				return err
			}
			continue
		}
		if err := t.walkWithAggregates(child, childPath, fn); err != nil {
			return err
		}
	}
	if agg, ok := t.kind.(Aggregator); ok && len(n.children) > 0 {
		for _, pseudo := range agg.Aggregates(n) {
			pseudoPath := append(append([]string{}, path...), pseudo.Seg)
			if err := fn(pseudoPath, pseudo.Val); err != nil {
				return err
			}
		}
	}
	return nil
}

// SideTree returns the derived subtree registered under name, or nil.
func (t *Tracker) SideTree(name string) *Node {
	return t.side[name]
}

// setSideTree installs a derived subtree. Used by kind Rebuild hooks.
func (t *Tracker) setSideTree(name string, root *Node) {
	t.side[name] = root
}
