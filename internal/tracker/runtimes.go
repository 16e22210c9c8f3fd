package tracker

import (
	"sort"
	"strconv"
)

// LongestKey is the reserved segment for the derived slowest-solutions
// leaderboard. The subtree is rebuilt from scratch on every insert and is
// never persisted.
const LongestKey = "longest"

// DefaultLeaderboard is how many leaderboard entries to keep when the
// kind does not say otherwise.
const DefaultLeaderboard = 10

// RuntimeKind tracks elapsed times in seconds. Interior nodes carry
// running total and average aggregates, surfaced as pseudo-leaves during
// table walks, and the kind maintains a top-N leaderboard of the slowest
// individual parts across the whole tree.
type RuntimeKind struct {
	// Leaderboard is the number of slowest parts to keep.
	// Zero means DefaultLeaderboard.
	Leaderboard int
}

func (RuntimeKind) Update(n *Node) {
	n.total = n.childSum()
	if len(n.children) > 0 {
		n.average = n.total / float64(len(n.children))
	} else {
		n.average = 0
	}
}

func (RuntimeKind) Aggregates(n *Node) []Pseudo {
	return []Pseudo{
		{Seg: "total", Val: NumberValue(n.total)},
		{Seg: "average", Val: NumberValue(n.average)},
	}
}

func (k RuntimeKind) KeysToIndices(path []string) (Placement, bool, error) {
	if len(path) > 0 && path[0] == LongestKey {
		if len(path) != 6 {
			return Placement{}, false, nil
		}
		return Placement{
			Table:    "Longest",
			Column:   "Time",
			RowIndex: append([]string{path[1]}, titled(path[2:])...),
			Layout:   Layout{NoDividers: true, RowOffset: 1},
		}, true, nil
	}
	return standardPlacement(path)
}

// Rebuild recomputes the leaderboard side tree from the tree's leaves.
// The hidden leading rank segment keeps rows ordered slowest first.
func (k RuntimeKind) Rebuild(t *Tracker) {
	type entry struct {
		path []string
		num  float64
	}
	var entries []entry
	_ = t.WalkLeaves(func(path []string, v Value) error {
		if v.IsNum {
			entries = append(entries, entry{path: path, num: v.Num})
		}
		return nil
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].num > entries[j].num
	})

	limit := k.Leaderboard
	if limit <= 0 {
		limit = DefaultLeaderboard
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	root := newNode(false, t.root.printThis)
	for i, e := range entries {
		n := root
		segs := append([]string{strconv.Itoa(i + 1)}, e.path...)
		for _, seg := range segs[:len(segs)-1] {
			child, ok := n.children[seg]
			if !ok {
				child = newNode(n.dumpThis, n.printThis)
				n.children[seg] = child
			}
			n = child
		}
		n.children[segs[len(segs)-1]] = &Node{
			value:     NumberValue(e.num),
			leaf:      true,
			printThis: n.printThis,
		}
	}
	t.setSideTree(LongestKey, root)
}
