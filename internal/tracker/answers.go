package tracker

// IncorrectKey is the reserved root segment holding wrong submissions.
// The shadow subtree mirrors the main [lang year day part] shape and is
// persisted alongside the correct leaves.
const IncorrectKey = "incorrect"

// AnswerKind tracks string puzzle answers. It keeps no numeric
// aggregates; its pivot routes the incorrect shadow subtree into its own
// borderless table and everything else through the standard mapping.
type AnswerKind struct{}

func (AnswerKind) Update(n *Node) {}

func (AnswerKind) KeysToIndices(path []string) (Placement, bool, error) {
	if len(path) > 0 && path[0] == IncorrectKey {
		if len(path) != 5 {
			return Placement{}, false, nil
		}
		return Placement{
			Table:    "Incorrect",
			Column:   Title(path[1]),
			RowIndex: titled(path[2:]),
			Layout:   Layout{NoDividers: true},
			NumKeys:  1,
		}, true, nil
	}
	return standardPlacement(path)
}
