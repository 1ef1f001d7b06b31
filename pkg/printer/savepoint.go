package printer

import "github.com/inkrune/printcore/pkg/printitems"

// SavePoint captures everything needed to rewind the printer to an earlier
// point in the IR walk (original §3.4): writer state, the possible-newline
// save-point active at creation time, the new-line-group and
// force-no-newlines depths, the current node, a clone of the next-node
// stack, and a shallow clone of every look-ahead save-point map.
type SavePoint struct {
	Name string

	WriterState                       WriterState
	PossibleNewLineSavePointAtCreation *SavePoint
	NewLineGroupDepth                  int
	ForceNoNewLinesDepth               int

	CurrentNode   *printitems.PrintNode
	NextNodeStack []*printitems.PrintNode

	LookAheadInfoSavePoints      map[printitems.InfoKind]map[printitems.InfoID]*SavePoint
	LookAheadConditionSavePoints map[printitems.ConditionID]*SavePoint
}

func cloneNodeStack(s []*printitems.PrintNode) []*printitems.PrintNode {
	if len(s) == 0 {
		return nil
	}
	out := make([]*printitems.PrintNode, len(s))
	copy(out, s)
	return out
}

func cloneInfoSavePoints(m map[printitems.InfoKind]map[printitems.InfoID]*SavePoint) map[printitems.InfoKind]map[printitems.InfoID]*SavePoint {
	out := make(map[printitems.InfoKind]map[printitems.InfoID]*SavePoint, len(m))
	for kind, inner := range m {
		innerCopy := make(map[printitems.InfoID]*SavePoint, len(inner))
		for id, sp := range inner {
			innerCopy[id] = sp
		}
		out[kind] = innerCopy
	}
	return out
}

func cloneConditionSavePoints(m map[printitems.ConditionID]*SavePoint) map[printitems.ConditionID]*SavePoint {
	out := make(map[printitems.ConditionID]*SavePoint, len(m))
	for id, sp := range m {
		out[id] = sp
	}
	return out
}
