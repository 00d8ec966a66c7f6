package indent

import (
	"github.com/harlowdrift/tallint/pkg/cst"
	"github.com/harlowdrift/tallint/pkg/grammar"
)

// GapIndent is one position at which a tall-form line break may occur:
// the line/column of a child, paired with the child's own ID (spec §4.3).
type GapIndent struct {
	Line int
	Col  int
	Node cst.NodeID
}

// GapIndents computes the gap-indent list for id: its first child, plus,
// for every child whose symbol is a gap, the child immediately following
// it (spec §4.3).
func GapIndents(tree *cst.Tree, cat *grammar.Catalog, id cst.NodeID) []GapIndent {
	children := tree.Children(id)
	if len(children) == 0 {
		return nil
	}

	var out []GapIndent
	record := func(childID cst.NodeID) {
		n := tree.Node(childID)
		line, col := tree.Index.LineColumn(n.Start)
		out = append(out, GapIndent{Line: line, Col: col, Node: childID})
	}

	record(children[0])
	for i, childID := range children {
		n := tree.Node(childID)
		if !isGapSymbolNode(cat, n) {
			continue
		}
		if i+1 < len(children) {
			record(children[i+1])
		}
	}
	return out
}

func isGapSymbolNode(cat *grammar.Catalog, n *cst.Node) bool {
	if n.Kind == cst.KindNode {
		return false
	}
	sym := cat.Symbol(n.SymbolID)
	return sym != nil && sym.IsGap
}
