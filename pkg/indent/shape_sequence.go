package indent

import (
	"fmt"

	"github.com/harlowdrift/tallint/pkg/cst"
	"github.com/harlowdrift/tallint/pkg/grammar"
)

// checkSequence is the gap-separated-sequence shape checker (spec
// §4.5.4): every element either shares the previous element's line (the
// node's own line for the first element) or lands at exactly the target
// column — normally the sequence node's own column, but
// grandparent_col+2 when the grandparent production is tallSemsig.
func checkSequence(tree *cst.Tree, cat *grammar.Catalog, id cst.NodeID, gaps []GapIndent, ctx Context) []Mistake {
	if len(gaps) == 0 {
		return nil
	}

	node := tree.Node(id)
	_, ownCol := tree.Index.LineColumn(node.Start)
	target := ownCol

	if gpRuleID, ok := ctx.Grandparent(); ok {
		if r := cat.Rule(gpRuleID); r != nil && r.LHS == "tallSemsig" {
			gpAncestor := ctx.Ancestors[len(ctx.Ancestors)-2]
			_, gpCol := tree.Index.LineColumn(gpAncestor.Start)
			target = gpCol + 2
		}
	}

	var mistakes []Mistake
	for i := 0; i < len(gaps); i++ {
		prevLine := ctx.Line
		if i > 0 {
			prevLine = gaps[i-1].Line
		}
		if gaps[i].Line == prevLine {
			continue
		}
		if gaps[i].Col != target {
			m := mkSequence(gaps[i].Line, gaps[i].Col, i,
				fmt.Sprintf("sequence element %d at column %d, expected %d", i, gaps[i].Col, target))
			mistakes = append(mistakes, m.withExpectedColumn(target))
		}
	}
	return mistakes
}
