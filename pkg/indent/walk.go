package indent

import (
	"github.com/harlowdrift/tallint/pkg/cst"
	"github.com/harlowdrift/tallint/pkg/grammar"
)

// MistakeFunc receives each mistake as the walk produces it, alongside
// the source line of the node whose check produced it (the "parent
// line" the report accumulator uses for topic-line grouping; spec
// §4.7).
type MistakeFunc func(parentLine int, m Mistake)

// WalkOption configures optional Walk behavior that does not belong in
// the required (tree, cat, root, report) signature.
type WalkOption func(*walkConfig)

type walkConfig struct {
	census bool
}

// WithCensus enables --census-whitespace's "every inspected construct"
// mode (spec §6): every node whose shape has a check of its own (any
// shape but ShapeNone) and that has no mistake of its own still produces
// one synthetic, shape-tagged Mistake (IsCensus true).
func WithCensus(enabled bool) WalkOption {
	return func(c *walkConfig) { c.census = enabled }
}

// Walk traverses tree depth-first preorder from root, dispatching each
// interior node to its shape checker and threading the lint context down
// to descendants (spec §4.6). It panics with *InternalError on
// classifier invariant violations (spec §5, §7); callers running a CLI
// should recover at the top level and exit with the internal-error code.
func Walk(tree *cst.Tree, cat *grammar.Catalog, root cst.NodeID, report MistakeFunc, opts ...WalkOption) {
	cfg := walkConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	visit(tree, cat, root, Context{}, report, cfg)
}

func visit(tree *cst.Tree, cat *grammar.Catalog, id cst.NodeID, ctx Context, report MistakeFunc, cfg walkConfig) {
	n := tree.Node(id)
	if n == nil || n.Kind != cst.KindNode {
		return
	}

	nodeLine, nodeCol := tree.Index.LineColumn(n.Start)
	ctx = ctx.AdvanceLine(nodeLine, nodeCol)
	ctx = ctx.WithAncestor(n.RuleID, n.Start)

	rule := cat.Rule(n.RuleID)
	if rule == nil {
		panicInternal("indent.Walk", "unknown rule id %d", n.RuleID)
	}
	if !rule.IsMortar {
		ctx = ctx.WithHoonName(rule.LHS)
	}

	gaps := GapIndents(tree, cat, id)
	shape := cat.ShapeOf(n.RuleID)

	var emitted bool
	emit := func(mistakes []Mistake) {
		emitted = emitted || len(mistakes) > 0
		for _, m := range mistakes {
			m.HoonName = ctx.HoonName
			report(nodeLine, m)
		}
	}

	childCtx := ctx

	switch shape {
	case grammar.ShapeBackdented:
		if rule.IsTallBody {
			childCtx = childCtx.WithBodyIndent(nodeCol)
		}
		emit(checkBackdented(gaps))

	case grammar.ShapeNote:
		emit(checkNote(gaps, ctx))

	case grammar.ShapeLusLus:
		emit(checkLusLus(gaps))

	case grammar.ShapeSequence:
		emit(checkSequence(tree, cat, id, gaps, ctx))

	case grammar.ShapeJog:
		emit(checkJog(tree, id, ctx))
		childCtx = childCtx.WithoutJogging()

	case grammar.ShapeJogging0, grammar.ShapeJogging1, grammar.ShapeJogging2, grammar.ShapeJoggingPrefix:
		result := censusForJoggingNode(tree, cat, id, nodeCol)
		switch shape {
		case grammar.ShapeJogging0:
			emit(check0Jogging(tree, gaps, nodeCol))
		case grammar.ShapeJogging1:
			emit(check1Jogging(tree, gaps, nodeCol, result.Side))
		case grammar.ShapeJogging2:
			emit(check2Jogging(tree, gaps, nodeCol, result.Side))
		case grammar.ShapeJoggingPrefix:
			emit(checkPrefixJogging(tree, gaps, nodeCol))
		}
		childCtx = childCtx.WithJogging(result.Side, nodeCol, result.BodyColumn)

	case grammar.ShapeNone:
		// Structural glue (e.g. a jogging's list-of-jogs container): no
		// check of its own, just a pass-through on the way to its jogs.

	default:
		panicInternal("indent.Walk", "unknown shape %v for rule %q", shape, rule.LHS)
	}

	if cfg.census && !emitted && shape != grammar.ShapeNone {
		m := mkCensus(nodeLine, nodeCol, shape.String())
		m.HoonName = ctx.HoonName
		report(nodeLine, m)
	}

	if rule.IsTallRune {
		childCtx = childCtx.WithTallRuneIndent(nodeCol)
	}

	for _, childID := range tree.Children(id) {
		visit(tree, cat, childID, childCtx, report, cfg)
	}
}

// censusForJoggingNode locates a jogging-bearing node's list-of-jogs
// child and runs the jogging census over it (spec §4.4, §4.6 step 3).
func censusForJoggingNode(tree *cst.Tree, cat *grammar.Catalog, id cst.NodeID, runeCol int) censusResult {
	listID, ok := findJoggingList(tree, cat, id)
	if !ok {
		panicInternal("indent.Walk", "jogging node %d has no jogging list among its children", id)
	}
	return runJoggingCensus(jogsOf(tree, cat, listID), runeCol)
}

// findJoggingList returns the child of id whose own children include at
// least one ShapeJog node — the sequence-of-jogs container, regardless
// of what the grammar data happens to name it.
func findJoggingList(tree *cst.Tree, cat *grammar.Catalog, id cst.NodeID) (cst.NodeID, bool) {
	for _, childID := range tree.Children(id) {
		n := tree.Node(childID)
		if n.Kind != cst.KindNode {
			continue
		}
		for _, grandID := range tree.Children(childID) {
			gn := tree.Node(grandID)
			if gn.Kind == cst.KindNode && cat.ShapeOf(gn.RuleID) == grammar.ShapeJog {
				return childID, true
			}
		}
	}
	return cst.NoNode, false
}
