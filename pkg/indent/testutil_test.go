package indent

import (
	"strings"
	"testing"

	"github.com/harlowdrift/tallint/pkg/cst"
	"github.com/harlowdrift/tallint/pkg/grammar"
)

// treeBuilder constructs a cst.Tree by walking forward through a fixed
// source string, locating each literal token by substring search from
// the current cursor. It exists only so lint-shape tests can express
// fixtures as plain source text instead of hand-computed byte offsets.
type treeBuilder struct {
	t    *testing.T
	tree *cst.Tree
	cat  *grammar.Catalog
	src  []byte
	pos  int
}

func newBuilder(t *testing.T, cat *grammar.Catalog, src string) *treeBuilder {
	return &treeBuilder{t: t, tree: cst.NewTree([]byte(src)), cat: cat, src: []byte(src)}
}

func (b *treeBuilder) find(lit string) int {
	idx := strings.Index(string(b.src[b.pos:]), lit)
	if idx < 0 {
		b.t.Fatalf("fixture %q: literal %q not found after pos %d", string(b.src), lit, b.pos)
	}
	return b.pos + idx
}

// lex allocates a lexeme node for the next occurrence of lit and
// advances the cursor past it.
func (b *treeBuilder) lex(symbolName, lit string) cst.NodeID {
	start := b.find(lit)
	sid, ok := b.cat.SymbolID(symbolName)
	if !ok {
		b.t.Fatalf("unknown symbol %q", symbolName)
	}
	id := b.tree.Alloc(cst.Node{Kind: cst.KindLexeme, RuleID: -1, SymbolID: sid, Start: start, Length: len(lit), Parent: cst.NoNode, Prev: cst.NoNode, Next: cst.NoNode})
	b.pos = start + len(lit)
	return id
}

// gap allocates a gap node spanning everything between the cursor and
// the next occurrence of nextLit (not including nextLit itself).
func (b *treeBuilder) gap(symbolName, nextLit string) cst.NodeID {
	return b.gapKind(symbolName, nextLit, cst.KindLexeme)
}

// sep is gap but allocates a KindSeparator node, for the synthetic
// siblings inserted between elements of a gap-separated sequence rule.
func (b *treeBuilder) sep(symbolName, nextLit string) cst.NodeID {
	return b.gapKind(symbolName, nextLit, cst.KindSeparator)
}

func (b *treeBuilder) gapKind(symbolName, nextLit string, kind cst.Kind) cst.NodeID {
	end := b.find(nextLit)
	start := b.pos
	sid, ok := b.cat.SymbolID(symbolName)
	if !ok {
		b.t.Fatalf("unknown symbol %q", symbolName)
	}
	id := b.tree.Alloc(cst.Node{Kind: kind, RuleID: -1, SymbolID: sid, Start: start, Length: end - start, Parent: cst.NoNode, Prev: cst.NoNode, Next: cst.NoNode})
	b.pos = end
	return id
}

// node allocates an interior node for ruleName and links children.
func (b *treeBuilder) node(ruleName string, children ...cst.NodeID) cst.NodeID {
	rid, ok := b.cat.RuleID(ruleName)
	if !ok {
		b.t.Fatalf("unknown rule %q", ruleName)
	}
	id := b.tree.Alloc(cst.Node{Kind: cst.KindNode, RuleID: rid, SymbolID: -1, Parent: cst.NoNode, Prev: cst.NoNode, Next: cst.NoNode})
	for _, c := range children {
		b.tree.Link(id, c)
	}
	b.tree.Recompute(id)
	return id
}

// collect runs Walk over root and returns every mistake produced.
func collect(tree *cst.Tree, cat *grammar.Catalog, root cst.NodeID) []Mistake {
	var out []Mistake
	Walk(tree, cat, root, func(_ int, m Mistake) {
		out = append(out, m)
	})
	return out
}
