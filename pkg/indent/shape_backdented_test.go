package indent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harlowdrift/tallint/pkg/grammar"
)

func TestBackdentedWellFormedStaircase(t *testing.T) {
	cat := grammar.Default()
	src := "foo\n      bar\n    baz\n  qux"
	b := newBuilder(t, cat, src)

	t1 := b.lex("TERM", "foo")
	g1 := b.gap("GAP", "bar")
	t2 := b.lex("TERM", "bar")
	g2 := b.gap("GAP", "baz")
	t3 := b.lex("TERM", "baz")
	g3 := b.gap("GAP", "qux")
	t4 := b.lex("TERM", "qux")
	root := b.node("tallColhep", t1, g1, t2, g2, t3, g3, t4)

	mistakes := collect(b.tree, cat, root)
	assert.Empty(t, mistakes)
}

func TestBackdentedMisalignedChild(t *testing.T) {
	cat := grammar.Default()
	// bar should be at column 6, but sits at column 5.
	src := "foo\n     bar\n    baz\n  qux"
	b := newBuilder(t, cat, src)

	t1 := b.lex("TERM", "foo")
	g1 := b.gap("GAP", "bar")
	t2 := b.lex("TERM", "bar")
	g2 := b.gap("GAP", "baz")
	t3 := b.lex("TERM", "baz")
	g3 := b.gap("GAP", "qux")
	t4 := b.lex("TERM", "qux")
	root := b.node("tallColhep", t1, g1, t2, g2, t3, g3, t4)

	mistakes := collect(b.tree, cat, root)
	require.Len(t, mistakes, 1)
	assert.Equal(t, 6, *mistakes[0].BackdentColumn)
}

func TestBackdentedSameLineChildExempt(t *testing.T) {
	cat := grammar.Default()
	// bar shares foo's line, so its column is never checked, however far
	// off the staircase it sits.
	src := "foo bar\n    baz\n  qux"
	b := newBuilder(t, cat, src)

	t1 := b.lex("TERM", "foo")
	g1 := b.gap("GAP", "bar")
	t2 := b.lex("TERM", "bar")
	g2 := b.gap("GAP", "baz")
	t3 := b.lex("TERM", "baz")
	g3 := b.gap("GAP", "qux")
	t4 := b.lex("TERM", "qux")
	root := b.node("tallColhep", t1, g1, t2, g2, t3, g3, t4)

	mistakes := collect(b.tree, cat, root)
	assert.Empty(t, mistakes)
}

func TestNoteAlignsToEnclosingBodyIndent(t *testing.T) {
	cat := grammar.Default()
	// tallDotket (tallNote) nested inside a tallColhep body: the note's
	// own staircase should measure from the enclosing body's column (0),
	// not from its own first child's column (2).
	src := "one\n  a\n    b\n  c"
	b := newBuilder(t, cat, src)

	outer := b.lex("TERM", "one")
	g1 := b.gap("GAP", "a")
	a := b.lex("TERM", "a")
	g2 := b.gap("GAP", "b")
	bb := b.lex("TERM", "b")
	g3 := b.gap("GAP", "c")
	c := b.lex("TERM", "c")
	note := b.node("tallDotket", a, g2, bb, g3, c)
	root := b.node("tallColhep", outer, g1, note)

	mistakes := collect(b.tree, cat, root)
	assert.Empty(t, mistakes)
}
