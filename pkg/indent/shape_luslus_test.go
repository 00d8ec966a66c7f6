package indent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harlowdrift/tallint/pkg/grammar"
)

func TestLusLusWellFormed(t *testing.T) {
	cat := grammar.Default()
	src := "one\n  two\n  three"
	b := newBuilder(t, cat, src)

	t1 := b.lex("TERM", "one")
	g1 := b.gap("GAP", "two")
	t2 := b.lex("TERM", "two")
	g2 := b.gap("GAP", "three")
	t3 := b.lex("TERM", "three")
	root := b.node("LuslusCell", t1, g1, t2, g2, t3)

	mistakes := collect(b.tree, cat, root)
	assert.Empty(t, mistakes)
}

func TestLusLusMisalignedChild(t *testing.T) {
	cat := grammar.Default()
	src := "one\n   two\n  three"
	b := newBuilder(t, cat, src)

	t1 := b.lex("TERM", "one")
	g1 := b.gap("GAP", "two")
	t2 := b.lex("TERM", "two")
	g2 := b.gap("GAP", "three")
	t3 := b.lex("TERM", "three")
	root := b.node("LuslusCell", t1, g1, t2, g2, t3)

	mistakes := collect(b.tree, cat, root)
	require.Len(t, mistakes, 1)
	assert.Equal(t, 2, *mistakes[0].ExpectedColumn)
}

func TestLusLusSameLineChildExempt(t *testing.T) {
	cat := grammar.Default()
	src := "one two\n  three"
	b := newBuilder(t, cat, src)

	t1 := b.lex("TERM", "one")
	g1 := b.gap("GAP", "two")
	t2 := b.lex("TERM", "two")
	g2 := b.gap("GAP", "three")
	t3 := b.lex("TERM", "three")
	root := b.node("LuslusCell", t1, g1, t2, g2, t3)

	mistakes := collect(b.tree, cat, root)
	assert.Empty(t, mistakes)
}
