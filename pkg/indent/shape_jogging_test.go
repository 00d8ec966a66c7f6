package indent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harlowdrift/tallint/pkg/grammar"
)

// TestWutHepWellFormedTwoJogsNoTail reproduces a well-formed 1-jogging
// hoon with two kingside jogs and no trailing default clause: zero
// mistakes expected.
func TestWutHepWellFormedTwoJogsNoTail(t *testing.T) {
	cat := grammar.Default()
	src := "?-  x\n  %a  1\n  %b  2\n=="
	b := newBuilder(t, cat, src)

	rune_ := b.lex("WUTHEP", "?-")
	g1 := b.gap("GAP", "x")
	head := b.lex("TERM", "x")
	g2 := b.gap("GAP", "%a")
	h1 := b.lex("TERM", "%a")
	g1a := b.gap("GAP", "1")
	body1 := b.lex("TERM", "1")
	jog1 := b.node("ruck5dJog", h1, g1a, body1)
	sep := b.sep("GAP", "%b")
	h2 := b.lex("TERM", "%b")
	g2a := b.gap("GAP", "2")
	body2 := b.lex("TERM", "2")
	jog2 := b.node("ruck5dJog", h2, g2a, body2)
	ruck := b.node("ruck5d", jog1, sep, jog2)
	g3 := b.gap("GAP", "==")
	tistis := b.lex("TISTIS", "==")
	root := b.node("tallWutHep", rune_, g1, head, g2, ruck, g3, tistis)

	mistakes := collect(b.tree, cat, root)
	assert.Empty(t, mistakes)
}

// TestWutHepOffByOneHeadIndentation reproduces an off-by-one head on the
// sole jog (spec §8 scenario 2): exactly one mistake.
func TestWutHepOffByOneHeadIndentation(t *testing.T) {
	cat := grammar.Default()
	src := "?-  x\n %a  1\n=="
	b := newBuilder(t, cat, src)

	rune_ := b.lex("WUTHEP", "?-")
	g1 := b.gap("GAP", "x")
	head := b.lex("TERM", "x")
	g2 := b.gap("GAP", "%a")
	h1 := b.lex("TERM", "%a")
	g1a := b.gap("GAP", "1")
	body1 := b.lex("TERM", "1")
	jog := b.node("ruck5dJog", h1, g1a, body1)
	ruck := b.node("ruck5d", jog)
	g3 := b.gap("GAP", "==")
	tistis := b.lex("TISTIS", "==")
	root := b.node("tallWutHep", rune_, g1, head, g2, ruck, g3, tistis)

	mistakes := collect(b.tree, cat, root)
	require.Len(t, mistakes, 1)
	assert.Equal(t, "Jog kingside head underindented by 1.", mistakes[0].Description)
}

// TestWutBarTISTISOnRuneLine reproduces a 0-jogging hoon with the closing
// TISTIS crammed onto the rune's own line (spec §8 scenario 4). Fitting
// the whole construct on one physical line to trigger that mistake also
// pushes the sole jog's head past the kingside/queenside boundary, so a
// second, independent jog-head mistake is expected alongside it.
func TestWutBarTISTISOnRuneLine(t *testing.T) {
	cat := grammar.Default()
	src := "?|  a  b  c  =="
	b := newBuilder(t, cat, src)

	rune_ := b.lex("WUTBAR", "?|")
	g1 := b.gap("GAP", "a")
	first := b.lex("TERM", "a")
	g2 := b.gap("GAP", "b")
	h1 := b.lex("TERM", "b")
	g1a := b.gap("GAP", "c")
	body1 := b.lex("TERM", "c")
	jog := b.node("ruck5dJog", h1, g1a, body1)
	ruck := b.node("ruck5d", jog)
	g3 := b.gap("GAP", "==")
	tistis := b.lex("TISTIS", "==")
	root := b.node("tallWutBar", rune_, g1, first, g2, ruck, g3, tistis)

	mistakes := collect(b.tree, cat, root)
	require.Len(t, mistakes, 2)

	var descs []string
	for _, m := range mistakes {
		descs = append(descs, m.Description)
	}
	assert.Contains(t, descs, "TISTIS on rune line; should not be.")
	assert.Contains(t, descs, "Jog queenside head overindented by 3.")
}

// TestWutKetWellFormedKingside reproduces a well-formed 2-jogging hoon:
// first and second heads on the rune line and the line right after it,
// a single kingside jog, and a closing TISTIS at the rune's column.
func TestWutKetWellFormedKingside(t *testing.T) {
	cat := grammar.Default()
	src := "?:    x1\n    x2\n  %a  1\n=="
	b := newBuilder(t, cat, src)

	rune_ := b.lex("WUTKET", "?:")
	g1 := b.gap("GAP", "x1")
	first := b.lex("TERM", "x1")
	g2 := b.gap("GAP", "x2")
	second := b.lex("TERM", "x2")
	g3 := b.gap("GAP", "%a")
	h1 := b.lex("TERM", "%a")
	g3a := b.gap("GAP", "1")
	body1 := b.lex("TERM", "1")
	jog := b.node("ruck5dJog", h1, g3a, body1)
	ruck := b.node("ruck5d", jog)
	g4 := b.gap("GAP", "==")
	tistis := b.lex("TISTIS", "==")
	root := b.node("tallWutKet", rune_, g1, first, g2, second, g3, ruck, g4, tistis)

	mistakes := collect(b.tree, cat, root)
	assert.Empty(t, mistakes)
}

func TestWutKetSecondChildMisaligned(t *testing.T) {
	cat := grammar.Default()
	src := "?:    x1\n  x2\n  %a  1\n=="
	b := newBuilder(t, cat, src)

	rune_ := b.lex("WUTKET", "?:")
	g1 := b.gap("GAP", "x1")
	first := b.lex("TERM", "x1")
	g2 := b.gap("GAP", "x2")
	second := b.lex("TERM", "x2")
	g3 := b.gap("GAP", "%a")
	h1 := b.lex("TERM", "%a")
	g3a := b.gap("GAP", "1")
	body1 := b.lex("TERM", "1")
	jog := b.node("ruck5dJog", h1, g3a, body1)
	ruck := b.node("ruck5d", jog)
	g4 := b.gap("GAP", "==")
	tistis := b.lex("TISTIS", "==")
	root := b.node("tallWutKet", rune_, g1, first, g2, second, g3, ruck, g4, tistis)

	mistakes := collect(b.tree, cat, root)
	require.Len(t, mistakes, 1)
	assert.Equal(t, 4, *mistakes[0].ExpectedColumn)
}

// TestWutPamWellFormed reproduces a well-formed prefix-jogging hoon: a
// single queenside jog, a closing TISTIS at rune_column+2, and a tail at
// rune_column.
func TestWutPamWellFormed(t *testing.T) {
	cat := grammar.Default()
	src := "?&  %a  1\n  ==\ntail"
	b := newBuilder(t, cat, src)

	rune_ := b.lex("WUTPAM", "?&")
	g1 := b.gap("GAP", "%a")
	h1 := b.lex("TERM", "%a")
	g1a := b.gap("GAP", "1")
	body1 := b.lex("TERM", "1")
	jog := b.node("ruck5dJog", h1, g1a, body1)
	ruck := b.node("ruck5d", jog)
	g2 := b.gap("GAP", "==")
	tistis := b.lex("TISTIS", "==")
	g3 := b.gap("GAP", "tail")
	tail := b.lex("TERM", "tail")
	root := b.node("tallWutPam", rune_, g1, ruck, g2, tistis, g3, tail)

	mistakes := collect(b.tree, cat, root)
	assert.Empty(t, mistakes)
}

func TestWutPamTailMisindented(t *testing.T) {
	cat := grammar.Default()
	src := "?&  %a  1\n  ==\n tail"
	b := newBuilder(t, cat, src)

	rune_ := b.lex("WUTPAM", "?&")
	g1 := b.gap("GAP", "%a")
	h1 := b.lex("TERM", "%a")
	g1a := b.gap("GAP", "1")
	body1 := b.lex("TERM", "1")
	jog := b.node("ruck5dJog", h1, g1a, body1)
	ruck := b.node("ruck5d", jog)
	g2 := b.gap("GAP", "==")
	tistis := b.lex("TISTIS", "==")
	g3 := b.gap("GAP", "tail")
	tail := b.lex("TERM", "tail")
	root := b.node("tallWutPam", rune_, g1, ruck, g2, tistis, g3, tail)

	mistakes := collect(b.tree, cat, root)
	require.Len(t, mistakes, 1)
	assert.Equal(t, "prefix-jogging tail at column 1, expected 0", mistakes[0].Description)
}
