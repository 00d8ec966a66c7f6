package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsGapName(t *testing.T) {
	assert.True(t, isGapName("GAP"))
	assert.True(t, isGapName("WUTBARGAP"))
	assert.False(t, isGapName("TISTIS"))
	assert.False(t, isGapName("GAPPY"))
}

func TestDefaultCatalogLoads(t *testing.T) {
	cat := Default()
	require.NotEmpty(t, cat.symbols)
	require.NotEmpty(t, cat.rules)

	gapID, ok := cat.SymbolID("GAP")
	require.True(t, ok)
	assert.True(t, cat.Symbol(gapID).IsGap)

	termID, ok := cat.SymbolID("TERM")
	require.True(t, ok)
	assert.False(t, cat.Symbol(termID).IsGap)
}

func TestShapeDispatch(t *testing.T) {
	cat := Default()

	cases := []struct {
		lhs   string
		shape Shape
	}{
		{"tallWutBar", ShapeJogging0},
		{"tallWutHep", ShapeJogging1},
		{"tallWutKet", ShapeJogging2},
		{"tallWutPam", ShapeJoggingPrefix},
		{"ruck5dJog", ShapeJog},
		{"rick5dJog", ShapeJog},
		{"ruck5d", ShapeNone},
		{"semsigSeq", ShapeSequence},
		{"plainSeq", ShapeSequence},
		{"tallDotket", ShapeNote},
		{"LuslusCell", ShapeLusLus},
		{"LushepCell", ShapeLusLus},
		{"LustisCell", ShapeLusLus},
		{"tallSemsig", ShapeBackdented},
		{"tallColhep", ShapeBackdented},
	}

	for _, c := range cases {
		t.Run(c.lhs, func(t *testing.T) {
			id, ok := cat.RuleID(c.lhs)
			require.True(t, ok, "rule %q not found", c.lhs)
			assert.Equal(t, c.shape, cat.ShapeOf(id))
		})
	}
}

func TestMortarFlags(t *testing.T) {
	cat := Default()

	ruck5d, _ := cat.RuleID("ruck5d")
	assert.True(t, cat.IsMortar(ruck5d))

	semsig, _ := cat.RuleID("tallSemsig")
	assert.False(t, cat.IsMortar(semsig))
}

func TestGapiness(t *testing.T) {
	cat := Default()

	wutBar, _ := cat.RuleID("tallWutBar")
	assert.Equal(t, 3, cat.Rule(wutBar).Gapiness)

	ruck5d, _ := cat.RuleID("ruck5d")
	assert.Equal(t, -1, cat.Rule(ruck5d).Gapiness)
}

func TestLoadRejectsUnknownShape(t *testing.T) {
	data := []byte(`
[[symbols]]
name = "X"
lexeme = true

[[rules]]
lhs = "weird"
rhs = ["X"]
shape = "notAShape"
`)
	_, err := Load(data)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownRHSSymbol(t *testing.T) {
	data := []byte(`
[[rules]]
lhs = "weird"
rhs = ["GHOST"]
`)
	_, err := Load(data)
	assert.Error(t, err)
}

func TestOverrideForParentFallsBackToShapeOf(t *testing.T) {
	cat := Default()
	id, _ := cat.RuleID("tallDotket")
	assert.Equal(t, cat.ShapeOf(id), cat.OverrideForParent(id, 999))
}
