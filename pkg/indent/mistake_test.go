package indent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "indent", KindIndent.String())
	assert.Equal(t, "sequence", KindSequence.String())
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("indent")
	assert.True(t, ok)
	assert.Equal(t, KindIndent, k)

	k, ok = ParseKind("sequence")
	assert.True(t, ok)
	assert.Equal(t, KindSequence, k)

	_, ok = ParseKind("bogus")
	assert.False(t, ok)
}

func TestMistakeWithExpectedHelpers(t *testing.T) {
	m := mkIndent(1, 2, 0, "desc")
	m2 := m.withExpectedColumn(5)
	require := assert.New(t)
	require.NotNil(m2.ExpectedColumn)
	require.Equal(5, *m2.ExpectedColumn)
	require.Nil(m.ExpectedColumn, "original mistake must not be mutated")

	m3 := m.withExpectedLine(9)
	require.NotNil(m3.ExpectedLine)
	require.Equal(9, *m3.ExpectedLine)

	m4 := m.withBackdentColumn(3)
	require.NotNil(m4.BackdentColumn)
	require.Equal(3, *m4.BackdentColumn)
}

func TestSidednessString(t *testing.T) {
	assert.Equal(t, "kingside", Kingside.String())
	assert.Equal(t, "queenside", Queenside.String())
}
