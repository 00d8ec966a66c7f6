package indent

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFilter struct {
	allow    map[string]bool
	suppress map[string]bool
}

func key(line, col int, kind Kind) string {
	return fmt.Sprintf("%s:%d:%d", kind, line, col)
}

func (f *fakeFilter) Allowed(file string, line, col1 int, kind Kind) bool {
	if f.allow == nil {
		return true
	}
	return f.allow[key(line, col1, kind)]
}

func (f *fakeFilter) Suppress(file string, line, col1 int, kind Kind) bool {
	return f.suppress[key(line, col1, kind)]
}

func TestReportRecordsTopicAndMistakeLines(t *testing.T) {
	r := NewReport("f.hoon", nil, false)
	rec := r.Recorder()

	rec(3, mkIndent(4, 2, 0, "off by one"))

	assert.True(t, r.TopicLines[3])
	assert.True(t, r.TopicLines[4])
	require.Len(t, r.MistakeLines[4], 1)
	assert.Equal(t, "off by one", r.MistakeLines[4][0].Description)
}

func TestReportDropsDisallowedMistakes(t *testing.T) {
	f := &fakeFilter{allow: map[string]bool{}}
	r := NewReport("f.hoon", f, false)
	rec := r.Recorder()

	rec(1, mkIndent(1, 0, 0, "nope"))

	assert.Empty(t, r.MistakeLines)
	assert.Empty(t, r.TopicLines)
}

func TestReportDropsSuppressedMistakesWithoutCensus(t *testing.T) {
	f := &fakeFilter{suppress: map[string]bool{key(1, 1, KindIndent): true}}
	r := NewReport("f.hoon", f, false)
	rec := r.Recorder()

	rec(1, mkIndent(1, 0, 0, "suppressed one"))

	assert.Empty(t, r.MistakeLines)
}

func TestReportKeepsSuppressedMistakesWithCensusTagged(t *testing.T) {
	f := &fakeFilter{suppress: map[string]bool{key(1, 1, KindIndent): true}}
	r := NewReport("f.hoon", f, true)
	rec := r.Recorder()

	rec(1, mkIndent(1, 0, 0, "tagged"))

	require.Len(t, r.MistakeLines[1], 1)
	assert.Equal(t, "SUPPRESSION tagged", r.MistakeLines[1][0].Description)
}

func TestReportCensusEntryBypassesFilterEntirely(t *testing.T) {
	f := &fakeFilter{allow: map[string]bool{}}
	r := NewReport("f.hoon", f, true)
	rec := r.Recorder()

	rec(2, mkCensus(2, 0, "backdented"))

	require.Len(t, r.MistakeLines[2], 1)
	assert.True(t, r.MistakeLines[2][0].IsCensus)
	assert.True(t, r.TopicLines[2])
}
