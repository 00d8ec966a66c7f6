package pretty

import (
	"fmt"
	"strings"

	"github.com/harlowdrift/tallint/pkg/indent"
)

// FormatDiagnostic formats one mistake as the line-oriented diagnostic
// format: "<file> <line>:<col> <kind> <hoon-name> <description>" (spec
// §6). Column is rendered 1-based; Mistake.Column is stored 0-based.
func (s *Styles) FormatDiagnostic(file string, m indent.Mistake) string {
	hoonName := m.HoonName
	if hoonName == "" {
		hoonName = "-"
	}
	return fmt.Sprintf("%s %s %s %s %s",
		s.FilePath.Render(file),
		s.Location.Render(fmt.Sprintf("%d:%d", m.Line, m.Column+1)),
		s.severityKind(m.Kind),
		s.HoonName.Render(hoonName),
		s.Message.Render(m.Description),
	)
}

func (s *Styles) severityKind(kind indent.Kind) string {
	switch kind {
	case indent.KindSequence:
		return s.Warning.Render(kind.String())
	default:
		return s.Error.Render(kind.String())
	}
}

// FormatContextLine renders one line of a context window, prefixed by
// its marker: '!' for a line carrying a mistake, '>' for a topic line
// with no mistake of its own (an enclosing construct's line), or space
// for plain surrounding context (spec §4.6.2, §6).
func (s *Styles) FormatContextLine(marker byte, line int, text string) string {
	var markerStyle = s.ContextLine
	switch marker {
	case '!':
		markerStyle = s.MistakeMarker
	case '>':
		markerStyle = s.TopicMarker
	}
	return fmt.Sprintf("%s %4d | %s", markerStyle.Render(string(marker)), line, s.ContextLine.Render(text))
}

// FormatDivider renders the separator printed between non-adjacent
// context blocks.
func (s *Styles) FormatDivider() string {
	return s.Divider.Render(strings.Repeat("-", 3))
}

// FormatUnusedSuppression renders one "Unused suppression: <kind>
// <line>:<col>" trailer line for a suppression entry that never matched
// a diagnostic.
func (s *Styles) FormatUnusedSuppression(kind indent.Kind, line, col int) string {
	return fmt.Sprintf("%s %s %d:%d", s.Dim.Render("Unused suppression:"), kind.String(), line, col)
}
