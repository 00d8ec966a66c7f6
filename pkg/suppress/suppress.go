// Package suppress implements the suppression/inclusion filter (spec
// §4.7, §6): it loads the `<file> <line>:<col> <kind> [message]` text
// format and matches diagnostic tags against it, tracking which
// suppression entries never fired.
//
// Grounded on the teacher's internal/configloader: an explicit
// load-then-validate-then-report-unused shape, generalized here from a
// YAML config merge to a plain-text entry list since spec §6's file
// format is bespoke, not YAML.
package suppress

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/harlowdrift/tallint/pkg/indent"
)

// ErrMalformedLine is wrapped with file/line context when a
// suppression or inclusion entry cannot be parsed.
var ErrMalformedLine = errors.New("malformed suppression/inclusion line")

// Tag is the (file, line, column, kind) identity a diagnostic is
// matched against. Column is 1-based, matching the reported diagnostic
// position (spec §6).
type Tag struct {
	File string
	Line int
	Col  int
	Kind indent.Kind
}

// entry is one parsed line of a suppression or inclusion file.
type entry struct {
	Tag     Tag
	Message string
	used    bool
}

// List is a loaded set of suppression and/or inclusion entries. A List
// from NewList with nothing loaded is an empty filter: nothing is
// suppressed, and with no inclusion entries present everything is
// allowed (spec §6: inclusion only restricts when active). Loading
// entries needs the maps NewList allocates; the zero value has none.
type List struct {
	suppressions []*entry
	// suppressIndex maps a tag to its entry for O(1) lookup.
	suppressIndex map[Tag]*entry

	inclusions      []*entry
	inclusionActive bool
	inclusionIndex  map[Tag]bool
}

// NewList returns an empty filter.
func NewList() *List {
	return &List{
		suppressIndex:  make(map[Tag]*entry),
		inclusionIndex: make(map[Tag]bool),
	}
}

// LoadSuppressions parses r as a suppression file and merges its
// entries into l. Repeatable per spec §6 ("-S FILE ... Repeatable").
func (l *List) LoadSuppressions(name string, r io.Reader) error {
	entries, err := parse(name, r)
	if err != nil {
		return err
	}
	for _, e := range entries {
		l.suppressions = append(l.suppressions, e)
		l.suppressIndex[e.Tag] = e
	}
	return nil
}

// LoadInclusions parses r as an inclusion file and activates
// inclusion-only mode: once any inclusion file is loaded, only tags
// present in some inclusion file are ever reported (spec §6).
func (l *List) LoadInclusions(name string, r io.Reader) error {
	entries, err := parse(name, r)
	if err != nil {
		return err
	}
	l.inclusionActive = true
	for _, e := range entries {
		l.inclusions = append(l.inclusions, e)
		l.inclusionIndex[e.Tag] = true
	}
	return nil
}

// Allowed implements indent.Filter: with no inclusion list active,
// everything is allowed; otherwise only tags present in some loaded
// inclusion file pass (spec §6, §8 "Inclusion" property).
func (l *List) Allowed(file string, line, col1 int, kind indent.Kind) bool {
	if !l.inclusionActive {
		return true
	}
	return l.inclusionIndex[Tag{File: file, Line: line, Col: col1, Kind: kind}]
}

// Suppress implements indent.Filter: reports whether the tag matches a
// loaded suppression entry, marking it used as a side effect (spec §4.7,
// §8 "Suppression" property).
func (l *List) Suppress(file string, line, col1 int, kind indent.Kind) bool {
	e, ok := l.suppressIndex[Tag{File: file, Line: line, Col: col1, Kind: kind}]
	if !ok {
		return false
	}
	e.used = true
	return true
}

// Unused returns every suppression tag that never matched a diagnostic,
// in the order they were loaded (spec §6: "Unused suppression: ...").
func (l *List) Unused() []Tag {
	var out []Tag
	for _, e := range l.suppressions {
		if !e.used {
			out = append(out, e.Tag)
		}
	}
	return out
}

// parse reads one suppression/inclusion file's entries. Lines are
// stripped of `#...` comments and surrounding whitespace; blank lines
// are ignored. A malformed non-blank line fails fast, naming the
// offending line number (spec §6).
func parse(name string, r io.Reader) ([]*entry, error) {
	var entries []*entry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		e, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w: %v", name, lineNo, ErrMalformedLine, err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return entries, nil
}

// parseLine parses `<file> <line>:<col> <kind> [message...]`.
func parseLine(line string) (*entry, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nil, fmt.Errorf("expected at least 3 fields, got %d", len(fields))
	}

	file := fields[0]
	lineCol := fields[1]
	kindStr := fields[2]
	message := strings.TrimSpace(strings.Join(fields[3:], " "))

	pos := strings.SplitN(lineCol, ":", 2)
	if len(pos) != 2 {
		return nil, fmt.Errorf("expected line:col, got %q", lineCol)
	}
	lineNum, err := strconv.Atoi(pos[0])
	if err != nil {
		return nil, fmt.Errorf("invalid line number %q: %w", pos[0], err)
	}
	colNum, err := strconv.Atoi(pos[1])
	if err != nil {
		return nil, fmt.Errorf("invalid column number %q: %w", pos[1], err)
	}

	kind, ok := indent.ParseKind(kindStr)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q, expected indent or sequence", kindStr)
	}

	return &entry{
		Tag:     Tag{File: file, Line: lineNum, Col: colNum, Kind: kind},
		Message: message,
	}, nil
}
