package cst

import "sort"

// PositionIndex precomputes a line-number-to-byte-offset mapping for a
// source buffer and answers (line, column) lookups from an offset.
//
// Grounded on the teacher's pkg/mdast/lines.go: a line-start table built
// by one scan for newlines, then binary search for lookups.
type PositionIndex struct {
	// lineStarts[i] is the byte offset of line i+1 (1-based lines, 0-based slice).
	lineStarts []int
	length     int
}

// NewPositionIndex scans source once for '\n' bytes and records each
// line's starting offset.
func NewPositionIndex(source []byte) *PositionIndex {
	starts := make([]int, 1, 64)
	starts[0] = 0
	for i, b := range source {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &PositionIndex{lineStarts: starts, length: len(source)}
}

// LineColumn converts a byte offset to a 1-based line and 0-based column:
// the column is the offset minus the byte offset of its line's start.
func (p *PositionIndex) LineColumn(offset int) (line int, col0 int) {
	if offset < 0 {
		offset = 0
	}
	if offset > p.length {
		offset = p.length
	}
	// Largest i such that lineStarts[i] <= offset.
	i := sort.Search(len(p.lineStarts), func(i int) bool {
		return p.lineStarts[i] > offset
	}) - 1
	if i < 0 {
		i = 0
	}
	return i + 1, offset - p.lineStarts[i]
}

// Column1 converts a byte offset to its 1-based display column.
func (p *PositionIndex) Column1(offset int) int {
	_, col0 := p.LineColumn(offset)
	return col0 + 1
}

// LineStart returns the byte offset of the start of a 1-based line.
func (p *PositionIndex) LineStart(line int) int {
	if line < 1 || line > len(p.lineStarts) {
		return -1
	}
	return p.lineStarts[line-1]
}

// LineCount returns the number of lines recorded.
func (p *PositionIndex) LineCount() int {
	return len(p.lineStarts)
}

// LineContent returns the content of a 1-based line number, excluding
// its trailing newline, from source. Returns nil if the line is out of
// range.
func (p *PositionIndex) LineContent(source []byte, line int) []byte {
	if line < 1 || line > len(p.lineStarts) {
		return nil
	}
	start := p.lineStarts[line-1]
	end := p.length
	if line < len(p.lineStarts) {
		end = p.lineStarts[line] - 1
	}
	if end > len(source) {
		end = len(source)
	}
	if start > end {
		return nil
	}
	for end > start && (source[end-1] == '\n' || source[end-1] == '\r') {
		end--
	}
	return source[start:end]
}
