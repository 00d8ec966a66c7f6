package reporter

import "sort"

// Block is a contiguous span of source lines displayed together,
// grounded on the teacher's reporter package sharing one accumulator
// across a grouped render.
//
// Built by merging the ±(contextSize-1) window around every topic line
// into the smallest set of non-overlapping, non-adjacent runs (spec
// §4.6.2, §6: "groups contiguous topic lines within ±(context_size − 1)
// lines into blocks, inserts divider lines between non-adjacent
// blocks").
type Block struct {
	Start, End int // 1-based, inclusive
}

// BuildBlocks merges the context window around every topic line,
// returning blocks in ascending line order. contextSize <= 0 collapses
// every topic line to a single-line block (contextSize == 0 means "no
// source shown"; callers still need the block identities to group
// diagnostics for printing).
func BuildBlocks(topicLines map[int]bool, contextSize, lineCount int) []Block {
	if len(topicLines) == 0 {
		return nil
	}

	lines := make([]int, 0, len(topicLines))
	for l := range topicLines {
		lines = append(lines, l)
	}
	sort.Ints(lines)

	radius := contextSize - 1
	if radius < 0 {
		radius = 0
	}

	var blocks []Block
	for _, l := range lines {
		start := l - radius
		if start < 1 {
			start = 1
		}
		end := l + radius
		if lineCount > 0 && end > lineCount {
			end = lineCount
		}

		if n := len(blocks); n > 0 && start <= blocks[n-1].End+1 {
			if end > blocks[n-1].End {
				blocks[n-1].End = end
			}
			continue
		}
		blocks = append(blocks, Block{Start: start, End: end})
	}
	return blocks
}
