package indent

import (
	"github.com/harlowdrift/tallint/pkg/cst"
	"github.com/harlowdrift/tallint/pkg/grammar"
)

// jogInfo is one jog's derived geometry, used both by the census and by
// the jog checker itself.
type jogInfo struct {
	Node cst.NodeID

	HeadLine, HeadCol int
	GapLine, GapCol   int
	GapLength         int
	BodyLine, BodyCol int

	Flat bool // head and body share a line
}

// jogGeometry computes one jog node's head/gap/body positions. A jog
// node always has exactly three children: head, gap, body.
func jogGeometry(tree *cst.Tree, id cst.NodeID) (jogInfo, bool) {
	children := tree.Children(id)
	if len(children) < 3 {
		return jogInfo{}, false
	}
	head, gap, body := tree.Node(children[0]), tree.Node(children[1]), tree.Node(children[2])
	headLine, headCol := tree.Index.LineColumn(head.Start)
	gapLine, gapCol := tree.Index.LineColumn(gap.Start)
	bodyLine, bodyCol := tree.Index.LineColumn(body.Start)
	return jogInfo{
		Node:      id,
		HeadLine:  headLine,
		HeadCol:   headCol,
		GapLine:   gapLine,
		GapCol:    gapCol,
		GapLength: gap.Length,
		BodyLine:  bodyLine,
		BodyCol:   bodyCol,
		Flat:      headLine == bodyLine,
	}, true
}

// jogsOf returns the jog children of a jogging sequence node (a ruck5d
// rule application), in source order, skipping the synthetic gap
// separators between them.
func jogsOf(tree *cst.Tree, cat *grammar.Catalog, joggingList cst.NodeID) []jogInfo {
	var jogs []jogInfo
	for _, childID := range tree.Children(joggingList) {
		n := tree.Node(childID)
		if n.Kind != cst.KindNode {
			continue
		}
		if cat.ShapeOf(n.RuleID) != grammar.ShapeJog {
			continue
		}
		info, ok := jogGeometry(tree, childID)
		if !ok {
			continue
		}
		jogs = append(jogs, info)
	}
	return jogs
}

// censusResult is the outcome of running the jogging census over one
// jogging instance (spec §4.4).
type censusResult struct {
	Side       Sidedness
	BodyColumn int
}

// runJoggingCensus infers a jogging's chess-sidedness and aligned body
// column from its jogs (spec §4.4). runeColumn is the column of the
// jogging-bearing rune.
func runJoggingCensus(jogs []jogInfo, runeColumn int) censusResult {
	if len(jogs) == 0 {
		return censusResult{Side: Queenside, BodyColumn: runeColumn}
	}

	kingsideCount, queensideCount := 0, 0
	for _, j := range jogs {
		if j.HeadCol-runeColumn >= 4 {
			queensideCount++
		} else {
			kingsideCount++
		}
	}

	// Open question (spec §9): ties resolve to queenside, matching the
	// corpus's literal `kingside > queenside ? kingside : queenside`.
	side := Kingside
	if queensideCount >= kingsideCount {
		side = Queenside
	}

	type candidate struct {
		col          int
		count        int
		earliestLine int
	}
	var cands []candidate
	indexOf := make(map[int]int)

	for _, j := range jogs {
		// A flat jog's gap is at minimum a 2-space GAP; only a gap wider
		// than that minimal separator indicates an alignment attempt
		// (spec §4.4, and the "gap of exactly 2 is unaligned" rule the
		// jog checker applies in §4.5.5).
		if !j.Flat || j.GapLength <= 2 {
			continue
		}
		if i, ok := indexOf[j.BodyCol]; ok {
			cands[i].count++
		} else {
			indexOf[j.BodyCol] = len(cands)
			cands = append(cands, candidate{col: j.BodyCol, count: 1, earliestLine: j.BodyLine})
		}
	}

	if len(cands) == 0 {
		// No jog shows an alignment attempt; fall back to the first body
		// column seen overall (spec §4.4).
		return censusResult{Side: side, BodyColumn: jogs[0].BodyCol}
	}

	best := cands[0]
	for _, c := range cands[1:] {
		if c.count > best.count || (c.count == best.count && c.earliestLine >= best.earliestLine) {
			best = c
		}
	}
	return censusResult{Side: side, BodyColumn: best.col}
}
