package indent

import (
	"fmt"

	"github.com/harlowdrift/tallint/pkg/cst"
)

// checkJog is the single-jog shape checker (spec §4.5.5). It consumes
// ChessSide, JogRuneColumn, and JogBodyColumn from ctx; the walker is
// responsible for clearing them on the context passed to this jog's own
// children so they never leak into grandchildren.
func checkJog(tree *cst.Tree, id cst.NodeID, ctx Context) []Mistake {
	if ctx.ChessSide == nil || ctx.JogRuneColumn == nil {
		panicInternal("indent.checkJog", "jog %d checked with no chess-sidedness in context", id)
	}
	info, ok := jogGeometry(tree, id)
	if !ok {
		return nil
	}

	runeCol := *ctx.JogRuneColumn
	var mistakes []Mistake

	if *ctx.ChessSide == Kingside {
		expectedHead := runeCol + 2
		if info.HeadCol != expectedHead {
			mistakes = append(mistakes, headMistake(info, expectedHead, "kingside"))
		}
		if !info.Flat {
			expectedBody := runeCol + 4
			if info.BodyCol != expectedBody {
				mistakes = append(mistakes, bodyMistake(info, expectedBody, "kingside seaside"))
			}
		} else if info.GapLength != 2 && ctx.JogBodyColumn != nil {
			expectedBody := *ctx.JogBodyColumn
			if info.BodyCol != expectedBody {
				mistakes = append(mistakes, bodyMistake(info, expectedBody, "kingside aligned"))
			}
		}
		return mistakes
	}

	// Queenside.
	expectedHead := runeCol + 4
	if info.HeadCol != expectedHead {
		mistakes = append(mistakes, headMistake(info, expectedHead, "queenside"))
	}
	if !info.Flat {
		expectedBody := runeCol + 2
		if info.BodyCol != expectedBody {
			mistakes = append(mistakes, bodyMistake(info, expectedBody, "queenside split"))
		}
	} else if info.GapLength != 2 && ctx.JogBodyColumn != nil {
		expectedBody := *ctx.JogBodyColumn
		if info.BodyCol != expectedBody {
			mistakes = append(mistakes, bodyMistake(info, expectedBody, "queenside aligned"))
		}
	}
	return mistakes
}

func headMistake(info jogInfo, expected int, label string) Mistake {
	verb, mag := indentDelta(info.HeadCol, expected)
	m := mkIndent(info.HeadLine, info.HeadCol, 0,
		fmt.Sprintf("Jog %s head %s by %d.", label, verb, mag))
	return m.withExpectedColumn(expected)
}

// indentDelta describes actual vs. expected as "underindented"/"by N"
// or "overindented"/"by N", matching the corpus's diagnostic wording
// (spec §8 scenario 2).
func indentDelta(actual, expected int) (verb string, magnitude int) {
	if actual < expected {
		return "underindented", expected - actual
	}
	return "overindented", actual - expected
}

func bodyMistake(info jogInfo, expected int, label string) Mistake {
	m := mkIndent(info.BodyLine, info.BodyCol, 2,
		fmt.Sprintf("jog %s body at column %d, expected %d", label, info.BodyCol, expected))
	return m.withExpectedColumn(expected)
}
