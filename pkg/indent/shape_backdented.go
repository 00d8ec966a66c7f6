package indent

import "fmt"

// backdentFormula implements the descending-staircase expected-column
// rule shared by the backdented (default) and note/cast shapes (spec
// §4.5.1, §4.5.2): with N+1 gap-indents, index i (i>=1) is expected at
// baseCol + 2*(N-i+1) unless it shares a line with the previous
// gap-indent, in which case no column constraint applies.
func backdentFormula(baseCol int, gaps []GapIndent) []Mistake {
	if len(gaps) == 0 {
		return nil
	}
	n := len(gaps) - 1

	var mistakes []Mistake
	for i := 1; i < len(gaps); i++ {
		if gaps[i].Line == gaps[i-1].Line {
			continue
		}
		expected := baseCol + 2*(n-i+1)
		if gaps[i].Col != expected {
			m := mkIndent(gaps[i].Line, gaps[i].Col, i,
				fmt.Sprintf("child %d at column %d, expected %d", i, gaps[i].Col, expected))
			mistakes = append(mistakes, m.withBackdentColumn(expected))
		}
	}
	return mistakes
}

// checkBackdented is the default shape checker (spec §4.5.1). tallBody
// constructs and everything unclassified use this.
func checkBackdented(gaps []GapIndent) []Mistake {
	if len(gaps) == 0 {
		return nil
	}
	return backdentFormula(gaps[0].Col, gaps)
}

// noteIndentFor computes the innermost of enclosing body-indent, else
// enclosing tall-rune-indent, else the node's own column (spec §4.5.2).
func noteIndentFor(ctx Context, ownCol int) int {
	if ctx.BodyIndent != nil {
		return *ctx.BodyIndent
	}
	if ctx.TallRuneIndent != nil {
		return *ctx.TallRuneIndent
	}
	return ownCol
}

// checkNote is the cast/note alignment shape checker (spec §4.5.2).
func checkNote(gaps []GapIndent, ctx Context) []Mistake {
	if len(gaps) == 0 {
		return nil
	}
	return backdentFormula(noteIndentFor(ctx, gaps[0].Col), gaps)
}
