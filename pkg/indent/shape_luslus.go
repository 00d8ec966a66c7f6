package indent

import "fmt"

// checkLusLus is the cell-constructor alignment shape checker (spec
// §4.5.3): children on lines after the first all sit at base_col+2;
// same-line children are unconstrained. Per spec §9's open question
// decision, the commented-out +2 body-indent override stays disabled —
// this checker does not push a BodyIndent into the context.
func checkLusLus(gaps []GapIndent) []Mistake {
	if len(gaps) == 0 {
		return nil
	}
	baseCol := gaps[0].Col
	expected := baseCol + 2

	var mistakes []Mistake
	for i := 1; i < len(gaps); i++ {
		if gaps[i].Line == gaps[i-1].Line {
			continue
		}
		if gaps[i].Col != expected {
			m := mkIndent(gaps[i].Line, gaps[i].Col, i,
				fmt.Sprintf("cell child %d at column %d, expected %d", i, gaps[i].Col, expected))
			mistakes = append(mistakes, m.withExpectedColumn(expected))
		}
	}
	return mistakes
}
