package indent

import (
	"fmt"

	"github.com/harlowdrift/tallint/pkg/cst"
)

// checkClosingTISTIS is the shared validator the four jogging shapes
// otherwise each reimplement (spec §9's de-duplication note): the
// closing `==` must not be on the rune's own line, and must sit at
// expectedCol. If the two bytes at the reported position are not
// literally "==", misalignment is suppressed — the parser's terminator
// recovery may have synthesized the node there.
func checkClosingTISTIS(tree *cst.Tree, closing GapIndent, childIndex, expectedCol, runeLine int) []Mistake {
	literal := tree.Text(closing.Node)
	isRealTISTIS := len(literal) == 2 && string(literal) == "=="

	var mistakes []Mistake
	if closing.Line == runeLine {
		if isRealTISTIS {
			mistakes = append(mistakes, mkIndent(closing.Line, closing.Col, childIndex, "TISTIS on rune line; should not be."))
		}
		return mistakes
	}
	if isRealTISTIS && closing.Col != expectedCol {
		m := mkIndent(closing.Line, closing.Col, childIndex,
			fmt.Sprintf("TISTIS at column %d, expected %d", closing.Col, expectedCol))
		mistakes = append(mistakes, m.withExpectedColumn(expectedCol))
	}
	return mistakes
}

// check0Jogging validates a 0-jogging hoon: no head, no tail (spec
// §4.5.6). gaps is [rune, first child, jogging, closing ==].
func check0Jogging(tree *cst.Tree, gaps []GapIndent, runeCol int) []Mistake {
	if len(gaps) < 4 {
		return nil
	}
	rune_, first, closing := gaps[0], gaps[1], gaps[3]

	var mistakes []Mistake
	if first.Line != rune_.Line {
		expected := runeCol + 2
		if first.Col != expected {
			m := mkIndent(first.Line, first.Col, 1,
				fmt.Sprintf("0-jogging first child at column %d, expected %d", first.Col, expected))
			mistakes = append(mistakes, m.withExpectedColumn(expected))
		}
	}
	mistakes = append(mistakes, checkClosingTISTIS(tree, closing, 3, runeCol, rune_.Line)...)
	return mistakes
}

// check1Jogging validates a 1-jogging hoon: one head, no tail (spec
// §4.5.7). gaps is [rune, head, jogging, closing ==, (one more)]; the
// trailing "(one more)" element is optional in practice (a jogging with
// no default clause ends right at "=="), so only the first four
// positions are required here.
func check1Jogging(tree *cst.Tree, gaps []GapIndent, runeCol int, side Sidedness) []Mistake {
	if len(gaps) < 4 {
		return nil
	}
	rune_, head, closing := gaps[0], gaps[1], gaps[3]

	expectedHead := runeCol + 4
	if side == Queenside {
		expectedHead = runeCol + 6
	}

	var mistakes []Mistake
	if head.Line != rune_.Line {
		m := mkIndent(head.Line, head.Col, 1, "jogging head not on rune line")
		mistakes = append(mistakes, m.withExpectedLine(rune_.Line))
	} else if head.Col != expectedHead {
		verb, mag := indentDelta(head.Col, expectedHead)
		m := mkIndent(head.Line, head.Col, 1,
			fmt.Sprintf("Jog %s head %s by %d.", side, verb, mag))
		mistakes = append(mistakes, m.withExpectedColumn(expectedHead))
	}
	mistakes = append(mistakes, checkClosingTISTIS(tree, closing, 3, runeCol, rune_.Line)...)
	return mistakes
}

// check2Jogging validates a 2-jogging hoon: head and subhead, no tail
// (spec §4.5.8). gaps is [rune, first, second, jogging, closing ==, (one
// more)]; the trailing element is optional, as in check1Jogging.
func check2Jogging(tree *cst.Tree, gaps []GapIndent, runeCol int, side Sidedness) []Mistake {
	if len(gaps) < 5 {
		return nil
	}
	rune_, first, second, closing := gaps[0], gaps[1], gaps[2], gaps[4]

	expectedFirst, expectedSecond := runeCol+6, runeCol+4
	if side == Queenside {
		expectedFirst, expectedSecond = runeCol+8, runeCol+6
	}

	var mistakes []Mistake
	if first.Line != rune_.Line {
		m := mkIndent(first.Line, first.Col, 1, "2-jogging first child not on rune line")
		mistakes = append(mistakes, m.withExpectedLine(rune_.Line))
	} else if first.Col != expectedFirst {
		m := mkIndent(first.Line, first.Col, 1,
			fmt.Sprintf("2-jogging first child at column %d, expected %d", first.Col, expectedFirst))
		mistakes = append(mistakes, m.withExpectedColumn(expectedFirst))
	}
	if second.Line != first.Line && second.Col != expectedSecond {
		m := mkIndent(second.Line, second.Col, 2,
			fmt.Sprintf("2-jogging second child at column %d, expected %d", second.Col, expectedSecond))
		mistakes = append(mistakes, m.withExpectedColumn(expectedSecond))
	}
	mistakes = append(mistakes, checkClosingTISTIS(tree, closing, 4, runeCol, rune_.Line)...)
	return mistakes
}

// checkPrefixJogging validates a prefix-jogging hoon (jogging1_): tail,
// no head (spec §4.5.9). gaps is [rune, jogging, closing ==, tail].
//
// The tail's expected column is rune_column regardless of sidedness.
// Only the kingside case has corpus examples; the queenside value here
// is the documented extrapolation (spec §9 open question).
func checkPrefixJogging(tree *cst.Tree, gaps []GapIndent, runeCol int) []Mistake {
	if len(gaps) < 4 {
		return nil
	}
	rune_, closing, tail := gaps[0], gaps[2], gaps[3]

	var mistakes []Mistake
	mistakes = append(mistakes, checkClosingTISTIS(tree, closing, 2, runeCol+2, rune_.Line)...)

	if tail.Line != closing.Line && tail.Col != runeCol {
		m := mkIndent(tail.Line, tail.Col, 3,
			fmt.Sprintf("prefix-jogging tail at column %d, expected %d", tail.Col, runeCol))
		mistakes = append(mistakes, m.withExpectedColumn(runeCol))
	}
	return mistakes
}
