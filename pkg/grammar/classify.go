package grammar

import "fmt"

// classify builds the precomputed rule_id -> shape dispatch table (spec
// §4.2, §9). Order of precedence, most specific first:
//
//  1. an explicit shape named in grammar.toml (the enumerated classes:
//     tallNote, tallLusLus, tallJog, the four jogging shapes, and "none"
//     for a list-of-jogs container such as ruck5d);
//  2. gapiness == -1 (gap-separated sequence rules get the Sequence
//     checker regardless of LHS name);
//  3. mortar glue with no explicit shape gets ShapeNone: its own
//     indentation is never checked, only its children's;
//  4. LHS name matching tall<Rune6>[Mold] (tallRune) defaults to
//     ShapeBackdented — this is tallBody, since tallNote is already
//     carved out by rule 1;
//  5. anything else also defaults to ShapeBackdented (spec §4.2: "An
//     unclassified tall rule defaults to backdented").
func classify(cat *Catalog) error {
	cat.shapeByRuleID = make([]Shape, len(cat.rules))

	for i := range cat.rules {
		r := &cat.rules[i]
		r.IsTallRune = tallRunePattern.MatchString(r.LHS)

		var shape Shape
		switch {
		case r.rawShape != "":
			s, ok := shapeByName[r.rawShape]
			if !ok {
				return fmt.Errorf("grammar: rule %q names unknown shape %q", r.LHS, r.rawShape)
			}
			shape = s
		case r.Gapiness == -1:
			shape = ShapeSequence
		case r.IsMortar:
			shape = ShapeNone
		default:
			// Matching tallRunePattern or not, the fallback value is the
			// same; tallBody and the generic unclassified catch-all both
			// land on ShapeBackdented (spec §4.2).
			shape = ShapeBackdented
		}

		cat.shapeByRuleID[r.ID] = shape
		r.IsTallBody = r.IsTallRune && shape != ShapeNote
	}

	return nil
}
