package grammar

// Shape is the whitespace shape class a rule dispatches to (spec §4.2).
type Shape int

const (
	// ShapeNone marks rules whose own indentation is never checked
	// directly — pure sequence-of-jogs containers, where the jogs
	// themselves carry the check.
	ShapeNone Shape = iota
	// ShapeBackdented is the descending-staircase default, also used by
	// tallBody (spec §4.5.1).
	ShapeBackdented
	// ShapeNote is cast/note alignment (spec §4.5.2).
	ShapeNote
	// ShapeLusLus is cell-constructor alignment (spec §4.5.3).
	ShapeLusLus
	// ShapeSequence is the gap-separated sequence shape (spec §4.5.4).
	ShapeSequence
	// ShapeJog is a single jog within a jogging (spec §4.5.5).
	ShapeJog
	// ShapeJogging0 is 0-jogging: no head, no tail (spec §4.5.6).
	ShapeJogging0
	// ShapeJogging1 is 1-jogging: one head, no tail (spec §4.5.7).
	ShapeJogging1
	// ShapeJogging2 is 2-jogging: head and subhead, no tail (spec §4.5.8).
	ShapeJogging2
	// ShapeJoggingPrefix is prefix-jogging: tail, no head (spec §4.5.9).
	ShapeJoggingPrefix
)

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeBackdented:
		return "backdented"
	case ShapeNote:
		return "note"
	case ShapeLusLus:
		return "lusLus"
	case ShapeSequence:
		return "sequence"
	case ShapeJog:
		return "jog"
	case ShapeJogging0:
		return "0-jogging"
	case ShapeJogging1:
		return "1-jogging"
	case ShapeJogging2:
		return "2-jogging"
	case ShapeJoggingPrefix:
		return "prefix-jogging"
	default:
		return "unknown"
	}
}

// IsJogging reports whether s is one of the four jogging-bearing shapes.
func (s Shape) IsJogging() bool {
	switch s {
	case ShapeJogging0, ShapeJogging1, ShapeJogging2, ShapeJoggingPrefix:
		return true
	default:
		return false
	}
}

var shapeByName = map[string]Shape{
	"":               ShapeBackdented,
	"none":           ShapeNone,
	"tallNote":       ShapeNote,
	"tallLusLus":     ShapeLusLus,
	"tallJog":        ShapeJog,
	"tall_0Jogging":  ShapeJogging0,
	"tall_1Jogging":  ShapeJogging1,
	"tall_2Jogging":  ShapeJogging2,
	"tallJogging1_":  ShapeJoggingPrefix,
	"tallSequence":   ShapeSequence,
	"tallBackdented": ShapeBackdented,
}
