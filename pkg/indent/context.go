package indent

// Sidedness is a jogging's inferred chess-sidedness (spec §4.4, GLOSSARY).
type Sidedness int

const (
	Kingside Sidedness = iota
	Queenside
)

func (s Sidedness) String() string {
	if s == Queenside {
		return "queenside"
	}
	return "kingside"
}

// Ancestor is a bounded record of a recent enclosing production, kept for
// diagnostics that need to look past the immediate parent.
type Ancestor struct {
	RuleID int32
	Start  int
}

const maxAncestors = 5

// Context is the lint context threaded down the tree walk (spec §3). It
// is always passed by value; every With* method returns a derived copy
// and never mutates the receiver, so siblings never see each other's
// mutations (spec §9: "each recursive call receives its own derived
// context by value").
type Context struct {
	// Line is the source line of the parent node being walked.
	Line int

	// IndentStack holds the columns seen so far on the current line.
	IndentStack []int

	// Ancestors is the 5 most recent (rule_id, start) pairs.
	Ancestors []Ancestor

	// BodyIndent is set while inside a tallBody construct, to its column.
	BodyIndent *int
	// TallRuneIndent is set while inside a tallRune construct, to its column.
	TallRuneIndent *int

	// ChessSide, JogRuneColumn, and JogBodyColumn are populated by a
	// jogging ancestor for its immediate jog children, then cleared
	// before recursing further (spec §4.5.5, §9).
	ChessSide     *Sidedness
	JogRuneColumn *int
	JogBodyColumn *int

	// HoonName is the nearest enclosing non-mortar LHS name.
	HoonName string
}

func intPtr(v int) *int               { return &v }
func sidePtr(v Sidedness) *Sidedness { return &v }

// WithBodyIndent returns a copy with BodyIndent set to col.
func (c Context) WithBodyIndent(col int) Context {
	c.BodyIndent = intPtr(col)
	return c
}

// WithTallRuneIndent returns a copy with TallRuneIndent set to col.
func (c Context) WithTallRuneIndent(col int) Context {
	c.TallRuneIndent = intPtr(col)
	return c
}

// WithJogging returns a copy carrying the jogging census results for
// consumption by the jogging's immediate jog children.
func (c Context) WithJogging(side Sidedness, runeColumn, bodyColumn int) Context {
	c.ChessSide = sidePtr(side)
	c.JogRuneColumn = intPtr(runeColumn)
	c.JogBodyColumn = intPtr(bodyColumn)
	return c
}

// WithoutJogging clears the jogging attributes so they do not leak past
// the jog that consumes them (spec §4.5.5, §9).
func (c Context) WithoutJogging() Context {
	c.ChessSide = nil
	c.JogRuneColumn = nil
	c.JogBodyColumn = nil
	return c
}

// WithHoonName returns a copy with HoonName updated, unless name is empty
// (mortar productions do not update it; spec §4.6 step 4).
func (c Context) WithHoonName(name string) Context {
	if name == "" {
		return c
	}
	c.HoonName = name
	return c
}

// WithAncestor appends (ruleID, start) to Ancestors, bounded to the 5
// most recent entries.
func (c Context) WithAncestor(ruleID int32, start int) Context {
	next := make([]Ancestor, 0, maxAncestors)
	next = append(next, c.Ancestors...)
	next = append(next, Ancestor{RuleID: ruleID, Start: start})
	if len(next) > maxAncestors {
		next = next[len(next)-maxAncestors:]
	}
	c.Ancestors = next
	return c
}

// Grandparent returns the second-most-recent ancestor's rule ID, or -1 if
// there isn't one. Used by the sequence checker's tallSemsig special case
// (spec §4.5.4).
func (c Context) Grandparent() (ruleID int32, ok bool) {
	if len(c.Ancestors) < 2 {
		return -1, false
	}
	a := c.Ancestors[len(c.Ancestors)-2]
	return a.RuleID, true
}

// AdvanceLine implements the indent-stack maintenance rule (spec §4.6
// step 5): entering a new line resets the stack to [column]; staying on
// the same line pushes column only if it differs from the top.
func (c Context) AdvanceLine(line, column int) Context {
	if line != c.Line {
		c.Line = line
		c.IndentStack = []int{column}
		return c
	}
	if len(c.IndentStack) == 0 || c.IndentStack[len(c.IndentStack)-1] != column {
		next := make([]int, len(c.IndentStack), len(c.IndentStack)+1)
		copy(next, c.IndentStack)
		c.IndentStack = append(next, column)
	}
	return c
}
