// Package parser is the external collaborator spec §1 and §6 describe
// but leave unspecified: a grammar and parser producing the CST the
// linter consumes. It implements a practical subset of the rune
// language — enough of the jogging, cast, cell-constructor, and
// sequence productions named in pkg/grammar's bundled grammar.toml to
// exercise every shape checker in pkg/indent end to end.
//
// Grounded on the teacher's pkg/parser/goldmark (tokenize, then map
// into the tree shape) and on other_examples/daios-ai-msg's
// arena/NodeID lexer+parser pair for a whitespace-sensitive,
// prefix-tagged language. Scanning is hand-written against the
// standard library, like every tokenizer in the retrieval pack: no
// example repo ships a lexer generator suited to a bespoke prefix
// grammar.
package parser

import (
	"errors"
	"fmt"

	"github.com/harlowdrift/tallint/pkg/cst"
	"github.com/harlowdrift/tallint/pkg/grammar"
)

// ErrParse marks a syntax error: malformed input the parser cannot
// recover from (spec §5: "a failed parse aborts before the walk").
var ErrParse = errors.New("parse error")

// SyntaxError names the offset at which parsing failed, for the CLI to
// render as "file:line:col: message" (spec §7 user errors).
type SyntaxError struct {
	Offset  int
	Line    int
	Col     int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Message)
}

func (e *SyntaxError) Unwrap() error { return ErrParse }

// runeForm pairs a rune's literal spelling with the grammar rule it
// introduces.
type runeForm struct {
	literal string
	rule    string
}

// runeTable lists every rune this parser recognizes, longest-literal
// concerns aside since every spelling here is exactly two bytes. Names
// follow the language's own digraph convention (spec GLOSSARY: "a
// two-character ASCII symbol"), e.g. tallWutBar's rune is wut+bar = "?|".
var runeTable = []runeForm{
	{"?|", "tallWutBar"},
	{"?-", "tallWutHep"},
	{"?:", "tallWutKet"},
	{"?&", "tallWutPam"},
	{";~", "tallSemsig"},
	{":-", "tallColhep"},
	{".^", "tallDotket"},
	{"++", "LuslusCell"},
	{"+-", "LushepCell"},
	{"+=", "LustisCell"},
}

// Parse tokenizes and parses source into a cst.Tree against cat. It
// returns *SyntaxError (wrapping ErrParse) for malformed input.
func Parse(cat *grammar.Catalog, source []byte) (*cst.Tree, error) {
	p := &parser{src: source, cat: cat, tree: cst.NewTree(source)}

	p.skipLeadingGap()
	root, err := p.parseHoon()
	if err != nil {
		return nil, err
	}
	p.skipLeadingGap()
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected trailing input")
	}

	p.tree.Root = root

	if err := cst.Validate(p.tree); err != nil {
		// A failed invariant check means this parser built a malformed
		// tree, not that the input was malformed; surface it distinctly
		// from ErrParse so the CLI maps it to an internal-error exit.
		return nil, err
	}

	return p.tree, nil
}

type parser struct {
	src  []byte
	pos  int
	cat  *grammar.Catalog
	tree *cst.Tree
}

func (p *parser) errorf(format string, args ...any) *SyntaxError {
	line, col := p.tree.Index.LineColumn(p.pos)
	return &SyntaxError{Offset: p.pos, Line: line, Col: col + 1, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) mustSymbol(name string) int32 {
	id, ok := p.cat.SymbolID(name)
	if !ok {
		panic(fmt.Sprintf("parser: grammar has no symbol %q", name))
	}
	return id
}

func (p *parser) mustRule(name string) int32 {
	id, ok := p.cat.RuleID(name)
	if !ok {
		panic(fmt.Sprintf("parser: grammar has no rule %q", name))
	}
	return id
}

func (p *parser) makeLexeme(kind cst.Kind, symbolID int32, start, length int) cst.NodeID {
	return p.tree.Alloc(cst.Node{
		Kind: kind, RuleID: -1, SymbolID: symbolID,
		Start: start, Length: length,
		Parent: cst.NoNode, Prev: cst.NoNode, Next: cst.NoNode,
	})
}

func (p *parser) makeNode(ruleID int32, children []cst.NodeID) cst.NodeID {
	id := p.tree.Alloc(cst.Node{Kind: cst.KindNode, RuleID: ruleID, SymbolID: -1, Parent: cst.NoNode, Prev: cst.NoNode, Next: cst.NoNode})
	for _, c := range children {
		p.tree.Link(id, c)
	}
	p.tree.Recompute(id)
	return id
}

// skipLeadingGap consumes any whitespace run at the current position
// without emitting a node; used only at the very start and end of the
// source, which are outside any production's span.
func (p *parser) skipLeadingGap() {
	p.pos += whitespaceRun(p.src, p.pos)
}

// expectGap consumes a GAP token: a whitespace run of length >= 2, or
// any run containing a newline (spec §3, §4.3).
func (p *parser) expectGap() (cst.NodeID, error) {
	start := p.pos
	n := whitespaceRun(p.src, start)
	if n == 0 || (n == 1 && !containsNewline(p.src, start, n)) {
		return cst.NoNode, p.errorf("expected a gap (2+ spaces or a newline)")
	}
	p.pos = start + n
	return p.makeLexeme(cst.KindLexeme, p.mustSymbol("GAP"), start, n), nil
}

// peekLiteral reports whether lit occurs at the current position.
func (p *parser) peekLiteral(lit string) bool {
	end := p.pos + len(lit)
	return end <= len(p.src) && string(p.src[p.pos:end]) == lit
}

// parseTerm scans a TERM atom: a maximal run of name/atom characters.
func (p *parser) parseTerm() (cst.NodeID, error) {
	n := termRun(p.src, p.pos)
	if n == 0 {
		return cst.NoNode, p.errorf("expected a term")
	}
	id := p.makeLexeme(cst.KindLexeme, p.mustSymbol("TERM"), p.pos, n)
	p.pos += n
	return id, nil
}

// parseTistis parses the closing "==" marker. Per spec §4.5.6 the
// literal at this position may not actually be "==" — the parser's own
// terminator recovery inserted something else — in which case the
// downstream checker suppresses the misalignment report rather than
// the parser failing outright. So this scans a TERM-shaped run (or the
// literal "==") and tags it TISTIS regardless of content.
func (p *parser) parseTistis() (cst.NodeID, error) {
	if p.peekLiteral("==") {
		id := p.makeLexeme(cst.KindLexeme, p.mustSymbol("TISTIS"), p.pos, 2)
		p.pos += 2
		return id, nil
	}
	n := termRun(p.src, p.pos)
	if n == 0 {
		return cst.NoNode, p.errorf("expected a closing marker")
	}
	id := p.makeLexeme(cst.KindLexeme, p.mustSymbol("TISTIS"), p.pos, n)
	p.pos += n
	return id, nil
}

// parseValue parses a full nested hoon when the lookahead matches a
// known rune, else falls back to a bare TERM. This lets jog bodies and
// cast/cell-constructor children recurse arbitrarily deep, matching the
// language's actual expression grammar in spirit even though pkg/parser
// only names a practical subset of runes.
func (p *parser) parseValue() (cst.NodeID, error) {
	if _, ok := p.matchRune(); ok {
		return p.parseHoon()
	}
	return p.parseTerm()
}

func (p *parser) matchRune() (runeForm, bool) {
	for _, rf := range runeTable {
		if p.peekLiteral(rf.literal) {
			return rf, true
		}
	}
	return runeForm{}, false
}

// parseHoon dispatches on the rune at the current position, or parses
// a bare TERM if none matches.
func (p *parser) parseHoon() (cst.NodeID, error) {
	if rf, ok := p.matchRune(); ok {
		switch rf.rule {
		case "tallWutBar":
			return p.parseJogging0(rf)
		case "tallWutHep":
			return p.parseJogging1(rf)
		case "tallWutKet":
			return p.parseJogging2(rf)
		case "tallWutPam":
			return p.parseJoggingPrefix(rf)
		case "tallSemsig":
			return p.parseSemsig(rf)
		case "tallColhep":
			return p.parseColhep(rf)
		case "tallDotket":
			return p.parseDotket(rf)
		case "LuslusCell", "LushepCell", "LustisCell":
			return p.parseCell(rf)
		default:
			panic(fmt.Sprintf("parser: rune form %q has no handler", rf.rule))
		}
	}
	return p.parseTerm()
}

func (p *parser) expectRune(rf runeForm) (cst.NodeID, error) {
	sym, ok := p.cat.SymbolID(runeSymbolName(rf.rule))
	if !ok {
		return cst.NoNode, p.errorf("grammar has no symbol for rune %q", rf.literal)
	}
	id := p.makeLexeme(cst.KindLexeme, sym, p.pos, len(rf.literal))
	p.pos += len(rf.literal)
	return id, nil
}

// runeSymbolName maps a rule name to the lexeme symbol its own rune
// occupies, per grammar.toml's RHS declarations.
func runeSymbolName(rule string) string {
	switch rule {
	case "tallWutBar":
		return "WUTBAR"
	case "tallWutHep":
		return "WUTHEP"
	case "tallWutKet":
		return "WUTKET"
	case "tallWutPam":
		return "WUTPAM"
	case "tallSemsig":
		return "SEMSIG"
	default:
		// tallColhep, tallDotket, and the Lus*Cell rules have no
		// dedicated rune symbol in grammar.toml: their leading TERM
		// child carries the rune spelling (see grammar.toml's comment-free
		// fixed-arity TERM productions).
		return "TERM"
	}
}

// parseRuck5dJog parses a single tall-form jog: TERM GAP TERM.
func (p *parser) parseRuck5dJog() (cst.NodeID, error) {
	head, err := p.parseTerm()
	if err != nil {
		return cst.NoNode, err
	}
	gap, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	body, err := p.parseValue()
	if err != nil {
		return cst.NoNode, err
	}
	return p.makeNode(p.mustRule("ruck5dJog"), []cst.NodeID{head, gap, body}), nil
}

// parseRuck5d parses a GAP-separated, mortar-wrapped list of
// ruck5dJog. It stops before consuming the GAP that precedes the
// jogging-bearing hoon's closing TISTIS, using lookahead with
// backtracking to tell a jog separator from that trailing gap.
func (p *parser) parseRuck5d() (cst.NodeID, error) {
	first, err := p.parseRuck5dJog()
	if err != nil {
		return cst.NoNode, err
	}
	children := []cst.NodeID{first}

	for {
		save := p.pos
		gapStart := p.pos
		n := whitespaceRun(p.src, gapStart)
		isGap := n >= 2 || (n == 1 && containsNewline(p.src, gapStart, n))
		if !isGap {
			p.pos = save
			break
		}
		p.pos = gapStart + n
		if _, ok := p.matchTistisLookahead(); ok {
			p.pos = save
			break
		}
		sep := p.makeLexeme(cst.KindSeparator, p.mustSymbol("GAP"), gapStart, n)
		jog, err := p.parseRuck5dJog()
		if err != nil {
			p.pos = save
			break
		}
		children = append(children, sep, jog)
	}

	return p.makeNode(p.mustRule("ruck5d"), children), nil
}

// matchTistisLookahead reports whether the current position begins the
// closing "==" (or, absent that, cannot start another ruck5dJog because
// what follows is not a TERM at all).
func (p *parser) matchTistisLookahead() (string, bool) {
	if p.peekLiteral("==") {
		return "==", true
	}
	n := termRun(p.src, p.pos)
	if n == 0 {
		return "", true
	}
	// A TERM is present; peek further to see whether "TERM GAP TERM"
	// would follow (another jog) or the TERM stands alone before the
	// real terminator (our synthetic TISTIS recovery case).
	after := p.pos + n
	gapLen := whitespaceRun(p.src, after)
	if gapLen < 2 && !containsNewline(p.src, after, gapLen) {
		return "", true
	}
	next := after + gapLen
	if termRun(p.src, next) == 0 {
		return "", true
	}
	return "", false
}

func (p *parser) parseJogging0(rf runeForm) (cst.NodeID, error) {
	rune_, err := p.expectRune(rf)
	if err != nil {
		return cst.NoNode, err
	}
	g1, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	first, err := p.parseTerm()
	if err != nil {
		return cst.NoNode, err
	}
	g2, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	ruck, err := p.parseRuck5d()
	if err != nil {
		return cst.NoNode, err
	}
	g3, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	tistis, err := p.parseTistis()
	if err != nil {
		return cst.NoNode, err
	}
	return p.makeNode(p.mustRule("tallWutBar"), []cst.NodeID{rune_, g1, first, g2, ruck, g3, tistis}), nil
}

func (p *parser) parseJogging1(rf runeForm) (cst.NodeID, error) {
	rune_, err := p.expectRune(rf)
	if err != nil {
		return cst.NoNode, err
	}
	g1, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	head, err := p.parseValue()
	if err != nil {
		return cst.NoNode, err
	}
	g2, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	ruck, err := p.parseRuck5d()
	if err != nil {
		return cst.NoNode, err
	}
	g3, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	tistis, err := p.parseTistis()
	if err != nil {
		return cst.NoNode, err
	}
	children := []cst.NodeID{rune_, g1, head, g2, ruck, g3, tistis}
	if tail, ok := p.tryTrailingValue(); ok {
		children = append(children, tail...)
	}
	return p.makeNode(p.mustRule("tallWutHep"), children), nil
}

func (p *parser) parseJogging2(rf runeForm) (cst.NodeID, error) {
	rune_, err := p.expectRune(rf)
	if err != nil {
		return cst.NoNode, err
	}
	g1, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	first, err := p.parseValue()
	if err != nil {
		return cst.NoNode, err
	}
	g2, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	second, err := p.parseValue()
	if err != nil {
		return cst.NoNode, err
	}
	g3, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	ruck, err := p.parseRuck5d()
	if err != nil {
		return cst.NoNode, err
	}
	g4, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	tistis, err := p.parseTistis()
	if err != nil {
		return cst.NoNode, err
	}
	children := []cst.NodeID{rune_, g1, first, g2, second, g3, ruck, g4, tistis}
	if tail, ok := p.tryTrailingValue(); ok {
		children = append(children, tail...)
	}
	return p.makeNode(p.mustRule("tallWutKet"), children), nil
}

func (p *parser) parseJoggingPrefix(rf runeForm) (cst.NodeID, error) {
	rune_, err := p.expectRune(rf)
	if err != nil {
		return cst.NoNode, err
	}
	g1, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	ruck, err := p.parseRuck5d()
	if err != nil {
		return cst.NoNode, err
	}
	g2, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	tistis, err := p.parseTistis()
	if err != nil {
		return cst.NoNode, err
	}
	g3, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	tail, err := p.parseValue()
	if err != nil {
		return cst.NoNode, err
	}
	return p.makeNode(p.mustRule("tallWutPam"), []cst.NodeID{rune_, g1, ruck, g2, tistis, g3, tail}), nil
}

// tryTrailingValue attempts the optional "GAP value" tail that follows
// 1-/2-jogging's closing TISTIS in this parser's grammar. Real source
// written without a trailing clause (the common case: the jogging is
// the whole expression) simply ends at "=="; returning ok=false in that
// case keeps the tree's shape matching what was actually written
// instead of forcing a synthetic node.
func (p *parser) tryTrailingValue() ([]cst.NodeID, bool) {
	save := p.pos
	gapStart := p.pos
	n := whitespaceRun(p.src, gapStart)
	isGap := n >= 2 || (n == 1 && containsNewline(p.src, gapStart, n))
	if !isGap {
		p.pos = save
		return nil, false
	}
	p.pos = gapStart + n
	if termRun(p.src, p.pos) == 0 {
		if _, ok := p.matchRune(); !ok {
			p.pos = save
			return nil, false
		}
	}
	gap := p.makeLexeme(cst.KindLexeme, p.mustSymbol("GAP"), gapStart, n)
	tail, err := p.parseValue()
	if err != nil {
		p.pos = save
		return nil, false
	}
	return []cst.NodeID{gap, tail}, true
}

func (p *parser) parseSemsig(rf runeForm) (cst.NodeID, error) {
	rune_, err := p.expectRune(rf)
	if err != nil {
		return cst.NoNode, err
	}
	g1, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	head, err := p.parseValue()
	if err != nil {
		return cst.NoNode, err
	}
	g2, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	seq, err := p.parseSeq("semsigSeq")
	if err != nil {
		return cst.NoNode, err
	}
	return p.makeNode(p.mustRule("tallSemsig"), []cst.NodeID{rune_, g1, head, g2, seq}), nil
}

// parseSeq parses a GAP-separated, mortar-wrapped sequence of values
// (semsigSeq or plainSeq): one or more elements, each either a bare
// TERM or a nested hoon, for as long as lookahead shows "GAP value"
// following.
func (p *parser) parseSeq(ruleName string) (cst.NodeID, error) {
	first, err := p.parseValue()
	if err != nil {
		return cst.NoNode, err
	}
	children := []cst.NodeID{first}

	for {
		save := p.pos
		gapStart := p.pos
		n := whitespaceRun(p.src, gapStart)
		isGap := n >= 2 || (n == 1 && containsNewline(p.src, gapStart, n))
		if !isGap {
			p.pos = save
			break
		}
		p.pos = gapStart + n
		if termRun(p.src, p.pos) == 0 {
			if _, ok := p.matchRune(); !ok {
				p.pos = save
				break
			}
		}
		sep := p.makeLexeme(cst.KindSeparator, p.mustSymbol("GAP"), gapStart, n)
		val, err := p.parseValue()
		if err != nil {
			p.pos = save
			break
		}
		children = append(children, sep, val)
	}

	return p.makeNode(p.mustRule(ruleName), children), nil
}

func (p *parser) parseColhep(rf runeForm) (cst.NodeID, error) {
	rune_, err := p.expectRune(rf)
	if err != nil {
		return cst.NoNode, err
	}
	g1, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	a, err := p.parseValue()
	if err != nil {
		return cst.NoNode, err
	}
	g2, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	b, err := p.parseValue()
	if err != nil {
		return cst.NoNode, err
	}
	g3, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	c, err := p.parseValue()
	if err != nil {
		return cst.NoNode, err
	}
	return p.makeNode(p.mustRule("tallColhep"), []cst.NodeID{rune_, g1, a, g2, b, g3, c}), nil
}

func (p *parser) parseDotket(rf runeForm) (cst.NodeID, error) {
	rune_, err := p.expectRune(rf)
	if err != nil {
		return cst.NoNode, err
	}
	g1, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	a, err := p.parseValue()
	if err != nil {
		return cst.NoNode, err
	}
	g2, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	b, err := p.parseValue()
	if err != nil {
		return cst.NoNode, err
	}
	return p.makeNode(p.mustRule("tallDotket"), []cst.NodeID{rune_, g1, a, g2, b}), nil
}

func (p *parser) parseCell(rf runeForm) (cst.NodeID, error) {
	rune_, err := p.expectRune(rf)
	if err != nil {
		return cst.NoNode, err
	}
	g1, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	a, err := p.parseValue()
	if err != nil {
		return cst.NoNode, err
	}
	g2, err := p.expectGap()
	if err != nil {
		return cst.NoNode, err
	}
	b, err := p.parseValue()
	if err != nil {
		return cst.NoNode, err
	}
	return p.makeNode(p.mustRule(rf.rule), []cst.NodeID{rune_, g1, a, g2, b}), nil
}
