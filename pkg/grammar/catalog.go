// Package grammar loads the symbol/rule catalog the rest of the linter
// dispatches on: which symbols are gap-bearing, which rules are mortar
// glue, and which whitespace shape each rule belongs to.
//
// The catalog is data, not Go literals: Default parses it from an
// embedded grammar.toml on each call, the way a grammar-driven tool's table
// would be loaded from the actual grammar rather than hand-transcribed.
package grammar

import (
	_ "embed"
	"fmt"
	"regexp"

	"github.com/BurntSushi/toml"
)

//go:embed grammar.toml
var defaultGrammarTOML []byte

// gapNamePattern matches the rune-named gap terminals: six letters with
// vowels at positions 2 and 5, followed by the literal "GAP".
var gapNamePattern = regexp.MustCompile(`^[A-Z][AEIOU][A-Z][A-Z][AEIOU][A-Z]GAP$`)

// tallRunePattern matches tallBody/tallRune LHS names: "tall" followed by
// exactly six letters naming the rune, with an optional "Mold" suffix.
var tallRunePattern = regexp.MustCompile(`^tall[A-Za-z]{6}(Mold)?$`)

func isGapName(name string) bool {
	return name == "GAP" || gapNamePattern.MatchString(name)
}

// Symbol is one entry in the grammar's terminal/nonterminal alphabet.
type Symbol struct {
	ID       int32
	Name     string
	IsLexeme bool
	IsGap    bool
}

// Rule is one grammar production.
type Rule struct {
	ID     int32
	LHS    string
	RHS    []string
	RHSIDs []int32

	SeparatorName string
	// SeparatorSymbol is -1 when the rule has no configured separator.
	SeparatorSymbol int32

	// Gapiness is -1 for gap-separated sequence rules, else the count of
	// gap-bearing RHS symbols (spec §3).
	Gapiness int

	// IsMortar marks structural glue productions: their LHS name is
	// suppressed from diagnostic hoon-names (spec §4.2/§4.6).
	IsMortar bool

	// IsTallRune is true when LHS matches tall<Rune6>[Mold] — the
	// broader category the walker sets TallRuneIndent for (spec §4.6
	// step 2). It includes tallNote as well as tallBody.
	IsTallRune bool

	// IsTallBody is IsTallRune minus tallNote — the walker sets
	// BodyIndent only for these (spec §4.6 step 1, §4.2: "tallBody =
	// tallRune minus tallNote").
	IsTallBody bool

	// rawShape is the shape named explicitly in grammar.toml, if any.
	// Empty means "derive from gapiness/mortar/name pattern" (classify.go).
	rawShape string
}

// tomlSymbol/tomlRule/tomlFile mirror grammar.toml's shape for decoding.
type tomlSymbol struct {
	Name   string `toml:"name"`
	Lexeme bool   `toml:"lexeme"`
}

type tomlRule struct {
	LHS       string   `toml:"lhs"`
	RHS       []string `toml:"rhs"`
	Separator string   `toml:"separator"`
	Mortar    bool     `toml:"mortar"`
	Shape     string   `toml:"shape"`
}

type tomlFile struct {
	Symbols []tomlSymbol `toml:"symbols"`
	Rules   []tomlRule   `toml:"rules"`
}

// Catalog is the constructed-once, read-only symbol/rule table (spec §9:
// "model them as a constructed-once catalog value passed by shared
// reference").
type Catalog struct {
	symbols      []Symbol
	symbolByName map[string]int32

	rules      []Rule
	ruleByName map[string]int32

	// shapeByRuleID is the precomputed rule_id -> shape dispatch map
	// (spec §9: "Runtime dispatch is a single lookup").
	shapeByRuleID []Shape

	// parentOverrides implements the wisp5d-style per-parent override
	// hook described in spec §9. Unused by the bundled grammar data; a
	// future grammar revision that needs a context-dependent shape for
	// some LHS can populate this without touching the dispatch table.
	parentOverrides map[overrideKey]Shape
}

type overrideKey struct {
	ruleID   int32
	parentID int32
}

// Default returns the catalog built from the embedded grammar.toml. It
// panics on error: a broken embedded grammar file is a build-time bug,
// not a runtime condition callers can recover from.
func Default() *Catalog {
	cat, err := Load(defaultGrammarTOML)
	if err != nil {
		panic(fmt.Errorf("grammar: embedded grammar.toml is invalid: %w", err))
	}
	return cat
}

// Load parses TOML grammar data into a Catalog.
func Load(data []byte) (*Catalog, error) {
	var file tomlFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("grammar: parse grammar.toml: %w", err)
	}

	cat := &Catalog{
		symbolByName:    make(map[string]int32, len(file.Symbols)),
		ruleByName:      make(map[string]int32, len(file.Rules)),
		parentOverrides: make(map[overrideKey]Shape),
	}

	for _, ts := range file.Symbols {
		if _, dup := cat.symbolByName[ts.Name]; dup {
			return nil, fmt.Errorf("grammar: duplicate symbol %q", ts.Name)
		}
		id := int32(len(cat.symbols))
		cat.symbols = append(cat.symbols, Symbol{
			ID:       id,
			Name:     ts.Name,
			IsLexeme: ts.Lexeme,
			IsGap:    isGapName(ts.Name),
		})
		cat.symbolByName[ts.Name] = id
	}

	for _, tr := range file.Rules {
		if _, dup := cat.ruleByName[tr.LHS]; dup {
			return nil, fmt.Errorf("grammar: duplicate rule lhs %q", tr.LHS)
		}
		id := int32(len(cat.rules))

		rhsIDs := make([]int32, len(tr.RHS))
		gapCount := 0
		for i, name := range tr.RHS {
			sid, ok := cat.symbolByName[name]
			if !ok {
				return nil, fmt.Errorf("grammar: rule %q references unknown rhs symbol %q", tr.LHS, name)
			}
			rhsIDs[i] = sid
			if cat.symbols[sid].IsGap {
				gapCount++
			}
		}

		sepSymbol := int32(-1)
		gapiness := gapCount
		if tr.Separator != "" {
			sid, ok := cat.symbolByName[tr.Separator]
			if !ok {
				return nil, fmt.Errorf("grammar: rule %q references unknown separator %q", tr.LHS, tr.Separator)
			}
			sepSymbol = sid
			if tr.Separator == "GAP" {
				gapiness = -1
			}
		}

		cat.rules = append(cat.rules, Rule{
			ID:              id,
			LHS:             tr.LHS,
			RHS:             tr.RHS,
			RHSIDs:          rhsIDs,
			SeparatorName:   tr.Separator,
			SeparatorSymbol: sepSymbol,
			Gapiness:        gapiness,
			IsMortar:        tr.Mortar,
			rawShape:        tr.Shape,
		})
		cat.ruleByName[tr.LHS] = id
	}

	if err := classify(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Symbol returns the symbol with the given ID, or nil if out of range.
func (c *Catalog) Symbol(id int32) *Symbol {
	if id < 0 || int(id) >= len(c.symbols) {
		return nil
	}
	return &c.symbols[id]
}

// SymbolID looks up a symbol by name.
func (c *Catalog) SymbolID(name string) (int32, bool) {
	id, ok := c.symbolByName[name]
	return id, ok
}

// Rule returns the rule with the given ID, or nil if out of range.
func (c *Catalog) Rule(id int32) *Rule {
	if id < 0 || int(id) >= len(c.rules) {
		return nil
	}
	return &c.rules[id]
}

// RuleID looks up a rule by its LHS name.
func (c *Catalog) RuleID(lhs string) (int32, bool) {
	id, ok := c.ruleByName[lhs]
	return id, ok
}

// IsMortar reports whether ruleID's LHS is structural glue.
func (c *Catalog) IsMortar(ruleID int32) bool {
	r := c.Rule(ruleID)
	return r != nil && r.IsMortar
}

// ShapeOf is the precomputed rule_id -> shape lookup (spec §9).
func (c *Catalog) ShapeOf(ruleID int32) Shape {
	if ruleID < 0 || int(ruleID) >= len(c.shapeByRuleID) {
		return ShapeBackdented
	}
	return c.shapeByRuleID[ruleID]
}

// OverrideForParent implements the wisp5d-style per-parent shape
// override hook (spec §9 open question on wisp5d). It falls back to
// ShapeOf when no override is registered, which is always the case for
// the bundled grammar.toml.
func (c *Catalog) OverrideForParent(ruleID, parentRuleID int32) Shape {
	if s, ok := c.parentOverrides[overrideKey{ruleID, parentRuleID}]; ok {
		return s
	}
	return c.ShapeOf(ruleID)
}
