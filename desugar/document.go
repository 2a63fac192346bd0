package desugar

// Document is the TOML-decodable surface syntax for a grammar description.
// This plays the role spec §1 assigns to "an XML-like declarative
// description... any equivalent declarative input format is acceptable";
// TOML's native support for tables and arrays-of-tables maps cleanly onto
// the extended constructs (optional, repeat, choice, group,
// ordered-by-precedence) that the loader must desugar.
type Document struct {
	Start      string            `toml:"start"`
	Terminals  []TerminalDecl    `toml:"terminals"`
	Rules      []RuleDecl        `toml:"rules"`
	Precedence []PrecedenceBlock `toml:"precedence"`
}

// TerminalDecl declares a terminal and its default discardability.
type TerminalDecl struct {
	Name        string `toml:"name"`
	Discardable bool   `toml:"discardable"`
}

// RuleDecl declares a plain, non-precedence-governed rule: NonTerminal ->
// Items.
type RuleDecl struct {
	NonTerminal string     `toml:"nonterminal"`
	Items       []ItemDecl `toml:"items"`
}

// ItemDecl is one element of a rule's right-hand side, tagged by Kind:
//
//   - "terminal": Terminal (+ optional Preserved) names a TerminalReference.
//   - "variable": Variable names a VariableReference.
//   - "error": an (implicitly preserved) reference to the @error sentinel.
//   - "group": Items is the body of a `group { ... }` construct.
//   - "optional": Items is the body of an `optional { ... }` construct.
//   - "repeat": Items is the repeated body; Min/Max bound the repetition.
//   - "choice": Alternatives lists each `choice` branch's item sequence.
type ItemDecl struct {
	Kind string `toml:"kind"`

	Terminal  string `toml:"terminal,omitempty"`
	Preserved bool   `toml:"preserved,omitempty"`

	Variable string `toml:"variable,omitempty"`

	Items []ItemDecl `toml:"items,omitempty"`

	Alternatives [][]ItemDecl `toml:"alternatives,omitempty"`

	Min int  `toml:"min,omitempty"`
	Max *int `toml:"max,omitempty"`
}

// PrecedenceBlock is one `ordered-by-precedence` block: an ordered list of
// entries, all contributing rules to NonTerminal, sharing one fresh
// precedence set whose levels follow the entries' ordinal position.
type PrecedenceBlock struct {
	NonTerminal string            `toml:"nonterminal"`
	Entries     []PrecedenceEntry `toml:"entries"`
}

// PrecedenceEntry is either a bare rule (Rule set) or a group of rules that
// share one precedence level and associativity (Group set, one production
// per inner slice).
type PrecedenceEntry struct {
	Associativity string       `toml:"associativity"`
	Rule          []ItemDecl   `toml:"rule,omitempty"`
	Group         [][]ItemDecl `toml:"group,omitempty"`
}
