package grammar

import (
	"fmt"
	"sort"
)

// Grammar is the fully elaborated, frozen-before-use description of a
// language: terminals, non-terminals with their rules, a designated start
// variable, and the error terminal. It is the data model described in spec
// §3 (component C1).
//
// A Grammar is built once, by the loader (package desugar) or directly via
// the Add* methods, then handed to the table builder (package lrtables). It
// is never mutated by table construction or parsing; both of those only read
// it, so a single Grammar and its derived Tables may be shared across
// concurrently-running parses (spec §5).
type Grammar struct {
	terminals     map[string]*Terminal
	terminalOrder []string

	variables     map[string]*Variable
	variableOrder []string

	Start string
}

// New returns an empty Grammar with the reserved @error terminal already
// registered, per the invariant in spec §3 ("@error exists").
func New() *Grammar {
	g := &Grammar{
		terminals: map[string]*Terminal{},
		variables: map[string]*Variable{},
	}
	g.AddTerminal(Terminal{Name: ErrorTerminalName, Discardable: false})
	return g
}

// AddTerminal registers t, or replaces the existing terminal of the same
// name.
func (g *Grammar) AddTerminal(t Terminal) {
	if _, exists := g.terminals[t.Name]; !exists {
		g.terminalOrder = append(g.terminalOrder, t.Name)
	}
	g.terminals[t.Name] = &t
}

// Term returns the terminal registered under name, if any.
func (g *Grammar) Term(name string) (*Terminal, bool) {
	t, ok := g.terminals[name]
	return t, ok
}

// IsTerminal reports whether name refers to a registered terminal.
func (g *Grammar) IsTerminal(name string) bool {
	_, ok := g.terminals[name]
	return ok
}

// Terminals returns every registered terminal name, in registration order.
func (g *Grammar) Terminals() []string {
	out := make([]string, len(g.terminalOrder))
	copy(out, g.terminalOrder)
	return out
}

// AddVariable ensures a Variable named name exists and returns it.
func (g *Grammar) AddVariable(name string) *Variable {
	v, ok := g.variables[name]
	if ok {
		return v
	}
	v = &Variable{Name: name}
	g.variables[name] = v
	g.variableOrder = append(g.variableOrder, name)
	return v
}

// Var returns the variable registered under name, if any.
func (g *Grammar) Var(name string) (*Variable, bool) {
	v, ok := g.variables[name]
	return v, ok
}

// IsVariable reports whether name refers to a registered non-terminal.
func (g *Grammar) IsVariable(name string) bool {
	_, ok := g.variables[name]
	return ok
}

// NonTerminals returns every registered variable name, in registration order.
func (g *Grammar) NonTerminals() []string {
	out := make([]string, len(g.variableOrder))
	copy(out, g.variableOrder)
	return out
}

// AddRule appends a rule to the named variable (creating it if needed) and
// returns the stored *Rule so callers (in particular the desugarer) can set
// ParentRule on auxiliary Variables it references.
func (g *Grammar) AddRule(r Rule) *Rule {
	v := g.AddVariable(r.NonTerminal)
	stored := r
	v.Rules = append(v.Rules, &stored)
	return &stored
}

// EffectivePrecedence walks up the parent-rule chain (through collapsible
// auxiliary variables) until it finds a rule with HasPrecedence set, or runs
// out of chain. This implements the rule in spec §4.2: "A rule's effective
// precedence/associativity is that of its parent rule if its LHS is a
// collapsible auxiliary (transitively)."
func (g *Grammar) EffectivePrecedence(r *Rule) (set, level int, assoc Associativity, ok bool) {
	cur := r
	seen := map[*Rule]bool{}
	for cur != nil && !seen[cur] {
		seen[cur] = true
		if cur.HasPrecedence {
			return cur.PrecedenceSet, cur.PrecedenceLevel, cur.Associativity, true
		}
		v, exists := g.variables[cur.NonTerminal]
		if !exists || v.ParentRule == nil {
			return 0, 0, AssocNone, false
		}
		cur = v.ParentRule
	}
	return 0, 0, AssocNone, false
}

// Validate checks every invariant spec §3 lists for a Grammar and returns an
// InvalidGrammarError enumerating every violation found (not just the
// first), or nil if the grammar is well-formed.
func (g *Grammar) Validate() error {
	var problems []string

	if g.Start == "" {
		problems = append(problems, "start variable is not set")
	} else if !g.IsVariable(g.Start) {
		problems = append(problems, fmt.Sprintf("start variable %q is not a registered variable", g.Start))
	}

	if !g.IsTerminal(ErrorTerminalName) {
		problems = append(problems, "grammar is missing the required @error terminal")
	}

	userTerminals := len(g.terminals)
	if g.IsTerminal(ErrorTerminalName) {
		userTerminals--
	}
	if userTerminals == 0 {
		problems = append(problems, "grammar has no terminals")
	}
	if len(g.variables) == 0 {
		problems = append(problems, "grammar has no variables")
	}

	for _, vName := range g.variableOrder {
		v := g.variables[vName]
		if g.IsTerminal(vName) {
			problems = append(problems, fmt.Sprintf("name %q is registered as both a terminal and a variable", vName))
		}
		if len(v.Rules) == 0 {
			problems = append(problems, fmt.Sprintf("variable %q has no rules", vName))
		}
		for _, r := range v.Rules {
			for _, ref := range r.Production {
				if ref.IsTerminal() {
					if !g.IsTerminal(ref.Name()) {
						problems = append(problems, fmt.Sprintf("rule %q references unknown terminal %q", r.String(), ref.Name()))
					}
				} else {
					if !g.IsVariable(ref.Name()) {
						problems = append(problems, fmt.Sprintf("rule %q references unknown variable %q", r.String(), ref.Name()))
					}
				}
			}
		}
	}

	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return &InvalidGrammarError{Problems: problems}
}
