package lrtables

import "github.com/jkugelman/kang/grammar"

// StartVariableName is the synthesized augmented start symbol S'. The
// desugarer's auxiliary variables use "$aux-" names and never this one;
// neither the desugarer nor Grammar.Validate rejects a user-declared
// variable named "$start".
const StartVariableName = "$start"

// newStartRule builds the synthetic augmented rule S' -> Start. It is never
// registered into g — table construction reads g only, it never mutates it
// (spec §5) — so this rule exists solely inside the table builder's own
// RuleIndex and item sets.
func newStartRule(g *grammar.Grammar) *grammar.Rule {
	return &grammar.Rule{
		NonTerminal: StartVariableName,
		Production:  []grammar.Reference{grammar.VariableReference{Variable: g.Start}},
	}
}
