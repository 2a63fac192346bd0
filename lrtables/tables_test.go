package lrtables

import (
	"errors"
	"testing"

	"github.com/jkugelman/kang/grammar"
	"github.com/stretchr/testify/assert"
)

func arithmeticGrammar() *grammar.Grammar {
	g := grammar.New()
	g.AddTerminal(grammar.Terminal{Name: "id"})
	g.AddTerminal(grammar.Terminal{Name: "plus"})
	g.AddTerminal(grammar.Terminal{Name: "star"})
	g.Start = "E"

	g.AddRule(grammar.Rule{
		NonTerminal: "E",
		Production: []grammar.Reference{
			grammar.VariableReference{Variable: "E"},
			grammar.TerminalReference{Terminal: "plus"},
			grammar.VariableReference{Variable: "E"},
		},
		HasPrecedence:   true,
		PrecedenceSet:   1,
		PrecedenceLevel: 0,
		Associativity:   grammar.AssocLeft,
	})
	g.AddRule(grammar.Rule{
		NonTerminal: "E",
		Production: []grammar.Reference{
			grammar.VariableReference{Variable: "E"},
			grammar.TerminalReference{Terminal: "star"},
			grammar.VariableReference{Variable: "E"},
		},
		HasPrecedence:   true,
		PrecedenceSet:   1,
		PrecedenceLevel: 1,
		Associativity:   grammar.AssocLeft,
	})
	g.AddRule(grammar.Rule{
		NonTerminal: "E",
		Production:  []grammar.Reference{grammar.TerminalReference{Terminal: "id"}},
	})

	return g
}

func Test_Build_arithmeticPrecedence_noConflictErrors(t *testing.T) {
	assert := assert.New(t)

	g := arithmeticGrammar()
	assert.NoError(g.Validate())

	tbl, err := Build(g)
	assert.NoError(err)
	assert.NotNil(tbl)
	assert.True(len(tbl.Automaton.States) > 1)
}

func Test_Build_ambiguousGrammar_reportsShiftReduceConflict(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New()
	g.AddTerminal(grammar.Terminal{Name: "a"})
	g.Start = "S"
	g.AddRule(grammar.Rule{
		NonTerminal: "S",
		Production: []grammar.Reference{
			grammar.VariableReference{Variable: "S"},
			grammar.VariableReference{Variable: "S"},
		},
	})
	g.AddRule(grammar.Rule{
		NonTerminal: "S",
		Production:  []grammar.Reference{grammar.TerminalReference{Terminal: "a"}},
	})
	assert.NoError(g.Validate())

	_, err := Build(g)
	assert.Error(err)

	var conflict *ShiftReduceConflictError
	assert.True(errors.As(err, &conflict))
}

func Test_Nullable_detectsEpsilonRule(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New()
	g.AddTerminal(grammar.Terminal{Name: "a"})
	g.Start = "S"
	g.AddRule(grammar.Rule{NonTerminal: "S", Production: []grammar.Reference{grammar.VariableReference{Variable: "Opt"}}})
	g.AddRule(grammar.Rule{NonTerminal: "Opt", Production: []grammar.Reference{grammar.TerminalReference{Terminal: "a"}}})
	g.AddRule(grammar.Rule{NonTerminal: "Opt", Production: nil})

	nullable := Nullable(g)
	assert.True(nullable["Opt"])
	assert.True(nullable["S"]) // S -> Opt, and Opt is nullable
}

func Test_First_terminalIsItsOwnFirstSet(t *testing.T) {
	assert := assert.New(t)

	g := arithmeticGrammar()
	nullable := Nullable(g)
	first := First(g, nullable)

	assert.ElementsMatch([]string{"id"}, first["id"].Keys())
	assert.ElementsMatch([]string{"id"}, first["E"].Keys())
}
