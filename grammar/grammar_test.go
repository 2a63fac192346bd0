package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Grammar_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		build     func(g *Grammar)
		expectErr bool
	}{
		{
			name:      "empty grammar",
			build:     func(g *Grammar) {},
			expectErr: true,
		},
		{
			name: "no rules in grammar",
			build: func(g *Grammar) {
				g.AddTerminal(Terminal{Name: "int"})
			},
			expectErr: true,
		},
		{
			name: "no terms in grammar",
			build: func(g *Grammar) {
				g.AddRule(Rule{NonTerminal: "S", Production: []Reference{VariableReference{Variable: "S"}}})
				g.Start = "S"
			},
			expectErr: true,
		},
		{
			name: "single rule grammar",
			build: func(g *Grammar) {
				g.AddTerminal(Terminal{Name: "int"})
				g.AddRule(Rule{NonTerminal: "S", Production: []Reference{TerminalReference{Terminal: "int"}}})
				g.Start = "S"
			},
			expectErr: false,
		},
		{
			name: "dangling terminal reference",
			build: func(g *Grammar) {
				g.AddRule(Rule{NonTerminal: "S", Production: []Reference{TerminalReference{Terminal: "int"}}})
				g.Start = "S"
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := New()
			tc.build(g)

			err := g.Validate()
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_Grammar_EffectivePrecedence_inheritsThroughCollapsibleChain(t *testing.T) {
	assert := assert.New(t)

	g := New()
	g.AddTerminal(Terminal{Name: "plus"})

	parent := g.AddRule(Rule{
		NonTerminal:     "E",
		Production:      []Reference{VariableReference{Variable: "E"}, VariableReference{Variable: "$aux-1"}, VariableReference{Variable: "E"}},
		HasPrecedence:   true,
		PrecedenceSet:   1,
		PrecedenceLevel: 0,
		Associativity:   AssocLeft,
	})

	aux := g.AddVariable("$aux-1")
	auxRule := &Rule{NonTerminal: "$aux-1", Production: []Reference{TerminalReference{Terminal: "plus"}}}
	aux.Rules = append(aux.Rules, auxRule)
	aux.ParentRule = parent

	set, level, assoc, ok := g.EffectivePrecedence(auxRule)
	assert.True(ok)
	assert.Equal(1, set)
	assert.Equal(0, level)
	assert.Equal(AssocLeft, assoc)
}
