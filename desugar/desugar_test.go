package desugar

import (
	"testing"

	"github.com/jkugelman/kang/grammar"
	"github.com/stretchr/testify/assert"
)

func Test_Desugar_plainRule_noAuxVariables(t *testing.T) {
	assert := assert.New(t)

	doc := &Document{
		Start: "S",
		Terminals: []TerminalDecl{
			{Name: "id"},
		},
		Rules: []RuleDecl{
			{NonTerminal: "S", Items: []ItemDecl{{Kind: "terminal", Terminal: "id"}}},
		},
	}

	g, err := Desugar(doc)
	assert.NoError(err)
	assert.NoError(g.Validate())

	v, ok := g.Var("S")
	assert.True(ok)
	assert.Len(v.Rules, 1)
	assert.Len(v.Rules[0].Production, 1)
}

func Test_Desugar_optional_producesTwoRules(t *testing.T) {
	assert := assert.New(t)

	doc := &Document{
		Start:     "S",
		Terminals: []TerminalDecl{{Name: "id"}},
		Rules: []RuleDecl{
			{NonTerminal: "S", Items: []ItemDecl{
				{Kind: "optional", Items: []ItemDecl{{Kind: "terminal", Terminal: "id"}}},
			}},
		},
	}

	g, err := Desugar(doc)
	assert.NoError(err)

	sRule := mustRule(t, g, "S", 0)
	assert.Len(sRule.Production, 1)
	auxRef, ok := sRule.Production[0].(grammar.VariableReference)
	assert.True(ok)

	auxVar, ok := g.Var(auxRef.Variable)
	assert.True(ok)
	assert.True(auxVar.Collapsible())
	assert.Same(sRule, auxVar.ParentRule)
	assert.Len(auxVar.Rules, 2)
	assert.Len(auxVar.Rules[0].Production, 1)
	assert.Len(auxVar.Rules[1].Production, 0)
}

func Test_Desugar_repeat_unbounded_producesLeftRecursiveAndBaseRule(t *testing.T) {
	assert := assert.New(t)

	min := 1
	doc := &Document{
		Start:     "S",
		Terminals: []TerminalDecl{{Name: "id"}},
		Rules: []RuleDecl{
			{NonTerminal: "S", Items: []ItemDecl{
				{Kind: "repeat", Min: min, Items: []ItemDecl{{Kind: "terminal", Terminal: "id"}}},
			}},
		},
	}

	g, err := Desugar(doc)
	assert.NoError(err)

	sRule := mustRule(t, g, "S", 0)
	auxRef := sRule.Production[0].(grammar.VariableReference)
	auxVar, _ := g.Var(auxRef.Variable)
	assert.Len(auxVar.Rules, 2)

	recursive := auxVar.Rules[0]
	assert.Len(recursive.Production, 2)
	selfRef, ok := recursive.Production[0].(grammar.VariableReference)
	assert.True(ok)
	assert.Equal(auxRef.Variable, selfRef.Variable)

	base := auxVar.Rules[1]
	assert.Len(base.Production, 1)
}

func Test_Desugar_repeat_bounded_oneRulePerCount(t *testing.T) {
	assert := assert.New(t)

	min, max := 1, 3
	doc := &Document{
		Start:     "S",
		Terminals: []TerminalDecl{{Name: "id"}},
		Rules: []RuleDecl{
			{NonTerminal: "S", Items: []ItemDecl{
				{Kind: "repeat", Min: min, Max: &max, Items: []ItemDecl{{Kind: "terminal", Terminal: "id"}}},
			}},
		},
	}

	g, err := Desugar(doc)
	assert.NoError(err)

	sRule := mustRule(t, g, "S", 0)
	auxRef := sRule.Production[0].(grammar.VariableReference)
	auxVar, _ := g.Var(auxRef.Variable)
	assert.Len(auxVar.Rules, 3) // counts 1, 2, 3
	assert.Len(auxVar.Rules[0].Production, 1)
	assert.Len(auxVar.Rules[1].Production, 2)
	assert.Len(auxVar.Rules[2].Production, 3)
}

func Test_Desugar_repeat_minGreaterThanMax_fails(t *testing.T) {
	assert := assert.New(t)

	min, max := 3, 1
	doc := &Document{
		Start:     "S",
		Terminals: []TerminalDecl{{Name: "id"}},
		Rules: []RuleDecl{
			{NonTerminal: "S", Items: []ItemDecl{
				{Kind: "repeat", Min: min, Max: &max, Items: []ItemDecl{{Kind: "terminal", Terminal: "id"}}},
			}},
		},
	}

	_, err := Desugar(doc)
	assert.Error(err)
}

func Test_Desugar_choice_producesOneRulePerAlternative(t *testing.T) {
	assert := assert.New(t)

	doc := &Document{
		Start:     "S",
		Terminals: []TerminalDecl{{Name: "a"}, {Name: "b"}},
		Rules: []RuleDecl{
			{NonTerminal: "S", Items: []ItemDecl{
				{Kind: "choice", Alternatives: [][]ItemDecl{
					{{Kind: "terminal", Terminal: "a"}},
					{{Kind: "terminal", Terminal: "b"}},
				}},
			}},
		},
	}

	g, err := Desugar(doc)
	assert.NoError(err)

	sRule := mustRule(t, g, "S", 0)
	auxRef := sRule.Production[0].(grammar.VariableReference)
	auxVar, _ := g.Var(auxRef.Variable)
	assert.Len(auxVar.Rules, 2)
}

func Test_Desugar_precedenceBlock_assignsSetAndLevel(t *testing.T) {
	assert := assert.New(t)

	doc := &Document{
		Start: "E",
		Terminals: []TerminalDecl{
			{Name: "id"}, {Name: "plus"}, {Name: "star"},
		},
		Precedence: []PrecedenceBlock{
			{
				NonTerminal: "E",
				Entries: []PrecedenceEntry{
					{Associativity: "left", Rule: []ItemDecl{
						{Kind: "variable", Variable: "E"},
						{Kind: "terminal", Terminal: "plus"},
						{Kind: "variable", Variable: "E"},
					}},
					{Associativity: "left", Rule: []ItemDecl{
						{Kind: "variable", Variable: "E"},
						{Kind: "terminal", Terminal: "star"},
						{Kind: "variable", Variable: "E"},
					}},
				},
			},
		},
		Rules: []RuleDecl{
			{NonTerminal: "E", Items: []ItemDecl{{Kind: "terminal", Terminal: "id"}}},
		},
	}

	g, err := Desugar(doc)
	assert.NoError(err)
	assert.NoError(g.Validate())

	v, _ := g.Var("E")
	assert.Len(v.Rules, 3) // plus rule, star rule, id rule

	plusRule := v.Rules[0]
	starRule := v.Rules[1]
	assert.True(plusRule.HasPrecedence)
	assert.True(starRule.HasPrecedence)
	assert.Equal(plusRule.PrecedenceSet, starRule.PrecedenceSet)
	assert.Equal(0, plusRule.PrecedenceLevel)
	assert.Equal(1, starRule.PrecedenceLevel)
	assert.Equal(grammar.AssocLeft, plusRule.Associativity)
}

func Test_Desugar_precedenceGroup_sharesOneLevel(t *testing.T) {
	assert := assert.New(t)

	doc := &Document{
		Start:     "E",
		Terminals: []TerminalDecl{{Name: "id"}, {Name: "eq"}, {Name: "neq"}},
		Precedence: []PrecedenceBlock{
			{
				NonTerminal: "E",
				Entries: []PrecedenceEntry{
					{Associativity: "none", Group: [][]ItemDecl{
						{{Kind: "variable", Variable: "E"}, {Kind: "terminal", Terminal: "eq"}, {Kind: "variable", Variable: "E"}},
						{{Kind: "variable", Variable: "E"}, {Kind: "terminal", Terminal: "neq"}, {Kind: "variable", Variable: "E"}},
					}},
				},
			},
		},
		Rules: []RuleDecl{
			{NonTerminal: "E", Items: []ItemDecl{{Kind: "terminal", Terminal: "id"}}},
		},
	}

	g, err := Desugar(doc)
	assert.NoError(err)

	v, _ := g.Var("E")
	assert.Len(v.Rules, 3)
	assert.Equal(v.Rules[0].PrecedenceLevel, v.Rules[1].PrecedenceLevel)
	assert.Equal(v.Rules[0].PrecedenceSet, v.Rules[1].PrecedenceSet)
}

func mustRule(t *testing.T, g *grammar.Grammar, name string, idx int) *grammar.Rule {
	t.Helper()
	v, ok := g.Var(name)
	if !ok {
		t.Fatalf("no such variable %q", name)
	}
	if idx >= len(v.Rules) {
		t.Fatalf("variable %q has no rule at index %d", name, idx)
	}
	return v.Rules[idx]
}
