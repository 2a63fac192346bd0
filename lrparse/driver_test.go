package lrparse

import (
	"testing"

	"github.com/jkugelman/kang/grammar"
	"github.com/jkugelman/kang/lrtables"
	"github.com/jkugelman/kang/tokstream"
	"github.com/jkugelman/kang/tree"
	"github.com/stretchr/testify/assert"
)

type testToken struct {
	class, lexeme string
}

func (t testToken) Class() string             { return t.class }
func (t testToken) Lexeme() string            { return t.lexeme }
func (t testToken) Start() tokstream.Position { return tokstream.Position{} }
func (t testToken) End() tokstream.Position   { return tokstream.Position{} }

type fixedSource struct {
	toks []tokstream.Token
	i    int
}

func (s *fixedSource) ExtractToken() tokstream.Token {
	if s.i >= len(s.toks) {
		return nil
	}
	t := s.toks[s.i]
	s.i++
	return t
}

func tokensOf(classes ...string) []tokstream.Token {
	out := make([]tokstream.Token, len(classes))
	for i, c := range classes {
		out[i] = testToken{class: c, lexeme: c}
	}
	return out
}

func arithmeticGrammarWithPreservedOperators() *grammar.Grammar {
	g := grammar.New()
	g.AddTerminal(grammar.Terminal{Name: "id"})
	g.AddTerminal(grammar.Terminal{Name: "plus"})
	g.AddTerminal(grammar.Terminal{Name: "star"})
	g.Start = "E"

	g.AddRule(grammar.Rule{
		NonTerminal: "E",
		Production: []grammar.Reference{
			grammar.VariableReference{Variable: "E"},
			grammar.TerminalReference{Terminal: "plus", Preserved: true},
			grammar.VariableReference{Variable: "E"},
		},
		HasPrecedence: true, PrecedenceSet: 1, PrecedenceLevel: 0, Associativity: grammar.AssocLeft,
	})
	g.AddRule(grammar.Rule{
		NonTerminal: "E",
		Production: []grammar.Reference{
			grammar.VariableReference{Variable: "E"},
			grammar.TerminalReference{Terminal: "star", Preserved: true},
			grammar.VariableReference{Variable: "E"},
		},
		HasPrecedence: true, PrecedenceSet: 1, PrecedenceLevel: 1, Associativity: grammar.AssocLeft,
	})
	g.AddRule(grammar.Rule{
		NonTerminal: "E",
		Production:  []grammar.Reference{grammar.TerminalReference{Terminal: "id", Preserved: true}},
	})

	return g
}

func Test_Parse_S1_arithmeticPrecedence(t *testing.T) {
	assert := assert.New(t)

	g := arithmeticGrammarWithPreservedOperators()
	tables, err := lrtables.Build(g)
	assert.NoError(err)

	src := &fixedSource{toks: tokensOf("id", "plus", "id", "star", "id", "plus", "id")}
	tz := tokstream.New(src)

	root, err := New(g, tables).Parse(tz)
	assert.NoError(err)
	assert.NotNil(root)

	// Expected shape: ((id + (id * id)) + id)
	// root: E[ E[...] plus id ]
	assert.Equal(tree.KindVariable, root.Kind)
	assert.Len(root.Children, 3)
	assert.Equal("plus", root.Children[1].Symbol)

	left := root.Children[0]
	assert.Equal(tree.KindVariable, left.Kind)
	assert.Len(left.Children, 3)
	assert.Equal("plus", left.Children[1].Symbol)

	innerStar := left.Children[2]
	assert.Equal(tree.KindVariable, innerStar.Kind)
	assert.Len(innerStar.Children, 3)
	assert.Equal("star", innerStar.Children[1].Symbol)
}

func assignmentRecoveryGrammar() *grammar.Grammar {
	g := grammar.New()
	g.AddTerminal(grammar.Terminal{Name: "id"})
	g.AddTerminal(grammar.Terminal{Name: "eq"})
	g.AddTerminal(grammar.Terminal{Name: "semi"})
	g.Start = "Program"

	g.AddRule(grammar.Rule{
		NonTerminal: "Program",
		Production: []grammar.Reference{
			grammar.VariableReference{Variable: "Program"},
			grammar.VariableReference{Variable: "Stmt"},
		},
	})
	g.AddRule(grammar.Rule{NonTerminal: "Program", Production: nil})

	g.AddRule(grammar.Rule{
		NonTerminal: "Stmt",
		Production: []grammar.Reference{
			grammar.TerminalReference{Terminal: "id", Preserved: true},
			grammar.TerminalReference{Terminal: "eq", Preserved: true},
			grammar.VariableReference{Variable: "Expr"},
			grammar.TerminalReference{Terminal: "semi", Preserved: true},
		},
	})
	g.AddRule(grammar.Rule{
		NonTerminal: "Stmt",
		Production: []grammar.Reference{
			grammar.TerminalReference{Terminal: grammar.ErrorTerminalName, Preserved: true},
			grammar.TerminalReference{Terminal: "semi", Preserved: true},
		},
	})

	g.AddRule(grammar.Rule{
		NonTerminal: "Expr",
		Production:  []grammar.Reference{grammar.TerminalReference{Terminal: "id", Preserved: true}},
	})

	return g
}

func Test_Parse_S2_errorRecoveryBetweenStatements(t *testing.T) {
	assert := assert.New(t)

	g := assignmentRecoveryGrammar()
	assert.NoError(g.Validate())
	tables, err := lrtables.Build(g)
	assert.NoError(err)

	// x = ; y = z ;
	src := &fixedSource{toks: tokensOf("id", "eq", "semi", "id", "eq", "id", "semi")}
	tz := tokstream.New(src)

	root, err := New(g, tables).Parse(tz)
	assert.NoError(err)
	assert.NotNil(root)

	var stmts []*tree.Node
	var collect func(n *tree.Node)
	collect = func(n *tree.Node) {
		if n.Kind != tree.KindVariable {
			return
		}
		if n.Symbol == "Stmt" {
			stmts = append(stmts, n)
			return
		}
		for _, c := range n.Children {
			collect(c)
		}
	}
	collect(root)

	assert.Len(stmts, 2)

	firstHasError := false
	for _, c := range stmts[0].Children {
		if c.Kind == tree.KindError {
			firstHasError = true
		}
	}
	assert.True(firstHasError)

	for _, c := range stmts[1].Children {
		assert.NotEqual(tree.KindError, c.Kind)
	}
}
