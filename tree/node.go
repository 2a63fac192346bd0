// Package tree implements the parse-tree data model of spec §3: the result
// of a successful (or partially successful, under error recovery) parse.
package tree

import (
	"fmt"
	"strings"

	"github.com/jkugelman/kang/tokstream"
)

// Kind distinguishes the three shapes a Node can take.
type Kind int

const (
	// KindTerminal is a leaf holding the token that matched a terminal
	// reference in some rule's production.
	KindTerminal Kind = iota
	// KindVariable is an interior node produced by reducing a rule; its
	// Children are the (already-collapsed) nodes for that rule's production.
	KindVariable
	// KindError is a leaf standing in for an @error terminal consumed during
	// panic-mode recovery.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindTerminal:
		return "Terminal"
	case KindVariable:
		return "Variable"
	case KindError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Node is one node of a ParseTree. Which fields are meaningful depends on
// Kind:
//
//   - KindTerminal: Symbol is the terminal name, Token is the matched token.
//   - KindVariable: Symbol is the non-terminal name, Children holds the
//     (collapsed) production. If Children is empty (an epsilon reduction),
//     FallbackPosition supplies a Start/End since there is no token or child
//     to derive one from.
//   - KindError: Symbol is grammar.ErrorTerminalName, Token is the token (if
//     any) consumed into the @error slot, and ExpectedTerminals lists the
//     terminal names that would have avoided recovery at that point.
type Node struct {
	Kind Kind
	Symbol string

	Token tokstream.Token

	Children []*Node

	ExpectedTerminals []string

	FallbackPosition tokstream.Position
}

// Terminal builds a KindTerminal leaf.
func Terminal(symbol string, tok tokstream.Token) *Node {
	return &Node{Kind: KindTerminal, Symbol: symbol, Token: tok}
}

// Variable builds a KindVariable interior node.
func Variable(symbol string, children []*Node, fallback tokstream.Position) *Node {
	return &Node{Kind: KindVariable, Symbol: symbol, Children: children, FallbackPosition: fallback}
}

// Error builds a KindError leaf.
func Error(symbol string, tok tokstream.Token, expected []string) *Node {
	return &Node{Kind: KindError, Symbol: symbol, Token: tok, ExpectedTerminals: expected}
}

// Start returns the position of the first character this node spans.
func (n *Node) Start() tokstream.Position {
	switch n.Kind {
	case KindTerminal, KindError:
		if n.Token != nil {
			return n.Token.Start()
		}
		return n.FallbackPosition
	case KindVariable:
		if len(n.Children) == 0 {
			return n.FallbackPosition
		}
		return n.Children[0].Start()
	default:
		return tokstream.Position{}
	}
}

// End returns the position just past the last character this node spans.
func (n *Node) End() tokstream.Position {
	switch n.Kind {
	case KindTerminal, KindError:
		if n.Token != nil {
			return n.Token.End()
		}
		return n.FallbackPosition
	case KindVariable:
		if len(n.Children) == 0 {
			return n.FallbackPosition
		}
		return n.Children[len(n.Children)-1].End()
	default:
		return tokstream.Position{}
	}
}

// Equal reports whether n and other have identical shape, symbols, and
// terminal lexemes. Positions are deliberately excluded: two trees built from
// the same grammar over two different (but lexically identical) inputs
// should still compare equal, which is what the determinism and
// collapsing-idempotence properties care about.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind || n.Symbol != other.Symbol {
		return false
	}
	switch n.Kind {
	case KindTerminal:
		if (n.Token == nil) != (other.Token == nil) {
			return false
		}
		if n.Token != nil && n.Token.Lexeme() != other.Token.Lexeme() {
			return false
		}
		return true
	case KindError:
		if len(n.ExpectedTerminals) != len(other.ExpectedTerminals) {
			return false
		}
		for i, e := range n.ExpectedTerminals {
			if other.ExpectedTerminals[i] != e {
				return false
			}
		}
		return true
	case KindVariable:
		if len(n.Children) != len(other.Children) {
			return false
		}
		for i, c := range n.Children {
			if !c.Equal(other.Children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the tree in a LISP-like indented form, one node per line.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, 0)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder, level int) {
	prefix := strings.Repeat("  ", level)
	if n == nil {
		fmt.Fprintf(sb, "%s(NIL)\n", prefix)
		return
	}
	switch n.Kind {
	case KindTerminal:
		lex := ""
		if n.Token != nil {
			lex = n.Token.Lexeme()
		}
		fmt.Fprintf(sb, "%s(TERM %s %q)\n", prefix, n.Symbol, lex)
	case KindError:
		lex := ""
		if n.Token != nil {
			lex = n.Token.Lexeme()
		}
		fmt.Fprintf(sb, "%s(ERROR %q expected=%v)\n", prefix, lex, n.ExpectedTerminals)
	case KindVariable:
		fmt.Fprintf(sb, "%s( %s\n", prefix, n.Symbol)
		for _, c := range n.Children {
			c.write(sb, level+1)
		}
		fmt.Fprintf(sb, "%s)\n", prefix)
	}
}
