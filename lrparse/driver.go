// Package lrparse implements the shift/reduce driver of spec §4.3
// (component C4): it walks ACTION/GOTO tables built by lrtables, building a
// tree.Node parse tree, and performs Yacc-style panic-mode error recovery
// using the @error sentinel and the tokenizer's transaction support.
package lrparse

import (
	"fmt"
	"sort"

	"github.com/jkugelman/kang/grammar"
	"github.com/jkugelman/kang/lrtables"
	"github.com/jkugelman/kang/support"
	"github.com/jkugelman/kang/tokstream"
	"github.com/jkugelman/kang/tree"
)

// Parser drives a canonical LR(1) parse given a grammar and its tables.
type Parser struct {
	Grammar *grammar.Grammar
	Tables  *lrtables.Tables
}

// New returns a Parser for the given grammar and its already-built tables.
func New(g *grammar.Grammar, tables *lrtables.Tables) *Parser {
	return &Parser{Grammar: g, Tables: tables}
}

// Parse runs the driver loop to completion over tz, returning the root of
// the resulting parse tree, or an error if the input could not be parsed
// (including recovery exhaustion).
func (p *Parser) Parse(tz *tokstream.Tokenizer) (*tree.Node, error) {
	d := &driver{
		g:      p.Grammar,
		t:      p.Tables,
		tz:     tz,
		states: support.NewStack[int](),
		nodes:  support.NewStack[*tree.Node](),
	}
	d.states.Push(0)
	d.lookahead = tz.GetToken()

	return d.run()
}

// driver holds the mutable state spec §4.3 describes: a stack of state
// indices, a parallel list of parse-tree nodes, a current lookahead, and an
// errorMode flag.
type driver struct {
	g *grammar.Grammar
	t *lrtables.Tables

	tz *tokstream.Tokenizer

	states *support.Stack[int]
	nodes  *support.Stack[*tree.Node]

	errorMode bool
	lookahead tokstream.Token
}

func (d *driver) currentTerminal() string {
	if d.lookahead == nil {
		return grammar.EndTerminalName
	}
	return d.lookahead.Class()
}

func (d *driver) run() (*tree.Node, error) {
	for {
		terminal := d.currentTerminal()
		if terminal != grammar.EndTerminalName && !d.g.IsTerminal(terminal) {
			return nil, &UnknownTokenError{Token: d.lookahead}
		}

		effective := terminal
		if d.errorMode && !d.tz.IsTransactionInProgress() {
			effective = grammar.ErrorTerminalName
		}

		top := d.states.Peek()
		action, ok := d.t.Action[top][effective]
		if !ok {
			var recovered bool
			if !d.errorMode {
				recovered = d.enterRecovery()
			} else {
				recovered = d.continueRecovery()
			}
			if !recovered {
				return nil, &RecoveryFailedError{Position: d.tz.GetPosition()}
			}
			continue
		}

		switch action.Kind {
		case lrtables.ActionShift:
			d.shift(top, action, effective)
		case lrtables.ActionReduce:
			d.reduce(action.Rule)
		case lrtables.ActionAccept:
			if d.nodes.Len() != 1 {
				return nil, fmt.Errorf("lrparse: accept with %d parse-tree nodes on the stack, want 1", d.nodes.Len())
			}
			return d.nodes.Pop(), nil
		}
	}
}

// shift implements step 4: either a normal terminal shift (advancing the
// lookahead) or, when the effective terminal is @error, the shift that
// creates the Error node and opens a tokenizer transaction without
// consuming a real token.
func (d *driver) shift(top int, action lrtables.Action, effective string) {
	var node *tree.Node

	if effective == grammar.ErrorTerminalName {
		node = tree.Error(grammar.ErrorTerminalName, nil, expectedTerminals(d.t.Action[top]))
		d.tz.BeginTransaction()
	} else {
		node = tree.Terminal(effective, d.lookahead)
		d.lookahead = d.tz.GetToken()
	}

	d.states.Push(action.State)
	d.nodes.Push(node)
}

func expectedTerminals(actions map[string]lrtables.Action) []string {
	out := make([]string, 0, len(actions))
	for term := range actions {
		if term != grammar.ErrorTerminalName {
			out = append(out, term)
		}
	}
	sort.Strings(out)
	return out
}

// reduce implements step 5: pop the production's states and nodes, collapse
// the children per the reference kinds, push the resulting Variable node,
// and follow GOTO. Reducing by an error rule exits recovery.
func (d *driver) reduce(rule *grammar.Rule) {
	k := len(rule.Production)
	d.states.PopN(k)

	children := make([]*tree.Node, k)
	for i := k - 1; i >= 0; i-- {
		children[i] = d.nodes.Pop()
	}

	if rule.IsErrorRule() {
		d.errorMode = false
		d.tz.CommitTransaction()
	}

	collapsed := d.collapse(rule.Production, children)

	var fallback tokstream.Position
	if len(collapsed) == 0 {
		fallback = d.tz.GetPosition()
	}
	d.nodes.Push(tree.Variable(rule.NonTerminal, collapsed, fallback))

	newTop := d.states.Peek()
	target, ok := d.t.Goto[newTop][rule.NonTerminal]
	if !ok {
		panic(fmt.Sprintf("lrparse: no GOTO[%d, %s] after reducing %s", newTop, rule.NonTerminal, rule))
	}
	d.states.Push(target)
}

// collapse implements the splicing rule of spec §4.3 step 5: a
// non-preserved terminal child is omitted; a collapsible-variable child has
// its own children spliced in place of itself.
func (d *driver) collapse(production []grammar.Reference, children []*tree.Node) []*tree.Node {
	var out []*tree.Node
	for i, ref := range production {
		child := children[i]
		switch r := ref.(type) {
		case grammar.TerminalReference:
			if !r.Preserved {
				continue
			}
			out = append(out, child)
		case grammar.VariableReference:
			if v, ok := d.g.Var(r.Variable); ok && v.Collapsible() {
				out = append(out, child.Children...)
				continue
			}
			out = append(out, child)
		default:
			out = append(out, child)
		}
	}
	return out
}
