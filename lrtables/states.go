package lrtables

import (
	"github.com/jkugelman/kang/grammar"
	"github.com/jkugelman/kang/support"
)

// State is one state of the canonical LR(1) collection: its item set and its
// assigned index.
type State struct {
	ID    int
	Items *itemSet
}

// Automaton is the canonical collection of states plus the goto function
// over both terminals and non-terminals (spec §4.2, "iterate... assign
// state indices by iteration order").
type Automaton struct {
	States []*State
	// Goto maps stateID -> symbol -> target stateID, for both terminal
	// shifts and non-terminal gotos; the table builder splits these back
	// apart into ACTION and GOTO.
	Goto map[int]map[string]int
}

func buildAutomaton(g *grammar.Grammar, ri *RuleIndex, startRule *grammar.Rule, nullable map[string]bool, first map[string]*support.StringSet) *Automaton {
	startItems := closure(g, ri, []Item{{Rule: startRule, Pos: 0, Lookahead: grammar.EndTerminalName}}, nullable, first)

	automaton := &Automaton{Goto: map[int]map[string]int{}}
	byKey := map[string]*State{}

	start := &State{ID: 0, Items: startItems}
	byKey[startItems.key()] = start
	automaton.States = append(automaton.States, start)

	symbols := make([]string, 0, len(g.Terminals())+len(g.NonTerminals())+1)
	symbols = append(symbols, g.Terminals()...)
	symbols = append(symbols, grammar.EndTerminalName)
	symbols = append(symbols, g.NonTerminals()...)

	queue := []*State{start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		for _, sym := range symbols {
			gs := gotoSet(g, ri, s.Items, sym, nullable, first)
			if gs == nil || len(gs.Items()) == 0 {
				continue
			}

			key := gs.key()
			target, exists := byKey[key]
			if !exists {
				target = &State{ID: len(automaton.States), Items: gs}
				byKey[key] = target
				automaton.States = append(automaton.States, target)
				queue = append(queue, target)
			}

			if automaton.Goto[s.ID] == nil {
				automaton.Goto[s.ID] = map[string]int{}
			}
			automaton.Goto[s.ID][sym] = target.ID
		}
	}

	return automaton
}
