package lrtables

import (
	"fmt"

	"github.com/jkugelman/kang/grammar"
	"github.com/jkugelman/kang/support"
)

// ActionKind distinguishes the four things an ACTION table cell can hold.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionShift
	ActionReduce
	ActionAccept
)

// Action is one ACTION[state, terminal] cell.
type Action struct {
	Kind  ActionKind
	State int // valid when Kind == ActionShift: the target state
	Rule  *grammar.Rule // ActionReduce: the rule to reduce by; ActionShift: the rule that introduced the shift
}

// Tables is the complete output of canonical LR(1) table construction:
// the automaton, the rule numbering used to build it, and the populated
// ACTION/GOTO tables.
type Tables struct {
	Grammar   *grammar.Grammar
	Automaton *Automaton
	RuleIndex *RuleIndex
	StartRule *grammar.Rule

	// Action maps state -> terminal -> Action.
	Action map[int]map[string]Action
	// Goto maps state -> non-terminal -> target state.
	Goto map[int]map[string]int
}

// Build runs the whole canonical LR(1) table-construction pipeline: grammar
// augmentation, nullable/FIRST, canonical state collection, and ACTION/GOTO
// population with precedence-based conflict resolution (spec §4.2). g is
// read only, never mutated.
func Build(g *grammar.Grammar) (*Tables, error) {
	ri := NewRuleIndex(g)
	startRule := newStartRule(g)
	ri.include(startRule)

	nullable := Nullable(g)
	first := First(g, nullable)
	first[grammar.EndTerminalName] = support.NewStringSet(grammar.EndTerminalName)

	automaton := buildAutomaton(g, ri, startRule, nullable, first)

	t := &Tables{
		Grammar:   g,
		Automaton: automaton,
		RuleIndex: ri,
		StartRule: startRule,
		Action:    map[int]map[string]Action{},
		Goto:      map[int]map[string]int{},
	}
	for _, s := range automaton.States {
		t.Action[s.ID] = map[string]Action{}
	}

	if err := t.populateShiftsAndGotos(g); err != nil {
		return nil, err
	}
	if err := t.populateReducesAndAccept(g); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Tables) populateShiftsAndGotos(g *grammar.Grammar) error {
	for _, s := range t.Automaton.States {
		edges := t.Automaton.Goto[s.ID]
		for sym, target := range edges {
			if sym == grammar.EndTerminalName || g.IsTerminal(sym) {
				for _, it := range s.Items.Items() {
					ref, ok := it.NextRef()
					if !ok || !ref.IsTerminal() || ref.Name() != sym {
						continue
					}
					if err := t.proposeShift(g, s, sym, target, it.Rule); err != nil {
						return err
					}
				}
			} else {
				gt, ok := t.Goto[s.ID]
				if !ok {
					gt = map[string]int{}
					t.Goto[s.ID] = gt
				}
				gt[sym] = target
			}
		}
	}
	return nil
}

func (t *Tables) populateReducesAndAccept(g *grammar.Grammar) error {
	for _, s := range t.Automaton.States {
		for _, it := range s.Items.Items() {
			if !it.AtEnd() {
				continue
			}
			if it.Rule.NonTerminal == StartVariableName && it.Lookahead == grammar.EndTerminalName {
				t.Action[s.ID][grammar.EndTerminalName] = Action{Kind: ActionAccept}
				continue
			}
			if err := t.proposeReduce(g, s, it.Lookahead, it.Rule); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Tables) proposeShift(g *grammar.Grammar, s *State, terminal string, target int, shiftRule *grammar.Rule) error {
	existing, ok := t.Action[s.ID][terminal]
	if !ok {
		t.Action[s.ID][terminal] = Action{Kind: ActionShift, State: target, Rule: shiftRule}
		return nil
	}

	switch existing.Kind {
	case ActionShift, ActionAccept:
		return nil
	case ActionReduce:
		return t.resolveShiftReduce(g, s, terminal, target, shiftRule, existing.Rule)
	default:
		t.Action[s.ID][terminal] = Action{Kind: ActionShift, State: target, Rule: shiftRule}
		return nil
	}
}

func (t *Tables) proposeReduce(g *grammar.Grammar, s *State, terminal string, reduceRule *grammar.Rule) error {
	existing, ok := t.Action[s.ID][terminal]
	if !ok {
		t.Action[s.ID][terminal] = Action{Kind: ActionReduce, Rule: reduceRule}
		return nil
	}

	switch existing.Kind {
	case ActionReduce:
		if existing.Rule == reduceRule {
			return nil
		}
		return &ReduceReduceConflictError{
			Terminal:   terminal,
			FirstRule:  existing.Rule,
			SecondRule: reduceRule,
			StateItems: itemStringers(s),
		}
	case ActionShift:
		return t.resolveShiftReduce(g, s, terminal, existing.State, existing.Rule, reduceRule)
	case ActionAccept:
		return nil
	default:
		t.Action[s.ID][terminal] = Action{Kind: ActionReduce, Rule: reduceRule}
		return nil
	}
}

func (t *Tables) resolveShiftReduce(g *grammar.Grammar, s *State, terminal string, shiftTarget int, shiftRule, reduceRule *grammar.Rule) error {
	sSet, sLevel, sAssoc, sOk := g.EffectivePrecedence(shiftRule)
	rSet, rLevel, _, rOk := g.EffectivePrecedence(reduceRule)

	conflict := &ShiftReduceConflictError{
		Terminal:   terminal,
		ShiftRule:  shiftRule,
		ReduceRule: reduceRule,
		StateItems: itemStringers(s),
	}

	if !sOk || !rOk || sSet != rSet {
		return conflict
	}

	switch {
	case sLevel > rLevel:
		t.Action[s.ID][terminal] = Action{Kind: ActionShift, State: shiftTarget, Rule: shiftRule}
		return nil
	case sLevel < rLevel:
		t.Action[s.ID][terminal] = Action{Kind: ActionReduce, Rule: reduceRule}
		return nil
	default:
		switch sAssoc {
		case grammar.AssocLeft:
			t.Action[s.ID][terminal] = Action{Kind: ActionReduce, Rule: reduceRule}
			return nil
		case grammar.AssocRight:
			t.Action[s.ID][terminal] = Action{Kind: ActionShift, State: shiftTarget, Rule: shiftRule}
			return nil
		default:
			return conflict
		}
	}
}

func itemStringers(s *State) []fmt.Stringer {
	items := s.Items.Items()
	out := make([]fmt.Stringer, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}
