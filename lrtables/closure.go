package lrtables

import (
	"github.com/jkugelman/kang/grammar"
	"github.com/jkugelman/kang/support"
)

// itemSet is an interned, deterministically-ordered collection of canonical
// LR(1) items.
type itemSet struct {
	items *support.VSet[Item]
}

func newItemSet() *itemSet {
	return &itemSet{items: support.NewVSet[Item]()}
}

func (s *itemSet) add(ri *RuleIndex, it Item) bool {
	key := it.Key(ri)
	if s.items.Has(key) {
		return false
	}
	s.items.Set(key, it)
	return true
}

// Items returns the set's items in canonical (sorted-key) order.
func (s *itemSet) Items() []Item {
	return s.items.Values()
}

// key is the canonical identity of the whole set: its sorted item keys
// joined together. Two states with the same key are the same automaton
// state.
func (s *itemSet) key() string {
	out := ""
	for _, k := range s.items.Keys() {
		out += k + "\n"
	}
	return out
}

// closure computes the canonical LR(1) closure of a kernel item set (spec
// §4.2's closure operation): repeatedly add, for every item
// [A -> alpha . B beta, la] with B a non-terminal, an item
// [B -> . gamma, lb] for every rule B -> gamma and every lb in
// FIRST(beta . la), until no more items can be added.
func closure(g *grammar.Grammar, ri *RuleIndex, kernel []Item, nullable map[string]bool, first map[string]*support.StringSet) *itemSet {
	set := newItemSet()
	for _, it := range kernel {
		set.add(ri, it)
	}

	changed := true
	for changed {
		changed = false
		for _, it := range set.Items() {
			ref, ok := it.NextRef()
			if !ok || ref.IsTerminal() {
				continue
			}

			v, ok := g.Var(ref.Name())
			if !ok {
				continue
			}

			beta := it.Rule.Production[it.Pos+1:]
			lookaheads := FirstOfSuffixWithLookahead(beta, it.Lookahead, nullable, first)

			for _, r := range v.Rules {
				for _, la := range lookaheads.Keys() {
					if set.add(ri, Item{Rule: r, Pos: 0, Lookahead: la}) {
						changed = true
					}
				}
			}
		}
	}

	return set
}
