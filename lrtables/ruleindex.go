// Package lrtables implements the canonical LR(1) table builder of spec
// §4.2 (component C3): grammar augmentation, nullable/FIRST,
// canonical item-set construction, and ACTION/GOTO table generation with
// precedence-based conflict resolution.
package lrtables

import "github.com/jkugelman/kang/grammar"

// RuleIndex assigns every rule in a grammar a stable integer id, in the
// grammar's own deterministic registration order (NonTerminals() order, then
// each variable's Rules in append order). Item keys use this id rather than
// a rule's String() so that two distinct rules with coincidentally identical
// textual productions are never confused, and rather than the rule's
// pointer address so that keys stay reproducible across runs.
type RuleIndex struct {
	idOf  map[*grammar.Rule]int
	rules []*grammar.Rule
}

// NewRuleIndex walks g and assigns ids.
func NewRuleIndex(g *grammar.Grammar) *RuleIndex {
	ri := &RuleIndex{idOf: map[*grammar.Rule]int{}}
	for _, name := range g.NonTerminals() {
		v, _ := g.Var(name)
		for _, r := range v.Rules {
			ri.idOf[r] = len(ri.rules)
			ri.rules = append(ri.rules, r)
		}
	}
	return ri
}

// ID returns r's stable id. Panics if r was not registered with g when the
// index was built.
func (ri *RuleIndex) ID(r *grammar.Rule) int {
	id, ok := ri.idOf[r]
	if !ok {
		panic("lrtables: rule not present in RuleIndex")
	}
	return id
}

// Rule returns the rule with the given id.
func (ri *RuleIndex) Rule(id int) *grammar.Rule {
	return ri.rules[id]
}

// Len returns the number of indexed rules.
func (ri *RuleIndex) Len() int {
	return len(ri.rules)
}

// include registers an extra rule that isn't part of the source grammar
// (namely the synthetic augmented start rule) so it can participate in item
// keys and lookups like any other rule.
func (ri *RuleIndex) include(r *grammar.Rule) int {
	if id, ok := ri.idOf[r]; ok {
		return id
	}
	id := len(ri.rules)
	ri.idOf[r] = id
	ri.rules = append(ri.rules, r)
	return id
}
