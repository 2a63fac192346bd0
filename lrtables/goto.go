package lrtables

import (
	"github.com/jkugelman/kang/grammar"
	"github.com/jkugelman/kang/support"
)

// gotoSet computes goto(I, X): the closure of every item's advance-past-X,
// for every item in I whose next reference is exactly X.
func gotoSet(g *grammar.Grammar, ri *RuleIndex, items *itemSet, symbol string, nullable map[string]bool, first map[string]*support.StringSet) *itemSet {
	var kernel []Item
	for _, it := range items.Items() {
		ref, ok := it.NextRef()
		if !ok || ref.Name() != symbol {
			continue
		}
		kernel = append(kernel, it.Advance())
	}
	if len(kernel) == 0 {
		return nil
	}
	return closure(g, ri, kernel, nullable, first)
}
