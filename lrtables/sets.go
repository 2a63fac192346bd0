package lrtables

import (
	"github.com/jkugelman/kang/grammar"
	"github.com/jkugelman/kang/support"
)

// Nullable computes, for every non-terminal, whether it can derive the empty
// string, by fixed-point iteration over the grammar's rules.
func Nullable(g *grammar.Grammar) map[string]bool {
	nullable := map[string]bool{}

	changed := true
	for changed {
		changed = false
		for _, name := range g.NonTerminals() {
			if nullable[name] {
				continue
			}
			v, _ := g.Var(name)
			for _, r := range v.Rules {
				if sequenceNullable(r.Production, nullable) {
					nullable[name] = true
					changed = true
					break
				}
			}
		}
	}

	return nullable
}

func sequenceNullable(refs []grammar.Reference, nullable map[string]bool) bool {
	for _, ref := range refs {
		if ref.IsTerminal() {
			return false
		}
		if !nullable[ref.Name()] {
			return false
		}
	}
	return true
}

// First computes the FIRST set of every terminal (itself) and every
// non-terminal, by fixed-point iteration.
func First(g *grammar.Grammar, nullable map[string]bool) map[string]*support.StringSet {
	first := map[string]*support.StringSet{}

	for _, t := range g.Terminals() {
		first[t] = support.NewStringSet(t)
	}
	for _, name := range g.NonTerminals() {
		first[name] = support.NewStringSet()
	}

	changed := true
	for changed {
		changed = false
		for _, name := range g.NonTerminals() {
			v, _ := g.Var(name)
			for _, r := range v.Rules {
				if firstOfSequence(r.Production, nullable, first, first[name]) {
					changed = true
				}
			}
		}
	}

	return first
}

// firstOfSequence merges FIRST(refs) into into, returning whether into
// changed. It is used both to build the fixed-point FIRST table (into =
// FIRST of the owning non-terminal) and, given a completed FIRST table, to
// compute the FIRST set of a production suffix for canonical-item lookahead
// propagation.
func firstOfSequence(refs []grammar.Reference, nullable map[string]bool, first map[string]*support.StringSet, into *support.StringSet) bool {
	changed := false
	for _, ref := range refs {
		name := ref.Name()
		set, ok := first[name]
		if ok && into.Union(set) {
			changed = true
		}
		if ref.IsTerminal() || !nullable[name] {
			break
		}
	}
	return changed
}

// FirstOfSuffixWithLookahead computes FIRST(beta . la): the FIRST set of a
// production suffix beta, followed by a fallback lookahead terminal la that
// applies only when beta is entirely nullable (or empty). This is exactly
// the lookahead-propagation rule used when closing over a canonical LR(1)
// item [A -> alpha . B beta, la].
func FirstOfSuffixWithLookahead(beta []grammar.Reference, la string, nullable map[string]bool, first map[string]*support.StringSet) *support.StringSet {
	out := support.NewStringSet()
	firstOfSequence(beta, nullable, first, out)
	if sequenceNullable(beta, nullable) {
		out.Add(la)
	}
	return out
}
