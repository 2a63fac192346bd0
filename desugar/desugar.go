package desugar

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jkugelman/kang/grammar"
)

// Desugar lowers doc's rules and precedence blocks into a grammar.Grammar,
// per the extended-construct contract of spec §4.1. Auxiliary collapsible
// variables created along the way are named "$aux-<uuid>" so they can never
// collide with an author-chosen non-terminal name.
func Desugar(doc *Document) (*grammar.Grammar, error) {
	g := grammar.New()
	g.Start = doc.Start

	for _, t := range doc.Terminals {
		g.AddTerminal(grammar.Terminal{Name: t.Name, Discardable: t.Discardable})
	}

	for _, r := range doc.Rules {
		rp := g.AddRule(grammar.Rule{NonTerminal: r.NonTerminal})
		refs, err := lowerItems(g, rp, r.Items)
		if err != nil {
			return nil, err
		}
		rp.Production = refs
	}

	precedenceSet := 0
	for _, block := range doc.Precedence {
		precedenceSet++
		level := 0
		for _, entry := range block.Entries {
			assoc, err := parseAssociativity(entry.Associativity)
			if err != nil {
				return nil, err
			}

			switch {
			case entry.Rule != nil:
				rp := g.AddRule(grammar.Rule{
					NonTerminal:     block.NonTerminal,
					HasPrecedence:   true,
					PrecedenceSet:   precedenceSet,
					PrecedenceLevel: level,
					Associativity:   assoc,
				})
				refs, err := lowerItems(g, rp, entry.Rule)
				if err != nil {
					return nil, err
				}
				rp.Production = refs
				level++

			case entry.Group != nil:
				for _, production := range entry.Group {
					rp := g.AddRule(grammar.Rule{
						NonTerminal:     block.NonTerminal,
						HasPrecedence:   true,
						PrecedenceSet:   precedenceSet,
						PrecedenceLevel: level,
						Associativity:   assoc,
					})
					refs, err := lowerItems(g, rp, production)
					if err != nil {
						return nil, err
					}
					rp.Production = refs
				}
				level++

			default:
				return nil, fmt.Errorf("desugar: precedence entry for %q has neither rule nor group", block.NonTerminal)
			}
		}
	}

	return g, nil
}

func parseAssociativity(s string) (grammar.Associativity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return grammar.AssocNone, nil
	case "left":
		return grammar.AssocLeft, nil
	case "right":
		return grammar.AssocRight, nil
	default:
		return grammar.AssocNone, fmt.Errorf("desugar: unknown associativity %q", s)
	}
}

func newAuxName() string {
	return "$aux-" + uuid.New().String()
}

// lowerItems translates a sequence of ItemDecls appearing in parent's
// production into a sequence of grammar.Reference, creating fresh auxiliary
// collapsible variables (whose ParentRule is parent) for every group,
// optional, repeat, and choice construct encountered.
func lowerItems(g *grammar.Grammar, parent *grammar.Rule, items []ItemDecl) ([]grammar.Reference, error) {
	refs := make([]grammar.Reference, 0, len(items))
	for _, item := range items {
		ref, err := lowerItem(g, parent, item)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func lowerItem(g *grammar.Grammar, parent *grammar.Rule, item ItemDecl) (grammar.Reference, error) {
	switch item.Kind {
	case "terminal":
		preserved := item.Preserved
		if !preserved {
			if t, ok := g.Term(item.Terminal); ok {
				// An explicit preserved=true always wins; absent that, fall
				// back to the terminal's own default discardability.
				preserved = !t.Discardable
			}
		}
		return grammar.TerminalReference{Terminal: item.Terminal, Preserved: preserved}, nil

	case "variable":
		return grammar.VariableReference{Variable: item.Variable}, nil

	case "error":
		return grammar.TerminalReference{Terminal: grammar.ErrorTerminalName, Preserved: true}, nil

	case "group":
		name, err := lowerGroup(g, parent, item.Items)
		if err != nil {
			return nil, err
		}
		return grammar.VariableReference{Variable: name}, nil

	case "optional":
		name, err := lowerOptional(g, parent, item.Items)
		if err != nil {
			return nil, err
		}
		return grammar.VariableReference{Variable: name}, nil

	case "repeat":
		name, err := lowerRepeat(g, parent, item.Items, item.Min, item.Max)
		if err != nil {
			return nil, err
		}
		return grammar.VariableReference{Variable: name}, nil

	case "choice":
		name, err := lowerChoice(g, parent, item.Alternatives)
		if err != nil {
			return nil, err
		}
		return grammar.VariableReference{Variable: name}, nil

	default:
		return nil, fmt.Errorf("desugar: unknown item kind %q", item.Kind)
	}
}

// lowerGroup implements `group { items }`: one auxiliary variable with a
// single rule over items.
func lowerGroup(g *grammar.Grammar, parent *grammar.Rule, items []ItemDecl) (string, error) {
	name := newAuxName()
	v := g.AddVariable(name)
	v.ParentRule = parent

	rp := g.AddRule(grammar.Rule{NonTerminal: name})
	refs, err := lowerItems(g, rp, items)
	if err != nil {
		return "", err
	}
	rp.Production = refs

	return name, nil
}

// lowerOptional implements `optional { items }`: one auxiliary variable with
// two rules, `A -> items` and `A -> ε`.
func lowerOptional(g *grammar.Grammar, parent *grammar.Rule, items []ItemDecl) (string, error) {
	name := newAuxName()
	v := g.AddVariable(name)
	v.ParentRule = parent

	rp := g.AddRule(grammar.Rule{NonTerminal: name})
	refs, err := lowerItems(g, rp, items)
	if err != nil {
		return "", err
	}
	rp.Production = refs

	g.AddRule(grammar.Rule{NonTerminal: name})

	return name, nil
}

// lowerRepeat implements `repeat min=m [max=n]`. With no max, the auxiliary
// variable gets a left-recursive rule `A -> A items` plus a base rule with
// items repeated literally m times. With a max, it gets one rule per
// i in [min, max] with items repeated i times.
func lowerRepeat(g *grammar.Grammar, parent *grammar.Rule, items []ItemDecl, min int, max *int) (string, error) {
	if max != nil && min > *max {
		return "", &grammar.InvalidGrammarError{Problems: []string{fmt.Sprintf("repeat min=%d exceeds max=%d", min, *max)}}
	}

	name := newAuxName()
	v := g.AddVariable(name)
	v.ParentRule = parent

	if max == nil {
		recursive := g.AddRule(grammar.Rule{NonTerminal: name})
		tail, err := lowerItems(g, recursive, items)
		if err != nil {
			return "", err
		}
		recursive.Production = append([]grammar.Reference{grammar.VariableReference{Variable: name}}, tail...)

		base := g.AddRule(grammar.Rule{NonTerminal: name})
		var baseRefs []grammar.Reference
		for i := 0; i < min; i++ {
			refs, err := lowerItems(g, base, items)
			if err != nil {
				return "", err
			}
			baseRefs = append(baseRefs, refs...)
		}
		base.Production = baseRefs

		return name, nil
	}

	for count := min; count <= *max; count++ {
		rp := g.AddRule(grammar.Rule{NonTerminal: name})
		var prodRefs []grammar.Reference
		for i := 0; i < count; i++ {
			refs, err := lowerItems(g, rp, items)
			if err != nil {
				return "", err
			}
			prodRefs = append(prodRefs, refs...)
		}
		rp.Production = prodRefs
	}

	return name, nil
}

// lowerChoice implements `choice { alt1 ... altk }`: one auxiliary variable
// with one rule per alternative.
func lowerChoice(g *grammar.Grammar, parent *grammar.Rule, alternatives [][]ItemDecl) (string, error) {
	name := newAuxName()
	v := g.AddVariable(name)
	v.ParentRule = parent

	for _, alt := range alternatives {
		rp := g.AddRule(grammar.Rule{NonTerminal: name})
		refs, err := lowerItems(g, rp, alt)
		if err != nil {
			return "", err
		}
		rp.Production = refs
	}

	return name, nil
}
