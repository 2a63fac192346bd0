package grammar

import "strings"

// Associativity disambiguates a shift/reduce conflict between rules of equal
// precedence level within the same precedence set.
type Associativity int

const (
	AssocNone Associativity = iota
	AssocLeft
	AssocRight
)

func (a Associativity) String() string {
	switch a {
	case AssocLeft:
		return "left"
	case AssocRight:
		return "right"
	default:
		return "none"
	}
}

// Rule is a single production NonTerminal -> Production. PrecedenceSet and
// PrecedenceLevel are meaningful only when HasPrecedence is true; a rule with
// no precedence information never wins a shift/reduce conflict by itself (see
// lrtables' conflict resolution).
//
// For a rule whose LHS is a collapsible (auxiliary) Variable, these fields are
// generally left zero; the effective precedence/associativity is instead
// inherited from the parent rule the auxiliary was synthesized for — see
// Grammar.EffectivePrecedence.
type Rule struct {
	NonTerminal     string
	Production      []Reference
	HasPrecedence   bool
	PrecedenceSet   int
	PrecedenceLevel int
	Associativity   Associativity
}

// IsErrorRule reports whether this rule's production textually contains a
// reference to the error terminal. Such rules are the recovery productions
// panic-mode recovery resynchronizes on (spec §4.3).
func (r Rule) IsErrorRule() bool {
	for _, ref := range r.Production {
		if ref.IsTerminal() && ref.Name() == ErrorTerminalName {
			return true
		}
	}
	return false
}

func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteString(r.NonTerminal)
	sb.WriteString(" -> ")
	if len(r.Production) == 0 {
		sb.WriteString("ε")
	}
	for i, ref := range r.Production {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(ref.String())
	}
	return sb.String()
}
