package lrtables

import (
	"fmt"
	"strings"

	"github.com/jkugelman/kang/grammar"
)

// Item is a canonical LR(1) item: a rule, a dot position within its
// production, and a single lookahead terminal (spec §3, component C3).
type Item struct {
	Rule      *grammar.Rule
	Pos       int
	Lookahead string
}

// AtEnd reports whether the dot has reached the end of the production.
func (it Item) AtEnd() bool {
	return it.Pos >= len(it.Rule.Production)
}

// NextRef returns the reference immediately after the dot, if any.
func (it Item) NextRef() (grammar.Reference, bool) {
	if it.AtEnd() {
		return nil, false
	}
	return it.Rule.Production[it.Pos], true
}

// Advance returns the item with the dot moved one position to the right.
func (it Item) Advance() Item {
	return Item{Rule: it.Rule, Pos: it.Pos + 1, Lookahead: it.Lookahead}
}

// Key returns a canonical, reproducible identity for this item, used to
// intern items within a state and states within the automaton.
func (it Item) Key(ri *RuleIndex) string {
	return fmt.Sprintf("%d.%d.%s", ri.ID(it.Rule), it.Pos, it.Lookahead)
}

// String renders the item Dragon-Book style: "A -> alpha . beta, la".
func (it Item) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s ->", it.Rule.NonTerminal)
	for i, ref := range it.Rule.Production {
		if i == it.Pos {
			sb.WriteString(" .")
		}
		sb.WriteString(" ")
		sb.WriteString(ref.String())
	}
	if it.AtEnd() {
		sb.WriteString(" .")
	}
	fmt.Fprintf(&sb, ", %s]", it.Lookahead)
	return sb.String()
}
