package lrtables

import (
	"fmt"
	"strings"
)

// ShiftReduceConflictError reports a shift/reduce conflict the precedence
// table could not resolve (spec §4.2's conflict-resolution table, last two
// rows touching shift/reduce).
type ShiftReduceConflictError struct {
	Terminal   string
	ShiftRule  fmt.Stringer
	ReduceRule fmt.Stringer
	StateItems []fmt.Stringer
}

func (e *ShiftReduceConflictError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "shift/reduce conflict on %q between shift of %s and reduce by %s\nstate items:\n", e.Terminal, e.ShiftRule, e.ReduceRule)
	for _, it := range e.StateItems {
		fmt.Fprintf(&sb, "  %s\n", it)
	}
	return sb.String()
}

// ReduceReduceConflictError reports two rules that both propose a reduction
// under the same lookahead in the same state.
type ReduceReduceConflictError struct {
	Terminal   string
	FirstRule  fmt.Stringer
	SecondRule fmt.Stringer
	StateItems []fmt.Stringer
}

func (e *ReduceReduceConflictError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "reduce/reduce conflict on %q between %s and %s\nstate items:\n", e.Terminal, e.FirstRule, e.SecondRule)
	for _, it := range e.StateItems {
		fmt.Fprintf(&sb, "  %s\n", it)
	}
	return sb.String()
}
