package grammar

import "strings"

// InvalidGrammarError is returned by Grammar.Validate when a grammar violates
// one of the invariants in spec §3, and by the desugarer in package desugar
// for a repeat whose min exceeds its max. Problems holds every violation
// found, not just the first.
type InvalidGrammarError struct {
	Problems []string
}

func (e *InvalidGrammarError) Error() string {
	return "invalid grammar: " + strings.Join(e.Problems, "; ")
}
