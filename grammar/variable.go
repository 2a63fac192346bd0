package grammar

// Variable is a non-terminal: a name and its ordered list of Rules. ParentRule
// is non-nil when this Variable was synthesized by the grammar loader/
// desugarer (C2) out of an extended construct (optional, repeat, choice, or
// group); such variables are collapsible, meaning
// their node is spliced into the parent's children rather than kept as its
// own node when the parse tree is built (spec §4.3 step 5).
type Variable struct {
	Name       string
	Rules      []*Rule
	ParentRule *Rule
}

// Collapsible reports whether this Variable is an auxiliary synthesized
// during desugaring.
func (v *Variable) Collapsible() bool {
	return v.ParentRule != nil
}
