package grammar

import "fmt"

// Reference is one item on the right-hand side of a Rule: either a
// TerminalReference or a VariableReference.
type Reference interface {
	// Name is the terminal or variable name this reference points to.
	Name() string

	// IsTerminal reports whether this reference is to a terminal.
	IsTerminal() bool

	String() string
}

// TerminalReference is a RHS reference to a terminal. Preserved overrides the
// referenced terminal's Discardable flag for this occurrence only: when true,
// the resulting ParseTree.Terminal node is kept even if the terminal is
// Discardable by default.
type TerminalReference struct {
	Terminal  string
	Preserved bool
}

func (r TerminalReference) Name() string    { return r.Terminal }
func (r TerminalReference) IsTerminal() bool { return true }
func (r TerminalReference) String() string {
	if r.Preserved {
		return fmt.Sprintf("!%s", r.Terminal)
	}
	return r.Terminal
}

// VariableReference is a RHS reference to a non-terminal.
type VariableReference struct {
	Variable string
}

func (r VariableReference) Name() string     { return r.Variable }
func (r VariableReference) IsTerminal() bool { return false }
func (r VariableReference) String() string   { return r.Variable }
