package grammar

// Terminal is a lexical symbol of the grammar. Name must be unique among all
// terminals registered with a Grammar.
//
// If Discardable is set, references to this terminal are, by default, left
// out of the parse tree at reduce time; an individual TerminalReference can
// override this with its own Preserved flag.
type Terminal struct {
	Name        string
	Discardable bool
}

const (
	// ErrorTerminalName is the reserved name of the recovery sentinel
	// terminal. Every grammar has exactly one, added automatically by
	// New.
	ErrorTerminalName = "@error"

	// EndTerminalName is the reserved name of the end-of-input sentinel
	// terminal, used only internally by the table builder during
	// augmentation (spec §4.2). It is never part of the public grammar view.
	EndTerminalName = "@end"
)
