// Package logging defines the diagnostic-reporting capability injected into
// the lexer and other components (spec §6/§7). There is no package-level
// logger; every component that needs one takes a Logger explicitly.
package logging

import (
	"fmt"

	"github.com/jkugelman/kang/tokstream"
)

// Logger receives diagnostics categorized as Warning or Error. The lexer
// reports all of its diagnostics (EllipsisNotAtEndOfLine, InvalidCharacter,
// InvalidNumber) through Errorf and then continues lexing.
// Neither call returns a value; reporting a diagnostic never itself aborts
// the caller.
type Logger interface {
	Warningf(pos tokstream.Position, format string, args ...any)
	Errorf(pos tokstream.Position, format string, args ...any)
}

// Discard is a Logger that drops every diagnostic. Useful in tests that
// don't care about lexical warnings/errors.
var Discard Logger = discard{}

type discard struct{}

func (discard) Warningf(tokstream.Position, string, ...any) {}
func (discard) Errorf(tokstream.Position, string, ...any)   {}

// Entry is one diagnostic captured by Recorder, in emission order.
type Entry struct {
	Level    string
	Position tokstream.Position
	Message  string
}

// Recorder is a Logger that accumulates every diagnostic in memory. Tests use
// it to assert on exactly which warnings/errors a lex run produced.
type Recorder struct {
	Entries []Entry
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Warningf(pos tokstream.Position, format string, args ...any) {
	r.Entries = append(r.Entries, Entry{Level: "WARN", Position: pos, Message: fmt.Sprintf(format, args...)})
}

func (r *Recorder) Errorf(pos tokstream.Position, format string, args ...any) {
	r.Entries = append(r.Entries, Entry{Level: "ERROR", Position: pos, Message: fmt.Sprintf(format, args...)})
}
