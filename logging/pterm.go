package logging

import (
	"fmt"

	"github.com/jkugelman/kang/tokstream"
	"github.com/pterm/pterm"
)

// PtermLogger writes diagnostics to stderr using pterm's colored prefix
// printers, the same way the warning/error categories of a REPL session
// would.
type PtermLogger struct {
	warning pterm.PrefixPrinter
	error   pterm.PrefixPrinter
}

// NewPtermLogger returns a Logger backed by pterm's default Warning/Error
// printers.
func NewPtermLogger() *PtermLogger {
	return &PtermLogger{
		warning: pterm.Warning,
		error:   pterm.Error,
	}
}

func (l *PtermLogger) Warningf(pos tokstream.Position, format string, args ...any) {
	l.warning.Println(fmt.Sprintf("%s: %s", pos, fmt.Sprintf(format, args...)))
}

func (l *PtermLogger) Errorf(pos tokstream.Position, format string, args ...any) {
	l.error.Println(fmt.Sprintf("%s: %s", pos, fmt.Sprintf(format, args...)))
}
