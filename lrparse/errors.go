package lrparse

import (
	"fmt"

	"github.com/jkugelman/kang/tokstream"
)

// UnknownTokenError is raised when the lookahead token's class isn't
// registered in the grammar at all (spec §4.3 step 1).
type UnknownTokenError struct {
	Token tokstream.Token
}

func (e *UnknownTokenError) Error() string {
	if e.Token == nil {
		return "lrparse: unknown token class (nil token)"
	}
	return fmt.Sprintf("lrparse: unknown token class %q at %s", e.Token.Class(), e.Token.Start())
}

// RecoveryFailedError is returned when panic-mode recovery exhausts the
// state stack, or the input, without resynchronizing (spec §4.3,
// "Entering recovery" / "Continuing recovery").
type RecoveryFailedError struct {
	Position tokstream.Position
}

func (e *RecoveryFailedError) Error() string {
	return fmt.Sprintf("lrparse: error recovery failed at %s", e.Position)
}
