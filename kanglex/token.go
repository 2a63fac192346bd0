// Package kanglex implements the concrete indentation-sensitive lexer of
// spec §4.5 (component C6): synthetic OPEN_BLOCK/CLOSE_BLOCK/END_OF_LINE
// tokens driven by column tracking and a block-indentation stack, plus
// ordinary identifier/keyword/number/string/symbol lexing.
package kanglex

import "github.com/jkugelman/kang/tokstream"

// Token is kanglex's concrete tokstream.Token implementation. Payload
// carries a decoded value for INTEGER, REAL, STRING, and CHAR tokens (int64,
// float64, or string respectively); it is nil for every other class.
type Token struct {
	class   string
	lexeme  string
	start   tokstream.Position
	end     tokstream.Position
	payload any
}

func (t *Token) Class() string             { return t.class }
func (t *Token) Lexeme() string            { return t.lexeme }
func (t *Token) Start() tokstream.Position { return t.start }
func (t *Token) End() tokstream.Position   { return t.end }

// Payload returns the token's typed value, if any (spec §3: "Concrete
// subtype for the indentation lexer additionally carries a typed payload").
func (t *Token) Payload() any { return t.payload }

func newSyntheticToken(class string, pos tokstream.Position) *Token {
	return &Token{class: class, start: pos, end: pos}
}

// Synthetic token classes emitted by the indentation/line-structure logic
// rather than by matching a grammar terminal's lexeme directly.
const (
	ClassOpenBlock  = "OPEN_BLOCK"
	ClassCloseBlock = "CLOSE_BLOCK"
	ClassEndOfLine  = "END_OF_LINE"

	ClassIdentifier = "IDENTIFIER"
	ClassInteger    = "INTEGER"
	ClassReal       = "REAL"
	ClassString     = "STRING"
	ClassChar       = "CHAR"
)
