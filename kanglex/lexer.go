package kanglex

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/jkugelman/kang/logging"
	"github.com/jkugelman/kang/tokstream"
)

const ellipsis = '…'

// Lexer implements tokstream.TokenSource over a fixed source text, producing
// the synthetic block/line-structure tokens plus ordinary token bodies
// described in spec §4.5.
type Lexer struct {
	source string
	runes  []rune
	pos    int

	line, col int

	blockLevels []int

	isFirstToken    bool
	justSawEllipsis bool
	sawTokenOnLine  bool

	pending []tokstream.Token

	log logging.Logger
}

// New returns a Lexer reading text from the named source. log receives
// EllipsisNotAtEndOfLine/InvalidCharacter/InvalidNumber diagnostics; pass
// logging.Discard to ignore them.
func New(source, text string, log logging.Logger) *Lexer {
	if log == nil {
		log = logging.Discard
	}
	return &Lexer{
		source:       source,
		runes:        []rune(text),
		blockLevels:  []int{0},
		isFirstToken: true,
		log:          log,
	}
}

func (l *Lexer) atEOF() bool { return l.pos >= len(l.runes) }

func (l *Lexer) here() tokstream.Position {
	return tokstream.Position{Source: l.source, Line: l.line, Col: l.col}
}

func (l *Lexer) peek() rune {
	if l.atEOF() {
		return 0
	}
	return l.runes[l.pos]
}

func (l *Lexer) peekAt(offset int) rune {
	i := l.pos + offset
	if i < 0 || i >= len(l.runes) {
		return 0
	}
	return l.runes[i]
}

// advance consumes and returns the current character, updating line/column
// per spec §4.5's tab-stop-8 rule.
func (l *Lexer) advance() rune {
	r := l.runes[l.pos]
	l.pos++
	switch r {
	case '\n':
		l.line++
		l.col = 0
	case '\t':
		l.col = ((l.col / 8) + 1) * 8
	default:
		l.col++
	}
	return r
}

// ExtractToken implements tokstream.TokenSource.
func (l *Lexer) ExtractToken() tokstream.Token {
	if tok, ok := l.popPending(); ok {
		return tok
	}

	for {
		l.skipBetweenTokens()

		if tok, ok := l.popPending(); ok {
			return tok
		}

		if l.isFirstToken && !l.atEOF() {
			l.emitIndentation()
			if tok, ok := l.popPending(); ok {
				return tok
			}
		}

		if l.atEOF() {
			return l.emitEndOfInput()
		}

		tok := l.lexTokenBody()
		if tok != nil {
			l.sawTokenOnLine = true
			l.isFirstToken = false
			return tok
		}
		// Invalid-character/number runs already logged and discarded; loop to try again.
		// Indentation for this line was already handled before the discarded
		// run, so it is not checked again at the next token's column.
		l.isFirstToken = false
	}
}

// popPending removes and returns the head of l.pending, if any. Synthetic
// block/line-structure tokens queued by skipBetweenTokens or emitIndentation
// must be drained as soon as they appear, even at end of input, so they are
// never lost behind an atEOF check.
func (l *Lexer) popPending() (tokstream.Token, bool) {
	if len(l.pending) == 0 {
		return nil, false
	}
	tok := l.pending[0]
	l.pending = l.pending[1:]
	return tok, true
}

// skipBetweenTokens implements spec §4.5 step 1.
func (l *Lexer) skipBetweenTokens() {
	for {
		switch {
		case l.atEOF():
			return
		case l.peek() == '\n':
			l.handleNewline()
		case unicode.IsSpace(l.peek()):
			l.advance()
		case l.peek() == ellipsis:
			l.handleEllipsis()
		case l.peek() == '-' && l.peekAt(1) == '-':
			l.consumeComment()
		default:
			if l.justSawEllipsis {
				l.log.Errorf(l.here(), "EllipsisNotAtEndOfLine")
				l.justSawEllipsis = false
			}
			return
		}
	}
}

// handleNewline implements spec §4.5 step 2. A preceding ellipsis makes this
// newline a line continuation: no END_OF_LINE is emitted and the following
// physical line is not subject to the indentation check, so the two lines
// behave as one.
func (l *Lexer) handleNewline() {
	continuation := l.justSawEllipsis
	emit := l.sawTokenOnLine && !continuation
	l.advance()
	l.justSawEllipsis = false
	if emit {
		l.pending = append(l.pending, newSyntheticToken(ClassEndOfLine, l.here()))
	}
	if !continuation {
		l.sawTokenOnLine = false
		l.isFirstToken = true
	}
}

func (l *Lexer) handleEllipsis() {
	if l.justSawEllipsis {
		l.log.Errorf(l.here(), "EllipsisNotAtEndOfLine")
	}
	l.advance()
	l.justSawEllipsis = true
}

func (l *Lexer) consumeComment() {
	for !l.atEOF() && l.peek() != '\n' {
		l.advance()
	}
}

// emitIndentation implements spec §4.5 step 3.
func (l *Lexer) emitIndentation() {
	c := l.col
	top := l.blockLevels[len(l.blockLevels)-1]
	pos := l.here()
	if c > top {
		l.blockLevels = append(l.blockLevels, c)
		l.pending = append(l.pending, newSyntheticToken(ClassOpenBlock, pos))
		return
	}
	for c < l.blockLevels[len(l.blockLevels)-1] {
		l.blockLevels = l.blockLevels[:len(l.blockLevels)-1]
		l.pending = append(l.pending, newSyntheticToken(ClassCloseBlock, pos))
	}
}

func (l *Lexer) emitEndOfInput() tokstream.Token {
	if l.sawTokenOnLine {
		l.sawTokenOnLine = false
		return newSyntheticToken(ClassEndOfLine, l.here())
	}
	if len(l.blockLevels) > 1 {
		l.blockLevels = l.blockLevels[:len(l.blockLevels)-1]
		return newSyntheticToken(ClassCloseBlock, l.here())
	}
	return nil
}

func isLetter(r rune) bool { return unicode.IsLetter(r) }
func isDigit(r rune) bool  { return unicode.IsDigit(r) }

// lexTokenBody implements spec §4.5 step 4. Returns nil (having already
// logged) when the run is consumed as a local lexical error.
func (l *Lexer) lexTokenBody() tokstream.Token {
	start := l.here()
	switch r := l.peek(); {
	case isLetter(r):
		return l.lexWord(start)
	case isDigit(r):
		return l.lexNumber(start)
	case r == '"':
		return l.lexString(start)
	case r == '\'':
		return l.lexChar(start)
	default:
		return l.lexSymbol(start)
	}
}

func (l *Lexer) lexWord(start tokstream.Position) tokstream.Token {
	var sb strings.Builder
	for !l.atEOF() && (isLetter(l.peek()) || isDigit(l.peek())) {
		sb.WriteRune(l.advance())
	}
	word := sb.String()
	class := ClassIdentifier
	if keywords[word] {
		class = word
	}
	return &Token{class: class, lexeme: word, start: start, end: l.here()}
}

func (l *Lexer) lexNumber(start tokstream.Position) tokstream.Token {
	var sb strings.Builder
	for !l.atEOF() && isDigit(l.peek()) {
		sb.WriteRune(l.advance())
	}

	isReal := false
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		isReal = true
		sb.WriteRune(l.advance())
		for !l.atEOF() && isDigit(l.peek()) {
			sb.WriteRune(l.advance())
		}
	}

	if !l.atEOF() && (isLetter(l.peek()) || l.peek() == '.') {
		for !l.atEOF() && (isLetter(l.peek()) || isDigit(l.peek()) || l.peek() == '.') {
			sb.WriteRune(l.advance())
		}
		lexeme := sb.String()
		l.log.Errorf(start, "InvalidNumber: %s", lexeme)
		// Discard the whole malformed run (already consumed above) rather
		// than surfacing it as a token: no terminal class in any grammar
		// can match INVALID_NUMBER, and emitting it would cascade into an
		// UnknownToken failure in the parser (spec §7).
		return nil
	}

	lexeme := sb.String()
	if isReal {
		v, _ := strconv.ParseFloat(lexeme, 64)
		return &Token{class: ClassReal, lexeme: lexeme, start: start, end: l.here(), payload: v}
	}
	v, _ := strconv.ParseInt(lexeme, 10, 64)
	return &Token{class: ClassInteger, lexeme: lexeme, start: start, end: l.here(), payload: v}
}

func (l *Lexer) lexString(start tokstream.Position) tokstream.Token {
	l.advance() // opening quote
	var sb strings.Builder
	for !l.atEOF() && l.peek() != '"' && l.peek() != '\n' {
		sb.WriteRune(l.advance())
	}
	body := sb.String()
	if !l.atEOF() && l.peek() == '"' {
		l.advance()
	}
	return &Token{class: ClassString, lexeme: "\"" + body + "\"", start: start, end: l.here(), payload: body}
}

func (l *Lexer) lexChar(start tokstream.Position) tokstream.Token {
	l.advance() // opening quote
	var sb strings.Builder
	for !l.atEOF() && l.peek() != '\'' && l.peek() != '\n' {
		sb.WriteRune(l.advance())
	}
	body := sb.String()
	if !l.atEOF() && l.peek() == '\'' {
		l.advance()
	}
	return &Token{class: ClassChar, lexeme: "'" + body + "'", start: start, end: l.here(), payload: body}
}

func (l *Lexer) lexSymbol(start tokstream.Position) tokstream.Token {
	r := l.advance()
	class, ok := symbolClasses[r]
	if !ok {
		l.log.Errorf(start, "InvalidCharacter: %q", r)
		// Discard the offending character (already consumed above) instead
		// of emitting an INVALID_CHARACTER token; see the matching comment
		// in lexNumber.
		return nil
	}
	return &Token{class: class, lexeme: string(r), start: start, end: l.here()}
}
