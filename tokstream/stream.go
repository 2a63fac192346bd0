// Package tokstream implements the generic tokenizer framework of spec §4.4
// (component C5): a token-stream abstraction over a TokenSource with a
// transaction stack so a consumer (the LR driver, during panic-mode
// recovery) can buffer lookahead and roll it back.
package tokstream

// Tokenizer buffers tokens extracted from a TokenSource so that transactions
// can be rolled back. The zero value is not usable; use New.
//
// Semantics (spec §4.4):
//   - GetToken reads from the buffer while the read cursor is behind the
//     buffer's end; otherwise it calls the source's ExtractToken. If a
//     transaction is open, the extracted token (including a nil
//     end-of-input token) is appended to the buffer so rollback can replay
//     it; if no transaction is open, it is returned without buffering.
//   - BeginTransaction pushes the current cursor.
//   - CommitTransaction pops the innermost marker; once the stack empties,
//     the buffer is cleared and the cursor reset, reclaiming memory.
//   - RollbackTransaction pops the innermost marker and resets the cursor to
//     it, so the next GetToken calls re-read buffered tokens.
//
// Transactions nest; rollback only ever undoes the innermost.
type Tokenizer struct {
	source TokenSource

	buffer []Token
	cursor int

	markers []int

	lastPos Position
}

// New returns a Tokenizer that pulls fresh tokens from source.
func New(source TokenSource) *Tokenizer {
	return &Tokenizer{source: source}
}

// GetToken returns the next token in the stream and advances past it. It
// returns nil once the source is permanently exhausted.
func (t *Tokenizer) GetToken() Token {
	if t.cursor < len(t.buffer) {
		tok := t.buffer[t.cursor]
		t.cursor++
		if tok != nil {
			t.lastPos = tok.End()
		}
		return tok
	}

	tok := t.source.ExtractToken()
	if t.IsTransactionInProgress() {
		t.buffer = append(t.buffer, tok)
		t.cursor++
	}
	if tok != nil {
		t.lastPos = tok.End()
	}
	return tok
}

// BeginTransaction opens a new, possibly nested, transaction.
func (t *Tokenizer) BeginTransaction() {
	t.markers = append(t.markers, t.cursor)
}

// CommitTransaction closes the innermost transaction, permanently forgetting
// that it could have been rolled back. If this was the outermost
// transaction, the token buffer is reclaimed.
func (t *Tokenizer) CommitTransaction() {
	n := len(t.markers)
	if n == 0 {
		panic("tokstream: CommitTransaction with no transaction in progress")
	}
	t.markers = t.markers[:n-1]
	if len(t.markers) == 0 {
		t.buffer = nil
		t.cursor = 0
	}
}

// RollbackTransaction closes the innermost transaction and rewinds the read
// cursor to where it was when that transaction began. Buffered tokens are
// kept so subsequent reads replay them in original order.
func (t *Tokenizer) RollbackTransaction() {
	n := len(t.markers)
	if n == 0 {
		panic("tokstream: RollbackTransaction with no transaction in progress")
	}
	mark := t.markers[n-1]
	t.markers = t.markers[:n-1]
	t.cursor = mark
}

// IsTransactionInProgress reports whether any transaction is currently open.
func (t *Tokenizer) IsTransactionInProgress() bool {
	return len(t.markers) > 0
}

// TransactionDepth returns the number of nested open transactions.
func (t *Tokenizer) TransactionDepth() int {
	return len(t.markers)
}

// GetPosition returns the end position of the most recently returned token.
func (t *Tokenizer) GetPosition() Position {
	return t.lastPos
}
