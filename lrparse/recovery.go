package lrparse

import (
	"github.com/jkugelman/kang/grammar"
	"github.com/jkugelman/kang/tree"
)

// enterRecovery implements spec §4.3's "Entering recovery": pop states (and
// their matching nodes) until ACTION[top, @error] exists, or the stack is
// exhausted (only the initial state remains and it still has no @error
// action). Returns false on exhaustion.
func (d *driver) enterRecovery() bool {
	for {
		top := d.states.Peek()
		if _, ok := d.t.Action[top][grammar.ErrorTerminalName]; ok {
			d.errorMode = true
			return true
		}
		if d.states.Len() == 1 {
			return false
		}
		d.states.Pop()
		d.nodes.Pop()
	}
}

// continueRecovery implements spec §4.3's "Continuing recovery": the
// attempted reduction past the Error node failed. Unwind back to the last
// Error node, roll back the open transaction (discarding everything read
// since entering/continuing recovery), advance past the offending token,
// and open a fresh transaction to try again.
func (d *driver) continueRecovery() bool {
	for d.nodes.Len() > 0 && d.nodes.Peek().Kind != tree.KindError {
		d.nodes.Pop()
		d.states.Pop()
	}
	if d.nodes.Len() == 0 {
		return false
	}

	d.tz.RollbackTransaction()
	next := d.tz.GetToken()

	if next == nil {
		top := d.states.Peek()
		if _, ok := d.t.Action[top][grammar.EndTerminalName]; !ok {
			return false
		}
	}

	d.tz.BeginTransaction()
	d.lookahead = next
	return true
}
