// Package support wraps github.com/emirpasic/gods containers with the
// generic, deterministic-iteration helpers the grammar/table/driver packages
// need, in the spirit of tunaq's internal/util but sourced from gods instead
// of hand-rolled maps.
package support

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Stack is a LIFO of E backed by a gods arraystack. The zero value is not
// usable; use NewStack.
type Stack[E any] struct {
	of *arraystack.Stack
}

// NewStack returns an empty stack.
func NewStack[E any]() *Stack[E] {
	return &Stack[E]{of: arraystack.New()}
}

// Push adds v to the top of the stack.
func (s *Stack[E]) Push(v E) {
	s.of.Push(v)
}

// Pop removes and returns the top of the stack. Panics if the stack is empty;
// callers that manage parser/automaton state are expected to know their
// stack is non-empty before popping.
func (s *Stack[E]) Pop() E {
	v, ok := s.of.Pop()
	if !ok {
		panic("pop of empty stack")
	}
	return v.(E)
}

// PopN pops and discards the top n elements.
func (s *Stack[E]) PopN(n int) {
	for i := 0; i < n; i++ {
		s.Pop()
	}
}

// Peek returns the top of the stack without removing it.
func (s *Stack[E]) Peek() E {
	v, ok := s.of.Peek()
	if !ok {
		panic("peek of empty stack")
	}
	return v.(E)
}

// Len returns the number of elements on the stack.
func (s *Stack[E]) Len() int {
	return s.of.Size()
}

// Empty returns whether the stack has no elements.
func (s *Stack[E]) Empty() bool {
	return s.of.Empty()
}

// Slice returns the stack contents bottom-to-top. Intended for diagnostics.
func (s *Stack[E]) Slice() []E {
	vals := s.of.Values()
	out := make([]E, len(vals))
	// gods Values() returns top-to-bottom; reverse so index 0 is the bottom.
	for i := range vals {
		out[len(vals)-1-i] = vals[i].(E)
	}
	return out
}

func (s *Stack[E]) String() string {
	return fmt.Sprintf("%v", s.Slice())
}
