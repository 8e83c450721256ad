package calc

import (
	"github.com/edwingeng/deque"
)

// stack is a LIFO of tokens backed by a deque.
type stack struct {
	d deque.Deque
}

func newStack() stack {
	return stack{d: deque.NewDeque()}
}

func (s stack) push(tok Token) {
	s.d.PushBack(tok)
}

// pop removes and returns the top of the stack. The second result is false
// if the stack is empty.
func (s stack) pop() (Token, bool) {
	if s.d.Empty() {
		return Token{}, false
	}
	return s.d.PopBack().(Token), true
}

// top returns the top of the stack without removing it.
func (s stack) top() (Token, bool) {
	if s.d.Empty() {
		return Token{}, false
	}
	return s.d.Back().(Token), true
}

func (s stack) len() int {
	return s.d.Len()
}
