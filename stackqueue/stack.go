// Package stackqueue implements the fixed-capacity, array-backed stacks and
// queues of the corpus, plus the katas built on top of them. Overflow and
// underflow are reported as errors rather than panics, since exercising
// them is part of the drills.
package stackqueue

import "errors"

// ErrOverflow is returned when pushing into a full container.
var ErrOverflow = errors.New("stackqueue: overflow")

// ErrUnderflow is returned when taking from an empty container.
var ErrUnderflow = errors.New("stackqueue: underflow")

// Stack is a fixed-capacity LIFO over a preallocated array.
type Stack[T any] struct {
	items []T
	top   int
}

// NewStack creates a stack holding at most capacity elements.
func NewStack[T any](capacity int) *Stack[T] {
	if capacity <= 0 {
		panic("stackqueue: capacity must be positive")
	}

	return &Stack[T]{
		items: make([]T, capacity),
		top:   -1,
	}
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) error {
	if s.top == len(s.items)-1 {
		return ErrOverflow
	}

	s.top++
	s.items[s.top] = v

	return nil
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.top < 0 {
		return zero, ErrUnderflow
	}

	v := s.items[s.top]
	s.items[s.top] = zero
	s.top--

	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	var zero T
	if s.top < 0 {
		return zero, ErrUnderflow
	}

	return s.items[s.top], nil
}

// Size returns the number of elements on the stack.
func (s *Stack[T]) Size() int { return s.top + 1 }

// Capacity returns the maximum number of elements.
func (s *Stack[T]) Capacity() int { return len(s.items) }

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return s.top < 0 }

// Full reports whether the stack is at capacity.
func (s *Stack[T]) Full() bool { return s.top == len(s.items)-1 }
