package history

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/dshills/textcore/internal/engine/buffer"
)

// Unlimited is the bound used when no maximum is configured.
const Unlimited = math.MaxInt

// ErrEmptyStack is returned when popping or peeking an empty stack.
var ErrEmptyStack = errors.New("stack is empty")

// minRing is the first allocation made by a LimitedStack.
const minRing = 8

// LimitedStack is a LIFO stack holding at most Max items. Pushing onto a
// full stack discards the oldest item. Storage is a ring that grows on
// demand, so a large bound costs nothing until it is used.
type LimitedStack[T any] struct {
	ring  []T
	head  int // oldest item
	count int
	max   int
}

// NewLimitedStack creates a stack bounded at max items.
func NewLimitedStack[T any](max int) (*LimitedStack[T], error) {
	if max <= 0 {
		return nil, fmt.Errorf("stack bound %d: %w", max, buffer.ErrInvalidArgument)
	}
	return &LimitedStack[T]{max: max}, nil
}

// NewLimitedStackFrom creates a stack holding items, the last one on top.
// It fails if items does not fit under max.
func NewLimitedStackFrom[T any](items []T, max int) (*LimitedStack[T], error) {
	if max <= 0 || len(items) > max {
		return nil, fmt.Errorf("%d items under bound %d: %w", len(items), max, buffer.ErrInvalidArgument)
	}
	return &LimitedStack[T]{ring: slices.Clone(items), count: len(items), max: max}, nil
}

// Len returns the number of items held.
func (s *LimitedStack[T]) Len() int { return s.count }

// Max returns the bound.
func (s *LimitedStack[T]) Max() int { return s.max }

func (s *LimitedStack[T]) slot(i int) int {
	return (s.head + i) % len(s.ring)
}

// relayout copies the items oldest first into a ring of size n, keeping
// the newest items if n is smaller than Len.
func (s *LimitedStack[T]) relayout(n int) {
	drop := max(s.count-n, 0)
	ring := make([]T, n)
	for i := drop; i < s.count; i++ {
		ring[i-drop] = s.ring[s.slot(i)]
	}
	s.ring = ring
	s.head = 0
	s.count -= drop
}

// Push adds v on top. It reports whether the oldest item was discarded to
// make room.
func (s *LimitedStack[T]) Push(v T) (evicted bool) {
	if s.count == len(s.ring) && s.count < s.max {
		n := max(minRing, 2*len(s.ring))
		if n > s.max || n < 0 {
			n = s.max
		}
		s.relayout(n)
	}
	if s.count == s.max {
		s.ring[s.head] = v
		s.head = (s.head + 1) % len(s.ring)
		return true
	}
	s.ring[s.slot(s.count)] = v
	s.count++
	return false
}

// Pop removes and returns the top item.
func (s *LimitedStack[T]) Pop() (T, error) {
	v, ok := s.TryPop()
	if !ok {
		return v, ErrEmptyStack
	}
	return v, nil
}

// TryPop is Pop without the error.
func (s *LimitedStack[T]) TryPop() (T, bool) {
	var zero T
	if s.count == 0 {
		return zero, false
	}
	i := s.slot(s.count - 1)
	v := s.ring[i]
	s.ring[i] = zero
	s.count--
	return v, true
}

// Peek returns the top item without removing it.
func (s *LimitedStack[T]) Peek() (T, error) {
	v, ok := s.TryPeek()
	if !ok {
		return v, ErrEmptyStack
	}
	return v, nil
}

// TryPeek is Peek without the error.
func (s *LimitedStack[T]) TryPeek() (T, bool) {
	if s.count == 0 {
		var zero T
		return zero, false
	}
	return s.ring[s.slot(s.count-1)], true
}

// SetMax changes the bound, discarding the oldest items if more than max
// are held.
func (s *LimitedStack[T]) SetMax(max int) error {
	if max <= 0 {
		return fmt.Errorf("stack bound %d: %w", max, buffer.ErrInvalidArgument)
	}
	s.max = max
	if s.count > max || len(s.ring) > max {
		s.relayout(min(len(s.ring), max))
	}
	return nil
}

// Clear removes every item and releases the storage.
func (s *LimitedStack[T]) Clear() {
	s.ring = nil
	s.head = 0
	s.count = 0
}

// All iterates from the top of the stack down to the oldest item.
func (s *LimitedStack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.count - 1; i >= 0; i-- {
			if !yield(s.ring[s.slot(i)]) {
				return
			}
		}
	}
}
