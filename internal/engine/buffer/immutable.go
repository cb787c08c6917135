package buffer

import (
	"fmt"
	"iter"
	"slices"
)

// ImmutableBuffer wraps a caller-owned slice without copying it. Every
// write returns ErrImmutable. The caller must not modify the slice while
// the buffer is in use.
type ImmutableBuffer[T comparable] struct {
	items []T
}

// NewImmutableBuffer wraps items. A nil slice is rejected.
func NewImmutableBuffer[T comparable](items []T) (*ImmutableBuffer[T], error) {
	if items == nil {
		return nil, fmt.Errorf("immutable buffer: nil source: %w", ErrInvalidArgument)
	}
	return &ImmutableBuffer[T]{items: items}, nil
}

func (b *ImmutableBuffer[T]) Len() int { return len(b.items) }
func (b *ImmutableBuffer[T]) IsImmutable() bool { return true }

// At returns the element at index.
func (b *ImmutableBuffer[T]) At(index int) (T, error) {
	if err := CheckIndex("at", index, len(b.items)); err != nil {
		var zero T
		return zero, err
	}
	return b.items[index], nil
}

// Slice returns a view over [start, start+count).
func (b *ImmutableBuffer[T]) Slice(start, count int) ([]T, error) {
	if err := CheckRange("slice", start, count, len(b.items)); err != nil {
		return nil, err
	}
	return b.items[start : start+count : start+count], nil
}

// CopyTo copies [start, start+len(dst)) into dst.
func (b *ImmutableBuffer[T]) CopyTo(dst []T, start int) error {
	if err := CheckRange("copy", start, len(dst), len(b.items)); err != nil {
		return err
	}
	copy(dst, b.items[start:])
	return nil
}

func (b *ImmutableBuffer[T]) IndexOf(value T, start int) int {
	return sliceIndexOf(b.items, value, start)
}

func (b *ImmutableBuffer[T]) LastIndexOf(value T, start int) int {
	return sliceLastIndexOf(b.items, value, start)
}

func (b *ImmutableBuffer[T]) IndexOfSeq(seq []T, start int) int {
	return sliceIndexOfSeq(b.items, seq, start)
}

func (b *ImmutableBuffer[T]) LastIndexOfSeq(seq []T, start int) int {
	return sliceLastIndexOfSeq(b.items, seq, start)
}

func (b *ImmutableBuffer[T]) IndexOfAny(values []T, start int) int {
	return sliceIndexOfAny(b.items, values, start)
}

func (b *ImmutableBuffer[T]) LastIndexOfAny(values []T, start int) int {
	return sliceLastIndexOfAny(b.items, values, start)
}

func (b *ImmutableBuffer[T]) Set(int, T) error { return immutableError("set") }
func (b *ImmutableBuffer[T]) Insert(int, T) error { return immutableError("insert") }
func (b *ImmutableBuffer[T]) InsertSlice(int, []T) error { return immutableError("insert") }
func (b *ImmutableBuffer[T]) InsertSeq(int, iter.Seq[T]) error { return immutableError("insert") }
func (b *ImmutableBuffer[T]) RemoveAt(int) error { return immutableError("remove") }
func (b *ImmutableBuffer[T]) RemoveRange(int, int) error { return immutableError("remove range") }
func (b *ImmutableBuffer[T]) Clear() error { return immutableError("clear") }

// Clone returns a buffer over a private copy of the wrapped slice, so the
// clone no longer observes writes the caller makes to the original.
func (b *ImmutableBuffer[T]) Clone() Buffer[T] {
	return &ImmutableBuffer[T]{items: slices.Clone(b.items)}
}
