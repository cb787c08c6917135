package buffer

import (
	"fmt"
	"iter"
	"slices"
)

// ListBuffer is a growable slice-backed buffer. Inserts and removals shift
// the tail; appends are amortized O(1).
type ListBuffer[T comparable] struct {
	items []T
}

// NewListBuffer creates an empty list buffer with room for capacity elements.
func NewListBuffer[T comparable](capacity int) *ListBuffer[T] {
	return &ListBuffer[T]{items: make([]T, 0, max(capacity, 0))}
}

// NewListBufferFrom creates a list buffer holding a copy of values.
func NewListBufferFrom[T comparable](values []T) *ListBuffer[T] {
	return &ListBuffer[T]{items: append(make([]T, 0, len(values)), values...)}
}

// Len returns the number of elements.
func (l *ListBuffer[T]) Len() int { return len(l.items) }

// Cap returns the allocated capacity.
func (l *ListBuffer[T]) Cap() int { return cap(l.items) }

// IsImmutable always returns false.
func (l *ListBuffer[T]) IsImmutable() bool { return false }

// At returns the element at index.
func (l *ListBuffer[T]) At(index int) (T, error) {
	if err := CheckIndex("at", index, len(l.items)); err != nil {
		var zero T
		return zero, err
	}
	return l.items[index], nil
}

// Set replaces the element at index.
func (l *ListBuffer[T]) Set(index int, value T) error {
	if err := CheckIndex("set", index, len(l.items)); err != nil {
		return err
	}
	l.items[index] = value
	return nil
}

// Insert inserts value at index.
func (l *ListBuffer[T]) Insert(index int, value T) error {
	if err := CheckInsertIndex("insert", index, len(l.items)); err != nil {
		return err
	}
	l.items = slices.Insert(l.items, index, value)
	return nil
}

// InsertSlice inserts values at index.
func (l *ListBuffer[T]) InsertSlice(index int, values []T) error {
	if err := CheckInsertIndex("insert", index, len(l.items)); err != nil {
		return err
	}
	l.items = slices.Insert(l.items, index, values...)
	return nil
}

// InsertSeq inserts the elements produced by seq at index.
func (l *ListBuffer[T]) InsertSeq(index int, seq iter.Seq[T]) error {
	if seq == nil {
		return fmt.Errorf("insert: nil sequence: %w", ErrInvalidArgument)
	}
	if err := CheckInsertIndex("insert", index, len(l.items)); err != nil {
		return err
	}
	if index == len(l.items) {
		l.items = slices.AppendSeq(l.items, seq)
		return nil
	}
	l.items = slices.Insert(l.items, index, slices.Collect(seq)...)
	return nil
}

// RemoveAt removes the element at index.
func (l *ListBuffer[T]) RemoveAt(index int) error {
	if err := CheckIndex("remove", index, len(l.items)); err != nil {
		return err
	}
	l.items = slices.Delete(l.items, index, index+1)
	return nil
}

// RemoveRange removes the elements in [index, index+count).
func (l *ListBuffer[T]) RemoveRange(index, count int) error {
	if err := CheckRange("remove range", index, count, len(l.items)); err != nil {
		return err
	}
	l.items = slices.Delete(l.items, index, index+count)
	return nil
}

// Clear removes all elements and keeps the allocation.
func (l *ListBuffer[T]) Clear() error {
	clear(l.items)
	l.items = l.items[:0]
	return nil
}

// Slice returns a view over [start, start+count).
func (l *ListBuffer[T]) Slice(start, count int) ([]T, error) {
	if err := CheckRange("slice", start, count, len(l.items)); err != nil {
		return nil, err
	}
	return l.items[start : start+count : start+count], nil
}

// CopyTo copies [start, start+len(dst)) into dst.
func (l *ListBuffer[T]) CopyTo(dst []T, start int) error {
	if err := CheckRange("copy", start, len(dst), len(l.items)); err != nil {
		return err
	}
	copy(dst, l.items[start:])
	return nil
}

func (l *ListBuffer[T]) IndexOf(value T, start int) int {
	return sliceIndexOf(l.items, value, start)
}

func (l *ListBuffer[T]) LastIndexOf(value T, start int) int {
	return sliceLastIndexOf(l.items, value, start)
}

func (l *ListBuffer[T]) IndexOfSeq(seq []T, start int) int {
	return sliceIndexOfSeq(l.items, seq, start)
}

func (l *ListBuffer[T]) LastIndexOfSeq(seq []T, start int) int {
	return sliceLastIndexOfSeq(l.items, seq, start)
}

func (l *ListBuffer[T]) IndexOfAny(values []T, start int) int {
	return sliceIndexOfAny(l.items, values, start)
}

func (l *ListBuffer[T]) LastIndexOfAny(values []T, start int) int {
	return sliceLastIndexOfAny(l.items, values, start)
}

// Clone returns a deep copy.
func (l *ListBuffer[T]) Clone() Buffer[T] {
	return NewListBufferFrom(l.items)
}
