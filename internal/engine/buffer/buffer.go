package buffer

import "iter"

// Reader provides read access to an index-addressable sequence.
type Reader[T comparable] interface {
	// Len returns the number of elements.
	Len() int

	// At returns the element at index.
	At(index int) (T, error)

	// IsImmutable reports whether every write is rejected.
	IsImmutable() bool

	// Slice returns the elements in [start, start+count). The result may
	// alias internal storage and must not be modified or retained across
	// writes.
	Slice(start, count int) ([]T, error)

	// CopyTo copies the elements in [start, start+len(dst)) into dst.
	CopyTo(dst []T, start int) error

	// IndexOf returns the smallest index >= start holding value, or -1.
	IndexOf(value T, start int) int

	// LastIndexOf returns the largest index <= start holding value, or -1.
	LastIndexOf(value T, start int) int

	// IndexOfSeq returns the smallest index >= start where seq occurs, or -1.
	IndexOfSeq(seq []T, start int) int

	// LastIndexOfSeq returns the largest index <= start where seq occurs, or -1.
	LastIndexOfSeq(seq []T, start int) int

	// IndexOfAny returns the smallest index >= start holding any of values, or -1.
	IndexOfAny(values []T, start int) int

	// LastIndexOfAny returns the largest index <= start holding any of values, or -1.
	LastIndexOfAny(values []T, start int) int
}

// Buffer is a mutable sequence. Immutable implementations return
// ErrImmutable from every write.
type Buffer[T comparable] interface {
	Reader[T]

	// Set replaces the element at index.
	Set(index int, value T) error

	// Insert inserts value at index, which may equal Len.
	Insert(index int, value T) error

	// InsertSlice inserts values at index in one step.
	InsertSlice(index int, values []T) error

	// InsertSeq inserts every element produced by seq at index.
	InsertSeq(index int, seq iter.Seq[T]) error

	// RemoveAt removes the element at index.
	RemoveAt(index int) error

	// RemoveRange removes the elements in [index, index+count).
	RemoveRange(index, count int) error

	// Clear removes all elements.
	Clear() error

	// Clone returns a buffer that shares no mutable storage with the receiver.
	Clone() Buffer[T]
}

// Contains reports whether value occurs in r.
func Contains[T comparable](r Reader[T], value T) bool {
	return r.IndexOf(value, 0) >= 0
}

// ContainsSeq reports whether seq occurs in r.
func ContainsSeq[T comparable](r Reader[T], seq []T) bool {
	return r.IndexOfSeq(seq, 0) >= 0
}

// Append inserts value at the end of b.
func Append[T comparable](b Buffer[T], value T) error {
	return b.Insert(b.Len(), value)
}

// Remove removes the first occurrence of value and reports whether one was found.
func Remove[T comparable](b Buffer[T], value T) (bool, error) {
	index := b.IndexOf(value, 0)
	if index < 0 {
		return false, nil
	}
	if err := b.RemoveAt(index); err != nil {
		return false, err
	}
	return true, nil
}

// ReplaceSlice overwrites len(values) elements starting at index.
func ReplaceSlice[T comparable](b Buffer[T], index int, values []T) error {
	if b.IsImmutable() {
		return immutableError("replace")
	}
	if err := CheckRange("replace", index, len(values), b.Len()); err != nil {
		return err
	}
	if err := b.RemoveRange(index, len(values)); err != nil {
		return err
	}
	return b.InsertSlice(index, values)
}

// ReplaceSeq overwrites elements starting at index with those produced by seq.
func ReplaceSeq[T comparable](b Buffer[T], index int, seq iter.Seq[T]) error {
	var values []T
	for v := range seq {
		values = append(values, v)
	}
	return ReplaceSlice(b, index, values)
}

// ToSlice copies every element of r into a new slice.
func ToSlice[T comparable](r Reader[T]) []T {
	out, _ := ToSliceRange(r, 0, r.Len())
	return out
}

// ToSliceRange copies the elements in [start, start+count) into a new slice.
func ToSliceRange[T comparable](r Reader[T], start, count int) ([]T, error) {
	if err := CheckRange("to slice", start, count, r.Len()); err != nil {
		return nil, err
	}
	out := make([]T, count)
	if err := r.CopyTo(out, start); err != nil {
		return nil, err
	}
	return out, nil
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b Reader[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		x, _ := a.At(i)
		y, _ := b.At(i)
		if x != y {
			return false
		}
	}
	return true
}

// All returns an iterator over the elements of r in order.
func All[T comparable](r Reader[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < r.Len(); i++ {
			v, err := r.At(i)
			if err != nil || !yield(i, v) {
				return
			}
		}
	}
}
