package buffer

import (
	"errors"
	"fmt"
)

// Errors returned by buffer operations.
var (
	// ErrOutOfRange indicates an index, offset or count outside valid bounds.
	ErrOutOfRange = errors.New("index out of range")

	// ErrImmutable indicates a write attempted on an immutable buffer.
	ErrImmutable = errors.New("buffer is immutable")

	// ErrInvalidArgument indicates an invalid argument such as a nil source
	// or a capacity smaller than the current length.
	ErrInvalidArgument = errors.New("invalid argument")
)

// RangeError describes a rejected index or range. It unwraps to ErrOutOfRange.
type RangeError struct {
	Op    string // operation that rejected the arguments
	Index int    // offending index or range start
	Count int    // range length, or -1 for single-index operations
	Len   int    // sequence length at the time of the call
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	if e.Count < 0 {
		return fmt.Sprintf("%s: index %d out of range [0:%d)", e.Op, e.Index, e.Len)
	}
	return fmt.Sprintf("%s: range [%d:%d) out of range [0:%d)", e.Op, e.Index, e.Index+e.Count, e.Len)
}

// Unwrap returns ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// CheckIndex validates index against [0, length).
func CheckIndex(op string, index, length int) error {
	if index < 0 || index >= length {
		return &RangeError{Op: op, Index: index, Count: -1, Len: length}
	}
	return nil
}

// CheckInsertIndex validates an insertion point against [0, length].
func CheckInsertIndex(op string, index, length int) error {
	if index < 0 || index > length {
		return &RangeError{Op: op, Index: index, Count: -1, Len: length}
	}
	return nil
}

// CheckRange validates [index, index+count) against [0, length).
func CheckRange(op string, index, count, length int) error {
	if index < 0 || count < 0 || index > length || count > length-index {
		return &RangeError{Op: op, Index: index, Count: count, Len: length}
	}
	return nil
}

func immutableError(op string) error {
	return fmt.Errorf("%s: %w", op, ErrImmutable)
}
