// Package buffer provides the sequence storage layer of the text engine: a
// single generic contract for index-addressable sequences and the concrete
// backends that implement it.
//
// The contract is split in two interfaces:
//
//   - Reader: length, indexed reads, slice views, copy-out and a symmetric
//     family of forward/backward searches (single value, subsequence, any of
//     a candidate set).
//   - Buffer: Reader plus indexed writes, inserts, removals and Clone.
//
// Read-only storage is not a separate hierarchy. Immutable backends report
// IsImmutable() == true and reject every write with ErrImmutable.
//
// Backends:
//
//   - GapBuffer: a relocating gap buffer, best for edits clustered around
//     one location (typing, backspacing).
//   - ListBuffer: a growable slice with amortized doubling; the general
//     purpose default.
//   - ImmutableBuffer: zero-copy wrapper over a caller-owned slice.
//   - StringBuffer: immutable rune buffer over a Go string.
//   - BuilderBuffer: mutable rune buffer optimized for append-only producers.
//
// Basic usage:
//
//	gb := buffer.NewGapBuffer[rune](16)
//	gb.Insert(0, 'a')
//	gb.InsertSlice(1, []rune("bc"))
//	i := gb.IndexOf('c', 0) // 2
//
// Search semantics are identical across backends. Forward searches clamp a
// negative start to 0 and return -1 when start >= Len. Backward searches
// clamp a start >= Len to Len-1 and return -1 when start < 0.
//
// Slice views:
//
// Slice(start, count) returns a view over internal storage whenever the
// requested range is contiguous in memory. For a GapBuffer a range that
// straddles the gap is materialized into a fresh slice. Callers must treat
// returned slices as read-only and must not retain them across writes.
//
// Thread Safety:
//
// Buffers are not safe for concurrent use. At most one writer may hold a
// buffer during an edit session; callers serialize access.
package buffer
