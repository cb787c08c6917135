package buffer

import (
	"fmt"
	"iter"
	"slices"
	"unsafe"
)

// DefaultCapacity is the minimum capacity a GapBuffer grows to.
const DefaultCapacity = 4

// trimThreshold is the utilization below which TrimExcess reallocates.
const trimThreshold = 0.9

// GapBuffer is a sequence stored in one contiguous slice split by a
// relocatable gap of unused capacity. Logical index i < gapStart lives at
// physical slot i; logical index i >= gapStart lives at slot i+gapLen.
//
// Before an edit at index i the gap is moved so gapStart == i. Moving costs
// time proportional to the distance, so runs of edits near one location are
// close to O(1) each.
type GapBuffer[T comparable] struct {
	data     []T
	gapStart int
	gapEnd   int
	seed     int // minimum capacity after growth
}

// NewGapBuffer creates an empty gap buffer with room for capacity elements.
func NewGapBuffer[T comparable](capacity int) *GapBuffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &GapBuffer[T]{
		data:   make([]T, capacity),
		gapEnd: capacity,
		seed:   max(capacity, DefaultCapacity),
	}
}

// NewGapBufferFrom creates a gap buffer holding a copy of values.
// The gap starts empty at the end of the content.
func NewGapBufferFrom[T comparable](values []T) *GapBuffer[T] {
	data := slices.Clone(values)
	if data == nil {
		data = []T{}
	}
	return &GapBuffer[T]{
		data:     data,
		gapStart: len(data),
		gapEnd:   len(data),
		seed:     DefaultCapacity,
	}
}

func (g *GapBuffer[T]) gapLen() int {
	return g.gapEnd - g.gapStart
}

// phys maps a logical index to its physical slot.
func (g *GapBuffer[T]) phys(index int) int {
	if index >= g.gapStart {
		return index + g.gapLen()
	}
	return index
}

// at reads a logical index without validation.
func (g *GapBuffer[T]) at(index int) T {
	return g.data[g.phys(index)]
}

// placeGap moves the gap so that gapStart == index, clearing the slots the
// moved elements leave behind.
func (g *GapBuffer[T]) placeGap(index int) {
	if index == g.gapStart {
		return
	}
	if g.gapLen() == 0 {
		g.gapStart, g.gapEnd = index, index
		return
	}

	if index < g.gapStart {
		// Shift [index, gapStart) up against the end of the gap.
		n := g.gapStart - index
		copy(g.data[g.gapEnd-n:g.gapEnd], g.data[index:g.gapStart])
		clear(g.data[index:min(g.gapStart, g.gapEnd-n)])
		g.gapStart -= n
		g.gapEnd -= n
		return
	}

	// Shift [gapEnd, gapEnd+n) down to the start of the gap.
	n := index - g.gapStart
	copy(g.data[g.gapStart:g.gapStart+n], g.data[g.gapEnd:g.gapEnd+n])
	clear(g.data[max(g.gapEnd, g.gapStart+n) : g.gapEnd+n])
	g.gapStart += n
	g.gapEnd += n
}

// ensureGap places the gap at index and guarantees room for required elements.
func (g *GapBuffer[T]) ensureGap(index, required int) {
	g.placeGap(index)
	if required <= g.gapLen() {
		return
	}
	g.resize(max(g.Len()+required, 2*len(g.data), g.seed))
}

// resize reallocates the backing slice to capacity, keeping both segments
// and letting the gap absorb the difference. capacity must be >= Len.
func (g *GapBuffer[T]) resize(capacity int) {
	if capacity == len(g.data) {
		return
	}
	data := make([]T, capacity)
	tail := len(g.data) - g.gapEnd
	newGapEnd := capacity - tail
	copy(data, g.data[:g.gapStart])
	copy(data[newGapEnd:], g.data[g.gapEnd:])
	g.data = data
	g.gapEnd = newGapEnd
}

// Len returns the number of elements.
func (g *GapBuffer[T]) Len() int {
	return len(g.data) - g.gapLen()
}

// Cap returns the number of elements the buffer can hold without growing.
func (g *GapBuffer[T]) Cap() int {
	return len(g.data)
}

// SetCapacity reallocates the backing storage to exactly capacity elements.
func (g *GapBuffer[T]) SetCapacity(capacity int) error {
	if capacity < g.Len() {
		return fmt.Errorf("set capacity %d below length %d: %w", capacity, g.Len(), ErrInvalidArgument)
	}
	g.resize(capacity)
	return nil
}

// TrimExcess shrinks the capacity to Len when less than 90% of it is used.
func (g *GapBuffer[T]) TrimExcess() {
	if float64(g.Len()) < float64(len(g.data))*trimThreshold {
		g.resize(g.Len())
	}
}

// IsImmutable always returns false.
func (g *GapBuffer[T]) IsImmutable() bool {
	return false
}

// At returns the element at index.
func (g *GapBuffer[T]) At(index int) (T, error) {
	if err := CheckIndex("at", index, g.Len()); err != nil {
		var zero T
		return zero, err
	}
	return g.at(index), nil
}

// Set replaces the element at index.
func (g *GapBuffer[T]) Set(index int, value T) error {
	if err := CheckIndex("set", index, g.Len()); err != nil {
		return err
	}
	g.data[g.phys(index)] = value
	return nil
}

// Insert inserts value at index.
func (g *GapBuffer[T]) Insert(index int, value T) error {
	if err := CheckInsertIndex("insert", index, g.Len()); err != nil {
		return err
	}
	g.ensureGap(index, 1)
	g.data[g.gapStart] = value
	g.gapStart++
	return nil
}

// InsertSlice inserts values at index. values may be a view returned by
// Slice on the same buffer.
func (g *GapBuffer[T]) InsertSlice(index int, values []T) error {
	if err := CheckInsertIndex("insert", index, g.Len()); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	if overlaps(g.data, values) {
		values = slices.Clone(values)
	}
	g.ensureGap(index, len(values))
	copy(g.data[g.gapStart:], values)
	g.gapStart += len(values)
	return nil
}

// InsertSeq inserts the elements produced by seq at index.
func (g *GapBuffer[T]) InsertSeq(index int, seq iter.Seq[T]) error {
	if seq == nil {
		return fmt.Errorf("insert: nil sequence: %w", ErrInvalidArgument)
	}
	if err := CheckInsertIndex("insert", index, g.Len()); err != nil {
		return err
	}
	return g.InsertSlice(index, slices.Collect(seq))
}

// RemoveAt removes the element at index.
func (g *GapBuffer[T]) RemoveAt(index int) error {
	if err := CheckIndex("remove", index, g.Len()); err != nil {
		return err
	}
	var zero T
	if index == g.gapStart-1 {
		g.gapStart--
		g.data[g.gapStart] = zero
		return nil
	}
	g.placeGap(index)
	g.data[g.gapEnd] = zero
	g.gapEnd++
	return nil
}

// RemoveRange removes the elements in [index, index+count).
func (g *GapBuffer[T]) RemoveRange(index, count int) error {
	if err := CheckRange("remove range", index, count, g.Len()); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	if index+count == g.gapStart {
		clear(g.data[index:g.gapStart])
		g.gapStart = index
		return nil
	}
	g.placeGap(index)
	clear(g.data[g.gapEnd : g.gapEnd+count])
	g.gapEnd += count
	return nil
}

// Clear removes all elements by widening the gap over the whole storage.
// Allocated capacity is kept.
func (g *GapBuffer[T]) Clear() error {
	clear(g.data)
	g.gapStart = 0
	g.gapEnd = len(g.data)
	return nil
}

// Slice returns [start, start+count). A range that straddles the gap is
// copied; otherwise the result is a view over internal storage.
func (g *GapBuffer[T]) Slice(start, count int) ([]T, error) {
	if err := CheckRange("slice", start, count, g.Len()); err != nil {
		return nil, err
	}
	end := start + count
	switch {
	case end <= g.gapStart:
		return g.data[start:end:end], nil
	case start >= g.gapStart:
		p := start + g.gapLen()
		return g.data[p : p+count : p+count], nil
	}
	out := make([]T, count)
	g.copyOut(out, start)
	return out, nil
}

// CopyTo copies [start, start+len(dst)) into dst.
func (g *GapBuffer[T]) CopyTo(dst []T, start int) error {
	if err := CheckRange("copy", start, len(dst), g.Len()); err != nil {
		return err
	}
	g.copyOut(dst, start)
	return nil
}

func (g *GapBuffer[T]) copyOut(dst []T, start int) {
	n := 0
	if start < g.gapStart {
		n = copy(dst, g.data[start:g.gapStart])
	}
	if n < len(dst) {
		p := g.phys(start + n)
		copy(dst[n:], g.data[p:])
	}
}

// IndexOf searches the front segment, then the back segment.
func (g *GapBuffer[T]) IndexOf(value T, start int) int {
	start, ok := clampForward(start, g.Len())
	if !ok {
		return -1
	}
	if start < g.gapStart {
		if i := slices.Index(g.data[start:g.gapStart], value); i >= 0 {
			return start + i
		}
	}
	from := max(start, g.gapStart) + g.gapLen()
	if i := slices.Index(g.data[from:], value); i >= 0 {
		return from + i - g.gapLen()
	}
	return -1
}

// LastIndexOf searches the back segment, then the front segment.
func (g *GapBuffer[T]) LastIndexOf(value T, start int) int {
	start, ok := clampBackward(start, g.Len())
	if !ok {
		return -1
	}
	if start >= g.gapStart {
		if i := lastIndex(g.data[g.gapEnd:g.phys(start)+1], value); i >= 0 {
			return g.gapStart + i
		}
	}
	end := min(start, g.gapStart-1)
	if end < 0 {
		return -1
	}
	return lastIndex(g.data[:end+1], value)
}

// IndexOfAny searches both segments for any of values.
func (g *GapBuffer[T]) IndexOfAny(values []T, start int) int {
	start, ok := clampForward(start, g.Len())
	if !ok {
		return -1
	}
	if start < g.gapStart {
		if i := indexAny(g.data[start:g.gapStart], values); i >= 0 {
			return start + i
		}
	}
	from := max(start, g.gapStart) + g.gapLen()
	if i := indexAny(g.data[from:], values); i >= 0 {
		return from + i - g.gapLen()
	}
	return -1
}

// LastIndexOfAny searches both segments backward for any of values.
func (g *GapBuffer[T]) LastIndexOfAny(values []T, start int) int {
	start, ok := clampBackward(start, g.Len())
	if !ok {
		return -1
	}
	if start >= g.gapStart {
		if i := lastIndexAny(g.data[g.gapEnd:g.phys(start)+1], values); i >= 0 {
			return g.gapStart + i
		}
	}
	end := min(start, g.gapStart-1)
	if end < 0 {
		return -1
	}
	return lastIndexAny(g.data[:end+1], values)
}

// IndexOfSeq finds seq, including occurrences that straddle the gap.
func (g *GapBuffer[T]) IndexOfSeq(seq []T, start int) int {
	return indexSeqFunc(g.Len(), g.at, seq, start)
}

// LastIndexOfSeq finds the last occurrence of seq starting at or before start.
func (g *GapBuffer[T]) LastIndexOfSeq(seq []T, start int) int {
	return lastIndexSeqFunc(g.Len(), g.at, seq, start)
}

// Clone returns a deep copy with the same capacity and gap position.
func (g *GapBuffer[T]) Clone() Buffer[T] {
	return g.clone()
}

func (g *GapBuffer[T]) clone() *GapBuffer[T] {
	return &GapBuffer[T]{
		data:     slices.Clone(g.data),
		gapStart: g.gapStart,
		gapEnd:   g.gapEnd,
		seed:     g.seed,
	}
}

// ToSlice returns a copy of the logical content.
func (g *GapBuffer[T]) ToSlice() []T {
	out := make([]T, g.Len())
	g.copyOut(out, 0)
	return out
}

// overlaps reports whether a and b share any element of memory.
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	size := unsafe.Sizeof(a[0])
	if size == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(&a[0])) <= uintptr(unsafe.Pointer(&b[len(b)-1]))+(size-1) &&
		uintptr(unsafe.Pointer(&b[0])) <= uintptr(unsafe.Pointer(&a[len(a)-1]))+(size-1)
}
