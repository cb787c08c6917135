package buffer

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// StringBuffer is an immutable rune buffer over a Go string. The string is
// decoded once; String returns it without re-encoding. Invalid UTF-8 is
// decoded to U+FFFD and the kept string is normalized to match.
type StringBuffer struct {
	ImmutableBuffer[rune]
	s string
}

// NewStringBuffer creates an immutable buffer over the runes of s.
func NewStringBuffer(s string) *StringBuffer {
	runes := []rune(s)
	if !utf8.ValidString(s) {
		s = string(runes)
	}
	return &StringBuffer{ImmutableBuffer: ImmutableBuffer[rune]{items: runes}, s: s}
}

// String returns the buffer content.
func (b *StringBuffer) String() string { return b.s }

// Clone returns a buffer over the same string. The decoded runes are owned
// by the buffer and are shared.
func (b *StringBuffer) Clone() Buffer[rune] {
	return &StringBuffer{ImmutableBuffer: b.ImmutableBuffer, s: b.s}
}

// BuilderBuffer is a mutable rune buffer for producers that mostly append.
// While every edit has been an append the string form is maintained
// incrementally, so String is O(1); any other edit falls back to
// re-encoding on the next String call.
type BuilderBuffer struct {
	ListBuffer[rune]
	sb     strings.Builder
	synced bool
}

// NewBuilderBuffer creates a builder buffer holding s.
func NewBuilderBuffer(s string) *BuilderBuffer {
	b := &BuilderBuffer{
		ListBuffer: ListBuffer[rune]{items: make([]rune, 0, max(utf8.RuneCountInString(s), DefaultCapacity))},
		synced:     true,
	}
	b.WriteString(s)
	return b
}

// WriteString appends s. It never fails.
func (b *BuilderBuffer) WriteString(s string) (int, error) {
	for _, r := range s {
		b.items = append(b.items, r)
	}
	if b.synced {
		b.sb.WriteString(s)
	}
	return len(s), nil
}

// WriteRune appends r. It never fails.
func (b *BuilderBuffer) WriteRune(r rune) (int, error) {
	b.items = append(b.items, r)
	if b.synced {
		return b.sb.WriteRune(r)
	}
	return utf8.RuneLen(r), nil
}

// String returns the buffer content.
func (b *BuilderBuffer) String() string {
	if !b.synced {
		b.sb.Reset()
		b.sb.WriteString(string(b.items))
		b.synced = true
	}
	return b.sb.String()
}

func (b *BuilderBuffer) invalidate() {
	if b.synced {
		b.sb.Reset()
		b.synced = false
	}
}

// Set replaces the rune at index.
func (b *BuilderBuffer) Set(index int, value rune) error {
	if err := b.ListBuffer.Set(index, value); err != nil {
		return err
	}
	b.invalidate()
	return nil
}

// Insert inserts value at index.
func (b *BuilderBuffer) Insert(index int, value rune) error {
	if index == b.Len() {
		b.WriteRune(value)
		return nil
	}
	if err := b.ListBuffer.Insert(index, value); err != nil {
		return err
	}
	b.invalidate()
	return nil
}

// InsertSlice inserts values at index.
func (b *BuilderBuffer) InsertSlice(index int, values []rune) error {
	if err := b.ListBuffer.InsertSlice(index, values); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	if index+len(values) == b.Len() && b.synced {
		for _, r := range values {
			b.sb.WriteRune(r)
		}
		return nil
	}
	b.invalidate()
	return nil
}

// InsertSeq inserts the runes produced by seq at index.
func (b *BuilderBuffer) InsertSeq(index int, seq iter.Seq[rune]) error {
	n := b.Len()
	if err := b.ListBuffer.InsertSeq(index, seq); err != nil {
		return err
	}
	if index == n && b.synced {
		for _, r := range b.items[n:] {
			b.sb.WriteRune(r)
		}
		return nil
	}
	if b.Len() != n {
		b.invalidate()
	}
	return nil
}

// RemoveAt removes the rune at index.
func (b *BuilderBuffer) RemoveAt(index int) error {
	if err := b.ListBuffer.RemoveAt(index); err != nil {
		return err
	}
	b.invalidate()
	return nil
}

// RemoveRange removes the runes in [index, index+count).
func (b *BuilderBuffer) RemoveRange(index, count int) error {
	if err := b.ListBuffer.RemoveRange(index, count); err != nil {
		return err
	}
	if count > 0 {
		b.invalidate()
	}
	return nil
}

// Clear removes all runes.
func (b *BuilderBuffer) Clear() error {
	_ = b.ListBuffer.Clear()
	b.sb.Reset()
	b.synced = true
	return nil
}

// Clone returns a deep copy.
func (b *BuilderBuffer) Clone() Buffer[rune] {
	c := &BuilderBuffer{
		ListBuffer: ListBuffer[rune]{items: append(make([]rune, 0, len(b.items)), b.items...)},
		synced:     true,
	}
	c.sb.WriteString(b.String())
	return c
}
