package text

import (
	"fmt"
	"iter"
	"strings"

	"github.com/dshills/textcore/internal/engine/buffer"
)

// Kind selects the buffer backend owned by a Text.
type Kind uint8

const (
	Gap Kind = iota
	List
	String
	Memory
	Builder
)

var kindNames = [...]string{
	Gap:     "gap",
	List:    "list",
	String:  "string",
	Memory:  "memory",
	Builder: "builder",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Immutable reports whether texts of this kind reject writes.
func (k Kind) Immutable() bool {
	return k == String || k == Memory
}

// ParseKind maps a backend name to its Kind. Matching ignores case.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown text kind %q: %w", name, buffer.ErrInvalidArgument)
}

// Text is a rune sequence stored in a single backend.
// The zero value is not usable; use a constructor.
type Text struct {
	kind Kind
	buf  buffer.Buffer[rune]
}

// NewGap creates a gap-buffer text holding s.
func NewGap(s string) *Text {
	return &Text{kind: Gap, buf: buffer.NewGapBufferFrom([]rune(s))}
}

// NewGapCapacity creates an empty gap-buffer text with the given capacity.
func NewGapCapacity(capacity int) *Text {
	return &Text{kind: Gap, buf: buffer.NewGapBuffer[rune](capacity)}
}

// NewList creates a list-backed text holding s.
func NewList(s string) *Text {
	return &Text{kind: List, buf: buffer.NewListBufferFrom([]rune(s))}
}

// NewString creates an immutable text over s.
func NewString(s string) *Text {
	return &Text{kind: String, buf: buffer.NewStringBuffer(s)}
}

// NewMemory creates an immutable text over runes without copying them.
func NewMemory(runes []rune) (*Text, error) {
	b, err := buffer.NewImmutableBuffer(runes)
	if err != nil {
		return nil, err
	}
	return &Text{kind: Memory, buf: b}, nil
}

// NewBuilder creates an append-optimized text holding s.
func NewBuilder(s string) *Text {
	return &Text{kind: Builder, buf: buffer.NewBuilderBuffer(s)}
}

// New creates a text of the given kind holding s.
func New(kind Kind, s string) (*Text, error) {
	switch kind {
	case Gap:
		return NewGap(s), nil
	case List:
		return NewList(s), nil
	case String:
		return NewString(s), nil
	case Memory:
		return NewMemory([]rune(s))
	case Builder:
		return NewBuilder(s), nil
	}
	return nil, fmt.Errorf("new text: %v: %w", kind, buffer.ErrInvalidArgument)
}

// Kind returns the backend kind.
func (t *Text) Kind() Kind { return t.kind }

// Len returns the number of runes.
func (t *Text) Len() int { return t.buf.Len() }

// IsImmutable reports whether writes are rejected.
func (t *Text) IsImmutable() bool { return t.buf.IsImmutable() }

// At returns the rune at index.
func (t *Text) At(index int) (rune, error) { return t.buf.At(index) }

// Slice returns a read-only view of [start, start+count).
func (t *Text) Slice(start, count int) ([]rune, error) { return t.buf.Slice(start, count) }

// CopyTo copies [start, start+len(dst)) into dst.
func (t *Text) CopyTo(dst []rune, start int) error { return t.buf.CopyTo(dst, start) }

// Searches follow buffer.Reader semantics.

func (t *Text) IndexOf(r rune, start int) int {
	return t.buf.IndexOf(r, start)
}

func (t *Text) LastIndexOf(r rune, start int) int {
	return t.buf.LastIndexOf(r, start)
}

func (t *Text) IndexOfSeq(seq []rune, start int) int {
	return t.buf.IndexOfSeq(seq, start)
}

func (t *Text) LastIndexOfSeq(seq []rune, start int) int {
	return t.buf.LastIndexOfSeq(seq, start)
}

func (t *Text) IndexOfAny(set []rune, start int) int {
	return t.buf.IndexOfAny(set, start)
}

func (t *Text) LastIndexOfAny(set []rune, start int) int {
	return t.buf.LastIndexOfAny(set, start)
}

// IndexOfString returns the first rune index >= start where s occurs, or -1.
func (t *Text) IndexOfString(s string, start int) int {
	return t.buf.IndexOfSeq([]rune(s), start)
}

// LastIndexOfString returns the last rune index <= start where s occurs, or -1.
func (t *Text) LastIndexOfString(s string, start int) int {
	return t.buf.LastIndexOfSeq([]rune(s), start)
}

// Set replaces the rune at index.
func (t *Text) Set(index int, r rune) error { return t.buf.Set(index, r) }

// Insert inserts r at index.
func (t *Text) Insert(index int, r rune) error { return t.buf.Insert(index, r) }

// InsertSlice inserts runes at index. runes may be a view returned by Slice.
func (t *Text) InsertSlice(index int, runes []rune) error { return t.buf.InsertSlice(index, runes) }

// InsertSeq inserts the runes produced by seq at index.
func (t *Text) InsertSeq(index int, seq iter.Seq[rune]) error { return t.buf.InsertSeq(index, seq) }

// InsertString inserts s at index.
func (t *Text) InsertString(index int, s string) error {
	if t.IsImmutable() {
		return fmt.Errorf("insert: %w", buffer.ErrImmutable)
	}
	if b, ok := t.buf.(*buffer.BuilderBuffer); ok && index == b.Len() {
		_, err := b.WriteString(s)
		return err
	}
	return t.buf.InsertSlice(index, []rune(s))
}

// RemoveAt removes the rune at index.
func (t *Text) RemoveAt(index int) error { return t.buf.RemoveAt(index) }

// RemoveRange removes [index, index+count).
func (t *Text) RemoveRange(index, count int) error { return t.buf.RemoveRange(index, count) }

// Clear removes all runes.
func (t *Text) Clear() error { return t.buf.Clear() }

// Substring returns [start, start+count) as a string.
func (t *Text) Substring(start, count int) (string, error) {
	runes, err := t.buf.Slice(start, count)
	if err != nil {
		return "", err
	}
	return string(runes), nil
}

// String returns the whole content.
func (t *Text) String() string {
	if s, ok := t.buf.(fmt.Stringer); ok {
		return s.String()
	}
	runes, _ := t.buf.Slice(0, t.buf.Len())
	return string(runes)
}

// Runes returns a copy of the whole content.
func (t *Text) Runes() []rune {
	return buffer.ToSlice[rune](t.buf)
}

// Clone returns an independent copy of the same kind. String texts share
// their decoded storage.
func (t *Text) Clone() *Text {
	return &Text{kind: t.kind, buf: t.buf.Clone()}
}
