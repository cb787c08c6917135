package document

import (
	"fmt"
	"slices"
)

// ChangeKind identifies the primitive mutation a Change records.
type ChangeKind uint8

const (
	// None marks a call that changed nothing, such as removing an empty range.
	None ChangeKind = iota
	CharInserted
	CharRemoved
	CharReplaced
	RangeInserted
	RangeRemoved
)

func (k ChangeKind) String() string {
	switch k {
	case None:
		return "None"
	case CharInserted:
		return "CharInserted"
	case CharRemoved:
		return "CharRemoved"
	case CharReplaced:
		return "CharReplaced"
	case RangeInserted:
		return "RangeInserted"
	case RangeRemoved:
		return "RangeRemoved"
	}
	return fmt.Sprintf("ChangeKind(%d)", k)
}

// Change records one committed document mutation with enough data to
// reverse it. Old holds the removed or replaced runes and New the inserted
// or replacement runes; the one not relevant to Kind is empty.
// Payloads hold runes exactly as stored, including values with no UTF-8
// encoding. Changes share their payload slices; treat them as read-only.
type Change struct {
	Kind  ChangeKind
	Index int
	Old   []rune
	New   []rune
}

// IsZero reports whether the change records nothing.
func (c Change) IsZero() bool {
	return c.Kind == None
}

// Equal reports whether c and other record the same mutation.
func (c Change) Equal(other Change) bool {
	return c.Kind == other.Kind && c.Index == other.Index &&
		slices.Equal(c.Old, other.Old) && slices.Equal(c.New, other.New)
}

// OldLen returns the number of runes removed.
func (c Change) OldLen() int {
	return len(c.Old)
}

// NewLen returns the number of runes inserted.
func (c Change) NewLen() int {
	return len(c.New)
}

// Delta returns the change in document length.
func (c Change) Delta() int {
	return c.NewLen() - c.OldLen()
}

// OldChar returns the removed or replaced rune of a single-character change.
func (c Change) OldChar() rune {
	if len(c.Old) == 0 {
		return 0
	}
	return c.Old[0]
}

// NewChar returns the inserted or replacement rune of a single-character change.
func (c Change) NewChar() rune {
	if len(c.New) == 0 {
		return 0
	}
	return c.New[0]
}

// OldText returns Old as a string. Runes with no UTF-8 encoding read as
// U+FFFD.
func (c Change) OldText() string { return string(c.Old) }

// NewText returns New as a string. Runes with no UTF-8 encoding read as
// U+FFFD.
func (c Change) NewText() string { return string(c.New) }

// Invert returns the change that undoes c when applied right after it.
//
//	CharInserted  -> CharRemoved at the same index
//	CharRemoved   -> CharInserted of the removed rune
//	CharReplaced  -> CharReplaced back to the old rune
//	RangeInserted -> RangeRemoved of the inserted span
//	RangeRemoved  -> RangeInserted of the removed span
func (c Change) Invert() Change {
	switch c.Kind {
	case CharInserted:
		return Change{Kind: CharRemoved, Index: c.Index, Old: c.New}
	case CharRemoved:
		return Change{Kind: CharInserted, Index: c.Index, New: c.Old}
	case CharReplaced:
		return Change{Kind: CharReplaced, Index: c.Index, Old: c.New, New: c.Old}
	case RangeInserted:
		return Change{Kind: RangeRemoved, Index: c.Index, Old: c.New}
	case RangeRemoved:
		return Change{Kind: RangeInserted, Index: c.Index, New: c.Old}
	}
	return c
}

// ApplyTo performs the mutation c describes on d and returns the change d
// reports for it.
func (c Change) ApplyTo(d *Document) (Change, error) {
	switch c.Kind {
	case None:
		return Change{}, nil
	case CharInserted:
		return d.Insert(c.Index, c.NewChar())
	case CharRemoved:
		return d.RemoveAt(c.Index)
	case CharReplaced:
		return d.Set(c.Index, c.NewChar())
	case RangeInserted:
		return d.InsertRunes(c.Index, c.New)
	case RangeRemoved:
		return d.RemoveRange(c.Index, c.OldLen())
	}
	return Change{}, fmt.Errorf("apply %v: %w", c.Kind, ErrUnknownChange)
}

func (c Change) String() string {
	switch c.Kind {
	case None:
		return "none"
	case CharInserted, RangeInserted:
		return fmt.Sprintf("%v@%d %q", c.Kind, c.Index, c.NewText())
	case CharRemoved, RangeRemoved:
		return fmt.Sprintf("%v@%d %q", c.Kind, c.Index, c.OldText())
	}
	return fmt.Sprintf("%v@%d %q->%q", c.Kind, c.Index, c.OldText(), c.NewText())
}
