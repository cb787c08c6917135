package document

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/google/uuid"

	"github.com/dshills/textcore/internal/engine/buffer"
	"github.com/dshills/textcore/internal/engine/text"
)

// ErrUnknownChange is returned when applying a change of an unknown kind.
var ErrUnknownChange = errors.New("unknown change kind")

// Listener receives every change committed to a document.
type Listener func(Change)

type subscription struct {
	id uint64
	fn Listener
}

// Document owns a Text and reports every committed mutation as a Change.
//
// Mutations validate their arguments and read any values they are about to
// overwrite before touching the text, so a failed call leaves the document
// unchanged and listeners never observe a half-applied edit. The returned
// Change is the primary record; listeners are an optional synchronous
// channel for observers that cannot be handed the return value.
//
// Document is not safe for concurrent use.
type Document struct {
	id        uuid.UUID
	text      *text.Text
	listeners []subscription
	nextSub   uint64
}

// New creates a document over a private clone of t.
func New(t *text.Text) *Document {
	return &Document{id: uuid.New(), text: t.Clone()}
}

// NewFromString creates a document of the given backend kind holding s.
func NewFromString(kind text.Kind, s string) (*Document, error) {
	t, err := text.New(kind, s)
	if err != nil {
		return nil, err
	}
	return &Document{id: uuid.New(), text: t}, nil
}

// ID returns the document identity. Clones get a new identity.
func (d *Document) ID() uuid.UUID { return d.id }

// Kind returns the backend kind of the owned text.
func (d *Document) Kind() text.Kind { return d.text.Kind() }

// IsReadOnly reports whether the document rejects mutations.
func (d *Document) IsReadOnly() bool { return d.text.IsImmutable() }

// Subscribe registers fn for every subsequent change and returns a function
// that removes it.
func (d *Document) Subscribe(fn Listener) (unsubscribe func()) {
	d.nextSub++
	id := d.nextSub
	d.listeners = append(d.listeners, subscription{id: id, fn: fn})
	return func() {
		d.listeners = slices.DeleteFunc(d.listeners, func(s subscription) bool {
			return s.id == id
		})
	}
}

func (d *Document) checkWritable(op string) error {
	if d.IsReadOnly() {
		return fmt.Errorf("%s: %w", op, buffer.ErrImmutable)
	}
	return nil
}

func (d *Document) dispatch(c Change) Change {
	if d.IsReadOnly() || len(d.listeners) == 0 {
		return c
	}
	for _, s := range slices.Clone(d.listeners) {
		s.fn(c)
	}
	return c
}

// Set replaces the rune at index.
func (d *Document) Set(index int, r rune) (Change, error) {
	old, err := d.text.At(index)
	if err != nil {
		return Change{}, err
	}
	if err := d.text.Set(index, r); err != nil {
		return Change{}, err
	}
	return d.dispatch(Change{Kind: CharReplaced, Index: index, Old: []rune{old}, New: []rune{r}}), nil
}

// Insert inserts a single rune at index.
func (d *Document) Insert(index int, r rune) (Change, error) {
	if err := d.text.Insert(index, r); err != nil {
		return Change{}, err
	}
	return d.dispatch(Change{Kind: CharInserted, Index: index, New: []rune{r}}), nil
}

// insertRunes is the single span-insert primitive behind every multi-rune
// insert shape.
func (d *Document) insertRunes(index int, runes []rune) (Change, error) {
	if len(runes) == 0 {
		if err := d.checkWritable("insert"); err != nil {
			return Change{}, err
		}
		return Change{}, buffer.CheckInsertIndex("insert", index, d.text.Len())
	}
	if err := d.text.InsertSlice(index, runes); err != nil {
		return Change{}, err
	}
	return d.dispatch(Change{Kind: RangeInserted, Index: index, New: runes}), nil
}

// InsertString inserts s at index.
func (d *Document) InsertString(index int, s string) (Change, error) {
	return d.insertRunes(index, []rune(s))
}

// InsertRunes inserts a copy of runes at index.
func (d *Document) InsertRunes(index int, runes []rune) (Change, error) {
	return d.insertRunes(index, slices.Clone(runes))
}

// InsertSeq inserts the runes produced by seq at index.
func (d *Document) InsertSeq(index int, seq iter.Seq[rune]) (Change, error) {
	if seq == nil {
		return Change{}, fmt.Errorf("insert: nil sequence: %w", buffer.ErrInvalidArgument)
	}
	return d.insertRunes(index, slices.Collect(seq))
}

// Append inserts s at the end of the document.
func (d *Document) Append(s string) (Change, error) {
	return d.insertRunes(d.text.Len(), []rune(s))
}

// RemoveAt removes the rune at index.
func (d *Document) RemoveAt(index int) (Change, error) {
	old, err := d.text.At(index)
	if err != nil {
		return Change{}, err
	}
	if err := d.text.RemoveAt(index); err != nil {
		return Change{}, err
	}
	return d.dispatch(Change{Kind: CharRemoved, Index: index, Old: []rune{old}}), nil
}

// RemoveRange removes [index, index+count). An empty range changes nothing
// and produces no event.
func (d *Document) RemoveRange(index, count int) (Change, error) {
	old, err := d.text.Slice(index, count)
	if err != nil {
		return Change{}, err
	}
	if count == 0 {
		return Change{}, d.checkWritable("remove range")
	}
	old = slices.Clone(old)
	if err := d.text.RemoveRange(index, count); err != nil {
		return Change{}, err
	}
	return d.dispatch(Change{Kind: RangeRemoved, Index: index, Old: old}), nil
}

// Remove removes the first occurrence of r. The returned change is zero
// when r does not occur.
func (d *Document) Remove(r rune) (Change, error) {
	i := d.text.IndexOf(r, 0)
	if i < 0 {
		return Change{}, d.checkWritable("remove")
	}
	return d.RemoveAt(i)
}

// Clear removes all content, reported as a single RangeRemoved.
func (d *Document) Clear() (Change, error) {
	return d.RemoveRange(0, d.text.Len())
}

// Len returns the number of runes.
func (d *Document) Len() int { return d.text.Len() }

// At returns the rune at index.
func (d *Document) At(index int) (rune, error) { return d.text.At(index) }

// IsImmutable reports whether the document rejects mutations.
func (d *Document) IsImmutable() bool { return d.text.IsImmutable() }

// Slice returns a read-only view of [start, start+count).
func (d *Document) Slice(start, count int) ([]rune, error) { return d.text.Slice(start, count) }

// CopyTo copies [start, start+len(dst)) into dst.
func (d *Document) CopyTo(dst []rune, start int) error { return d.text.CopyTo(dst, start) }

// Substring returns [start, start+count) as a string.
func (d *Document) Substring(start, count int) (string, error) { return d.text.Substring(start, count) }

// String returns the whole content.
func (d *Document) String() string { return d.text.String() }

func (d *Document) IndexOf(r rune, start int) int {
	return d.text.IndexOf(r, start)
}

func (d *Document) LastIndexOf(r rune, start int) int {
	return d.text.LastIndexOf(r, start)
}

func (d *Document) IndexOfSeq(seq []rune, start int) int {
	return d.text.IndexOfSeq(seq, start)
}

func (d *Document) LastIndexOfSeq(seq []rune, start int) int {
	return d.text.LastIndexOfSeq(seq, start)
}

func (d *Document) IndexOfAny(set []rune, start int) int {
	return d.text.IndexOfAny(set, start)
}

func (d *Document) LastIndexOfAny(set []rune, start int) int {
	return d.text.LastIndexOfAny(set, start)
}

func (d *Document) IndexOfString(s string, start int) int {
	return d.text.IndexOfString(s, start)
}

func (d *Document) LastIndexOfString(s string, start int) int {
	return d.text.LastIndexOfString(s, start)
}

// Clone returns a document with a deep copy of the text, a new identity and
// no listeners.
func (d *Document) Clone() *Document {
	return &Document{id: uuid.New(), text: d.text.Clone()}
}
