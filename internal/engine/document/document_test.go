package document

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/dshills/textcore/internal/engine/buffer"
	"github.com/dshills/textcore/internal/engine/text"
)

func newDoc(t *testing.T, s string) *Document {
	t.Helper()
	d, err := NewFromString(text.Gap, s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestRemoveRangeUndo(t *testing.T) {
	d := newDoc(t, "abcde")

	c, err := d.RemoveRange(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "ade" {
		t.Fatalf("expected %q, got %q", "ade", d.String())
	}
	if c.Kind != RangeRemoved || c.Index != 1 || c.OldText() != "bc" {
		t.Errorf("unexpected change %v", c)
	}

	inv := c.Invert()
	if inv.Kind != RangeInserted || inv.Index != 1 || inv.NewText() != "bc" {
		t.Errorf("unexpected inverse %v", inv)
	}
	if _, err := inv.ApplyTo(d); err != nil {
		t.Fatal(err)
	}
	if d.String() != "abcde" {
		t.Errorf("expected %q after undo, got %q", "abcde", d.String())
	}
}

func TestChangeKinds(t *testing.T) {
	tests := []struct {
		name string
		fn   func(d *Document) (Change, error)
		want Change
		text string
	}{
		{"insert", func(d *Document) (Change, error) { return d.Insert(1, 'X') },
			Change{Kind: CharInserted, Index: 1, New: []rune("X")}, "aXbc"},
		{"remove at", func(d *Document) (Change, error) { return d.RemoveAt(2) },
			Change{Kind: CharRemoved, Index: 2, Old: []rune("c")}, "ab"},
		{"set", func(d *Document) (Change, error) { return d.Set(0, 'z') },
			Change{Kind: CharReplaced, Index: 0, Old: []rune("a"), New: []rune("z")}, "zbc"},
		{"insert string", func(d *Document) (Change, error) { return d.InsertString(3, "de") },
			Change{Kind: RangeInserted, Index: 3, New: []rune("de")}, "abcde"},
		{"insert runes", func(d *Document) (Change, error) { return d.InsertRunes(0, []rune("é")) },
			Change{Kind: RangeInserted, Index: 0, New: []rune("é")}, "éabc"},
		{"insert seq", func(d *Document) (Change, error) { return d.InsertSeq(1, slices.Values([]rune("12"))) },
			Change{Kind: RangeInserted, Index: 1, New: []rune("12")}, "a12bc"},
		{"append", func(d *Document) (Change, error) { return d.Append("!") },
			Change{Kind: RangeInserted, Index: 3, New: []rune("!")}, "abc!"},
		{"remove value", func(d *Document) (Change, error) { return d.Remove('b') },
			Change{Kind: CharRemoved, Index: 1, Old: []rune("b")}, "ac"},
		{"remove missing value", func(d *Document) (Change, error) { return d.Remove('q') },
			Change{}, "abc"},
		{"clear", func(d *Document) (Change, error) { return d.Clear() },
			Change{Kind: RangeRemoved, Index: 0, Old: []rune("abc")}, ""},
		{"empty range", func(d *Document) (Change, error) { return d.RemoveRange(1, 0) },
			Change{}, "abc"},
		{"empty insert", func(d *Document) (Change, error) { return d.InsertString(2, "") },
			Change{}, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDoc(t, "abc")
			got, err := tt.fn(d)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("change = %v, want %v", got, tt.want)
			}
			if d.String() != tt.text {
				t.Errorf("text = %q, want %q", d.String(), tt.text)
			}
			if got.Delta() != len([]rune(tt.text))-3 {
				t.Errorf("delta = %d, want %d", got.Delta(), len([]rune(tt.text))-3)
			}
		})
	}
}

func TestInverseRestoresContent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, kind := range []text.Kind{text.Gap, text.List, text.Builder} {
		d, _ := NewFromString(kind, "hello, world")

		for step := range 500 {
			before := d.String()
			n := d.Len()

			var c Change
			var err error
			switch op := rng.Intn(6); {
			case op == 0:
				c, err = d.Insert(rng.Intn(n+1), rune('a'+rng.Intn(26)))
			case op == 1:
				c, err = d.InsertString(rng.Intn(n+1), "xy\nz"[:1+rng.Intn(4)])
			case op == 2 && n > 0:
				c, err = d.RemoveAt(rng.Intn(n))
			case op == 3 && n > 0:
				i := rng.Intn(n)
				c, err = d.RemoveRange(i, rng.Intn(n-i+1))
			case op == 4 && n > 0:
				c, err = d.Set(rng.Intn(n), 'Q')
			default:
				c, err = d.Append("!")
			}
			if err != nil {
				t.Fatalf("%v step %d: %v", kind, step, err)
			}

			after := d.String()
			if _, err := c.Invert().ApplyTo(d); err != nil {
				t.Fatalf("%v step %d: undo %v: %v", kind, step, c, err)
			}
			if d.String() != before {
				t.Fatalf("%v step %d: inverse of %v gave %q, want %q", kind, step, c, d.String(), before)
			}
			if _, err := c.ApplyTo(d); err != nil {
				t.Fatalf("%v step %d: redo %v: %v", kind, step, c, err)
			}
			if d.String() != after {
				t.Fatalf("%v step %d: redo of %v gave %q, want %q", kind, step, c, d.String(), after)
			}
		}
	}
}

func TestInverseKeepsInvalidRunes(t *testing.T) {
	invalid := []rune{'a', 0xDC00, 'b', 0x110000}

	tests := []struct {
		name string
		edit func(d *Document) (Change, error)
	}{
		{"remove lone surrogate", func(d *Document) (Change, error) { return d.RemoveAt(1) }},
		{"remove out of range rune", func(d *Document) (Change, error) { return d.RemoveAt(3) }},
		{"remove range", func(d *Document) (Change, error) { return d.RemoveRange(0, 4) }},
		{"replace surrogate", func(d *Document) (Change, error) { return d.Set(1, 'x') }},
		{"insert surrogate", func(d *Document) (Change, error) { return d.Insert(0, 0xD800) }},
		{"insert runes", func(d *Document) (Change, error) { return d.InsertRunes(2, []rune{0xD800, 0xDFFF}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(text.NewList(""))
			if _, err := d.InsertRunes(0, invalid); err != nil {
				t.Fatal(err)
			}
			before := d.text.Runes()
			if !slices.Equal(before, invalid) {
				t.Fatalf("setup: got %U", before)
			}

			c, err := tt.edit(d)
			if err != nil {
				t.Fatal(err)
			}
			after := d.text.Runes()
			if _, err := c.Invert().ApplyTo(d); err != nil {
				t.Fatal(err)
			}
			if got := d.text.Runes(); !slices.Equal(got, before) {
				t.Fatalf("undo of %v gave %U, want %U", c, got, before)
			}
			if _, err := c.ApplyTo(d); err != nil {
				t.Fatal(err)
			}
			if got := d.text.Runes(); !slices.Equal(got, after) {
				t.Fatalf("redo of %v gave %U, want %U", c, got, after)
			}
		})
	}
}

func TestListeners(t *testing.T) {
	d := newDoc(t, "abc")

	var got []Change
	unsubscribe := d.Subscribe(func(c Change) {
		if d.String() != "abXc" && len(got) == 0 {
			t.Errorf("listener saw text %q before the edit was applied", d.String())
		}
		got = append(got, c)
	})

	_, _ = d.Insert(2, 'X')
	_, _ = d.RemoveRange(0, 0)
	_, _ = d.RemoveAt(0)

	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d: %v", len(got), got)
	}
	if got[0].Kind != CharInserted || got[1].Kind != CharRemoved {
		t.Errorf("unexpected events %v", got)
	}

	unsubscribe()
	_, _ = d.Insert(0, 'Y')
	if len(got) != 2 {
		t.Errorf("listener called after unsubscribe")
	}
}

func TestFailedMutationLeavesDocument(t *testing.T) {
	d := newDoc(t, "abc")
	calls := 0
	d.Subscribe(func(Change) { calls++ })

	errs := []error{}
	for _, fn := range []func() (Change, error){
		func() (Change, error) { return d.Insert(4, 'x') },
		func() (Change, error) { return d.RemoveAt(3) },
		func() (Change, error) { return d.RemoveRange(2, 5) },
		func() (Change, error) { return d.Set(-1, 'x') },
		func() (Change, error) { return d.InsertString(9, "") },
	} {
		_, err := fn()
		errs = append(errs, err)
	}

	for i, err := range errs {
		if !errors.Is(err, buffer.ErrOutOfRange) {
			t.Errorf("call %d: expected ErrOutOfRange, got %v", i, err)
		}
	}
	if d.String() != "abc" || calls != 0 {
		t.Errorf("failed calls changed state: text=%q events=%d", d.String(), calls)
	}
}

func TestReadOnlyDocument(t *testing.T) {
	d, err := NewFromString(text.String, "fixed")
	if err != nil {
		t.Fatal(err)
	}
	if !d.IsReadOnly() {
		t.Fatal("expected read-only document")
	}
	calls := 0
	d.Subscribe(func(Change) { calls++ })

	if _, err := d.Insert(0, 'x'); !errors.Is(err, buffer.ErrImmutable) {
		t.Errorf("Insert: expected ErrImmutable, got %v", err)
	}
	if _, err := d.RemoveRange(0, 0); !errors.Is(err, buffer.ErrImmutable) {
		t.Errorf("empty RemoveRange: expected ErrImmutable, got %v", err)
	}
	if _, err := d.Remove('q'); !errors.Is(err, buffer.ErrImmutable) {
		t.Errorf("Remove: expected ErrImmutable, got %v", err)
	}
	if calls != 0 {
		t.Errorf("read-only document dispatched %d events", calls)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	src := text.NewGap("abc")
	d := New(src)
	_ = src.Insert(0, '!')
	if d.String() != "abc" {
		t.Errorf("document shares storage with its source text: %q", d.String())
	}

	runes := []rune("abc")
	mem, err := text.NewMemory(runes)
	if err != nil {
		t.Fatal(err)
	}
	md := New(mem)
	runes[0] = 'Z'
	if md.String() != "abc" {
		t.Errorf("document shares the caller's memory: %q", md.String())
	}

	calls := 0
	d.Subscribe(func(Change) { calls++ })

	c := d.Clone()
	if c.ID() == d.ID() {
		t.Error("clone should get a new identity")
	}
	_, _ = c.Insert(0, 'z')
	if d.String() != "abc" || c.String() != "zabc" {
		t.Errorf("clone not independent: %q / %q", d.String(), c.String())
	}
	if calls != 0 {
		t.Error("listeners must not carry over to clones")
	}
}
