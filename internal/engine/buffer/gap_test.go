package buffer

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

func checkGap[T comparable](t *testing.T, g *GapBuffer[T]) {
	t.Helper()
	if g.gapStart < 0 || g.gapStart > g.gapEnd || g.gapEnd > len(g.data) {
		t.Fatalf("gap out of bounds: start=%d end=%d cap=%d", g.gapStart, g.gapEnd, len(g.data))
	}
	if g.Len() != len(g.data)-(g.gapEnd-g.gapStart) {
		t.Fatalf("length mismatch: len=%d cap=%d gap=%d", g.Len(), len(g.data), g.gapEnd-g.gapStart)
	}
	var zero T
	for i := g.gapStart; i < g.gapEnd; i++ {
		if g.data[i] != zero {
			t.Fatalf("gap slot %d not cleared: %v", i, g.data[i])
		}
	}
}

func TestGapBufferSeededEmpty(t *testing.T) {
	g := NewGapBuffer[rune](0)

	for _, step := range []struct {
		index int
		r     rune
	}{{0, 'a'}, {1, 'b'}, {0, '_'}} {
		if err := g.Insert(step.index, step.r); err != nil {
			t.Fatalf("insert %q at %d: %v", step.r, step.index, err)
		}
		checkGap(t, g)
	}

	if g.Len() != 3 {
		t.Errorf("expected length 3, got %d", g.Len())
	}
	if got := string(g.ToSlice()); got != "_ab" {
		t.Errorf("expected %q, got %q", "_ab", got)
	}
}

func TestGapBufferGrowth(t *testing.T) {
	g := NewGapBuffer[int](2)
	for i := range 3 {
		if err := Append[int](g, i); err != nil {
			t.Fatal(err)
		}
	}
	// max(len+1, 2*cap, seed) with seed = DefaultCapacity
	if g.Cap() != DefaultCapacity {
		t.Errorf("expected capacity %d, got %d", DefaultCapacity, g.Cap())
	}

	for i := 3; i < 5; i++ {
		_ = Append[int](g, i)
	}
	if g.Cap() != 2*DefaultCapacity {
		t.Errorf("expected capacity %d, got %d", 2*DefaultCapacity, g.Cap())
	}

	if err := g.InsertSlice(0, make([]int, 100)); err != nil {
		t.Fatal(err)
	}
	if g.Cap() != 105 {
		t.Errorf("expected capacity 105 after bulk insert, got %d", g.Cap())
	}
	checkGap(t, g)
}

func TestGapBufferRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := NewGapBuffer[int](0)
	var mirror []int

	for step := range 5000 {
		switch op := rng.Intn(7); {
		case op <= 1:
			i := rng.Intn(len(mirror) + 1)
			v := rng.Intn(1000) + 1
			if err := g.Insert(i, v); err != nil {
				t.Fatalf("step %d: insert: %v", step, err)
			}
			mirror = slices.Insert(mirror, i, v)
		case op == 2:
			i := rng.Intn(len(mirror) + 1)
			vs := make([]int, rng.Intn(8))
			for j := range vs {
				vs[j] = rng.Intn(1000) + 1
			}
			if err := g.InsertSlice(i, vs); err != nil {
				t.Fatalf("step %d: insert slice: %v", step, err)
			}
			mirror = slices.Insert(mirror, i, vs...)
		case op == 3 && len(mirror) > 0:
			i := rng.Intn(len(mirror))
			if err := g.RemoveAt(i); err != nil {
				t.Fatalf("step %d: remove at: %v", step, err)
			}
			mirror = slices.Delete(mirror, i, i+1)
		case op == 4 && len(mirror) > 0:
			i := rng.Intn(len(mirror))
			n := rng.Intn(len(mirror) - i + 1)
			if err := g.RemoveRange(i, n); err != nil {
				t.Fatalf("step %d: remove range: %v", step, err)
			}
			mirror = slices.Delete(mirror, i, i+n)
		case op == 5 && len(mirror) > 0:
			i := rng.Intn(len(mirror))
			v := rng.Intn(1000) + 1
			if err := g.Set(i, v); err != nil {
				t.Fatalf("step %d: set: %v", step, err)
			}
			mirror[i] = v
		case op == 6 && rng.Intn(50) == 0:
			g.TrimExcess()
		}

		checkGap(t, g)
		if !slices.Equal(g.ToSlice(), mirror) {
			t.Fatalf("step %d: content diverged\n got: %v\nwant: %v", step, g.ToSlice(), mirror)
		}
	}
}

func TestGapBufferClearIdempotent(t *testing.T) {
	g := NewGapBufferFrom([]rune("hello"))
	capBefore := g.Cap()

	for range 2 {
		if err := g.Clear(); err != nil {
			t.Fatal(err)
		}
		checkGap(t, g)
		if g.Len() != 0 {
			t.Fatalf("expected empty buffer, got length %d", g.Len())
		}
	}
	if g.Cap() != capBefore {
		t.Errorf("clear changed capacity: %d -> %d", capBefore, g.Cap())
	}

	fresh := NewGapBuffer[rune](capBefore)
	_ = g.Insert(0, 'x')
	_ = fresh.Insert(0, 'x')
	if g.Cap() != fresh.Cap() || !slices.Equal(g.ToSlice(), fresh.ToSlice()) {
		t.Errorf("cleared buffer differs from fresh: cap %d vs %d", g.Cap(), fresh.Cap())
	}
}

func TestGapBufferRangeErrors(t *testing.T) {
	g := NewGapBufferFrom([]rune("abc"))

	tests := []struct {
		name string
		fn   func() error
	}{
		{"at negative", func() error { _, err := g.At(-1); return err }},
		{"at len", func() error { _, err := g.At(3); return err }},
		{"set len", func() error { return g.Set(3, 'x') }},
		{"insert past end", func() error { return g.Insert(4, 'x') }},
		{"insert negative", func() error { return g.InsertSlice(-1, []rune("x")) }},
		{"remove at len", func() error { return g.RemoveAt(3) }},
		{"remove range overflow", func() error { return g.RemoveRange(2, 2) }},
		{"remove range negative count", func() error { return g.RemoveRange(0, -1) }},
		{"slice overflow", func() error { _, err := g.Slice(1, 3); return err }},
		{"copy overflow", func() error { return g.CopyTo(make([]rune, 4), 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("expected ErrOutOfRange, got %v", err)
			}
			var re *RangeError
			if !errors.As(err, &re) {
				t.Fatalf("expected *RangeError, got %T", err)
			}
			if got := string(g.ToSlice()); got != "abc" {
				t.Errorf("failed call modified buffer: %q", got)
			}
		})
	}
}

func TestGapBufferSetCapacity(t *testing.T) {
	g := NewGapBufferFrom([]rune("abcdef"))
	_ = g.Insert(3, 'X')

	if err := g.SetCapacity(3); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if err := g.SetCapacity(64); err != nil {
		t.Fatal(err)
	}
	checkGap(t, g)
	if g.Cap() != 64 {
		t.Errorf("expected capacity 64, got %d", g.Cap())
	}
	if got := string(g.ToSlice()); got != "abcXdef" {
		t.Errorf("expected %q, got %q", "abcXdef", got)
	}

	g.TrimExcess()
	if g.Cap() != g.Len() {
		t.Errorf("expected trimmed capacity %d, got %d", g.Len(), g.Cap())
	}
	if got := string(g.ToSlice()); got != "abcXdef" {
		t.Errorf("expected %q after trim, got %q", "abcXdef", got)
	}
}

func TestGapBufferTrimExcessKeepsNearlyFull(t *testing.T) {
	g := NewGapBuffer[int](10)
	for i := range 9 {
		_ = Append[int](g, i)
	}
	g.TrimExcess()
	if g.Cap() != 10 {
		t.Errorf("expected capacity to stay 10 at 90%% use, got %d", g.Cap())
	}
}

func TestGapBufferSliceViews(t *testing.T) {
	g := NewGapBufferFrom([]rune("abcdefgh"))
	_ = g.Insert(4, '|') // gap now sits after '|'
	_ = g.RemoveAt(4)    // content back to abcdefgh, gap at 4

	front, err := g.Slice(0, 4)
	if err != nil {
		t.Fatal(err)
	}
	if string(front) != "abcd" {
		t.Errorf("front slice: expected %q, got %q", "abcd", string(front))
	}
	if cap(front) != len(front) {
		t.Error("view must not expose capacity beyond its range")
	}

	back, _ := g.Slice(4, 4)
	if string(back) != "efgh" {
		t.Errorf("back slice: expected %q, got %q", "efgh", string(back))
	}

	straddle, _ := g.Slice(2, 4)
	if string(straddle) != "cdef" {
		t.Errorf("straddling slice: expected %q, got %q", "cdef", string(straddle))
	}
	straddle[0] = 'Z'
	if r, _ := g.At(2); r != 'c' {
		t.Error("straddling slice must be a copy")
	}

	dst := make([]rune, 5)
	if err := g.CopyTo(dst, 1); err != nil {
		t.Fatal(err)
	}
	if string(dst) != "bcdef" {
		t.Errorf("copy: expected %q, got %q", "bcdef", string(dst))
	}
}

func TestGapBufferSearchAcrossGap(t *testing.T) {
	g := NewGapBufferFrom([]rune("abcabcabc"))
	_ = g.Insert(5, 'x')
	_ = g.RemoveAt(5) // gap at 5, splitting the second "abc"

	if i := g.IndexOfSeq([]rune("cab"), 3); i != 5 {
		t.Errorf("IndexOfSeq across gap: expected 5, got %d", i)
	}
	if i := g.LastIndexOfSeq([]rune("bca"), 8); i != 4 {
		t.Errorf("LastIndexOfSeq: expected 4, got %d", i)
	}
	if i := g.IndexOf('a', 4); i != 6 {
		t.Errorf("IndexOf: expected 6, got %d", i)
	}
	if i := g.LastIndexOf('c', 4); i != 2 {
		t.Errorf("LastIndexOf: expected 2, got %d", i)
	}
	if i := g.IndexOfAny([]rune("xc"), 3); i != 5 {
		t.Errorf("IndexOfAny: expected 5, got %d", i)
	}
	if i := g.LastIndexOfAny([]rune("ab"), 5); i != 4 {
		t.Errorf("LastIndexOfAny: expected 4, got %d", i)
	}
}

func TestGapBufferClone(t *testing.T) {
	g := NewGapBufferFrom([]rune("hello"))
	_ = g.Insert(2, '-')

	c := g.Clone()
	_ = c.Insert(0, '>')
	_ = g.RemoveAt(0)

	if got := string(ToSlice[rune](c)); got != ">he-llo" {
		t.Errorf("clone: expected %q, got %q", ">he-llo", got)
	}
	if got := string(g.ToSlice()); got != "e-llo" {
		t.Errorf("original: expected %q, got %q", "e-llo", got)
	}
}

func TestGapBufferInsertSeq(t *testing.T) {
	g := NewGapBufferFrom([]rune("ad"))
	if err := g.InsertSeq(1, slices.Values([]rune("bc"))); err != nil {
		t.Fatal(err)
	}
	if got := string(g.ToSlice()); got != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", got)
	}
	if err := g.InsertSeq(0, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for nil seq, got %v", err)
	}
}

func TestGapBufferInsertOwnView(t *testing.T) {
	g := NewGapBufferFrom([]rune("abcdef"))
	_ = g.Insert(3, 'X')

	front, err := g.Slice(0, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.InsertSlice(1, front); err != nil {
		t.Fatal(err)
	}
	if got := string(g.ToSlice()); got != "aabcbcXdef" {
		t.Fatalf("after front view: expected %q, got %q", "aabcbcXdef", got)
	}
	checkGap(t, g)

	back, err := g.Slice(g.Len()-3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.InsertSlice(0, back); err != nil {
		t.Fatal(err)
	}
	if got := string(g.ToSlice()); got != "defaabcbcXdef" {
		t.Fatalf("after back view: expected %q, got %q", "defaabcbcXdef", got)
	}
	checkGap(t, g)
}

func TestOverlaps(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	tests := []struct {
		name string
		a, b []int
		want bool
	}{
		{"same", s, s, true},
		{"inner", s, s[2:3], true},
		{"touching", s[:2], s[2:], false},
		{"shared edge", s[:3], s[2:], true},
		{"distinct", s, []int{1, 2}, false},
		{"empty", s[:0], s, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}
