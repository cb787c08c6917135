package buffer

import (
	"math/rand"
	"slices"
	"testing"
)

// backends builds every backend over the same content. The gap buffer is
// edited so its gap splits the content.
func backends(t *testing.T, content []rune) map[string]Reader[rune] {
	t.Helper()

	gap := NewGapBufferFrom(content)
	if len(content) > 0 {
		mid := len(content) / 2
		_ = gap.Insert(mid, 0)
		_ = gap.RemoveAt(mid)
	}

	imm, err := NewImmutableBuffer(slices.Clone(content))
	if err != nil {
		t.Fatal(err)
	}

	return map[string]Reader[rune]{
		"gap":       gap,
		"list":      NewListBufferFrom(content),
		"immutable": imm,
		"string":    NewStringBuffer(string(content)),
		"builder":   NewBuilderBuffer(string(content)),
	}
}

func naiveIndex(s []rune, match func(rune) bool, start int) int {
	for i := max(start, 0); i < len(s); i++ {
		if match(s[i]) {
			return i
		}
	}
	return -1
}

func naiveLastIndex(s []rune, match func(rune) bool, start int) int {
	for i := min(start, len(s)-1); i >= 0; i-- {
		if match(s[i]) {
			return i
		}
	}
	return -1
}

func naiveIndexSeq(s, seq []rune, start int) int {
	for i := max(start, 0); i+len(seq) <= len(s); i++ {
		if slices.Equal(s[i:i+len(seq)], seq) {
			return i
		}
	}
	return -1
}

func naiveLastIndexSeq(s, seq []rune, start int) int {
	for i := min(start, len(s)-len(seq)); i >= 0; i-- {
		if slices.Equal(s[i:i+len(seq)], seq) {
			return i
		}
	}
	return -1
}

func TestSearchAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := []rune("abcd")

	for round := range 200 {
		content := make([]rune, rng.Intn(24))
		for i := range content {
			content[i] = alphabet[rng.Intn(len(alphabet))]
		}

		for name, r := range backends(t, content) {
			for range 20 {
				start := rng.Intn(len(content)+4) - 2
				v := alphabet[rng.Intn(len(alphabet))]
				eq := func(x rune) bool { return x == v }

				if got, want := r.IndexOf(v, start), naiveIndex(content, eq, start); got != want {
					t.Fatalf("round %d %s: IndexOf(%q, %d) = %d, want %d (%q)", round, name, v, start, got, want, string(content))
				}
				if got, want := r.LastIndexOf(v, start), naiveLastIndex(content, eq, start); got != want {
					t.Fatalf("round %d %s: LastIndexOf(%q, %d) = %d, want %d (%q)", round, name, v, start, got, want, string(content))
				}

				set := alphabet[:1+rng.Intn(len(alphabet))]
				in := func(x rune) bool { return slices.Contains(set, x) }
				if got, want := r.IndexOfAny(set, start), naiveIndex(content, in, start); got != want {
					t.Fatalf("round %d %s: IndexOfAny(%q, %d) = %d, want %d", round, name, string(set), start, got, want)
				}
				if got, want := r.LastIndexOfAny(set, start), naiveLastIndex(content, in, start); got != want {
					t.Fatalf("round %d %s: LastIndexOfAny(%q, %d) = %d, want %d", round, name, string(set), start, got, want)
				}

				seq := make([]rune, 1+rng.Intn(3))
				for i := range seq {
					seq[i] = alphabet[rng.Intn(2)]
				}
				if got, want := r.IndexOfSeq(seq, start), naiveIndexSeq(content, seq, start); got != want {
					t.Fatalf("round %d %s: IndexOfSeq(%q, %d) = %d, want %d (%q)", round, name, string(seq), start, got, want, string(content))
				}
				if got, want := r.LastIndexOfSeq(seq, start), naiveLastIndexSeq(content, seq, start); got != want {
					t.Fatalf("round %d %s: LastIndexOfSeq(%q, %d) = %d, want %d (%q)", round, name, string(seq), start, got, want, string(content))
				}
			}
		}
	}
}

func TestSearchEmptySeq(t *testing.T) {
	for name, r := range backends(t, []rune("abc")) {
		t.Run(name, func(t *testing.T) {
			tests := []struct {
				start, forward, backward int
			}{
				{-1, 0, -1},
				{0, 0, 0},
				{2, 2, 2},
				{3, 3, 3},
				{5, -1, 3},
			}
			for _, tt := range tests {
				if got := r.IndexOfSeq(nil, tt.start); got != tt.forward {
					t.Errorf("IndexOfSeq(empty, %d) = %d, want %d", tt.start, got, tt.forward)
				}
				if got := r.LastIndexOfSeq(nil, tt.start); got != tt.backward {
					t.Errorf("LastIndexOfSeq(empty, %d) = %d, want %d", tt.start, got, tt.backward)
				}
			}
		})
	}
}

func TestSearchAnyLargeSet(t *testing.T) {
	r := NewListBufferFrom([]rune("hello, world"))
	set := []rune("xyz,w")
	if i := r.IndexOfAny(set, 0); i != 5 {
		t.Errorf("expected 5, got %d", i)
	}
	if i := r.LastIndexOfAny(set, 100); i != 7 {
		t.Errorf("expected 7, got %d", i)
	}
	if i := r.IndexOfAny(nil, 0); i != -1 {
		t.Errorf("empty set: expected -1, got %d", i)
	}
}

func TestContainsAndRemove(t *testing.T) {
	b := NewListBufferFrom([]rune("banana"))

	if !Contains[rune](b, 'n') || Contains[rune](b, 'z') {
		t.Error("Contains gave wrong answer")
	}
	if !ContainsSeq[rune](b, []rune("nan")) {
		t.Error("ContainsSeq should find nan")
	}

	found, err := Remove[rune](b, 'n')
	if err != nil || !found {
		t.Fatalf("Remove: found=%v err=%v", found, err)
	}
	if got := string(ToSlice[rune](b)); got != "baana" {
		t.Errorf("expected %q, got %q", "baana", got)
	}

	found, _ = Remove[rune](b, 'z')
	if found {
		t.Error("Remove reported a missing value as found")
	}
}

func TestReplaceSlice(t *testing.T) {
	b := NewGapBufferFrom([]rune("hello world"))

	if err := ReplaceSlice[rune](b, 6, []rune("WORLD")); err != nil {
		t.Fatal(err)
	}
	if got := string(b.ToSlice()); got != "hello WORLD" {
		t.Errorf("expected %q, got %q", "hello WORLD", got)
	}

	if err := ReplaceSeq[rune](b, 0, slices.Values([]rune("J"))); err != nil {
		t.Fatal(err)
	}
	if got := string(b.ToSlice()); got != "Jello WORLD" {
		t.Errorf("expected %q, got %q", "Jello WORLD", got)
	}

	if err := ReplaceSlice[rune](b, 8, []rune("xyzw")); err == nil {
		t.Error("expected range error for replacement past end")
	}
}

func TestEqualAndAll(t *testing.T) {
	a := NewStringBuffer("abc")
	b := NewGapBufferFrom([]rune("abc"))
	if !Equal[rune](a, b) {
		t.Error("expected equal buffers")
	}
	_ = b.Set(2, 'x')
	if Equal[rune](a, b) {
		t.Error("expected different buffers")
	}

	var got []rune
	for i, r := range All[rune](b) {
		if i != len(got) {
			t.Fatalf("unexpected index %d", i)
		}
		got = append(got, r)
	}
	if string(got) != "abx" {
		t.Errorf("All: expected %q, got %q", "abx", string(got))
	}
}
