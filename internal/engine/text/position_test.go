package text

import (
	"errors"
	"testing"

	"github.com/dshills/textcore/internal/engine/buffer"
)

func TestTextHit(t *testing.T) {
	if _, err := NewTextHit(-1, 0); !errors.Is(err, buffer.ErrOutOfRange) {
		t.Errorf("negative index: expected ErrOutOfRange, got %v", err)
	}
	if _, err := NewTextHit(0, -1); !errors.Is(err, buffer.ErrOutOfRange) {
		t.Errorf("negative trailing: expected ErrOutOfRange, got %v", err)
	}

	a, _ := NewTextHit(3, 1)
	b, _ := NewTextHit(4, 0)
	c, _ := NewTextHit(2, 0)

	if a.Compare(b) != 0 {
		t.Errorf("(3,1) and (4,0) should compare equal, got %d", a.Compare(b))
	}
	if c.Compare(a) >= 0 {
		t.Error("(2,0) should order before (3,1)")
	}

	r := TextHitRange{Start: a, End: c}
	n := r.Normalized()
	if n.Start != c || n.End != a {
		t.Errorf("Normalized: got %+v", n)
	}
	if !(TextHitRange{Start: a, End: b}).IsEmpty() {
		t.Error("range between equal offsets should be empty")
	}
}

func TestTextRange(t *testing.T) {
	if _, err := NewTextRange(-1, 2); !errors.Is(err, buffer.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}

	r, err := NewTextRange(8, 3)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		pos  int
		want bool
	}{
		{2, false},
		{3, false},
		{8, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.pos); got != tt.want {
			t.Errorf("unnormalized Contains(%d) = %v, want %v", tt.pos, got, tt.want)
		}
	}

	n := r.Normalized()
	if n.Start != 3 || n.End != 8 {
		t.Errorf("Normalized: got %v", n)
	}
	for _, pos := range []int{3, 5, 8} {
		if !n.Contains(pos) {
			t.Errorf("Contains(%d) should be true (inclusive)", pos)
		}
	}
	if n.Len() != 5 || r.Len() != 5 {
		t.Errorf("Len: expected 5, got %d and %d", n.Len(), r.Len())
	}
	if n.IsEmpty() || !(TextRange{Start: 4, End: 4}).IsEmpty() {
		t.Error("IsEmpty gave wrong answer")
	}
}
