package lines

import (
	"errors"
	"testing"

	"github.com/dshills/textcore/internal/engine/buffer"
)

func TestLinePositionOrder(t *testing.T) {
	tests := []struct {
		a, b LinePosition
		want int
	}{
		{LinePosition{0, 5}, LinePosition{1, 0}, -1},
		{LinePosition{2, 1}, LinePosition{2, 0}, 1},
		{LinePosition{3, 3}, LinePosition{3, 3}, 0},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
	if !(LinePosition{0, 9}).Before(LinePosition{1, 0}) {
		t.Error("0:9 should come before 1:0")
	}

	if _, err := NewLinePosition(-1, 0); !errors.Is(err, buffer.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestLineRange(t *testing.T) {
	r := LineRange{Start: LinePosition{4, 2}, End: LinePosition{1, 7}}
	if !r.IsInverted() {
		t.Fatal("expected inverted range")
	}
	n := r.Normalized()
	if n.Start != (LinePosition{1, 7}) || n.End != (LinePosition{4, 2}) {
		t.Errorf("Normalized = %+v", n)
	}
	for _, p := range []LinePosition{{1, 7}, {2, 0}, {4, 2}} {
		if !n.Contains(p) {
			t.Errorf("Contains(%v) should be true", p)
		}
	}
	for _, p := range []LinePosition{{1, 6}, {4, 3}} {
		if n.Contains(p) {
			t.Errorf("Contains(%v) should be false", p)
		}
	}
	if n.IsEmpty() || !(LineRange{}).IsEmpty() {
		t.Error("IsEmpty gave wrong answer")
	}
}
