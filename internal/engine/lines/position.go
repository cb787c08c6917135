package lines

import (
	"cmp"
	"fmt"

	"github.com/dshills/textcore/internal/engine/buffer"
)

// LinePosition is a zero-based line and character column.
type LinePosition struct {
	Line      int
	Character int
}

// NewLinePosition creates a position. A negative line is rejected.
func NewLinePosition(line, character int) (LinePosition, error) {
	if line < 0 {
		return LinePosition{}, fmt.Errorf("line position (%d, %d): %w", line, character, buffer.ErrOutOfRange)
	}
	return LinePosition{Line: line, Character: character}, nil
}

// Compare orders positions by line, then by character.
func (p LinePosition) Compare(other LinePosition) int {
	if c := cmp.Compare(p.Line, other.Line); c != 0 {
		return c
	}
	return cmp.Compare(p.Character, other.Character)
}

// Before reports whether p orders before other.
func (p LinePosition) Before(other LinePosition) bool { return p.Compare(other) < 0 }

func (p LinePosition) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Character)
}

// LineRange is a span between two positions. Start may come after End.
type LineRange struct {
	Start LinePosition
	End   LinePosition
}

// IsEmpty reports whether Start equals End.
func (r LineRange) IsEmpty() bool { return r.Start == r.End }

// IsInverted reports whether Start comes after End.
func (r LineRange) IsInverted() bool { return r.Start.Compare(r.End) > 0 }

// Contains reports whether p lies in [Start, End], inclusive.
func (r LineRange) Contains(p LinePosition) bool {
	return r.Start.Compare(p) <= 0 && p.Compare(r.End) <= 0
}

// Normalized returns the range with Start ordered before End.
func (r LineRange) Normalized() LineRange {
	if r.IsInverted() {
		return LineRange{Start: r.End, End: r.Start}
	}
	return r
}
