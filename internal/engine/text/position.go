package text

import (
	"cmp"
	"fmt"

	"github.com/dshills/textcore/internal/engine/buffer"
)

// TextHit is a caret position: a character index plus the number of
// characters to the next valid caret position on the trailing edge.
// A leading-edge hit has TrailingLength 0.
type TextHit struct {
	CharacterIndex int
	TrailingLength int
}

// NewTextHit creates a hit. Negative components are rejected.
func NewTextHit(characterIndex, trailingLength int) (TextHit, error) {
	if characterIndex < 0 || trailingLength < 0 {
		return TextHit{}, fmt.Errorf("text hit (%d, %d): %w", characterIndex, trailingLength, buffer.ErrOutOfRange)
	}
	return TextHit{CharacterIndex: characterIndex, TrailingLength: trailingLength}, nil
}

// Offset returns CharacterIndex + TrailingLength, the index hits are ordered by.
func (h TextHit) Offset() int {
	return h.CharacterIndex + h.TrailingLength
}

// Compare orders hits by Offset.
func (h TextHit) Compare(other TextHit) int {
	return cmp.Compare(h.Offset(), other.Offset())
}

// TextHitRange is a pair of hits. Start may come after End.
type TextHitRange struct {
	Start TextHit
	End   TextHit
}

// IsEmpty reports whether both ends resolve to the same offset.
func (r TextHitRange) IsEmpty() bool {
	return r.Start.Offset() == r.End.Offset()
}

// Normalized returns the range with Start ordered before End.
func (r TextHitRange) Normalized() TextHitRange {
	if r.Start.Compare(r.End) > 0 {
		return TextHitRange{Start: r.End, End: r.Start}
	}
	return r
}

// TextRange is a span of character offsets. Start may exceed End.
type TextRange struct {
	Start int
	End   int
}

// NewTextRange creates a range. Negative offsets are rejected.
func NewTextRange(start, end int) (TextRange, error) {
	if start < 0 || end < 0 {
		return TextRange{}, fmt.Errorf("text range (%d, %d): %w", start, end, buffer.ErrOutOfRange)
	}
	return TextRange{Start: start, End: end}, nil
}

// IsEmpty reports whether Start equals End.
func (r TextRange) IsEmpty() bool { return r.Start == r.End }

// Len returns the number of characters covered.
func (r TextRange) Len() int {
	n := r.Normalized()
	return n.End - n.Start
}

// Contains reports whether position lies in [Start, End], inclusive.
func (r TextRange) Contains(position int) bool {
	return r.Start <= position && position <= r.End
}

// Normalized returns the range with Start <= End.
func (r TextRange) Normalized() TextRange {
	if r.Start > r.End {
		return TextRange{Start: r.End, End: r.Start}
	}
	return r
}

func (r TextRange) String() string {
	return fmt.Sprintf("[%d:%d]", r.Start, r.End)
}
