package text

import (
	"fmt"
	"unicode/utf16"

	"github.com/dshills/textcore/internal/engine/buffer"
)

func unitLen(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1 // invalid runes encode as U+FFFD
}

// CharLength returns the number of UTF-16 code units needed for the rune at
// index: 2 for supplementary-plane runes, 1 otherwise.
func CharLength(r buffer.Reader[rune], index int) (int, error) {
	c, err := r.At(index)
	if err != nil {
		return 0, err
	}
	return unitLen(c), nil
}

// UTF16Offset converts a rune index in [0, Len] to a UTF-16 code unit offset.
func UTF16Offset(r buffer.Reader[rune], index int) (int, error) {
	if err := buffer.CheckInsertIndex("utf16 offset", index, r.Len()); err != nil {
		return 0, err
	}
	units := 0
	for i := 0; i < index; i++ {
		c, _ := r.At(i)
		units += unitLen(c)
	}
	return units, nil
}

// IndexFromUTF16 converts a UTF-16 code unit offset to a rune index. An
// offset that falls between the two halves of a surrogate pair is rejected.
func IndexFromUTF16(r buffer.Reader[rune], units int) (int, error) {
	if units < 0 {
		return 0, &buffer.RangeError{Op: "index from utf16", Index: units, Count: -1, Len: r.Len()}
	}
	pos := 0
	for i := 0; i < r.Len(); i++ {
		if pos == units {
			return i, nil
		}
		c, _ := r.At(i)
		pos += unitLen(c)
		if pos > units {
			return 0, fmt.Errorf("utf16 offset %d splits a surrogate pair: %w", units, buffer.ErrInvalidArgument)
		}
	}
	if pos == units {
		return r.Len(), nil
	}
	return 0, &buffer.RangeError{Op: "index from utf16", Index: units, Count: -1, Len: pos}
}
