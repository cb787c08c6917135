package text

import (
	"unicode"

	"github.com/dshills/textcore/internal/engine/buffer"
)

// IsWordBoundary reports whether r separates words: whitespace or punctuation.
func IsWordBoundary(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}

// WordLeft returns the caret position at the start of the word before
// position. Whitespace immediately left of the caret is skipped first; a
// punctuation rune counts as a word of its own.
func WordLeft(r buffer.Reader[rune], position int) (int, error) {
	if err := buffer.CheckInsertIndex("word left", position, r.Len()); err != nil {
		return 0, err
	}
	at := func(i int) rune {
		c, _ := r.At(i)
		return c
	}

	p := position
	for p > 0 && unicode.IsSpace(at(p-1)) {
		p--
	}
	if p > 0 && IsWordBoundary(at(p-1)) {
		return p - 1, nil
	}
	for p > 0 && !IsWordBoundary(at(p-1)) {
		p--
	}
	return p, nil
}

// WordRight returns the caret position at the end of the word after
// position, skipping leading whitespace.
func WordRight(r buffer.Reader[rune], position int) (int, error) {
	n := r.Len()
	if err := buffer.CheckInsertIndex("word right", position, n); err != nil {
		return 0, err
	}
	at := func(i int) rune {
		c, _ := r.At(i)
		return c
	}

	p := position
	for p < n && unicode.IsSpace(at(p)) {
		p++
	}
	if p < n && IsWordBoundary(at(p)) {
		return p + 1, nil
	}
	for p < n && !IsWordBoundary(at(p)) {
		p++
	}
	return p, nil
}
