package lines

import (
	"iter"

	"github.com/dshills/textcore/internal/engine/buffer"
	"github.com/dshills/textcore/internal/engine/text"
)

var terminatorSet = text.LineTerminators()

// Line describes one scanned line: where it starts, how many characters it
// holds before its terminator and how wide the terminator is (0 for the
// final line, 2 for CRLF, 1 otherwise).
type Line struct {
	Start      int
	Length     int
	Terminator int
}

// End returns the offset just past the line content, before the terminator.
func (l Line) End() int { return l.Start + l.Length }

// Next returns the offset where the following line starts.
func (l Line) Next() int { return l.Start + l.Length + l.Terminator }

// Enumerator scans [offset, offset+count) of a rune sequence line by line.
// It yields every terminated line and then one final line, which may be
// empty and has no terminator. A CRLF pair counts as one terminator only
// when both runes lie inside the range.
type Enumerator struct {
	r    buffer.Reader[rune]
	pos  int
	end  int
	cur  Line
	done bool
}

// NewEnumerator creates an enumerator over [offset, offset+count) of r.
func NewEnumerator(r buffer.Reader[rune], offset, count int) (*Enumerator, error) {
	if err := buffer.CheckRange("enumerate lines", offset, count, r.Len()); err != nil {
		return nil, err
	}
	return &Enumerator{r: r, pos: offset, end: offset + count}, nil
}

// Next advances to the next line and reports whether there is one.
func (e *Enumerator) Next() bool {
	if e.done {
		return false
	}

	i := e.r.IndexOfAny(terminatorSet, e.pos)
	if i < 0 || i >= e.end {
		e.cur = Line{Start: e.pos, Length: e.end - e.pos}
		e.pos = e.end
		e.done = true
		return true
	}

	width := 1
	if c, _ := e.r.At(i); c == text.CR && i+1 < e.end {
		if n, _ := e.r.At(i + 1); n == text.LF {
			width = 2
		}
	}
	e.cur = Line{Start: e.pos, Length: i - e.pos, Terminator: width}
	e.pos = i + width
	return true
}

// Line returns the line produced by the last call to Next.
func (e *Enumerator) Line() Line { return e.cur }

// All returns an iterator over the remaining lines.
func (e *Enumerator) All() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for e.Next() {
			if !yield(e.cur) {
				return
			}
		}
	}
}

// Scan returns an iterator over the lines of all of r.
func Scan(r buffer.Reader[rune]) iter.Seq[Line] {
	e, _ := NewEnumerator(r, 0, r.Len())
	return e.All()
}
