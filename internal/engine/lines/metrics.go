package lines

import (
	"fmt"
	"iter"

	"github.com/dshills/textcore/internal/engine/buffer"
	"github.com/dshills/textcore/internal/engine/document"
)

// Metrics is a line index over a character sequence. Line content lengths
// and terminator widths are kept in two parallel gap buffers, so repairing
// the index after an edit only touches the lines around the edit.
//
// There is always at least one line. The last line never has a terminator,
// and the sum of every line's length plus terminator equals CharCount.
type Metrics struct {
	lengths *buffer.GapBuffer[int]
	terms   *buffer.GapBuffer[uint8]
	chars   int
}

// NewMetrics returns the metrics of an empty text: one empty line.
func NewMetrics() *Metrics {
	m := &Metrics{
		lengths: buffer.NewGapBuffer[int](buffer.DefaultCapacity),
		terms:   buffer.NewGapBuffer[uint8](buffer.DefaultCapacity),
	}
	_ = m.lengths.Insert(0, 0)
	_ = m.terms.Insert(0, 0)
	return m
}

// Build scans all of r.
func Build(r buffer.Reader[rune]) *Metrics {
	m, _ := BuildRange(r, 0, r.Len())
	return m
}

// BuildRange scans [offset, offset+count) of r. Offsets reported by the
// result are relative to offset.
func BuildRange(r buffer.Reader[rune], offset, count int) (*Metrics, error) {
	e, err := NewEnumerator(r, offset, count)
	if err != nil {
		return nil, err
	}
	var lens []int
	var terms []uint8
	for l := range e.All() {
		lens = append(lens, l.Length)
		terms = append(terms, uint8(l.Terminator))
	}
	return &Metrics{
		lengths: buffer.NewGapBufferFrom(lens),
		terms:   buffer.NewGapBufferFrom(terms),
		chars:   count,
	}, nil
}

// LineCount returns the number of lines.
func (m *Metrics) LineCount() int { return m.lengths.Len() }

// CharCount returns the number of characters covered.
func (m *Metrics) CharCount() int { return m.chars }

func (m *Metrics) extent(line int) int {
	n, _ := m.lengths.At(line)
	t, _ := m.terms.At(line)
	return n + int(t)
}

// locate returns the line whose extent contains offset, treating offset ==
// CharCount as part of the last line.
func (m *Metrics) locate(offset int) (line, start int) {
	last := m.lengths.Len() - 1
	for i := 0; i < last; i++ {
		next := start + m.extent(i)
		if offset < next {
			return i, start
		}
		start = next
	}
	return last, start
}

func (m *Metrics) checkOffset(op string, offset int) error {
	if offset < 0 || offset >= m.chars {
		return &buffer.RangeError{Op: op, Index: offset, Count: -1, Len: m.chars}
	}
	return nil
}

// LineLength returns the number of characters on line, excluding its terminator.
func (m *Metrics) LineLength(line int) (int, error) {
	return m.lengths.At(line)
}

// TerminatorLength returns the width of the terminator ending line.
func (m *Metrics) TerminatorLength(line int) (int, error) {
	t, err := m.terms.At(line)
	return int(t), err
}

// LineStart returns the offset of the first character of line.
func (m *Metrics) LineStart(line int) (int, error) {
	if err := buffer.CheckIndex("line start", line, m.LineCount()); err != nil {
		return 0, err
	}
	start := 0
	for i := 0; i < line; i++ {
		start += m.extent(i)
	}
	return start, nil
}

// LineEnd returns the offset just past the content of line, before its
// terminator.
func (m *Metrics) LineEnd(line int) (int, error) {
	start, err := m.LineStart(line)
	if err != nil {
		return 0, err
	}
	n, _ := m.lengths.At(line)
	return start + n, nil
}

// LineBounds returns the content span [start, end) of line.
func (m *Metrics) LineBounds(line int) (start, end int, err error) {
	start, err = m.LineStart(line)
	if err != nil {
		return 0, 0, err
	}
	n, _ := m.lengths.At(line)
	return start, start + n, nil
}

// LineAtOffset returns the line whose extent, terminator included, contains
// offset.
func (m *Metrics) LineAtOffset(offset int) (int, error) {
	if err := m.checkOffset("line at offset", offset); err != nil {
		return 0, err
	}
	line, _ := m.locate(offset)
	return line, nil
}

// LineStartFromOffset returns the start of the line containing offset.
func (m *Metrics) LineStartFromOffset(offset int) (int, error) {
	if err := m.checkOffset("line start from offset", offset); err != nil {
		return 0, err
	}
	_, start := m.locate(offset)
	return start, nil
}

// LineEndFromOffset returns the content end of the line containing offset.
func (m *Metrics) LineEndFromOffset(offset int) (int, error) {
	if err := m.checkOffset("line end from offset", offset); err != nil {
		return 0, err
	}
	line, start := m.locate(offset)
	n, _ := m.lengths.At(line)
	return start + n, nil
}

// PositionFromOffset converts an offset to a line and column.
func (m *Metrics) PositionFromOffset(offset int) (LinePosition, error) {
	if err := m.checkOffset("position from offset", offset); err != nil {
		return LinePosition{}, err
	}
	line, start := m.locate(offset)
	return LinePosition{Line: line, Character: offset - start}, nil
}

// OffsetFromPosition converts a line and column to an offset. The column may
// address the terminator and the position just past it.
func (m *Metrics) OffsetFromPosition(p LinePosition) (int, error) {
	start, err := m.LineStart(p.Line)
	if err != nil {
		return 0, err
	}
	if p.Character < 0 || p.Character > m.extent(p.Line) {
		return 0, &buffer.RangeError{Op: "offset from position", Index: p.Character, Count: -1, Len: m.extent(p.Line) + 1}
	}
	return start + p.Character, nil
}

// Lines returns an iterator over every line.
func (m *Metrics) Lines() iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		start := 0
		for i := range m.LineCount() {
			n, _ := m.lengths.At(i)
			t, _ := m.terms.At(i)
			l := Line{Start: start, Length: n, Terminator: int(t)}
			if !yield(i, l) {
				return
			}
			start = l.Next()
		}
	}
}

// Apply repairs the metrics after c was committed to the text r now holds.
//
// Only the lines from the one containing the character before the edit
// through the one containing the first character after the removed span
// are rescanned; the character before the edit is included so that a CR
// and an LF brought together or split apart by the edit are classified
// correctly.
func (m *Metrics) Apply(c document.Change, r buffer.Reader[rune]) error {
	if c.IsZero() {
		return nil
	}
	removed := c.OldLen()
	if err := buffer.CheckRange("apply change", c.Index, removed, m.chars); err != nil {
		return err
	}
	delta := c.Delta()
	if r.Len() != m.chars+delta {
		return fmt.Errorf("apply %v: text has %d characters, metrics expect %d: %w",
			c, r.Len(), m.chars+delta, buffer.ErrInvalidArgument)
	}

	first, firstStart := m.locate(max(c.Index-1, 0))
	last, lastStart := m.locate(c.Index + removed)
	oldEnd := lastStart + m.extent(last)
	// Only a rescan reaching the final line keeps its unterminated tail;
	// otherwise the rescanned span ends with a terminator.
	atEnd := last == m.LineCount()-1

	e, err := NewEnumerator(r, firstStart, oldEnd+delta-firstStart)
	if err != nil {
		return err
	}
	var lens []int
	var terms []uint8
	for e.Next() {
		l := e.Line()
		if l.Terminator == 0 {
			if atEnd {
				lens = append(lens, l.Length)
				terms = append(terms, 0)
			} else if l.Length != 0 {
				m.Reset(r)
				return nil
			}
			break
		}
		lens = append(lens, l.Length)
		terms = append(terms, uint8(l.Terminator))
	}

	count := last - first + 1
	if err := m.lengths.RemoveRange(first, count); err != nil {
		return err
	}
	if err := m.terms.RemoveRange(first, count); err != nil {
		return err
	}
	if err := m.lengths.InsertSlice(first, lens); err != nil {
		return err
	}
	if err := m.terms.InsertSlice(first, terms); err != nil {
		return err
	}
	m.chars += delta
	return nil
}

// Reset rebuilds the metrics from all of r.
func (m *Metrics) Reset(r buffer.Reader[rune]) {
	*m = *Build(r)
}

// Clone returns an independent copy.
func (m *Metrics) Clone() *Metrics {
	return &Metrics{
		lengths: m.lengths.Clone().(*buffer.GapBuffer[int]),
		terms:   m.terms.Clone().(*buffer.GapBuffer[uint8]),
		chars:   m.chars,
	}
}
