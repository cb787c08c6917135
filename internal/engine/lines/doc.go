// Package lines indexes a character sequence by line.
//
// Enumerator splits a range of runes at line terminators (CR, LF, VT, FF,
// NEL, LS, PS, with CRLF counted as one two-rune terminator). Metrics keeps
// the resulting line lengths and terminator widths and answers offset/line
// conversions:
//
//	m := lines.Build(doc)
//	pos, _ := m.PositionFromOffset(42)
//	off, _ := m.OffsetFromPosition(pos) // 42
//
// After each document edit, Apply repairs only the lines the edit touched:
//
//	c, _ := doc.InsertString(10, "new\nline")
//	_ = m.Apply(c, doc)
//
// Offsets and columns are rune indexes.
package lines
