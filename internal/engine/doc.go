// Package engine provides the text core facade.
//
// An Engine owns one document, the line metrics derived from it and its
// undo history. Each edit returns a change record from the document; the
// engine hands that record to the metrics, which repair only the lines it
// touched, and to the history.
//
// # Architecture
//
//   - buffer: generic gap, list and immutable sequences with search
//   - text: a character sequence over one of those backends
//   - document: a text that reports every mutation as a Change
//   - lines: line enumeration and offset/line conversion
//   - history: bounded undo and redo of changes
//
// # Thread Safety
//
// All Engine operations are safe for concurrent use. Reads share a
// read-write mutex; writes are serialized.
//
// # Basic Usage
//
//	e, _ := engine.New(engine.WithContent("Hello, World!"))
//
//	e.Replace(7, 5, "Go") // "Hello, Go!"
//	e.Undo()              // "Hello, World!"
//
// Offsets, counts and columns are character (rune) indexes. OffsetToUTF16
// and UTF16ToOffset convert to and from UTF-16 code units.
//
// # Lines
//
//	e, _ := engine.New(engine.WithContent("ab\r\ncd\nef"))
//
//	e.LineCount()          // 3
//	e.LineStartOffset(2)   // 7
//	e.OffsetToPosition(5)  // 1:1
//
// CR, LF, CRLF, VT, FF, NEL, LS and PS all end a line.
//
// # Undo/Redo
//
//	e.BeginUndoGroup("format")
//	e.Insert(0, "// ")
//	e.Append("\n")
//	e.EndUndoGroup()
//
//	e.Undo() // undoes both edits
//
// WithMaxUndoEntries bounds the history; the oldest entries are dropped
// first.
//
// # Configuration
//
//	e, _ := engine.New(
//	    engine.WithBackend(text.Gap),
//	    engine.WithGapCapacity(4096),
//	    engine.WithMaxUndoEntries(1000),
//	)
//
// The String and Memory backends are immutable, as is any engine created
// WithReadOnly; writes then fail with ErrReadOnly.
package engine
