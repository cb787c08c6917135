// Package text provides Text, the character container that documents are
// built on, together with the small value types and character utilities
// that text-editing code needs.
//
// A Text owns exactly one rune buffer. The backend is chosen once at
// construction through a Kind and never changes:
//
//	Gap      buffer.GapBuffer, tuned for clustered edits
//	List     buffer.ListBuffer, general purpose
//	String   buffer.StringBuffer, immutable view of a Go string
//	Memory   buffer.ImmutableBuffer, immutable view of a caller's []rune
//	Builder  buffer.BuilderBuffer, append-heavy producers
//
// Text satisfies buffer.Reader[rune] so line scanners and search helpers can
// consume it directly. Writes on an immutable kind return buffer.ErrImmutable.
//
// Characters are runes. UTF-16 helpers in this package translate rune
// indexes to code-unit offsets for protocols that count in UTF-16.
package text
