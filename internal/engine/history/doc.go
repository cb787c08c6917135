// Package history provides undo and redo for a document.
//
// # Bounded stacks
//
// LimitedStack is a LIFO of at most Max items; pushing onto a full stack
// discards the oldest. History keeps one for undo and one for redo, both
// bounded by the configured maximum entry count (Unlimited by default).
//
// # Recording
//
// Every change a document.Document reports carries the text it removed
// and inserted, so it can be inverted. Feed changes to History.Record as
// they are returned, or let History subscribe:
//
//	h := history.New(history.Unlimited)
//	detach := h.Attach(doc)
//	defer detach()
//
//	doc.InsertString(0, "hello")
//	h.Undo(doc) // doc is empty again
//	h.Redo(doc)
//
// Undo and Redo return the changes they applied, so state derived from
// the document, such as line metrics, can be repaired the same way as
// after a normal edit.
//
// # Grouping
//
// Changes recorded between BeginGroup and EndGroup undo together:
//
//	h.BeginGroup("Find and Replace")
//	// ... multiple edits ...
//	h.EndGroup()
package history
