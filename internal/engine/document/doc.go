// Package document layers change reporting over a text.Text.
//
// Every successful mutation of a Document yields exactly one Change: a
// typed record of what was inserted, removed or replaced and where. A
// Change carries enough data to compute its inverse, which is how the
// history package implements undo without snapshots:
//
//	c, _ := doc.RemoveRange(1, 2)  // "abcde" -> "ade"
//	c.Invert().ApplyTo(doc)        // "ade" -> "abcde"
//
// Listeners registered with Subscribe observe the same records
// synchronously, after the text has been updated.
package document
