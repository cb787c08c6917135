package history

import "github.com/dshills/textcore/internal/engine/document"

// GroupScope closes a group with defer:
//
//	func indentBlock(h *History, d *document.Document) {
//	    defer h.GroupScope("Indent").End()
//	    // ... several edits ...
//	}
type GroupScope struct {
	history *History
	active  bool
}

// GroupScope starts a group and returns a handle that ends it.
func (h *History) GroupScope(name string) *GroupScope {
	h.BeginGroup(name)
	return &GroupScope{
		history: h,
		active:  true,
	}
}

// End ends the group. Only the first call has effect.
func (g *GroupScope) End() {
	if g.active {
		g.history.EndGroup()
		g.active = false
	}
}

// Cancel drops the group without recording it.
func (g *GroupScope) Cancel() {
	if g.active {
		g.history.CancelGroup()
		g.active = false
	}
}

// Transaction runs fn inside a group. If fn fails the group is cancelled
// and the error returned; the document is not rolled back.
func (h *History) Transaction(name string, fn func() error) error {
	h.BeginGroup(name)

	if err := fn(); err != nil {
		h.CancelGroup()
		return err
	}

	h.EndGroup()
	return nil
}

// Checkpoint marks a depth of the undo stack.
type Checkpoint struct {
	undoDepth int
}

// CreateCheckpoint marks the current undo depth.
func (h *History) CreateCheckpoint() Checkpoint {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Checkpoint{undoDepth: h.undo.Len()}
}

// UndoToCheckpoint undoes entries until the undo stack is back at the
// checkpoint depth, returning every change applied.
func (h *History) UndoToCheckpoint(cp Checkpoint, d *document.Document) ([]document.Change, error) {
	var all []document.Change
	for h.UndoCount() > cp.undoDepth {
		applied, err := h.Undo(d)
		all = append(all, applied...)
		if err != nil {
			return all, err
		}
	}
	return all, nil
}

// RedoToCheckpoint redoes entries until the undo stack reaches the
// checkpoint depth or nothing is left to redo.
func (h *History) RedoToCheckpoint(cp Checkpoint, d *document.Document) ([]document.Change, error) {
	var all []document.Change
	for h.UndoCount() < cp.undoDepth && h.CanRedo() {
		applied, err := h.Redo(d)
		all = append(all, applied...)
		if err != nil {
			return all, err
		}
	}
	return all, nil
}
