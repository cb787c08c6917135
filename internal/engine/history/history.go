package history

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dshills/textcore/internal/engine/document"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// History keeps the undo and redo stacks for one document.
//
// Changes are recorded as the document reports them. Undo applies the
// inverse of the newest entry and moves it to the redo stack; Redo
// reapplies it. Changes the document reports while History is replaying
// are not recorded again.
type History struct {
	mu sync.Mutex

	undo *LimitedStack[*entry]
	redo *LimitedStack[*entry]

	// Grouping state
	grouping     bool
	groupName    string
	groupChanges []document.Change

	replaying bool
}

// New creates a history retaining at most maxEntries undo entries.
// A bound of zero or less means Unlimited.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = Unlimited
	}
	undo, _ := NewLimitedStack[*entry](maxEntries)
	redo, _ := NewLimitedStack[*entry](maxEntries)
	return &History{undo: undo, redo: redo}
}

// Record adds c as a new undo entry, or to the open group, and clears the
// redo stack. Zero changes and changes reported during Undo or Redo are
// ignored.
func (h *History) Record(c document.Change) {
	if c.IsZero() {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.replaying {
		return
	}
	if h.grouping {
		h.groupChanges = append(h.groupChanges, c)
		return
	}
	h.pushLocked(newEntry("", []document.Change{c}))
}

// Attach records every change d reports until the returned function is
// called.
func (h *History) Attach(d *document.Document) (detach func()) {
	return d.Subscribe(h.Record)
}

func (h *History) pushLocked(e *entry) {
	h.undo.Push(e)
	h.redo.Clear()
}

// Undo reverts the newest entry on d and returns the changes d reported
// while doing so. If d rejects a change, the changes already applied are
// rolled back and the entry stays on the undo stack.
func (h *History) Undo(d *document.Document) ([]document.Change, error) {
	h.mu.Lock()
	e, ok := h.undo.TryPop()
	if !ok {
		h.mu.Unlock()
		return nil, ErrNothingToUndo
	}
	h.replaying = true
	h.mu.Unlock()

	inverse := make([]document.Change, len(e.changes))
	for i, c := range e.changes {
		inverse[len(e.changes)-1-i] = c.Invert()
	}
	applied, err := replay(d, inverse)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.replaying = false
	if err != nil {
		h.undo.Push(e)
		return nil, fmt.Errorf("undo %q: %w", e.description(), err)
	}
	h.redo.Push(e)
	return applied, nil
}

// Redo reapplies the newest undone entry on d and returns the changes d
// reported.
func (h *History) Redo(d *document.Document) ([]document.Change, error) {
	h.mu.Lock()
	e, ok := h.redo.TryPop()
	if !ok {
		h.mu.Unlock()
		return nil, ErrNothingToRedo
	}
	h.replaying = true
	h.mu.Unlock()

	applied, err := replay(d, e.changes)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.replaying = false
	if err != nil {
		h.redo.Push(e)
		return nil, fmt.Errorf("redo %q: %w", e.description(), err)
	}
	h.undo.Push(e)
	return applied, nil
}

// replay applies changes in order. On failure it reverts what it applied.
func replay(d *document.Document, changes []document.Change) ([]document.Change, error) {
	applied := make([]document.Change, 0, len(changes))
	for _, c := range changes {
		got, err := c.ApplyTo(d)
		if err != nil {
			for _, done := range slices.Backward(applied) {
				if _, rerr := done.Invert().ApplyTo(d); rerr != nil {
					return nil, errors.Join(err, rerr)
				}
			}
			return nil, err
		}
		if !got.IsZero() {
			applied = append(applied, got)
		}
	}
	return applied, nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.undo.Len() > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.redo.Len() > 0
}

// UndoCount returns the number of undo entries available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.undo.Len()
}

// RedoCount returns the number of redo entries available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.redo.Len()
}

// BeginGroup starts a group. Changes recorded until EndGroup form a single
// undo entry. Nested calls are ignored.
func (h *History) BeginGroup(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		return
	}
	h.grouping = true
	h.groupName = name
	h.groupChanges = nil
}

// EndGroup closes the open group. An empty group records nothing.
func (h *History) EndGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.grouping {
		return
	}
	h.grouping = false
	if len(h.groupChanges) > 0 {
		h.pushLocked(newEntry(h.groupName, h.groupChanges))
	}
	h.groupChanges = nil
}

// CancelGroup closes the open group without recording it.
// The changes already made stay in the document.
func (h *History) CancelGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.grouping = false
	h.groupChanges = nil
}

// IsGrouping returns true while a group is open.
func (h *History) IsGrouping() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.grouping
}

// Clear removes all undo and redo entries and any open group.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undo.Clear()
	h.redo.Clear()
	h.grouping = false
	h.groupChanges = nil
}

func collectInfo(s *LimitedStack[*entry]) []EntryInfo {
	result := make([]EntryInfo, 0, s.Len())
	for e := range s.All() {
		result = append(result, e.info())
	}
	return result
}

// UndoInfo describes the undo entries, newest first.
func (h *History) UndoInfo() []EntryInfo {
	h.mu.Lock()
	defer h.mu.Unlock()
	return collectInfo(h.undo)
}

// RedoInfo describes the redo entries, newest first.
func (h *History) RedoInfo() []EntryInfo {
	h.mu.Lock()
	defer h.mu.Unlock()
	return collectInfo(h.redo)
}

// PeekUndo describes the entry Undo would revert.
func (h *History) PeekUndo() (EntryInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	e, ok := h.undo.TryPeek()
	if !ok {
		return EntryInfo{}, false
	}
	return e.info(), true
}

// PeekRedo describes the entry Redo would reapply.
func (h *History) PeekRedo() (EntryInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	e, ok := h.redo.TryPeek()
	if !ok {
		return EntryInfo{}, false
	}
	return e.info(), true
}

// SetMaxEntries changes the bound on both stacks, dropping the oldest
// entries that no longer fit. Zero or less means Unlimited.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = Unlimited
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	_ = h.undo.SetMax(max)
	_ = h.redo.SetMax(max)
}

// MaxEntries returns the bound on the undo stack.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.undo.Max()
}
