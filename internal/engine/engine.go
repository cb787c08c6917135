package engine

import (
	"fmt"
	"io"
	"slices"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dshills/textcore/internal/engine/document"
	"github.com/dshills/textcore/internal/engine/history"
	"github.com/dshills/textcore/internal/engine/lines"
	"github.com/dshills/textcore/internal/engine/text"
)

// Re-export commonly used types for convenience.
type (
	// Change is a committed document mutation.
	Change = document.Change

	// Line is one line of the text: start, content length, terminator width.
	Line = lines.Line

	// LinePosition is a zero-based line and column.
	LinePosition = lines.LinePosition

	// EntryInfo describes an undo or redo entry.
	EntryInfo = history.EntryInfo

	// Backend selects the storage behind the document.
	Backend = text.Kind
)

// Engine combines a document, its line metrics and its undo history
// behind one API. Every edit flows to the metrics and the history as the
// change record the document returns.
//
// All operations are safe for concurrent use. Reads share a lock; writes
// are serialized.
type Engine struct {
	mu sync.RWMutex

	// Core components
	doc     *document.Document
	metrics *lines.Metrics
	history *history.History

	// Configuration
	backend        text.Kind
	gapCapacity    int
	maxUndoEntries int
	readOnly       bool

	// Initialization
	initContent string
}

// New creates a new Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		backend:        DefaultBackend,
		maxUndoEntries: DefaultMaxUndoEntries,
	}

	// Apply options to get configuration
	for _, opt := range opts {
		opt(e)
	}

	doc, err := e.newDocument(e.initContent)
	if err != nil {
		return nil, err
	}
	e.doc = doc
	e.initContent = ""
	if doc.IsReadOnly() {
		e.readOnly = true
	}

	e.metrics = lines.Build(e.doc)
	e.history = history.New(e.maxUndoEntries)
	return e, nil
}

// NewFromReader creates an Engine holding everything r produces.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return New(append(slices.Clone(opts), WithContent(string(data)))...)
}

func (e *Engine) newDocument(content string) (*document.Document, error) {
	if e.backend == text.Gap && e.gapCapacity > 0 {
		t := text.NewGapCapacity(e.gapCapacity)
		if err := t.InsertString(0, content); err != nil {
			return nil, err
		}
		return document.New(t), nil
	}
	return document.NewFromString(e.backend, content)
}

// ============================================================================
// Read Operations
// ============================================================================

// ID returns the identity of the underlying document.
func (e *Engine) ID() uuid.UUID {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.ID()
}

// Backend returns the storage kind behind the document.
func (e *Engine) Backend() Backend {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Kind()
}

// Text returns the full content.
func (e *Engine) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.String()
}

// Substring returns count characters starting at start.
func (e *Engine) Substring(start, count int) (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Substring(start, count)
}

// Len returns the number of characters.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Len()
}

// IsEmpty returns true if the engine holds no text.
func (e *Engine) IsEmpty() bool {
	return e.Len() == 0
}

// RuneAt returns the character at offset.
func (e *Engine) RuneAt(offset int) (rune, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.At(offset)
}

// Index returns the offset of the first occurrence of s at or after start,
// or -1.
func (e *Engine) Index(s string, start int) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.IndexOfString(s, start)
}

// LastIndex returns the offset of the last occurrence of s starting at or
// before start, or -1.
func (e *Engine) LastIndex(s string, start int) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.LastIndexOfString(s, start)
}

// WordLeft returns the start of the word before position.
func (e *Engine) WordLeft(position int) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return text.WordLeft(e.doc, position)
}

// WordRight returns the end of the word after position.
func (e *Engine) WordRight(position int) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return text.WordRight(e.doc, position)
}

// ============================================================================
// Line Operations
// ============================================================================

// LineCount returns the number of lines. An empty text has one line.
func (e *Engine) LineCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.metrics.LineCount()
}

// Lines returns every line of the text.
func (e *Engine) Lines() []Line {
	e.mu.RLock()
	defer e.mu.RUnlock()

	result := make([]Line, 0, e.metrics.LineCount())
	for _, l := range e.metrics.Lines() {
		result = append(result, l)
	}
	return result
}

// LineText returns the content of line without its terminator.
func (e *Engine) LineText(line int) (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	start, end, err := e.metrics.LineBounds(line)
	if err != nil {
		return "", err
	}
	return e.doc.Substring(start, end-start)
}

// LineLength returns the number of characters on line, terminator excluded.
func (e *Engine) LineLength(line int) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.metrics.LineLength(line)
}

// LineStartOffset returns the offset of the first character of line.
func (e *Engine) LineStartOffset(line int) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.metrics.LineStart(line)
}

// LineEndOffset returns the offset just past the content of line.
func (e *Engine) LineEndOffset(line int) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.metrics.LineEnd(line)
}

// LineAtOffset returns the line containing offset.
func (e *Engine) LineAtOffset(offset int) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.metrics.LineAtOffset(offset)
}

// OffsetToPosition converts an offset to a line and column.
func (e *Engine) OffsetToPosition(offset int) (LinePosition, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.metrics.PositionFromOffset(offset)
}

// PositionToOffset converts a line and column to an offset.
func (e *Engine) PositionToOffset(p LinePosition) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.metrics.OffsetFromPosition(p)
}

// OffsetToUTF16 converts a character offset to UTF-16 code units.
func (e *Engine) OffsetToUTF16(offset int) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return text.UTF16Offset(e.doc, offset)
}

// UTF16ToOffset converts a UTF-16 code unit offset to a character offset.
func (e *Engine) UTF16ToOffset(units int) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return text.IndexFromUTF16(e.doc, units)
}

// ============================================================================
// Write Operations
// ============================================================================

// commitLocked brings the metrics and history up to date with c.
func (e *Engine) commitLocked(c Change) error {
	if c.IsZero() {
		return nil
	}
	if err := e.metrics.Apply(c, e.doc); err != nil {
		return err
	}
	e.history.Record(c)
	return nil
}

// edit runs fn under the write lock and commits the change it returns.
func (e *Engine) edit(fn func() (Change, error)) (Change, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return Change{}, ErrReadOnly
	}
	c, err := fn()
	if err != nil {
		return Change{}, err
	}
	return c, e.commitLocked(c)
}

// Insert inserts s at offset.
// Returns the offset just past the inserted text.
func (e *Engine) Insert(offset int, s string) (int, error) {
	c, err := e.edit(func() (Change, error) {
		return e.doc.InsertString(offset, s)
	})
	if err != nil {
		return 0, err
	}
	return offset + c.NewLen(), nil
}

// InsertRune inserts a single character at offset.
func (e *Engine) InsertRune(offset int, r rune) error {
	_, err := e.edit(func() (Change, error) {
		return e.doc.Insert(offset, r)
	})
	return err
}

// Append adds s to the end of the text.
func (e *Engine) Append(s string) error {
	_, err := e.edit(func() (Change, error) {
		return e.doc.Append(s)
	})
	return err
}

// SetRune replaces the character at offset.
func (e *Engine) SetRune(offset int, r rune) error {
	_, err := e.edit(func() (Change, error) {
		return e.doc.Set(offset, r)
	})
	return err
}

// Delete removes count characters starting at start.
func (e *Engine) Delete(start, count int) error {
	_, err := e.edit(func() (Change, error) {
		return e.doc.RemoveRange(start, count)
	})
	return err
}

// Replace replaces count characters at start with s as one undo step.
// Returns the offset just past the replacement.
func (e *Engine) Replace(start, count int, s string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return 0, ErrReadOnly
	}
	if _, err := e.doc.Substring(start, count); err != nil {
		return 0, err
	}

	scope := e.history.GroupScope(fmt.Sprintf("Replace %d with %d characters", count, utf8.RuneCountInString(s)))
	defer scope.End()

	removed, err := e.doc.RemoveRange(start, count)
	if err != nil {
		scope.Cancel()
		return 0, err
	}
	if err := e.commitLocked(removed); err != nil {
		return 0, err
	}
	inserted, err := e.doc.InsertString(start, s)
	if err != nil {
		return 0, err
	}
	if err := e.commitLocked(inserted); err != nil {
		return 0, err
	}
	return start + inserted.NewLen(), nil
}

// Subscribe registers fn for every change committed to the document,
// including the changes undo and redo apply. fn runs with the engine
// locked and must not call back into it.
func (e *Engine) Subscribe(fn func(Change)) (unsubscribe func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	inner := e.doc.Subscribe(fn)
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		inner()
	}
}

// ============================================================================
// Undo/Redo Operations
// ============================================================================

// replayLocked repairs the metrics after undo or redo applied changes.
func (e *Engine) replayLocked(changes []Change) error {
	for _, c := range changes {
		if err := e.metrics.Apply(c, e.doc); err != nil {
			e.metrics.Reset(e.doc)
			return err
		}
	}
	return nil
}

// Undo undoes the last operation.
func (e *Engine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}

	changes, err := e.history.Undo(e.doc)
	if err != nil {
		return err
	}
	return e.replayLocked(changes)
}

// Redo redoes the last undone operation.
func (e *Engine) Redo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}

	changes, err := e.history.Redo(e.doc)
	if err != nil {
		return err
	}
	return e.replayLocked(changes)
}

// CanUndo returns true if undo is available.
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}

// UndoCount returns the number of available undo operations.
func (e *Engine) UndoCount() int {
	return e.history.UndoCount()
}

// RedoCount returns the number of available redo operations.
func (e *Engine) RedoCount() int {
	return e.history.RedoCount()
}

// UndoHistory describes the undo entries, newest first.
func (e *Engine) UndoHistory() []EntryInfo {
	return e.history.UndoInfo()
}

// BeginUndoGroup starts a new undo group.
// All operations until EndUndoGroup will be undone as a single unit.
func (e *Engine) BeginUndoGroup(name string) {
	e.history.BeginGroup(name)
}

// EndUndoGroup ends the current undo group.
func (e *Engine) EndUndoGroup() {
	e.history.EndGroup()
}

// CancelUndoGroup cancels the current undo group without recording.
func (e *Engine) CancelUndoGroup() {
	e.history.CancelGroup()
}

// ClearHistory removes all undo/redo history.
func (e *Engine) ClearHistory() {
	e.history.Clear()
}

// SetMaxUndoEntries changes the undo bound. Zero means unlimited.
func (e *Engine) SetMaxUndoEntries(max int) {
	e.history.SetMaxEntries(max)
}

// ============================================================================
// State
// ============================================================================

// IsReadOnly returns true if the engine is read-only.
func (e *Engine) IsReadOnly() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.readOnly
}

// Snapshot returns an independent copy of the current document.
func (e *Engine) Snapshot() *document.Document {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Clone()
}

// Clear removes all content and resets history.
func (e *Engine) Clear() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}

	c, err := e.doc.Clear()
	if err != nil {
		return err
	}
	if err := e.metrics.Apply(c, e.doc); err != nil {
		return err
	}
	e.history.Clear()
	return nil
}

// SetContent replaces all content and resets history.
func (e *Engine) SetContent(content string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}

	if _, err := e.doc.Clear(); err != nil {
		return err
	}
	if _, err := e.doc.InsertString(0, content); err != nil {
		return err
	}
	e.metrics.Reset(e.doc)
	e.history.Clear()
	return nil
}
