package engine

import "github.com/dshills/textcore/internal/engine/text"

// Default configuration values.
const (
	DefaultBackend        = text.Gap
	DefaultMaxUndoEntries = 0 // unlimited
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithBackend selects the storage backing the document.
// The String and Memory backends make the engine read-only.
func WithBackend(kind text.Kind) Option {
	return func(e *Engine) {
		e.backend = kind
	}
}

// WithGapCapacity sets the initial capacity of a Gap backend.
func WithGapCapacity(capacity int) Option {
	return func(e *Engine) {
		if capacity > 0 {
			e.gapCapacity = capacity
		}
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
// Zero means unlimited.
func WithMaxUndoEntries(max int) Option {
	return func(e *Engine) {
		if max >= 0 {
			e.maxUndoEntries = max
		}
	}
}

// WithReadOnly creates a read-only engine.
// Write operations will return ErrReadOnly.
func WithReadOnly() Option {
	return func(e *Engine) {
		e.readOnly = true
	}
}
