package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/textcore/internal/engine/document"
)

// entry is one undo unit: the changes committed together, oldest first.
type entry struct {
	id        uuid.UUID
	name      string
	changes   []document.Change
	timestamp time.Time
}

func newEntry(name string, changes []document.Change) *entry {
	return &entry{
		id:        uuid.New(),
		name:      name,
		changes:   changes,
		timestamp: time.Now(),
	}
}

// delta returns the change in document length the entry caused.
func (e *entry) delta() int {
	total := 0
	for _, c := range e.changes {
		total += c.Delta()
	}
	return total
}

func (e *entry) description() string {
	if e.name != "" {
		return e.name
	}
	if len(e.changes) == 1 {
		return Describe(e.changes[0])
	}
	return fmt.Sprintf("%d changes", len(e.changes))
}

func (e *entry) info() EntryInfo {
	return EntryInfo{
		ID:          e.id,
		Description: e.description(),
		Timestamp:   e.timestamp,
		Changes:     len(e.changes),
		Delta:       e.delta(),
	}
}

// EntryInfo is a read-only view of an undo or redo entry, for display.
type EntryInfo struct {
	ID          uuid.UUID
	Description string    // Human-readable description
	Timestamp   time.Time // When the entry was recorded
	Changes     int       // Number of changes in the entry
	Delta       int       // Positive for insertions, negative for removals
}

// Describe returns a short human-readable label for c.
func Describe(c document.Change) string {
	switch c.Kind {
	case document.CharInserted:
		switch c.NewChar() {
		case '\n':
			return "Insert newline"
		case '\t':
			return "Insert tab"
		}
		return fmt.Sprintf("Type '%s'", c.NewText())
	case document.RangeInserted:
		if c.NewLen() <= 20 {
			return fmt.Sprintf("Insert %q", c.NewText())
		}
		return fmt.Sprintf("Insert %d characters", c.NewLen())
	case document.CharRemoved:
		return "Delete"
	case document.RangeRemoved:
		return fmt.Sprintf("Delete %d characters", c.OldLen())
	case document.CharReplaced:
		return fmt.Sprintf("Replace '%s' with '%s'", c.OldText(), c.NewText())
	}
	return "No change"
}
