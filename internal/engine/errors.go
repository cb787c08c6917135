package engine

import (
	"errors"

	"github.com/dshills/textcore/internal/engine/buffer"
	"github.com/dshills/textcore/internal/engine/history"
)

// Errors returned by engine operations.
var (
	// ErrReadOnly indicates an operation was attempted on a read-only engine.
	ErrReadOnly = errors.New("engine is read-only")

	// ErrOutOfRange indicates an offset, line or count outside the text.
	ErrOutOfRange = buffer.ErrOutOfRange

	// ErrInvalidArgument indicates a malformed argument.
	ErrInvalidArgument = buffer.ErrInvalidArgument

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = history.ErrNothingToRedo
)
