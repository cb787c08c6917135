package config

import (
	"errors"
	"strings"

	"github.com/dshills/textcore/internal/engine"
	"github.com/dshills/textcore/internal/engine/text"
)

// Config holds every setting the engine reads.
type Config struct {
	Engine  EngineConfig  `toml:"engine" yaml:"engine"`
	History HistoryConfig `toml:"history" yaml:"history"`
}

// EngineConfig selects and sizes the document storage.
type EngineConfig struct {
	// Backend is one of gap, list, string, memory or builder.
	Backend string `toml:"backend" yaml:"backend"`
	// GapCapacity is the initial capacity of a gap backend; 0 uses the default.
	GapCapacity int `toml:"gap_capacity" yaml:"gap_capacity"`
	// ReadOnly rejects every edit.
	ReadOnly bool `toml:"read_only" yaml:"read_only"`
}

// HistoryConfig bounds the undo history.
type HistoryConfig struct {
	// MaxEntries is the number of undo entries kept; 0 means unlimited.
	MaxEntries int `toml:"max_entries" yaml:"max_entries"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			Backend: engine.DefaultBackend.String(),
		},
		History: HistoryConfig{
			MaxEntries: engine.DefaultMaxUndoEntries,
		},
	}
}

// Validate checks every setting and reports all failures together.
func (c *Config) Validate() error {
	var errs []error
	if _, err := text.ParseKind(c.Engine.Backend); err != nil {
		errs = append(errs, &ValidationError{
			Setting: "engine.backend",
			Value:   c.Engine.Backend,
			Reason:  "must be one of " + strings.Join(backendNames(), ", "),
		})
	}
	if c.Engine.GapCapacity < 0 {
		errs = append(errs, &ValidationError{
			Setting: "engine.gap_capacity",
			Value:   c.Engine.GapCapacity,
			Reason:  "must not be negative",
		})
	}
	if c.History.MaxEntries < 0 {
		errs = append(errs, &ValidationError{
			Setting: "history.max_entries",
			Value:   c.History.MaxEntries,
			Reason:  "must not be negative",
		})
	}
	return errors.Join(errs...)
}

func backendNames() []string {
	kinds := []text.Kind{text.Gap, text.List, text.String, text.Memory, text.Builder}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

// EngineOptions converts the settings into engine options.
// The config must be valid.
func (c *Config) EngineOptions() ([]engine.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	kind, _ := text.ParseKind(c.Engine.Backend)
	opts := []engine.Option{
		engine.WithBackend(kind),
		engine.WithMaxUndoEntries(c.History.MaxEntries),
	}
	if c.Engine.GapCapacity > 0 {
		opts = append(opts, engine.WithGapCapacity(c.Engine.GapCapacity))
	}
	if c.Engine.ReadOnly {
		opts = append(opts, engine.WithReadOnly())
	}
	return opts, nil
}
