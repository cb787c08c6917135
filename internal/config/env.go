package config

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix starts the name of every recognized environment variable.
const EnvPrefix = "TEXTCORE_"

// Environment variables applied by EnvLoader.
const (
	EnvBackend     = EnvPrefix + "BACKEND"
	EnvGapCapacity = EnvPrefix + "GAP_CAPACITY"
	EnvReadOnly    = EnvPrefix + "READ_ONLY"
	EnvMaxUndo     = EnvPrefix + "MAX_UNDO"
)

// EnvLoader overrides settings from environment variables.
type EnvLoader struct {
	lookup func(string) (string, bool)
}

// NewEnvLoader creates a loader reading the process environment.
func NewEnvLoader() *EnvLoader {
	return &EnvLoader{lookup: os.LookupEnv}
}

// NewEnvLoaderWithLookup creates a loader reading variables through lookup.
func NewEnvLoaderWithLookup(lookup func(string) (string, bool)) *EnvLoader {
	return &EnvLoader{lookup: lookup}
}

// Apply writes every set variable into cfg. Empty values are treated as
// unset. On error cfg is left unchanged.
func (l *EnvLoader) Apply(cfg *Config) error {
	next := *cfg

	if v, ok := l.get(EnvBackend); ok {
		next.Engine.Backend = v
	}
	if v, ok := l.get(EnvGapCapacity); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ValidationError{Setting: EnvGapCapacity, Value: v, Reason: "not an integer"}
		}
		next.Engine.GapCapacity = n
	}
	if v, ok := l.get(EnvReadOnly); ok {
		b, err := parseBool(v)
		if err != nil {
			return &ValidationError{Setting: EnvReadOnly, Value: v, Reason: "not a boolean"}
		}
		next.Engine.ReadOnly = b
	}
	if v, ok := l.get(EnvMaxUndo); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ValidationError{Setting: EnvMaxUndo, Value: v, Reason: "not an integer"}
		}
		next.History.MaxEntries = n
	}

	*cfg = next
	return nil
}

func (l *EnvLoader) get(name string) (string, bool) {
	v, ok := l.lookup(name)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// parseBool accepts the spellings strconv.ParseBool does plus yes/no and
// on/off.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}
