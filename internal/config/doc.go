// Package config loads engine settings from a file and the environment.
//
// Settings are read in three layers, later layers overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file, chosen by extension (.toml, .yaml, .yml)
//  3. TEXTCORE_* environment variables
//
// A missing file is not an error. A sample TOML file:
//
//	[engine]
//	backend = "gap"
//	gap_capacity = 4096
//	read_only = false
//
//	[history]
//	max_entries = 1000
//
// The recognized environment variables are TEXTCORE_BACKEND,
// TEXTCORE_GAP_CAPACITY, TEXTCORE_READ_ONLY and TEXTCORE_MAX_UNDO.
package config
