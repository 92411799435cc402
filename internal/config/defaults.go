package config

import (
	_ "embed"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// DefaultMemoryConfig returns the hardcoded default configuration.
// It mirrors defaults/memory.yaml and is used if the embedded file
// cannot be parsed.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		RevealDelayMS: 1000,
		Levels: []LevelConfig{
			{Name: "Solar System", Rows: 3, Cols: 4, Pairs: 6},
			{Name: "Milky Way", Rows: 4, Cols: 4, Pairs: 8},
			{Name: "Andromeda", Rows: 4, Cols: 5, Pairs: 10},
		},
		Icons: []IconConfig{
			{ID: "rocket", Glyph: "↑", Color: "orange"},
			{ID: "astronaut", Glyph: "☺", Color: "bright_white"},
			{ID: "meteor", Glyph: "☄", Color: "red"},
			{ID: "globe", Glyph: "♁", Color: "bright_blue"},
			{ID: "satellite", Glyph: "⌖", Color: "cyan"},
			{ID: "star", Glyph: "★", Color: "bright_yellow"},
			{ID: "moon", Glyph: "☾", Color: "white"},
			{ID: "sun", Glyph: "☀", Color: "yellow"},
			{ID: "shuttle", Glyph: "✈", Color: "magenta"},
			{ID: "comet", Glyph: "✶", Color: "bright_green"},
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for writing
// a starter config file.
func DefaultYAML() []byte {
	return defaultMemoryYAML
}
