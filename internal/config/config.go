// Package config provides YAML-based configuration loading for the memory
// game: the level list, the icon catalog and the reveal delay.
package config

// MemoryConfig contains all configuration for the memory game.
type MemoryConfig struct {
	RevealDelayMS int           `yaml:"reveal_delay_ms"` // How long a mismatched pair stays face up
	Levels        []LevelConfig `yaml:"levels"`
	Icons         []IconConfig  `yaml:"icons"`
}

// LevelConfig defines one level of the campaign.
// Levels are played in the order they appear in the file.
type LevelConfig struct {
	Name  string `yaml:"name"`
	Rows  int    `yaml:"rows"`
	Cols  int    `yaml:"cols"`
	Pairs int    `yaml:"pairs"`
}

// IconConfig defines one entry in the icon catalog.
type IconConfig struct {
	ID    string `yaml:"id"`
	Glyph string `yaml:"glyph"` // Single character drawn on the card face
	Color string `yaml:"color"` // Color name, see core.ParseColor
}

// DifficultyPreset represents a named difficulty level.
// Presets only change how long a mismatched pair stays visible.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// RevealDelayForPreset returns the reveal delay in milliseconds for a preset,
// and false if the preset is unknown.
func RevealDelayForPreset(preset DifficultyPreset) (int, bool) {
	switch preset {
	case DifficultyEasy:
		return 1500, true
	case DifficultyNormal:
		return 1000, true
	case DifficultyHard:
		return 500, true
	default:
		return 0, false
	}
}
