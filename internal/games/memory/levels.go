// Package memory implements a concentration (memory-matching) card game.
// Cards are dealt face down in a grid and the player pairs them by icon,
// two reveals at a time, across an ordered campaign of levels.
package memory

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/memoriku/internal/config"
	"github.com/vovakirdan/memoriku/internal/core"
)

// Configuration errors. They are reported at startup and are never
// produced while a game is running.
var (
	ErrNoLevels       = errors.New("no levels configured")
	ErrInvalidLevel   = errors.New("invalid level")
	ErrNotEnoughIcons = errors.New("not enough icons in catalog")
	ErrDuplicateIcon  = errors.New("duplicate icon")
	ErrInvalidDelay   = errors.New("reveal delay must be positive")
)

// Symbol identifies an icon on a card face.
type Symbol string

// Level is one immutable stage of the campaign.
type Level struct {
	ID    int // 1-indexed position in the campaign
	Name  string
	Rows  int
	Cols  int
	Pairs int
}

// Size returns the number of cards dealt for the level.
func (l Level) Size() int {
	return l.Rows * l.Cols
}

// Icon is a catalog entry: the symbol and how to draw it.
type Icon struct {
	Symbol Symbol
	Glyph  rune
	Color  core.Color
}

// Catalog is the ordered list of icons levels draw from.
type Catalog []Icon

// Lookup returns the icon for a symbol.
func (c Catalog) Lookup(s Symbol) (Icon, bool) {
	for _, icon := range c {
		if icon.Symbol == s {
			return icon, true
		}
	}
	return Icon{}, false
}

// Settings is the validated static configuration of a campaign.
type Settings struct {
	Levels      []Level
	Catalog     Catalog
	RevealDelay time.Duration
}

// Validate checks every level against the catalog.
// The first problem found is returned, wrapping one of the Err values.
func (s Settings) Validate() error {
	if len(s.Levels) == 0 {
		return ErrNoLevels
	}
	if s.RevealDelay <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidDelay, s.RevealDelay)
	}

	seen := make(map[Symbol]bool, len(s.Catalog))
	for _, icon := range s.Catalog {
		if seen[icon.Symbol] {
			return fmt.Errorf("%w: %q", ErrDuplicateIcon, icon.Symbol)
		}
		seen[icon.Symbol] = true
	}

	for _, lvl := range s.Levels {
		if lvl.Pairs <= 0 {
			return fmt.Errorf("%w: level %d %q has %d pairs", ErrInvalidLevel, lvl.ID, lvl.Name, lvl.Pairs)
		}
		if lvl.Rows <= 0 || lvl.Cols <= 0 || lvl.Size() != 2*lvl.Pairs {
			return fmt.Errorf("%w: level %d %q has a %dx%d grid for %d pairs",
				ErrInvalidLevel, lvl.ID, lvl.Name, lvl.Rows, lvl.Cols, lvl.Pairs)
		}
		if lvl.Pairs > len(s.Catalog) {
			return fmt.Errorf("%w: level %d %q needs %d, catalog has %d",
				ErrNotEnoughIcons, lvl.ID, lvl.Name, lvl.Pairs, len(s.Catalog))
		}
	}
	return nil
}

// LevelNames returns the names of all levels in campaign order.
func (s Settings) LevelNames() []string {
	names := make([]string, len(s.Levels))
	for i, lvl := range s.Levels {
		names[i] = lvl.Name
	}
	return names
}

// SettingsFromConfig converts a loaded config into Settings.
// Icons without a glyph use the first letter of their id, and unknown
// color names fall back to the default color.
func SettingsFromConfig(cfg config.MemoryConfig) Settings {
	levels := make([]Level, len(cfg.Levels))
	for i, lc := range cfg.Levels {
		levels[i] = Level{
			ID:    i + 1,
			Name:  lc.Name,
			Rows:  lc.Rows,
			Cols:  lc.Cols,
			Pairs: lc.Pairs,
		}
	}

	catalog := make(Catalog, 0, len(cfg.Icons))
	for _, ic := range cfg.Icons {
		color, _ := core.ParseColor(ic.Color)
		catalog = append(catalog, Icon{
			Symbol: Symbol(ic.ID),
			Glyph:  glyphFor(ic),
			Color:  color,
		})
	}

	return Settings{
		Levels:      levels,
		Catalog:     catalog,
		RevealDelay: time.Duration(cfg.RevealDelayMS) * time.Millisecond,
	}
}

func glyphFor(ic config.IconConfig) rune {
	for _, r := range ic.Glyph {
		return r
	}
	for _, r := range ic.ID {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		return r
	}
	return '?'
}

// LoadSettings loads the config (see config.LoadMemory for the search
// order), applies the difficulty preset and validates the result.
func LoadSettings(path string, preset config.DifficultyPreset) (Settings, error) {
	cfg, err := config.LoadMemory(path)
	if err != nil {
		return Settings{}, err
	}
	if err := config.ApplyMemoryPreset(&cfg, preset); err != nil {
		return Settings{}, err
	}

	settings := SettingsFromConfig(cfg)
	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid memory config: %w", err)
	}
	return settings, nil
}

// DefaultSettings returns the built-in campaign.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.DefaultMemoryConfig())
}
