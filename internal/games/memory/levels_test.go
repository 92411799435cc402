package memory

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/memoriku/internal/config"
	"github.com/vovakirdan/memoriku/internal/core"
)

func TestDefaultSettingsValid(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("DefaultSettings().Validate() = %v", err)
	}

	if len(s.Levels) != 3 {
		t.Fatalf("level count = %d, want 3", len(s.Levels))
	}
	first := s.Levels[0]
	if first.ID != 1 || first.Pairs != 6 || first.Size() != 12 {
		t.Errorf("first level = %+v, want 6 pairs on 12 cards", first)
	}
	if s.RevealDelay != time.Second {
		t.Errorf("RevealDelay = %s, want 1s", s.RevealDelay)
	}
}

func TestSettingsValidate(t *testing.T) {
	catalog := Catalog{{Symbol: "a"}, {Symbol: "b"}, {Symbol: "c"}}

	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr error
	}{
		{"valid", func(*Settings) {}, nil},
		{"no levels", func(s *Settings) { s.Levels = nil }, ErrNoLevels},
		{"zero delay", func(s *Settings) { s.RevealDelay = 0 }, ErrInvalidDelay},
		{"zero pairs", func(s *Settings) { s.Levels[0] = Level{ID: 1, Name: "x"} }, ErrInvalidLevel},
		{"grid mismatch", func(s *Settings) { s.Levels[0].Cols = 3 }, ErrInvalidLevel},
		{"too many pairs", func(s *Settings) { s.Levels = append(s.Levels, Level{ID: 2, Name: "big", Rows: 2, Cols: 4, Pairs: 4}) }, ErrNotEnoughIcons},
		{"duplicate icon", func(s *Settings) { s.Catalog = append(s.Catalog, Icon{Symbol: "a"}) }, ErrDuplicateIcon},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Settings{
				Levels:      []Level{{ID: 1, Name: "small", Rows: 2, Cols: 2, Pairs: 2}},
				Catalog:     append(Catalog(nil), catalog...),
				RevealDelay: time.Second,
			}
			tc.mutate(&s)

			err := s.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.MemoryConfig{
		RevealDelayMS: 750,
		Levels: []config.LevelConfig{
			{Name: "One", Rows: 1, Cols: 2, Pairs: 1},
			{Name: "Two", Rows: 2, Cols: 2, Pairs: 2},
		},
		Icons: []config.IconConfig{
			{ID: "star", Glyph: "★", Color: "yellow"},
			{ID: "planet", Color: "no-such-color"},
		},
	}

	s := SettingsFromConfig(cfg)

	if s.RevealDelay != 750*time.Millisecond {
		t.Errorf("RevealDelay = %s, want 750ms", s.RevealDelay)
	}
	if s.Levels[1].ID != 2 || s.Levels[1].Name != "Two" {
		t.Errorf("second level = %+v", s.Levels[1])
	}

	star, ok := s.Catalog.Lookup("star")
	if !ok || star.Glyph != '★' || star.Color != core.ColorYellow {
		t.Errorf("star icon = %+v (found %v)", star, ok)
	}
	planet, ok := s.Catalog.Lookup("planet")
	if !ok || planet.Glyph != 'P' || planet.Color != core.ColorDefault {
		t.Errorf("planet icon = %+v, want glyph 'P' in default color", planet)
	}
	if _, ok := s.Catalog.Lookup("missing"); ok {
		t.Error("Lookup of unknown symbol should fail")
	}

	if names := s.LevelNames(); len(names) != 2 || names[0] != "One" {
		t.Errorf("LevelNames() = %v", names)
	}
}

func TestLoadSettingsRejectsBadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := LoadSettings("", "nightmare"); err == nil {
		t.Error("LoadSettings() with unknown difficulty should fail")
	}

	s, err := LoadSettings("", config.DifficultyHard)
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if s.RevealDelay != 500*time.Millisecond {
		t.Errorf("hard RevealDelay = %s, want 500ms", s.RevealDelay)
	}
}

func TestValidateReportsGridAsRowsByCols(t *testing.T) {
	s := DefaultSettings()
	s.Levels[0].Cols = 5

	err := s.Validate()
	if err == nil {
		t.Fatal("Validate() should reject a 3x5 grid for 6 pairs")
	}
	if !strings.Contains(err.Error(), "3x5 grid") {
		t.Errorf("error = %q, want the grid printed as rows x cols (3x5)", err)
	}
}
