package memory

import (
	"errors"
	"math/rand"
	"testing"
)

func TestBuildDeckAllDefaultLevels(t *testing.T) {
	settings := DefaultSettings()
	rng := rand.New(rand.NewSource(42))

	for _, lvl := range settings.Levels {
		t.Run(lvl.Name, func(t *testing.T) {
			deck, err := BuildDeck(lvl, settings.Catalog, rng)
			if err != nil {
				t.Fatalf("BuildDeck() failed: %v", err)
			}

			if len(deck) != 2*lvl.Pairs {
				t.Errorf("deck length = %d, want %d", len(deck), 2*lvl.Pairs)
			}
			if len(deck) != lvl.Size() {
				t.Errorf("deck length = %d, grid holds %d", len(deck), lvl.Size())
			}

			counts := make(map[Symbol]int)
			for _, s := range deck {
				counts[s]++
			}
			if len(counts) != lvl.Pairs {
				t.Errorf("distinct symbols = %d, want %d", len(counts), lvl.Pairs)
			}
			for s, n := range counts {
				if n != 2 {
					t.Errorf("symbol %q appears %d times, want 2", s, n)
				}
			}

			// Only the first N catalog icons are used
			for _, icon := range settings.Catalog[:lvl.Pairs] {
				if counts[icon.Symbol] != 2 {
					t.Errorf("catalog icon %q missing from deck", icon.Symbol)
				}
			}
		})
	}
}

func TestBuildDeckTooManyPairs(t *testing.T) {
	catalog := Catalog{{Symbol: "a"}, {Symbol: "b"}}
	level := Level{ID: 1, Name: "Greedy", Rows: 2, Cols: 3, Pairs: 3}

	_, err := BuildDeck(level, catalog, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrNotEnoughIcons) {
		t.Errorf("BuildDeck() error = %v, want ErrNotEnoughIcons", err)
	}
}

func TestBuildDeckZeroPairs(t *testing.T) {
	_, err := BuildDeck(Level{Name: "Empty"}, Catalog{{Symbol: "a"}}, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("BuildDeck() error = %v, want ErrInvalidLevel", err)
	}
}
