package memory

import (
	"fmt"
	"math/rand"
)

// BuildDeck returns the shuffled symbols for a level: the first
// level.Pairs catalog icons, each appearing exactly twice.
func BuildDeck(level Level, catalog Catalog, rng *rand.Rand) ([]Symbol, error) {
	if level.Pairs <= 0 {
		return nil, fmt.Errorf("%w: level %q has %d pairs", ErrInvalidLevel, level.Name, level.Pairs)
	}
	if level.Pairs > len(catalog) {
		return nil, fmt.Errorf("%w: level %q needs %d, catalog has %d",
			ErrNotEnoughIcons, level.Name, level.Pairs, len(catalog))
	}

	deck := make([]Symbol, 0, 2*level.Pairs)
	for _, icon := range catalog[:level.Pairs] {
		deck = append(deck, icon.Symbol)
	}
	deck = append(deck, deck...)
	Shuffle(rng, deck)
	return deck, nil
}
