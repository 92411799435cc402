package memory

import "math/rand"

// Shuffle reorders items in place with a Fisher-Yates pass from the last
// index down, swapping each element with one at a uniform index <= its own.
func Shuffle[T any](rng *rand.Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
