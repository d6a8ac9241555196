package geometry

import "math/rand"

// Starfield scatters count points uniformly inside the axis-aligned cube
// [-extent/2, extent/2]^3 and returns them as flat xyz triples.
func Starfield(count int, extent float32, rng *rand.Rand) []float32 {
	positions := make([]float32, count*3)
	for i := range positions {
		positions[i] = (rng.Float32() - 0.5) * extent
	}
	return positions
}
