package domain

import (
	"hash/fnv"
	"math/rand"
)

// NewRand returns a deterministic generator derived from a string seed.
// The same seed always yields the same sequence on every platform; there is
// no wall-clock or system entropy involved, so deck builds and reshuffles can
// be replayed from a stored seed.
func NewRand(seed string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

// Shuffle permutes indices in place with a Fisher-Yates pass driven by the
// seed. Same seed + same input ordering gives an identical output ordering.
// An empty or single-element slice is returned unchanged.
func Shuffle(indices []int, seed string) []int {
	rng := NewRand(seed)
	for i := len(indices) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}
	return indices
}
