package cardtable

import "math/rand/v2"

// RNG is the randomness source for shuffling.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// seededRNG adapts math/rand/v2 to RNG.
type seededRNG struct{ r *rand.Rand }

func (s seededRNG) Intn(n int) int { return s.r.IntN(n) }

// NewRNG returns a deterministic RNG for seed.
func NewRNG(seed uint64) RNG {
	return seededRNG{rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// StandardDeckSpec describes 52 suited cards plus two jokers.
const StandardDeckSpec = `A..K of ♠♥♦♣, "Joker" * 2`

// Shuffle permutes labels in place (Fisher-Yates).
func Shuffle(labels []string, rng RNG) {
	for i := len(labels) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		labels[i], labels[j] = labels[j], labels[i]
	}
}

// StandardDeck returns the standard deck shuffled with rng.
func StandardDeck(rng RNG) []string {
	labels, err := ParseDeckSpec(StandardDeckSpec)
	if err != nil {
		panic("cardtable: standard deck spec: " + err.Error())
	}
	Shuffle(labels, rng)
	return labels
}

