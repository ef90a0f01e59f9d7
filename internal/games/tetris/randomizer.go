package tetris

import (
	"fmt"
	"math/rand"
)

// Randomizer names accepted by NewRandomizer.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// Randomizer chooses the kind of each newly spawned piece.
type Randomizer interface {
	Next() Kind
}

// UniformRandomizer draws every piece independently with equal probability.
type UniformRandomizer struct {
	rng *rand.Rand
}

// NewUniformRandomizer creates a uniform randomizer seeded with seed.
func NewUniformRandomizer(seed int64) *UniformRandomizer {
	return &UniformRandomizer{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next kind.
func (u *UniformRandomizer) Next() Kind {
	return PickRandom(u.rng).Kind
}

// BagRandomizer deals the seven kinds in shuffled batches, so every kind
// appears exactly once per seven consecutive pieces of a batch.
type BagRandomizer struct {
	rng *rand.Rand
	bag []Kind
}

// NewBagRandomizer creates a 7-bag randomizer seeded with seed.
func NewBagRandomizer(seed int64) *BagRandomizer {
	return &BagRandomizer{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next kind, refilling the bag when it runs out.
func (b *BagRandomizer) Next() Kind {
	if len(b.bag) == 0 {
		b.bag = Kinds()
		b.rng.Shuffle(len(b.bag), func(i, j int) {
			b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
		})
	}
	k := b.bag[0]
	b.bag = b.bag[1:]
	return k
}

// NewRandomizer builds the named randomizer.
func NewRandomizer(name string, seed int64) (Randomizer, error) {
	switch name {
	case RandomizerUniform, "":
		return NewUniformRandomizer(seed), nil
	case RandomizerBag:
		return NewBagRandomizer(seed), nil
	default:
		return nil, fmt.Errorf("tetris: unknown randomizer %q", name)
	}
}
