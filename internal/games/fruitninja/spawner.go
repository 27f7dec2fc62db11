package fruitninja

import (
	"math/rand"
)

// Spawner decides once per frame whether a new fruit appears.
type Spawner struct {
	rng    *rand.Rand
	kinds  []Kind
	odds   int // One spawn per odds outcomes
	margin int // Horizontal inset on both sides
}

// NewSpawner creates a spawner over the given kinds. A fruit appears with
// probability 1/odds per frame.
func NewSpawner(seed int64, kinds []Kind, odds, margin int) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		kinds:  kinds,
		odds:   odds,
		margin: margin,
	}
}

// Roll draws one of odds outcomes and reports whether it is the spawn outcome.
func (s *Spawner) Roll() bool {
	return s.rng.Intn(s.odds) == 0
}

// Spawn creates a fruit of a random kind just below the bottom edge, with x
// drawn uniformly from [margin, width-margin].
func (s *Spawner) Spawn(width, height int) Fruit {
	kind := s.kinds[s.rng.Intn(len(s.kinds))]
	span := width - 2*s.margin
	x := s.margin
	if span > 0 {
		x += s.rng.Intn(span + 1)
	}
	return NewFruit(kind, float64(x), float64(height))
}

// Maybe rolls and spawns on success.
func (s *Spawner) Maybe(width, height int) (Fruit, bool) {
	if !s.Roll() {
		return Fruit{}, false
	}
	return s.Spawn(width, height), true
}
