package game

import "math/rand"

// PointSource draws the base score for a newly resolved letter. One draw is
// taken per letter, before multiplying by its occurrence count. Tests inject
// a deterministic source.
type PointSource interface {
	NextBasePoints() int
}

// RandomPoints returns the production source: uniform over the ten multiples
// of 100 from 100 to 1000.
func RandomPoints() PointSource { return randomPoints{} }

type randomPoints struct{}

func (randomPoints) NextBasePoints() int { return (rand.Intn(10) + 1) * 100 }
