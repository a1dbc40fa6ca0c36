package model

import (
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus-life/utils"
)

// BernoulliSource yields uniform draws in [0, 1). *rand.Rand satisfies it.
type BernoulliSource interface {
	Float64() float64
}

// NewSource returns a PCG source seeded with seed, or with the clock when seed is 0.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// NewRandomGrid creates a grid where each cell is independently alive with the given probability
func NewRandomGrid(size int, probability float64, src BernoulliSource) (*Grid, error) {
	g, err := NewGrid(size)
	if err != nil {
		return nil, errors.Wrap(err, "[NewRandomGrid] failed to create grid")
	}
	if err = g.Randomize(probability, src); err != nil {
		return nil, err
	}
	return g, nil
}

// Randomize overwrites every cell with an independent Bernoulli(probability) draw
func (g *Grid) Randomize(probability float64, src BernoulliSource) error {
	if !(probability > 0 && probability < 1) {
		return errors.WithStack(&utils.ConfigurationError{
			Field:  "probability",
			Value:  probability,
			Reason: "must be within (0, 1)",
		})
	}
	if src == nil {
		return errors.New("[Randomize] nil random source")
	}

	for i := range g.cells {
		if src.Float64() < probability {
			g.cells[i] = Alive
		} else {
			g.cells[i] = Dead
		}
	}
	return nil
}
