package mcm

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	DefaultSeed         uint64 = 0
	DefaultMaxDimension uint64 = 100
)

var ErrInvalidLength = errors.New("sequence length must be positive")

type generateConfig struct {
	seed   uint64
	maxDim uint64
}

type GenerateOption func(*generateConfig)

func WithSeed(seed uint64) GenerateOption {
	return func(c *generateConfig) {
		c.seed = seed
	}
}

// WithMaxDimension bounds dimensions to [1, maxDim]. Zero keeps the default.
func WithMaxDimension(maxDim uint64) GenerateOption {
	return func(c *generateConfig) {
		if maxDim > 0 {
			c.maxDim = maxDim
		}
	}
}

// GenerateProblem returns a chain of length shapes with dimensions drawn
// uniformly from [1, 100]. The generator is seeded with DefaultSeed unless
// told otherwise, so the same arguments always give the same chain.
func GenerateProblem(length int, opts ...GenerateOption) (Sequence, error) {
	if length <= 0 {
		return Sequence{}, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	cfg := generateConfig{seed: DefaultSeed, maxDim: DefaultMaxDimension}
	for _, opt := range opts {
		opt(&cfg)
	}

	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed))
	dimension := func() uint64 {
		return 1 + rng.Uint64N(cfg.maxDim)
	}

	shapes := make([]Shape, length)
	previous := dimension()
	for i := range shapes {
		current := dimension()
		shapes[i] = Shape{Rows: previous, Cols: current}
		previous = current
	}
	return MustNewSequence(shapes...), nil
}

// ExampleProblem is the three-matrix chain (10,30) (30,5) (5,60).
func ExampleProblem() Sequence {
	return MustNewSequence(
		Shape{Rows: 10, Cols: 30},
		Shape{Rows: 30, Cols: 5},
		Shape{Rows: 5, Cols: 60},
	)
}
