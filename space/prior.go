package space

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Prior generates random variates for a single dimension. Implementations
// must take all randomness from src so that draws stay reproducible under the
// sampler's shared stream.
type Prior interface {
	// Rand draws one variate using src.
	Rand(src rand.Source) float64
}

// PriorFunc adapts a plain function to the Prior interface.
type PriorFunc func(src rand.Source) float64

// Rand implements Prior.
func (f PriorFunc) Rand(src rand.Source) float64 { return f(src) }

// uniformPrior is the default continuous prior on [min, max).
type uniformPrior struct {
	min, max float64
}

func (p uniformPrior) Rand(src rand.Source) float64 {
	return distuv.Uniform{Min: p.min, Max: p.max, Src: src}.Rand()
}

// intUniformPrior is the default discrete prior on integers in [low, high),
// high exclusive per the integer-range convention.
type intUniformPrior struct {
	low, high int
}

func (p intUniformPrior) Rand(src rand.Source) float64 {
	return float64(p.low + rand.New(src).IntN(p.high-p.low))
}
