package noise

import (
	"math/rand"

	"github.com/HiYKY/autoenc"
)

type gaussian struct {
	stddev float64
}

// Gaussian returns a Corruptor that adds zero-mean normal noise with the
// given standard deviation to each input.
func Gaussian(stddev float64) autoenc.Corruptor {
	return gaussian{stddev: stddev}
}

func (g gaussian) TypeString() string { return "gaussian" }

func (g gaussian) Param() float64 { return g.stddev }

func (g gaussian) Corrupt(dst, src []float64, rng *rand.Rand) []float64 {
	for i := range src {
		dst[i] = src[i] + g.stddev*rng.NormFloat64()
	}

	// additive noise leaves gradients unchanged
	return nil
}
