package noise

import (
	"math/rand"

	"github.com/HiYKY/autoenc"
)

type dropout struct {
	rate float64
}

// Dropout returns a Corruptor that zeroes each input independently with the
// given probability, scaling the survivors by 1/(1-rate) so that the expected
// sum is unchanged.
func Dropout(rate float64) autoenc.Corruptor {
	return dropout{rate: rate}
}

func (d dropout) TypeString() string { return "dropout" }

func (d dropout) Param() float64 { return d.rate }

func (d dropout) Corrupt(dst, src []float64, rng *rand.Rand) []float64 {
	keep := 1 / (1 - d.rate)

	// gradients only flow through the kept values, so the mask doubles as the
	// per-value gradient scale
	scales := make([]float64, len(src))
	for i := range src {
		if rng.Float64() < d.rate {
			dst[i], scales[i] = 0, 0
		} else {
			dst[i], scales[i] = src[i]*keep, keep
		}
	}

	return scales
}
