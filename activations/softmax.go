package activations

import (
	"math"

	"github.com/HiYKY/autoenc"
)

type softmax struct{}

// Softmax returns the softmax activation, which normalizes its inputs into a
// probability distribution.
func Softmax() autoenc.Activation { return softmax{} }

func (softmax) TypeString() string { return "softmax" }

func (softmax) Apply(values []float64) {
	// shift by the max to avoid overflow in Exp
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}

	var sum float64
	for i := range values {
		values[i] = math.Exp(values[i] - max)
		sum += values[i]
	}

	for i := range values {
		values[i] /= sum
	}
}

func (softmax) InputDeltas(values, deltas []float64) []float64 {
	// softmax couples every output to every input, so the deltas contract
	// against the full Jacobian: dz_i = s_i * (g_i - sum_j g_j s_j)
	var dot float64
	for j := range values {
		dot += deltas[j] * values[j]
	}

	ds := make([]float64, len(values))
	for i := range values {
		ds[i] = values[i] * (deltas[i] - dot)
	}

	return ds
}
