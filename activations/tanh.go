package activations

import (
	"math"

	"github.com/HiYKY/autoenc"
)

type tanh struct{}

// Tanh returns the hyperbolic tangent activation.
func Tanh() autoenc.Activation { return tanh{} }

func (tanh) TypeString() string { return "tanh" }

func (tanh) Apply(values []float64) {
	for i := range values {
		values[i] = math.Tanh(values[i])
	}
}

func (tanh) InputDeltas(values, deltas []float64) []float64 {
	ds := make([]float64, len(values))
	for i, t := range values {
		ds[i] = deltas[i] * (1 - t*t)
	}

	return ds
}
