package activations

import (
	"math"

	"github.com/HiYKY/autoenc"
)

type sigmoid struct{}

// Sigmoid returns the logistic activation, 1 / (1 + exp(-x)).
func Sigmoid() autoenc.Activation { return sigmoid{} }

func (sigmoid) TypeString() string { return "sigmoid" }

func (sigmoid) Apply(values []float64) {
	for i := range values {
		values[i] = 1 / (1 + math.Exp(-values[i]))
	}
}

func (sigmoid) InputDeltas(values, deltas []float64) []float64 {
	ds := make([]float64, len(values))
	for i, s := range values {
		ds[i] = deltas[i] * s * (1 - s)
	}

	return ds
}
