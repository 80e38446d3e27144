package activations

import (
	"github.com/HiYKY/autoenc"
)

type relu struct{}

// ReLU returns the rectified linear activation, max(0, x).
func ReLU() autoenc.Activation { return relu{} }

func (relu) TypeString() string { return "relu" }

func (relu) Apply(values []float64) {
	for i := range values {
		if values[i] < 0 {
			values[i] = 0
		}
	}
}

func (relu) InputDeltas(values, deltas []float64) []float64 {
	ds := make([]float64, len(values))
	for i, v := range values {
		if v > 0 {
			ds[i] = deltas[i]
		}
	}

	return ds
}
