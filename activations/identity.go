package activations

import (
	"github.com/HiYKY/autoenc"
)

type identity struct{}

// Identity returns the activation that leaves its inputs unchanged, for use as
// the output activation of reconstruction layers.
func Identity() autoenc.Activation { return identity{} }

func (identity) TypeString() string { return "identity" }

func (identity) Apply(values []float64) {}

func (identity) InputDeltas(values, deltas []float64) []float64 {
	return deltas
}
