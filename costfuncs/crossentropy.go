package costfuncs

import (
	"math"

	"github.com/HiYKY/autoenc"
)

// guards log(0)
const epsilon float64 = 1e-12

type crossEntropy struct{}

// CrossEntropy returns the categorical cross-entropy cost function, for use
// with a softmax classifier head and one-hot targets.
func CrossEntropy() autoenc.CostFunction { return crossEntropy{} }

func (crossEntropy) TypeString() string { return "cross-entropy" }

func (crossEntropy) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		sum -= targets[i] * math.Log(math.Max(outs[i], epsilon))
	}

	return sum
}

func (crossEntropy) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		ds[i] = -targets[i] / math.Max(outs[i], epsilon)
	}

	return ds
}
