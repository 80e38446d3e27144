package autoenc

import "math"

// The types below are the in-package implementations needed by the default
// model heads: the identity output activation, the softmax classifier
// activation, mean squared error, and cross-entropy. The subpackages register
// equivalent types under the same TypeStrings, so checkpoints reload onto the
// subpackage versions.

type identity struct{}

func (identity) TypeString() string { return "identity" }

func (identity) Apply(values []float64) {}

func (identity) InputDeltas(values, deltas []float64) []float64 {
	return deltas
}

type softmax struct{}

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
	// full Jacobian contraction: dz_i = s_i * (g_i - Σ_j g_j s_j)
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

type mse struct{}

func (mse) TypeString() string { return "mse" }

func (mse) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		d := outs[i] - targets[i]
		sum += d * d
	}

	return sum / float64(len(outs))
}

func (mse) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	inv := 2 / float64(len(outs))
	for i := range outs {
		ds[i] = inv * (outs[i] - targets[i])
	}

	return ds
}

type crossEntropy struct{}

// guards log(0)
const ceEpsilon float64 = 1e-12

func (crossEntropy) TypeString() string { return "cross-entropy" }

func (crossEntropy) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		sum -= targets[i] * math.Log(math.Max(outs[i], ceEpsilon))
	}

	return sum
}

func (crossEntropy) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		ds[i] = -targets[i] / math.Max(outs[i], ceEpsilon)
	}

	return ds
}
