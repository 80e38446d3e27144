package costfuncs

import (
	"github.com/HiYKY/autoenc"
)

type mse struct{}

// MSE returns the mean squared error cost function, the usual reconstruction
// loss of an autoencoder.
func MSE() autoenc.CostFunction { return mse{} }

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
