package initializers

import (
	"math"

	"github.com/HiYKY/autoenc"
)

type xavier struct{}

// Xavier returns the Glorot uniform Initializer, drawing weights from
// [-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))].
func Xavier() autoenc.Initializer { return xavier{} }

func (xavier) TypeString() string { return "xavier" }

func (xavier) Set(fanIn, fanOut int, ws []float64) {
	bound := math.Sqrt(6 / float64(fanIn+fanOut))
	uniform(-bound, bound, ws)
}

type uniformInit struct{}

// Uniform returns an Initializer that draws weights uniformly from
// [-sqrt(3/fanIn), sqrt(3/fanIn)], which gives them variance 1/fanIn.
func Uniform() autoenc.Initializer { return uniformInit{} }

func (uniformInit) TypeString() string { return "uniform" }

func (uniformInit) Set(fanIn, fanOut int, ws []float64) {
	bound := math.Sqrt(3 / float64(fanIn))
	uniform(-bound, bound, ws)
}

type zeros struct{}

// Zeros returns an Initializer that leaves every weight at zero. It is mainly
// useful in tests, where exact outputs matter.
func Zeros() autoenc.Initializer { return zeros{} }

func (zeros) TypeString() string { return "zeros" }

func (zeros) Set(fanIn, fanOut int, ws []float64) {
	for i := range ws {
		ws[i] = 0
	}
}
