package initializers

import (
	"math"
	"testing"
)

func TestSeedRepeats(t *testing.T) {
	a := make([]float64, 50)
	b := make([]float64, 50)

	Seed(1)
	VarianceScaling().Set(10, 5, a)
	Seed(1)
	VarianceScaling().Set(10, 5, b)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different weights at %d (%g != %g)", i, a[i], b[i])
		}
	}
}

func TestVarianceScalingBounds(t *testing.T) {
	ws := make([]float64, 1000)
	VarianceScaling().Set(100, 10, ws)

	// truncated at two standard deviations of sqrt(2/fanIn)
	limit := 2 * math.Sqrt(2.0/100)
	for i, w := range ws {
		if math.Abs(w) > limit {
			t.Errorf("weight %d is %g, should be within %g", i, w, limit)
		}
	}

	var nonzero int
	for _, w := range ws {
		if w != 0 {
			nonzero++
		}
	}
	if nonzero == 0 {
		t.Errorf("variance scaling left every weight at zero")
	}
}

func TestVarianceScalingModes(t *testing.T) {
	in := make([]float64, 500)
	out := make([]float64, 500)

	VarianceScalingWith(2, FanIn).Set(10, 1000, in)
	VarianceScalingWith(2, FanOut).Set(10, 1000, out)

	// fan-out uses the much larger fan, so its weights should be smaller
	if spread(in) <= spread(out) {
		t.Errorf("fan-in weights should be more spread out than fan-out weights (%g <= %g)", spread(in), spread(out))
	}
}

func spread(ws []float64) float64 {
	var sum float64
	for _, w := range ws {
		sum += w * w
	}

	return sum / float64(len(ws))
}

func TestXavierBounds(t *testing.T) {
	ws := make([]float64, 1000)
	Xavier().Set(30, 20, ws)

	bound := math.Sqrt(6.0 / 50)
	for i, w := range ws {
		if w < -bound || w > bound {
			t.Errorf("weight %d is %g, should be within [%g, %g]", i, w, -bound, bound)
		}
	}
}

func TestZeros(t *testing.T) {
	ws := []float64{1, 2, 3}
	Zeros().Set(3, 1, ws)

	for i, w := range ws {
		if w != 0 {
			t.Errorf("weight %d is %g, should be 0", i, w)
		}
	}
}
