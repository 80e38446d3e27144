package initializers

import (
	"math"

	"github.com/HiYKY/autoenc"
)

// Fan modes for VarianceScalingWith.
const (
	FanIn  = "fan-in"
	FanOut = "fan-out"
	FanAvg = "fan-avg"
)

type varianceScaling struct {
	factor float64
	mode   string
}

// VarianceScaling returns an Initializer that draws weights from a truncated
// normal distribution with variance factor/fan, using factor 2 and the
// layer's fan-in. This keeps activation variance roughly constant through
// deep stacks.
func VarianceScaling() autoenc.Initializer {
	return VarianceScalingWith(2, FanIn)
}

// VarianceScalingWith returns a variance-scaling Initializer with the given
// factor and fan mode (FanIn, FanOut, or FanAvg).
func VarianceScalingWith(factor float64, mode string) autoenc.Initializer {
	return varianceScaling{factor: factor, mode: mode}
}

func (v varianceScaling) TypeString() string { return "variance-scaling" }

func (v varianceScaling) Set(fanIn, fanOut int, ws []float64) {
	var fan float64
	switch v.mode {
	case FanOut:
		fan = float64(fanOut)
	case FanAvg:
		fan = float64(fanIn+fanOut) / 2
	default:
		fan = float64(fanIn)
	}

	truncNormal(math.Sqrt(v.factor/fan), ws)
}
