package penalties

import (
	"math"

	"github.com/HiYKY/autoenc"
)

type l2 struct {
	scale float64
}

// L2 returns the ridge penalty: scale/2 times the sum of squared weights is
// added to the loss, which pulls weights toward zero in proportion to their
// size.
func L2(scale float64) autoenc.Penalty {
	return l2{scale: scale}
}

func (p l2) TypeString() string { return "l2" }

func (p l2) Param() float64 { return p.scale }

func (p l2) Cost(ws []float64) float64 {
	var sum float64
	for _, w := range ws {
		sum += w * w
	}

	return p.scale * sum / 2
}

func (p l2) Addend(w float64) float64 {
	return p.scale * w
}

type l1 struct {
	scale float64
}

// L1 returns the lasso penalty: scale times the sum of absolute weights is
// added to the loss, which drives small weights all the way to zero.
func L1(scale float64) autoenc.Penalty {
	return l1{scale: scale}
}

func (p l1) TypeString() string { return "l1" }

func (p l1) Param() float64 { return p.scale }

func (p l1) Cost(ws []float64) float64 {
	var sum float64
	for _, w := range ws {
		sum += math.Abs(w)
	}

	return p.scale * sum
}

func (p l1) Addend(w float64) float64 {
	if w > 0 {
		return p.scale
	} else if w < 0 {
		return -p.scale
	}

	return 0
}
