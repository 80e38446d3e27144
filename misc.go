package autoenc

import "gonum.org/v1/gonum/mat"

// CorrectHighest returns whether or not the largest value in each slice is at
// the same index, which is the usual notion of "correct" for one-hot
// classification. It satisfies FitArgs.IsCorrect.
func CorrectHighest(outs, targets []float64) bool {
	return argmax(outs) == argmax(targets)
}

func argmax(vs []float64) int {
	best := 0
	for i, v := range vs {
		if v > vs[best] {
			best = i
		}
	}

	return best
}

// Every returns a function that is true once per 'frequency' iterations,
// starting at iteration 0.
func Every(frequency int) func(int) bool {
	return func(iteration int) bool {
		return iteration%frequency == 0
	}
}

// OneHot converts class labels into a matrix of one-hot rows, for use as the
// targets of a classifier head.
func OneHot(labels []int, nClasses int) *mat.Dense {
	y := mat.NewDense(len(labels), nClasses, nil)
	for i, label := range labels {
		y.Set(i, label, 1)
	}

	return y
}
