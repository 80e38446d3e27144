package autoenc

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// KFold generates successive train/validation splits of a dataset for
// cross-validated pretraining. Each call to Next takes the next contiguous
// block of rows as the validation set and everything else as the training
// set.
type KFold struct {
	x *mat.Dense

	nFolds, batch int
	cur           int
}

// NewKFold returns a generator over the rows of x with nFolds folds.
func NewKFold(x *mat.Dense, nFolds int) (*KFold, error) {
	if x == nil {
		return nil, NilArgError{"dataset"}
	} else if nFolds < 2 {
		return nil, errors.Errorf("Number of folds must be >= 2 (%d)", nFolds)
	}

	n, _ := x.Dims()
	batch := n / nFolds
	if batch == 0 {
		return nil, errors.Errorf("Can't split %d rows into %d folds", n, nFolds)
	}

	return &KFold{x: x, nFolds: nFolds, batch: batch}, nil
}

// Next returns the next train and validation sets. The cursor wraps back to
// the first fold after the final one; rows left over by uneven division form a
// short extra fold at the end of each cycle. The returned matrices share no
// data with each other but the validation set is a view into the dataset.
func (k *KFold) Next() (train, validation *mat.Dense) {
	n, c := k.x.Dims()

	start := k.cur
	end := start + k.batch
	if end > n {
		end = n
	}

	validation = k.x.Slice(start, end, 0, c).(*mat.Dense)

	switch {
	case start == 0:
		train = k.x.Slice(end, n, 0, c).(*mat.Dense)
	case end == n:
		train = k.x.Slice(0, start, 0, c).(*mat.Dense)
	default:
		var t mat.Dense
		t.Stack(k.x.Slice(0, start, 0, c), k.x.Slice(end, n, 0, c))
		train = &t
	}

	if end < n {
		k.cur = end
	} else {
		k.cur = 0
	}

	return train, validation
}
