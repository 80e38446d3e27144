package main

import (
	"github.com/petar/GoMNIST"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/HiYKY/autoenc"
)

const numClasses int = 10 // 0 -> 9

// matrices converts one MNIST set into design-matrix form: one row per image
// with pixels scaled into [0, 1], plus the one-hot label rows.
func matrices(set *GoMNIST.Set) (x, y *mat.Dense, err error) {
	n := len(set.Images)
	if n == 0 {
		return nil, nil, errors.Errorf("Can't use MNIST set, it holds no images")
	}

	size := set.NRow * set.NCol
	x = mat.NewDense(n, size, nil)
	labels := make([]int, n)

	for i, img := range set.Images {
		if len(img) != size {
			return nil, nil, errors.Errorf("Image %d has %d pixels, should have %d", i, len(img), size)
		}

		row := x.RawRowView(i)
		for j, p := range img {
			row[j] = float64(p) / 255
		}

		labels[i] = int(set.Labels[i])
	}

	return x, autoenc.OneHot(labels, numClasses), nil
}

// datasets loads the four MNIST files from dir (gzipped, in the usual idx
// format) and converts both sets.
func datasets(dir string) (trainX, trainY, testX, testY *mat.Dense, err error) {
	train, test, err := GoMNIST.Load(dir)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrapf(err, "Couldn't load MNIST from %q\n", dir)
	}

	if trainX, trainY, err = matrices(train); err != nil {
		return nil, nil, nil, nil, errors.Wrapf(err, "Couldn't convert training set\n")
	}
	if testX, testY, err = matrices(test); err != nil {
		return nil, nil, nil, nil, errors.Wrapf(err, "Couldn't convert testing set\n")
	}

	return trainX, trainY, testX, testY, nil
}
