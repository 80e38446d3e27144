// Package optimizers provides the gradient-descent variants used to train
// models and registers them with the autoenc package. Importing it also sets
// the default optimizer (Adam).
package optimizers

import (
	"github.com/HiYKY/autoenc"
)

func init() {
	errs := []error{
		autoenc.RegisterOptimizer("sgd", SGD),
		autoenc.RegisterOptimizer("momentum", Momentum),
		autoenc.RegisterOptimizer("adam", Adam),
	}

	for _, err := range errs {
		if err != nil {
			panic(err)
		}
	}

	autoenc.SetDefaultOptimizer(Adam)
}
