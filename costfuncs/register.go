// Package costfuncs provides the cost functions models are trained against
// and registers them with the autoenc package.
package costfuncs

import (
	"github.com/HiYKY/autoenc"
)

func init() {
	errs := []error{
		autoenc.RegisterCostFunction("mse", MSE),
		autoenc.RegisterCostFunction("cross-entropy", CrossEntropy),
	}

	for _, err := range errs {
		if err != nil {
			panic(err)
		}
	}
}
