// Package hyperparams provides learning-rate schedules and registers them
// with the autoenc package. Importing it also sets the default rate
// (constant 0.001).
package hyperparams

import (
	"github.com/HiYKY/autoenc"
)

func init() {
	errs := []error{
		autoenc.RegisterHyperParameter("constant", func() autoenc.HyperParameter { return &constant{} }),
		autoenc.RegisterHyperParameter("step", func() autoenc.HyperParameter { return &step{} }),
	}

	for _, err := range errs {
		if err != nil {
			panic(err)
		}
	}

	autoenc.SetDefaultRate(func() autoenc.HyperParameter { return Constant(0.001) })
}
