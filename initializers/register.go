// Package initializers provides weight initialization schemes and registers
// them with the autoenc package. Importing it also sets the default
// initializer (variance scaling).
package initializers

import (
	"github.com/HiYKY/autoenc"
)

func init() {
	errs := []error{
		autoenc.RegisterInitializer("variance-scaling", VarianceScaling()),
		autoenc.RegisterInitializer("xavier", Xavier()),
		autoenc.RegisterInitializer("uniform", Uniform()),
		autoenc.RegisterInitializer("zeros", Zeros()),
	}

	for _, err := range errs {
		if err != nil {
			panic(err)
		}
	}

	autoenc.SetDefaultInitializer(VarianceScaling())
}
