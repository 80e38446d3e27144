// Package noise provides the input corruptions that make a unit autoencoder
// denoising, and registers them with the autoenc package.
package noise

import (
	"github.com/HiYKY/autoenc"
)

func init() {
	errs := []error{
		autoenc.RegisterCorruptor("gaussian", Gaussian),
		autoenc.RegisterCorruptor("dropout", Dropout),
	}

	for _, err := range errs {
		if err != nil {
			panic(err)
		}
	}
}
