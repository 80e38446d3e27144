// Package activations provides the standard set of layer activations and
// registers them with the autoenc package. Importing it also sets the default
// hidden activation (softmax).
package activations

import (
	"github.com/HiYKY/autoenc"
)

func init() {
	errs := []error{
		autoenc.RegisterActivation("sigmoid", Sigmoid),
		autoenc.RegisterActivation("tanh", Tanh),
		autoenc.RegisterActivation("relu", ReLU),
		autoenc.RegisterActivation("identity", Identity),
		autoenc.RegisterActivation("softmax", Softmax),
	}

	for _, err := range errs {
		if err != nil {
			panic(err)
		}
	}

	autoenc.SetDefaultActivation(Softmax())
}
