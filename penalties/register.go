// Package penalties provides the weight penalties applied during training and
// registers them with the autoenc package. Importing it also sets the default
// penalty (L2 with scale 0.01).
package penalties

import (
	"github.com/HiYKY/autoenc"
)

func init() {
	errs := []error{
		autoenc.RegisterPenalty("l2", L2),
		autoenc.RegisterPenalty("l1", L1),
	}

	for _, err := range errs {
		if err != nil {
			panic(err)
		}
	}

	autoenc.SetDefaultPenalty(func() autoenc.Penalty { return L2(0.01) })
}
