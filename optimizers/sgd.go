package optimizers

import (
	"github.com/HiYKY/autoenc"
	"github.com/HiYKY/autoenc/utils"
)

type sgd struct{}

// SGD returns plain stochastic gradient descent, stepping each value by
// -learningRate * gradient.
func SGD() autoenc.Optimizer { return sgd{} }

func (sgd) TypeString() string { return "sgd" }

func (sgd) Run(size int, grad func(int) float64, add func(int, float64), learningRate float64) error {
	f := func(i int) {
		add(i, -learningRate*grad(i))
	}

	opsPerThread, threadsPerCPU := 1000, 1
	utils.MultiThread(0, size, f, opsPerThread, threadsPerCPU)

	return nil
}

// SGD carries no state between steps, so there is nothing to write or read.

func (sgd) Save(dirPath string) error { return nil }

func (sgd) Load(dirPath string) error { return nil }
