package optimizers

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/HiYKY/autoenc"
	"github.com/HiYKY/autoenc/utils"
)

type momentum struct {
	// exported for JSON checkpointing
	Decay float64
	Vels  []float64
}

// Momentum returns gradient descent with momentum 0.9.
func Momentum() autoenc.Optimizer { return MomentumWith(0.9) }

// MomentumWith returns gradient descent that accumulates a decaying velocity
// per value, with the given decay factor.
func MomentumWith(decay float64) autoenc.Optimizer {
	return &momentum{Decay: decay}
}

func (o *momentum) TypeString() string { return "momentum" }

func (o *momentum) Run(size int, grad func(int) float64, add func(int, float64), learningRate float64) error {
	if len(o.Vels) != size {
		o.Vels = make([]float64, size)
	}

	f := func(i int) {
		o.Vels[i] = o.Decay*o.Vels[i] - learningRate*grad(i)
		add(i, o.Vels[i])
	}

	opsPerThread, threadsPerCPU := 1000, 1
	utils.MultiThread(0, size, f, opsPerThread, threadsPerCPU)

	return nil
}

func (o *momentum) Save(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Wrapf(err, "Couldn't make optimizer directory %q\n", dirPath)
	}

	f, err := os.Create(dirPath + "/momentum.txt")
	if err != nil {
		return errors.Wrapf(err, "Couldn't create 'momentum.txt' in %q\n", dirPath)
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(o)
}

func (o *momentum) Load(dirPath string) error {
	f, err := os.Open(dirPath + "/momentum.txt")
	if err != nil {
		return errors.Wrapf(err, "Couldn't open 'momentum.txt' in %q\n", dirPath)
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(o)
}
