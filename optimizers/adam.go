package optimizers

import (
	"encoding/json"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/HiYKY/autoenc"
	"github.com/HiYKY/autoenc/utils"
)

type adam struct {
	// exported for JSON checkpointing
	Beta1, Beta2, Epsilon float64

	Step     int
	Moment1s []float64
	Moment2s []float64
}

// Adam returns the Adam optimizer with the usual constants: beta1 = 0.9,
// beta2 = 0.999, epsilon = 1e-8.
func Adam() autoenc.Optimizer { return AdamWith(0.9, 0.999, 1e-8) }

// AdamWith returns the Adam optimizer with the given constants.
func AdamWith(beta1, beta2, epsilon float64) autoenc.Optimizer {
	return &adam{Beta1: beta1, Beta2: beta2, Epsilon: epsilon}
}

func (o *adam) TypeString() string { return "adam" }

func (o *adam) Run(size int, grad func(int) float64, add func(int, float64), learningRate float64) error {
	if len(o.Moment1s) != size {
		o.Moment1s = make([]float64, size)
		o.Moment2s = make([]float64, size)
		o.Step = 0
	}

	o.Step++

	// bias correction for the zero-initialized moments
	c1 := 1 / (1 - math.Pow(o.Beta1, float64(o.Step)))
	c2 := 1 / (1 - math.Pow(o.Beta2, float64(o.Step)))

	f := func(i int) {
		g := grad(i)
		o.Moment1s[i] = o.Beta1*o.Moment1s[i] + (1-o.Beta1)*g
		o.Moment2s[i] = o.Beta2*o.Moment2s[i] + (1-o.Beta2)*g*g

		m := o.Moment1s[i] * c1
		v := o.Moment2s[i] * c2

		add(i, -learningRate*m/(math.Sqrt(v)+o.Epsilon))
	}

	opsPerThread, threadsPerCPU := 1000, 1
	utils.MultiThread(0, size, f, opsPerThread, threadsPerCPU)

	return nil
}

func (o *adam) Save(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Wrapf(err, "Couldn't make optimizer directory %q\n", dirPath)
	}

	f, err := os.Create(dirPath + "/adam.txt")
	if err != nil {
		return errors.Wrapf(err, "Couldn't create 'adam.txt' in %q\n", dirPath)
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(o)
}

func (o *adam) Load(dirPath string) error {
	f, err := os.Open(dirPath + "/adam.txt")
	if err != nil {
		return errors.Wrapf(err, "Couldn't open 'adam.txt' in %q\n", dirPath)
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(o)
}
