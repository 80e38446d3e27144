package hyperparams

import (
	"encoding/json"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/HiYKY/autoenc"
)

type step struct {
	// exported for JSON checkpointing
	Initial, Factor float64
	Every           int
}

// Step returns a HyperParameter that starts at the given value and is
// multiplied by factor after each period of 'every' iterations.
func Step(initial, factor float64, every int) autoenc.HyperParameter {
	return &step{Initial: initial, Factor: factor, Every: every}
}

func (s *step) TypeString() string { return "step" }

func (s *step) Value(iter int) float64 {
	return s.Initial * math.Pow(s.Factor, float64(iter/s.Every))
}

func (s *step) Save(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Wrapf(err, "Couldn't make hyper-parameter directory %q\n", dirPath)
	}

	f, err := os.Create(dirPath + "/step.txt")
	if err != nil {
		return errors.Wrapf(err, "Couldn't create 'step.txt' in %q\n", dirPath)
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(s)
}

func (s *step) Load(dirPath string) error {
	f, err := os.Open(dirPath + "/step.txt")
	if err != nil {
		return errors.Wrapf(err, "Couldn't open 'step.txt' in %q\n", dirPath)
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(s)
}
