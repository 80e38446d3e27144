package hyperparams

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/HiYKY/autoenc"
)

type constant struct {
	// exported for JSON checkpointing
	Rate float64
}

// Constant returns a HyperParameter that holds the given value for the whole
// of training.
func Constant(value float64) autoenc.HyperParameter {
	return &constant{Rate: value}
}

func (c *constant) TypeString() string { return "constant" }

func (c *constant) Value(iter int) float64 { return c.Rate }

func (c *constant) Save(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Wrapf(err, "Couldn't make hyper-parameter directory %q\n", dirPath)
	}

	f, err := os.Create(dirPath + "/constant.txt")
	if err != nil {
		return errors.Wrapf(err, "Couldn't create 'constant.txt' in %q\n", dirPath)
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(c)
}

func (c *constant) Load(dirPath string) error {
	f, err := os.Open(dirPath + "/constant.txt")
	if err != nil {
		return errors.Wrapf(err, "Couldn't open 'constant.txt' in %q\n", dirPath)
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(c)
}
