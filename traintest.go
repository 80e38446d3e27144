package autoenc

import (
	"math/rand"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"gonum.org/v1/gonum/mat"

	"github.com/HiYKY/autoenc/utils"
)

// A wrapper for sending back the progress of training or testing.
type Result struct {
	// The iteration the result is being sent after
	Iteration int

	// The epoch the iteration belongs to
	Epoch int

	// Average cost over the batch (or test set), including weight penalties
	// for status results
	Cost float64

	// The fraction correct, as per IsCorrect() from FitArgs. 0 → 1
	Correct float64

	// The result is either from a test or a status update
	IsTest bool
}

// FitArgs bundles the optional arguments to Fit.
type FitArgs struct {
	// Epochs is the number of full passes over the training set. It must be
	// >= 1.
	Epochs int

	// BatchSize is the number of samples per gradient update. Values <= 0 (or
	// larger than the set) mean full-batch.
	BatchSize int

	// LogEvery is the number of iterations between scalar summaries and
	// status updates. Defaults to 100.
	LogEvery int

	// Seed for shuffling and corruption. Defaults to 42.
	Seed int64

	// LogDir is where per-run summary directories are created. Empty disables
	// summaries.
	LogDir string

	// ModelPath is the directory the trained model is checkpointed to after
	// the last epoch. Empty disables checkpointing.
	ModelPath string

	// Overwrite allows ModelPath to replace an existing checkpoint.
	Overwrite bool

	// TestX/TestY form a cross-validation set tested between epochs. TestY is
	// ignored for unsupervised models.
	TestX, TestY *mat.Dense

	// TestEvery is the number of epochs between cross-validation tests.
	// Values <= 1 test after every epoch (when TestX is given).
	TestEvery int

	// IsCorrect returns whether or not the model outputs are correct, given
	// the target outputs. Left nil, everything counts as incorrect.
	IsCorrect func(outs, targets []float64) bool

	// Update is how testing and status updates are returned. May be nil.
	Update func(Result)
}

func (m *model) fit(x, y *mat.Dense, args FitArgs) (float64, error) {
	if m.err != nil {
		return 0, m.err
	} else if x == nil {
		return 0, NilArgError{"training data"}
	}

	n, c := x.Dims()
	if c != m.InputSize() {
		return 0, SizeMismatchError{m.InputSize(), c, "training inputs"}
	}

	if m.supervised {
		if y == nil {
			return 0, NilArgError{"training targets"}
		}

		yn, yc := y.Dims()
		if yn != n || yc != m.OutputSize() {
			return 0, SizeMismatchError{m.OutputSize(), yc, "training targets"}
		}
	}

	if args.Epochs < 1 {
		return 0, errors.Errorf("Epochs must be >= 1 (%d)", args.Epochs)
	}

	bs := args.BatchSize
	if bs <= 0 || bs > n {
		bs = n
	}

	logEvery := args.LogEvery
	if logEvery < 1 {
		logEvery = 100
	}

	seed := args.Seed
	if seed == 0 {
		seed = 42
	}
	rng := rand.New(rand.NewSource(seed))

	update := args.Update
	if update == nil {
		update = func(r Result) {}
	}

	isCorrect := args.IsCorrect
	if isCorrect == nil {
		isCorrect = func(a, b []float64) bool { return false }
	}

	var sum *summary
	if args.LogDir != "" {
		var err error
		if sum, err = newSummary(args.LogDir, m.name); err != nil {
			return 0, errors.Wrapf(err, "Creating summary writer failed\n")
		}
		defer sum.close()
	}

	target := func(i int) []float64 {
		if m.supervised {
			return y.RawRowView(i)
		}
		return x.RawRowView(i)
	}

	m.iter = 0
	for epoch := 0; epoch < args.Epochs; epoch++ {
		perm := rng.Perm(n)

		for start := 0; start < n; start += bs {
			end := start + bs
			if end > n {
				end = n
			}

			m.zeroGrads()
			var batchCost, batchCorrect float64
			for _, i := range perm[start:end] {
				p := m.forward(x.RawRowView(i), true, rng)
				outs := p.outputs[len(m.layers)-1]

				batchCost += m.cf.Cost(outs, target(i))
				if isCorrect(outs, target(i)) {
					batchCorrect++
				}

				m.backprop(p, target(i))
			}

			size := end - start
			if err := m.applyGrads(size); err != nil {
				return 0, errors.Wrapf(err, "Failed to adjust weights on iteration %d\n", m.iter)
			}

			if m.iter%logEvery == 0 {
				cost := batchCost/float64(size) + m.penaltyCost()
				if sum != nil {
					if err := sum.add(m.iter, epoch, cost); err != nil {
						return 0, errors.Wrapf(err, "Failed to write summary on iteration %d\n", m.iter)
					}
				}

				update(Result{
					Iteration: m.iter,
					Epoch:     epoch,
					Cost:      cost,
					Correct:   batchCorrect / float64(size),
					IsTest:    false,
				})
			}

			m.iter++
		}

		if args.TestX != nil && (args.TestEvery <= 1 || (epoch+1)%args.TestEvery == 0) {
			cost, correct, err := m.test(args.TestX, args.TestY, isCorrect)
			if err != nil {
				return 0, errors.Wrapf(err, "Testing after epoch %d failed\n", epoch)
			}

			update(Result{
				Iteration: m.iter,
				Epoch:     epoch,
				Cost:      cost,
				Correct:   correct,
				IsTest:    true,
			})
		}
	}

	loss, err := m.loss(x, y)
	if err != nil {
		return 0, err
	}

	if args.ModelPath != "" {
		if err := m.save(args.ModelPath, args.Overwrite); err != nil {
			return 0, errors.Wrapf(err, "Failed to save checkpoint to %q\n", args.ModelPath)
		}
	}

	return loss, nil
}

// test returns the average cost (without penalties) and the fraction correct
// over the rows of x. Rows are evaluated in parallel.
func (m *model) test(x, y *mat.Dense, isCorrect func([]float64, []float64) bool) (float64, float64, error) {
	if x == nil {
		return 0, 0, NilArgError{"test data"}
	}

	n, c := x.Dims()
	if c != m.InputSize() {
		return 0, 0, SizeMismatchError{m.InputSize(), c, "test inputs"}
	}

	if m.supervised {
		if y == nil {
			return 0, 0, NilArgError{"test targets"}
		}

		yn, yc := y.Dims()
		if yn != n || yc != m.OutputSize() {
			return 0, 0, SizeMismatchError{m.OutputSize(), yc, "test targets"}
		}
	}

	if isCorrect == nil {
		isCorrect = func(a, b []float64) bool { return false }
	}

	costSum := atomic.NewFloat64(0)
	correctSum := atomic.NewFloat64(0)

	f := func(i int) {
		p := m.forward(x.RawRowView(i), false, nil)
		outs := p.outputs[len(m.layers)-1]

		t := x.RawRowView(i)
		if m.supervised {
			t = y.RawRowView(i)
		}

		costSum.Add(m.cf.Cost(outs, t))
		if isCorrect(outs, t) {
			correctSum.Add(1)
		}
	}

	opsPerThread, threadsPerCPU := 16, 1
	utils.MultiThread(0, n, f, opsPerThread, threadsPerCPU)

	return costSum.Load() / float64(n), correctSum.Load() / float64(n), nil
}

// loss is the full training objective over x: average cost plus weight
// penalties.
func (m *model) loss(x, y *mat.Dense) (float64, error) {
	cost, _, err := m.test(x, y, nil)
	if err != nil {
		return 0, err
	}

	return cost + m.penaltyCost(), nil
}

// Var selects a variable to evaluate. The original set is: the loss, the
// reconstruction loss (the cost without penalties), the topmost hidden
// outputs, and the model outputs.
type Var int

const (
	VarLoss Var = iota
	VarReconLoss
	VarHidden
	VarOutputs
)

// Value is one evaluated variable: a scalar for the losses, a matrix for
// hidden outputs and model outputs.
type Value struct {
	Scalar float64
	Matrix *mat.Dense
}

func (m *model) eval(x, y *mat.Dense, vars []Var) ([]Value, error) {
	if m.err != nil {
		return nil, m.err
	} else if x == nil {
		return nil, NilArgError{"data"}
	}

	n, c := x.Dims()
	if c != m.InputSize() {
		return nil, SizeMismatchError{m.InputSize(), c, "inputs"}
	}

	needsTargets := false
	for _, v := range vars {
		if v == VarLoss || v == VarReconLoss {
			needsTargets = true
		}
	}
	if m.supervised && needsTargets && y == nil {
		return nil, NilArgError{"targets"}
	}

	hiddenIdx := len(m.layers) - 2
	hidden := mat.NewDense(n, m.layers[hiddenIdx].out, nil)
	outs := mat.NewDense(n, m.OutputSize(), nil)
	costSum := atomic.NewFloat64(0)

	f := func(i int) {
		p := m.forward(x.RawRowView(i), false, nil)

		hidden.SetRow(i, p.outputs[hiddenIdx])
		outs.SetRow(i, p.outputs[len(m.layers)-1])

		t := x.RawRowView(i)
		if m.supervised {
			if y == nil {
				return
			}
			t = y.RawRowView(i)
		}
		costSum.Add(m.cf.Cost(p.outputs[len(m.layers)-1], t))
	}

	opsPerThread, threadsPerCPU := 16, 1
	utils.MultiThread(0, n, f, opsPerThread, threadsPerCPU)

	recon := costSum.Load() / float64(n)

	// The order of vars in the result needs to be kept, thus this loop.
	vals := make([]Value, 0, len(vars))
	for _, v := range vars {
		switch v {
		case VarLoss:
			vals = append(vals, Value{Scalar: recon + m.penaltyCost()})
		case VarReconLoss:
			vals = append(vals, Value{Scalar: recon})
		case VarHidden:
			vals = append(vals, Value{Matrix: hidden})
		case VarOutputs:
			vals = append(vals, Value{Matrix: outs})
		default:
			return nil, errors.Errorf("Unrecognized variable %d to evaluate", v)
		}
	}

	return vals, nil
}
