package autoenc

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// NewUnit returns a new unit autoencoder with nInputs input values and
// nNeurons hidden neurons. The returned Unit reconstructs nInputs values from
// the hidden layer. Settings are applied with the chained builder methods;
// construction errors are stored and returned by Error() (and by the first
// call to Fit).
//
// Unless overridden, the hidden activation, initializer, optimizer, weight
// penalty, and learning rate come from the package defaults set by the
// subpackages on import.
func NewUnit(name string, nInputs, nNeurons int) *Unit {
	u := &Unit{
		model:    model{name: name, kind: "unit"},
		nInputs:  nInputs,
		nNeurons: nNeurons,
	}

	if name == "" {
		u.setError(errors.Errorf("Can't create unit, name is empty"))
	} else if nInputs < 1 || nNeurons < 1 {
		u.setError(errors.Errorf("Can't create unit %q, sizes must be >= 1 (%d inputs, %d neurons)", name, nInputs, nNeurons))
	}

	u.layers = []*layer{
		{name: name + "_hidden", in: nInputs, out: nNeurons},
		{name: name + "_outputs", in: nNeurons, out: nInputs},
	}

	return u
}

// NInputs returns the number of input values to the Unit, which is also the
// number of values it reconstructs.
func (u *Unit) NInputs() int {
	return u.nInputs
}

// NNeurons returns the number of hidden neurons of the Unit.
func (u *Unit) NNeurons() int {
	return u.nNeurons
}

// Trained returns whether or not the Unit has trained (or restored)
// parameters, making it suitable for stacking.
func (u *Unit) Trained() bool {
	return u.trained
}

// Noise sets the train-time Corruptor applied to the inputs of the Unit,
// usually noise.Gaussian or noise.Dropout. Corruption is never applied outside
// of training.
func (u *Unit) Noise(c Corruptor) *Unit {
	if c == nil {
		u.setError(NilArgError{"Corruptor"})
		return u
	}

	u.layers[0].cor = c
	return u
}

// Activation sets the activation function of the hidden layer.
func (u *Unit) Activation(a Activation) *Unit {
	if a == nil {
		u.setError(NilArgError{"Activation"})
		return u
	}

	u.layers[0].act = a
	return u
}

// OutputActivation sets the activation function of the reconstruction layer.
// The default is the identity.
func (u *Unit) OutputActivation(a Activation) *Unit {
	if a == nil {
		u.setError(NilArgError{"Activation"})
		return u
	}

	u.layers[1].act = a
	return u
}

// Penalty sets the weight penalty applied to both the hidden and the
// reconstruction kernels. NoPenalty disables it.
func (u *Unit) Penalty(p Penalty) *Unit {
	if p == nil {
		u.setError(NilArgError{"Penalty"})
		return u
	}

	u.layers[0].pen = p
	u.layers[1].pen = p
	u.penalized = true
	return u
}

// NoPenalty removes the weight penalty from both layers, overriding the
// package default.
func (u *Unit) NoPenalty() *Unit {
	u.layers[0].pen = nil
	u.layers[1].pen = nil
	u.penalized = true
	return u
}

// Init sets the Initializer used for the weights of both layers.
func (u *Unit) Init(init Initializer) *Unit {
	if init == nil {
		u.setError(NilArgError{"Initializer"})
		return u
	}

	u.init = init
	return u
}

// Opt sets the source of Optimizers for the layers of the Unit. The function
// is called once per layer, so stateful Optimizers are not shared.
func (u *Unit) Opt(f func() Optimizer) *Unit {
	if f == nil {
		u.setError(NilArgError{"Optimizer source"})
		return u
	}

	u.opt = f
	return u
}

// Rate sets the learning-rate schedule of the Unit.
func (u *Unit) Rate(hp HyperParameter) *Unit {
	if hp == nil {
		u.setError(NilArgError{"HyperParameter"})
		return u
	}

	u.lr = hp
	return u
}

// build fills in defaults and initializes weights. It runs once, before the
// first operation that needs parameters.
func (u *Unit) build() error {
	if u.err != nil {
		return u.err
	} else if u.built {
		return nil
	}

	if u.layers[0].act == nil {
		if defaultActivation == nil {
			u.setError(errors.Errorf("Unit %q has no hidden activation and no default is set (import the activations subpackage)", u.name))
			return u.err
		}
		u.layers[0].act = defaultActivation
	}
	if u.layers[1].act == nil {
		u.layers[1].act = identity{}
	}

	if !u.penalized {
		if defaultPenalty != nil {
			p := defaultPenalty()
			u.layers[0].pen = p
			u.layers[1].pen = p
		}
	}

	if u.init == nil {
		if defaultInitializer == nil {
			u.setError(errors.Errorf("Unit %q has no Initializer and no default is set (import the initializers subpackage)", u.name))
			return u.err
		}
		u.init = defaultInitializer
	}

	if u.opt == nil {
		if defaultOptimizer == nil {
			u.setError(errors.Errorf("Unit %q has no Optimizer and no default is set (import the optimizers subpackage)", u.name))
			return u.err
		}
		u.opt = defaultOptimizer
	}

	if u.lr == nil {
		if defaultRate == nil {
			u.setError(errors.Errorf("Unit %q has no learning rate and no default is set (import the hyperparams subpackage)", u.name))
			return u.err
		}
		u.lr = defaultRate()
	}

	if u.cf == nil {
		u.cf = mse{}
	}

	for _, l := range u.layers {
		l.opt = u.opt()
		l.initWeights(u.init)
	}

	u.built = true
	return nil
}

// Fit trains the Unit to reconstruct the rows of x, returning the loss over
// the full set after the last epoch. If args.ModelPath is not empty, a
// checkpoint is saved there once training finishes.
func (u *Unit) Fit(x *mat.Dense, args FitArgs) (float64, error) {
	if err := u.build(); err != nil {
		return 0, err
	}

	loss, err := u.fit(x, nil, args)
	if err != nil {
		return 0, errors.Wrapf(err, "Fitting unit %q failed\n", u.name)
	}

	u.trained = true
	return loss, nil
}

// Eval evaluates the requested variables against the rows of x, in the order
// requested, without corruption.
func (u *Unit) Eval(x *mat.Dense, vars ...Var) ([]Value, error) {
	if err := u.build(); err != nil {
		return nil, err
	}

	return u.eval(x, nil, vars)
}

// HiddenOutputs returns the hidden-layer activations for each row of x, which
// is the representation a deeper unit would be trained on.
func (u *Unit) HiddenOutputs(x *mat.Dense) (*mat.Dense, error) {
	vs, err := u.Eval(x, VarHidden)
	if err != nil {
		return nil, err
	}

	return vs[0].Matrix, nil
}
