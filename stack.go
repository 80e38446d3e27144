package autoenc

import (
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// NewStack returns a new, empty stacked autoencoder. Trained units are added
// bottom-up with StackUnit, a head is added with StackOutputLayer or
// StackClassifier, and the Stack must then be finalized before training.
// Construction errors are stored and returned by Error() (and by Finalize).
func NewStack(name string) *Stack {
	s := &Stack{model: model{name: name, kind: "stack"}}
	if name == "" {
		s.setError(errors.Errorf("Can't create stack, name is empty"))
	}

	return s
}

// NumLayers returns the number of layers of the Stack, including the head.
func (s *Stack) NumLayers() int {
	return len(s.layers)
}

// Finalized returns whether or not Finalize has completed successfully.
func (s *Stack) Finalized() bool {
	return s.finalized
}

// checkUnitValidity returns an error if the unit is not suitable to be stacked
// up: it must have trained parameters, its inputs must fit the top of the
// current stack, and the layer name must be unused.
func (s *Stack) checkUnitValidity(u *Unit, layerName string) error {
	if !u.trained {
		return errors.Wrapf(ErrUnitNotTrained, "Unit %q\n", u.name)
	}

	if len(s.layers) > 0 {
		top := s.layers[len(s.layers)-1]
		if top.out != u.nInputs {
			return SizeMismatchError{top.out, u.nInputs, "stacked unit inputs"}
		}
	}

	for _, l := range s.layers {
		if l.name == layerName {
			return errors.Errorf("Layer name %q has already been used in stack %q", layerName, s.name)
		}
	}

	return nil
}

// StackUnit appends the trained hidden layer of the given unit to the Stack.
// The new layer starts from a copy of the unit's hidden weights and keeps the
// unit's corruptor, activation, and weight penalty. If layerName is empty, it
// defaults to "<stack>_hidden_<index>".
func (s *Stack) StackUnit(u *Unit, layerName string) *Stack {
	if s.err != nil {
		return s
	} else if s.finalized {
		s.setError(ErrFinalized)
		return s
	} else if s.hasHead {
		s.setError(errors.Errorf("Can't stack unit onto %q, head has already been added", s.name))
		return s
	} else if u == nil {
		s.setError(NilArgError{"Unit"})
		return s
	}

	if layerName == "" {
		layerName = s.name + "_hidden_" + strconv.Itoa(len(s.layers))
	}

	if err := s.checkUnitValidity(u, layerName); err != nil {
		s.setError(errors.Wrapf(err, "Invalid unit autoencoder %q\n", u.name))
		return s
	}

	if len(s.layers) == 0 {
		s.nInputs = u.nInputs
	}

	src := u.layers[0]
	l := &layer{
		name: layerName,
		in:   src.in,
		out:  src.out,
		act:  src.act,
		cor:  src.cor,
		pen:  src.pen,
	}
	l.copyParamsFrom(src)

	s.layers = append(s.layers, l)
	return s
}

// StackOutputLayer adds a reconstruction head: a fresh dense layer from the
// top of the stack back to the stack's input width, trained against the mean
// squared reconstruction error. act may be nil for a linear head; pen may be
// nil for no weight penalty.
func (s *Stack) StackOutputLayer(layerName string, act Activation, pen Penalty) *Stack {
	if s.err != nil {
		return s
	}

	if act == nil {
		act = identity{}
	}

	s.addHead(layerName, s.nInputs, act, pen)
	if s.err == nil {
		s.cf = mse{}
		s.supervised = false
	}

	return s
}

// StackClassifier adds a softmax classifier head with nClasses outputs for
// supervised fine-tuning, trained against the cross-entropy of one-hot
// targets.
func (s *Stack) StackClassifier(layerName string, nClasses int) *Stack {
	if s.err != nil {
		return s
	}

	if nClasses < 2 {
		s.setError(errors.Errorf("Can't add classifier to %q, nClasses must be >= 2 (%d)", s.name, nClasses))
		return s
	}

	s.addHead(layerName, nClasses, softmax{}, nil)
	if s.err == nil {
		s.cf = crossEntropy{}
		s.supervised = true
	}

	return s
}

func (s *Stack) addHead(layerName string, out int, act Activation, pen Penalty) {
	if s.finalized {
		s.setError(ErrFinalized)
		return
	} else if s.hasHead {
		s.setError(errors.Errorf("Stack %q already has a head", s.name))
		return
	} else if len(s.layers) == 0 {
		s.setError(errors.Errorf("Can't add head to %q, no units have been stacked", s.name))
		return
	}

	if layerName == "" {
		layerName = s.name + "_outputs"
	}

	for _, l := range s.layers {
		if l.name == layerName {
			s.setError(errors.Errorf("Layer name %q has already been used in stack %q", layerName, s.name))
			return
		}
	}

	top := s.layers[len(s.layers)-1]
	s.layers = append(s.layers, &layer{
		name: layerName,
		in:   top.out,
		out:  out,
		act:  act,
		pen:  pen,
	})
	s.hasHead = true
}

// Init sets the Initializer used for the head layer's weights, overriding the
// package default. It has no effect on stacked unit layers, which keep their
// trained weights.
func (s *Stack) Init(init Initializer) *Stack {
	if init == nil {
		s.setError(NilArgError{"Initializer"})
		return s
	}

	s.init = init
	return s
}

// Rate sets the learning-rate schedule used during fine-tuning.
func (s *Stack) Rate(hp HyperParameter) *Stack {
	if hp == nil {
		s.setError(NilArgError{"HyperParameter"})
		return s
	}

	s.lr = hp
	return s
}

// Finalize freezes the architecture of the Stack: it initializes the head's
// weights and binds an Optimizer to every layer. opt may be nil to use the
// package default. After Finalize, no more layers can be added.
func (s *Stack) Finalize(opt func() Optimizer) error {
	if s.err != nil {
		return s.err
	} else if s.finalized {
		s.setError(ErrFinalized)
		return s.err
	} else if !s.hasHead {
		s.setError(ErrNoHead)
		return s.err
	}

	if opt == nil {
		if defaultOptimizer == nil {
			s.setError(errors.Errorf("Stack %q has no Optimizer and no default is set (import the optimizers subpackage)", s.name))
			return s.err
		}
		opt = defaultOptimizer
	}

	init := s.init
	if init == nil {
		if defaultInitializer == nil {
			s.setError(errors.Errorf("Stack %q has no Initializer and no default is set (import the initializers subpackage)", s.name))
			return s.err
		}
		init = defaultInitializer
	}

	if s.lr == nil {
		if defaultRate == nil {
			s.setError(errors.Errorf("Stack %q has no learning rate and no default is set (import the hyperparams subpackage)", s.name))
			return s.err
		}
		s.lr = defaultRate()
	}

	head := s.layers[len(s.layers)-1]
	head.initWeights(init)

	for _, l := range s.layers {
		l.opt = opt()
	}

	s.finalized = true
	return nil
}

// Fit fine-tunes the whole Stack on the rows of x, returning the loss over the
// full set after the last epoch. For a classifier head, y holds the one-hot
// target rows; for a reconstruction head, y is ignored and may be nil. If
// args.ModelPath is not empty, a checkpoint is saved there once training
// finishes.
func (s *Stack) Fit(x, y *mat.Dense, args FitArgs) (float64, error) {
	if !s.finalized {
		if s.err != nil {
			return 0, s.err
		}
		return 0, ErrNotFinalized
	}

	loss, err := s.fit(x, y, args)
	if err != nil {
		return 0, errors.Wrapf(err, "Fitting stack %q failed\n", s.name)
	}

	return loss, nil
}

// Test returns the average cost (without penalties) and the fraction of rows
// for which isCorrect holds. isCorrect may be nil.
func (s *Stack) Test(x, y *mat.Dense, isCorrect func(outs, targets []float64) bool) (float64, float64, error) {
	if !s.finalized {
		if s.err != nil {
			return 0, 0, s.err
		}
		return 0, 0, ErrNotFinalized
	}

	return s.test(x, y, isCorrect)
}

// Eval evaluates the requested variables against the rows of x, in the order
// requested, without corruption. y is only needed for the loss variables of a
// classifier stack.
func (s *Stack) Eval(x, y *mat.Dense, vars ...Var) ([]Value, error) {
	if !s.finalized {
		if s.err != nil {
			return nil, s.err
		}
		return nil, ErrNotFinalized
	}

	return s.eval(x, y, vars)
}

// HiddenOutputs returns the activations of the topmost stacked layer (the
// input to the head) for each row of x.
func (s *Stack) HiddenOutputs(x *mat.Dense) (*mat.Dense, error) {
	vs, err := s.Eval(x, nil, VarHidden)
	if err != nil {
		return nil, err
	}

	return vs[0].Matrix, nil
}
