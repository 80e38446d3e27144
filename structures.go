package autoenc

// A layer is one dense transformation of the model: corrupt (while training),
// multiply, add biases, activate. Weights are stored per output neuron, in the
// same layout they are written to checkpoints.
type layer struct {
	name string

	// numbers of input and output values
	in, out int

	act Activation
	cor Corruptor // nil if the inputs are taken as-is
	pen Penalty   // nil if the weights are unpenalized
	opt Optimizer

	Weights [][]float64 // [out][in]
	Biases  []float64

	// gradient sums for the current batch, same shapes as Weights/Biases
	weightGrads [][]float64
	biasGrads   []float64
}

// model is the shared machinery behind Unit and Stack: an ordered list of
// dense layers, a cost function, and a learning-rate schedule.
type model struct {
	name string

	// either "unit" or "stack"; recorded in checkpoints
	kind string

	layers []*layer

	cf CostFunction
	lr HyperParameter

	// supervised is true iff the topmost layer is a classifier head; fitting
	// then requires explicit targets instead of reconstructing the inputs.
	supervised bool

	// used to keep track of the current iteration during training
	iter int

	err error
}

// Unit is a single hidden-layer autoencoder: one hidden dense layer and one
// reconstruction layer back to the input width. Construct with NewUnit;
// settings are applied with chained builder methods before the first Fit.
type Unit struct {
	model

	nInputs, nNeurons int

	init Initializer
	opt  func() Optimizer

	// set once a Penalty (or NoPenalty) has been chosen explicitly, so that
	// build does not overwrite the choice with the package default
	penalized bool

	// set once defaults have been filled in and weights initialized
	built bool

	// whether or not the unit has trained (or restored) parameters, making it
	// suitable for stacking
	trained bool
}

// Stack is a deep model built from the trained hidden layers of several Units,
// topped with either a reconstruction output layer or a softmax classifier.
// Construct with NewStack; it must be finalized before training.
type Stack struct {
	model

	nInputs int
	init    Initializer

	hasHead   bool
	finalized bool
}

func (m *model) setError(e error) {
	if m.err == nil {
		m.err = e
	}
}

// Error returns any errors encountered while constructing the model,
// particularly while stacking layers. Operations like Fit and Save return the
// stored error, so checking Error is only required to catch mistakes early.
func (m *model) Error() error {
	return m.err
}

// Name returns the name the model was constructed with.
func (m *model) Name() string {
	return m.name
}

// InputSize returns the number of expected input values to the model, or -1 if
// it has no layers yet.
func (m *model) InputSize() int {
	if len(m.layers) == 0 {
		return -1
	}

	return m.layers[0].in
}

// OutputSize returns the number of output values of the model, or -1 if it has
// no layers yet.
func (m *model) OutputSize() int {
	if len(m.layers) == 0 {
		return -1
	}

	return m.layers[len(m.layers)-1].out
}
