package autoenc

import "math/rand"

// Activation is an interface for the elementwise (or, in the case of softmax,
// vector-wise) functions applied to the pre-activations of a dense layer.
type Activation interface {
	// TypeString returns the string corresponding to the type of the
	// Activation. For example: the Activation "Sigmoid" should return
	// "sigmoid", or something to that effect.
	TypeString() string

	// Apply replaces the given pre-activations with the activated values, in
	// place.
	Apply(values []float64)

	// InputDeltas converts the derivatives of the cost w.r.t. the activated
	// values into derivatives w.r.t. the pre-activations, given the activated
	// values. The returned slice may alias 'deltas'.
	InputDeltas(values, deltas []float64) []float64
}

// Corruptor injects noise into the inputs of a layer while training. While not
// training, corruption is skipped entirely.
type Corruptor interface {
	TypeString() string

	// Corrupt fills dst with a corrupted copy of src; len(dst) == len(src).
	// The returned slice holds the per-value gradient scales of the
	// corruption, or nil if gradients pass through unchanged (additive noise).
	Corrupt(dst, src []float64, rng *rand.Rand) (scales []float64)

	// Param returns the single parameter of the Corruptor (standard deviation,
	// dropout rate, ...), used to reconstruct it from a checkpoint.
	Param() float64
}

// Optimizer is an interface for applying gradient-based updates to a flat
// range of weights. Each dense layer owns its own Optimizer, because stateful
// Optimizers (momentum, Adam) size their state to the layer.
type Optimizer interface {
	// Run is called to suggest changes to each weight, given: number of
	// weights, gradient at weight, function to add to weights, and a
	// learning-rate.
	Run(size int, grad func(int) float64, add func(int, float64), learningRate float64) error

	TypeString() string

	Save(dirPath string) error
	Load(dirPath string) error
}

// CostFunction measures the distance between model outputs and targets.
type CostFunction interface {
	TypeString() string

	// Cost returns the scalar cost. Lengths are assumed equal.
	Cost(outs, targets []float64) float64

	// Derivs returns the derivative of the cost w.r.t. each output.
	Derivs(outs, targets []float64) []float64
}

// Initializer dictates how the weights of a dense layer will be set, given a
// blank slice to hold weights and the fan-in/fan-out of the layer.
type Initializer interface {
	TypeString() string
	Set(fanIn, fanOut int, ws []float64)
}

// Penalty adds a regularization term to the cost and its gradient, per weight.
type Penalty interface {
	TypeString() string

	// Cost returns the penalty term over the given weights, which is added to
	// the reported loss.
	Cost(ws []float64) float64

	// Addend returns the amount added to the gradient of the given weight.
	Addend(w float64) float64

	// Param returns the strength of the Penalty, used to reconstruct it from a
	// checkpoint.
	Param() float64
}

// HyperParameter provides iteration-dependent values, e.g. learning-rate
// schedules.
type HyperParameter interface {
	TypeString() string
	Value(iter int) float64

	Save(dirPath string) error
	Load(dirPath string) error
}
