package autoenc

import (
	"github.com/pkg/errors"
)

// The registries map TypeStrings back to constructors so that checkpoints can
// be reloaded. Subpackages register their types (and package defaults) from
// init(), so loading a checkpoint requires importing the subpackages that
// produced it.
var (
	activations  = make(map[string]func() Activation)
	optimizers   = make(map[string]func() Optimizer)
	costFuncs    = make(map[string]func() CostFunction)
	hyperParams  = make(map[string]func() HyperParameter)
	corruptors   = make(map[string]func(param float64) Corruptor)
	penalties    = make(map[string]func(param float64) Penalty)
	initializers = make(map[string]Initializer)

	defaultActivation  Activation
	defaultInitializer Initializer
	defaultOptimizer   func() Optimizer
	defaultPenalty     func() Penalty
	defaultRate        func() HyperParameter
)

// RegisterActivation adds the Activation constructor to the registry under the
// given name, which should match the TypeString of what it returns.
func RegisterActivation(name string, f func() Activation) error {
	if f == nil {
		return ErrRegisterNilReturn
	} else if _, ok := activations[name]; ok {
		return errors.Errorf("Activation %q has already been registered", name)
	}

	activations[name] = f
	return nil
}

// RegisterOptimizer adds the Optimizer constructor to the registry under the
// given name.
func RegisterOptimizer(name string, f func() Optimizer) error {
	if f == nil {
		return ErrRegisterNilReturn
	} else if _, ok := optimizers[name]; ok {
		return errors.Errorf("Optimizer %q has already been registered", name)
	}

	optimizers[name] = f
	return nil
}

// RegisterCostFunction adds the CostFunction constructor to the registry under
// the given name.
func RegisterCostFunction(name string, f func() CostFunction) error {
	if f == nil {
		return ErrRegisterNilReturn
	} else if _, ok := costFuncs[name]; ok {
		return errors.Errorf("CostFunction %q has already been registered", name)
	}

	costFuncs[name] = f
	return nil
}

// RegisterHyperParameter adds the HyperParameter constructor to the registry
// under the given name.
func RegisterHyperParameter(name string, f func() HyperParameter) error {
	if f == nil {
		return ErrRegisterNilReturn
	} else if _, ok := hyperParams[name]; ok {
		return errors.Errorf("HyperParameter %q has already been registered", name)
	}

	hyperParams[name] = f
	return nil
}

// RegisterCorruptor adds the Corruptor constructor to the registry under the
// given name. The constructor receives the single parameter stored in the
// checkpoint.
func RegisterCorruptor(name string, f func(param float64) Corruptor) error {
	if f == nil {
		return ErrRegisterNilReturn
	} else if _, ok := corruptors[name]; ok {
		return errors.Errorf("Corruptor %q has already been registered", name)
	}

	corruptors[name] = f
	return nil
}

// RegisterPenalty adds the Penalty constructor to the registry under the given
// name.
func RegisterPenalty(name string, f func(param float64) Penalty) error {
	if f == nil {
		return ErrRegisterNilReturn
	} else if _, ok := penalties[name]; ok {
		return errors.Errorf("Penalty %q has already been registered", name)
	}

	penalties[name] = f
	return nil
}

// RegisterInitializer adds the Initializer to the registry under the given
// name. Initializers carry no trained state, so the instance itself is stored.
func RegisterInitializer(name string, init Initializer) error {
	if init == nil {
		return ErrRegisterNilReturn
	} else if _, ok := initializers[name]; ok {
		return errors.Errorf("Initializer %q has already been registered", name)
	}

	initializers[name] = init
	return nil
}

// SetDefaultActivation sets the Activation used for hidden layers when none is
// given. This is called by the activations subpackage on import.
func SetDefaultActivation(a Activation) {
	defaultActivation = a
}

// SetDefaultInitializer sets the Initializer used when none is given. This is
// called by the initializers subpackage on import.
func SetDefaultInitializer(init Initializer) {
	defaultInitializer = init
}

// SetDefaultOptimizer sets the source of Optimizers used when none is given.
// Each dense layer calls the function once, so stateful Optimizers are not
// shared between layers.
func SetDefaultOptimizer(f func() Optimizer) {
	defaultOptimizer = f
}

// SetDefaultPenalty sets the source of weight penalties used when none is
// given.
func SetDefaultPenalty(f func() Penalty) {
	defaultPenalty = f
}

// SetDefaultRate sets the source of the learning-rate HyperParameter used when
// none is given.
func SetDefaultRate(f func() HyperParameter) {
	defaultRate = f
}
