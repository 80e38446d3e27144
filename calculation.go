package autoenc

import (
	"math/rand"

	"github.com/pkg/errors"
)

func (l *layer) initWeights(init Initializer) {
	flat := make([]float64, l.out*l.in)
	init.Set(l.in, l.out, flat)

	l.Weights = make([][]float64, l.out)
	for v := range l.Weights {
		l.Weights[v] = flat[v*l.in : (v+1)*l.in : (v+1)*l.in]
	}

	// biases start at zero
	l.Biases = make([]float64, l.out)

	l.resetGrads()
}

// copyParamsFrom replaces the layer's weights and biases with copies of those
// of src. Dimensions must already match.
func (l *layer) copyParamsFrom(src *layer) {
	l.Weights = make([][]float64, len(src.Weights))
	for v := range src.Weights {
		l.Weights[v] = make([]float64, len(src.Weights[v]))
		copy(l.Weights[v], src.Weights[v])
	}

	l.Biases = make([]float64, len(src.Biases))
	copy(l.Biases, src.Biases)

	l.resetGrads()
}

func (l *layer) resetGrads() {
	l.weightGrads = make([][]float64, l.out)
	for v := range l.weightGrads {
		l.weightGrads[v] = make([]float64, l.in)
	}

	l.biasGrads = make([]float64, l.out)
}

func (l *layer) zeroGrads() {
	for v := range l.weightGrads {
		for i := range l.weightGrads[v] {
			l.weightGrads[v][i] = 0
		}
		l.biasGrads[v] = 0
	}
}

// evaluate runs the layer on one set of inputs, returning the (possibly
// corrupted) inputs that were actually used, the gradient scales of the
// corruption (nil for pass-through), and the activated outputs.
func (l *layer) evaluate(in []float64, training bool, rng *rand.Rand) (used, scales, out []float64) {
	used = in
	if training && l.cor != nil {
		c := make([]float64, len(in))
		scales = l.cor.Corrupt(c, in, rng)
		used = c
	}

	out = make([]float64, l.out)
	for v := range out {
		sum := l.Biases[v]
		ws := l.Weights[v]
		for i := range used {
			sum += ws[i] * used[i]
		}
		out[v] = sum
	}

	l.act.Apply(out)
	return used, scales, out
}

// pass holds the intermediate values of one forward run, for use during
// backpropagation.
type pass struct {
	// the inputs actually fed to each layer (after corruption, if any)
	inputs [][]float64

	// the corruption gradient scales per layer; nil where gradients pass
	// through unchanged
	scales [][]float64

	// the activated outputs of each layer
	outputs [][]float64
}

// forward runs one sample through every layer. It is safe for concurrent use
// when training is false; the shared rng is only touched by corruptors while
// training.
func (m *model) forward(x []float64, training bool, rng *rand.Rand) *pass {
	p := &pass{
		inputs:  make([][]float64, len(m.layers)),
		scales:  make([][]float64, len(m.layers)),
		outputs: make([][]float64, len(m.layers)),
	}

	in := x
	for li, l := range m.layers {
		p.inputs[li], p.scales[li], p.outputs[li] = l.evaluate(in, training, rng)
		in = p.outputs[li]
	}

	return p
}

// backprop accumulates the gradients of one sample into the layers' gradient
// sums. The pass must have been produced by forward with training=true.
func (m *model) backprop(p *pass, targets []float64) {
	last := len(m.layers) - 1
	g := m.cf.Derivs(p.outputs[last], targets)

	for li := last; li >= 0; li-- {
		l := m.layers[li]
		dz := l.act.InputDeltas(p.outputs[li], g)

		in := p.inputs[li]
		for v := range dz {
			wg := l.weightGrads[v]
			for i := range in {
				wg[i] += dz[v] * in[i]
			}
			l.biasGrads[v] += dz[v]
		}

		if li == 0 {
			break
		}

		// deltas w.r.t. this layer's inputs, scaled back through the
		// corruption where it masks values (dropout)
		next := make([]float64, l.in)
		for i := range next {
			var sum float64
			for v := range dz {
				sum += dz[v] * l.Weights[v][i]
			}
			next[i] = sum
		}
		if p.scales[li] != nil {
			for i := range next {
				next[i] *= p.scales[li][i]
			}
		}

		g = next
	}
}

func (m *model) zeroGrads() {
	for _, l := range m.layers {
		l.zeroGrads()
	}
}

// applyGrads averages the accumulated gradients over the batch, adds weight
// penalties, and runs each layer's Optimizer once over a flat view of its
// weights followed by its biases.
func (m *model) applyGrads(batchSize int) error {
	lr := m.lr.Value(m.iter)
	inv := 1 / float64(batchSize)

	for _, l := range m.layers {
		l := l
		nw := l.out * l.in

		grad := func(idx int) float64 {
			if idx < nw {
				v, i := idx/l.in, idx%l.in
				g := l.weightGrads[v][i] * inv
				if l.pen != nil {
					g += l.pen.Addend(l.Weights[v][i])
				}
				return g
			}

			return l.biasGrads[idx-nw] * inv
		}

		add := func(idx int, delta float64) {
			if idx < nw {
				l.Weights[idx/l.in][idx%l.in] += delta
			} else {
				l.Biases[idx-nw] += delta
			}
		}

		if err := l.opt.Run(nw+l.out, grad, add, lr); err != nil {
			return errors.Wrapf(err, "Running optimizer on layer %q failed\n", l.name)
		}
	}

	return nil
}

// penaltyCost sums the weight-penalty terms over all layers; it is the part of
// the loss that does not depend on the data.
func (m *model) penaltyCost() float64 {
	var sum float64
	for _, l := range m.layers {
		if l.pen == nil {
			continue
		}
		for v := range l.Weights {
			sum += l.pen.Cost(l.Weights[v])
		}
	}

	return sum
}
