package optimizers

import (
	"math"
	"testing"

	"github.com/HiYKY/autoenc"
)

// minimize runs the optimizer on the quadratic (w0-3)^2 + (w1+1)^2 and
// returns the final values.
func minimize(t *testing.T, opt autoenc.Optimizer, steps int, rate float64) []float64 {
	t.Helper()

	ws := []float64{0, 0}
	targets := []float64{3, -1}

	grad := func(i int) float64 { return 2 * (ws[i] - targets[i]) }
	add := func(i int, delta float64) { ws[i] += delta }

	for s := 0; s < steps; s++ {
		if err := opt.Run(len(ws), grad, add, rate); err != nil {
			t.Fatalf("optimizer run %d failed: %v", s, err)
		}
	}

	return ws
}

func TestSGDMinimizes(t *testing.T) {
	ws := minimize(t, SGD(), 100, 0.1)
	if math.Abs(ws[0]-3) > 1e-6 || math.Abs(ws[1]+1) > 1e-6 {
		t.Errorf("SGD converged to %v, should be [3 -1]", ws)
	}
}

func TestMomentumMinimizes(t *testing.T) {
	ws := minimize(t, Momentum(), 300, 0.01)
	if math.Abs(ws[0]-3) > 1e-3 || math.Abs(ws[1]+1) > 1e-3 {
		t.Errorf("momentum converged to %v, should be [3 -1]", ws)
	}
}

func TestAdamMinimizes(t *testing.T) {
	ws := minimize(t, Adam(), 2000, 0.05)
	if math.Abs(ws[0]-3) > 1e-2 || math.Abs(ws[1]+1) > 1e-2 {
		t.Errorf("Adam converged to %v, should be [3 -1]", ws)
	}
}

func TestAdamStateRoundTrip(t *testing.T) {
	dir := t.TempDir()

	orig := Adam().(*adam)
	minimize(t, orig, 10, 0.05)

	if err := orig.Save(dir); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded := Adam().(*adam)
	if err := loaded.Load(dir); err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	if loaded.Step != orig.Step {
		t.Errorf("loaded step is %d, should be %d", loaded.Step, orig.Step)
	}
	for i := range orig.Moment1s {
		if loaded.Moment1s[i] != orig.Moment1s[i] || loaded.Moment2s[i] != orig.Moment2s[i] {
			t.Errorf("loaded moments differ at %d", i)
		}
	}
}

func TestMomentumStateRoundTrip(t *testing.T) {
	dir := t.TempDir()

	orig := Momentum().(*momentum)
	minimize(t, orig, 10, 0.05)

	if err := orig.Save(dir); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded := Momentum().(*momentum)
	if err := loaded.Load(dir); err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	if loaded.Decay != orig.Decay {
		t.Errorf("loaded decay is %g, should be %g", loaded.Decay, orig.Decay)
	}
	for i := range orig.Vels {
		if loaded.Vels[i] != orig.Vels[i] {
			t.Errorf("loaded velocities differ at %d", i)
		}
	}
}

func TestSGDStateless(t *testing.T) {
	// SGD writes nothing, and loading from nowhere is fine
	if err := SGD().Save(t.TempDir() + "/nope"); err != nil {
		t.Errorf("SGD save failed: %v", err)
	}
	if err := SGD().Load(t.TempDir() + "/nope"); err != nil {
		t.Errorf("SGD load failed: %v", err)
	}
}
