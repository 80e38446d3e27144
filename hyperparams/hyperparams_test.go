package hyperparams

import (
	"testing"
)

func TestConstant(t *testing.T) {
	hp := Constant(0.001)
	for _, iter := range []int{0, 1, 100, 100000} {
		if v := hp.Value(iter); v != 0.001 {
			t.Errorf("constant rate at iteration %d is %g, should be 0.001", iter, v)
		}
	}
}

func TestStep(t *testing.T) {
	hp := Step(1, 0.5, 10)

	cases := []struct {
		iter int
		want float64
	}{
		{0, 1},
		{9, 1},
		{10, 0.5},
		{19, 0.5},
		{20, 0.25},
	}

	for _, c := range cases {
		if v := hp.Value(c.iter); v != c.want {
			t.Errorf("step rate at iteration %d is %g, should be %g", c.iter, v, c.want)
		}
	}
}

func TestConstantRoundTrip(t *testing.T) {
	dir := t.TempDir()

	if err := Constant(0.02).Save(dir); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	hp := &constant{}
	if err := hp.Load(dir); err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if v := hp.Value(0); v != 0.02 {
		t.Errorf("loaded rate is %g, should be 0.02", v)
	}
}

func TestStepRoundTrip(t *testing.T) {
	dir := t.TempDir()

	if err := Step(0.1, 0.9, 50).Save(dir); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	hp := &step{}
	if err := hp.Load(dir); err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if v := hp.Value(50); v != 0.1*0.9 {
		t.Errorf("loaded rate at iteration 50 is %g, should be %g", v, 0.1*0.9)
	}
}
