package autoenc_test

import (
	"math"
	"testing"

	ae "github.com/HiYKY/autoenc"
	"github.com/HiYKY/autoenc/activations"
	"github.com/HiYKY/autoenc/hyperparams"
	"github.com/HiYKY/autoenc/noise"
	"github.com/HiYKY/autoenc/optimizers"
)

func matsEqual(t *testing.T, name string, a, b [][]float64) {
	t.Helper()

	for i := range a {
		for j := range a[i] {
			if math.Abs(a[i][j]-b[i][j]) > 1e-12 {
				t.Fatalf("%s differ at (%d, %d): %g != %g", name, i, j, a[i][j], b[i][j])
				return
			}
		}
	}
}

func rows(m interface{ Dims() (int, int) }) int {
	r, _ := m.Dims()
	return r
}

func TestUnitCheckpointRoundTrip(t *testing.T) {
	x := randomData(10, 4, 10)
	dir := t.TempDir() + "/unit"

	u := ae.NewUnit("u", 4, 3).
		Noise(noise.Gaussian(0.1)).
		Activation(activations.Sigmoid()).
		Opt(optimizers.SGD).
		Rate(hyperparams.Constant(0.1))

	if _, err := u.Fit(x, ae.FitArgs{Epochs: 3, ModelPath: dir}); err != nil {
		t.Fatalf("failed to fit unit: %v", err)
	}

	loaded, err := ae.LoadUnit(dir)
	if err != nil {
		t.Fatalf("failed to load unit: %v", err)
	}

	if loaded.NInputs() != 4 || loaded.NNeurons() != 3 {
		t.Errorf("loaded unit has shape (%d, %d), should be (4, 3)", loaded.NInputs(), loaded.NNeurons())
	}
	if !loaded.Trained() {
		t.Errorf("loaded unit should report trained")
	}

	want, err := u.Eval(x, ae.VarOutputs, ae.VarHidden)
	if err != nil {
		t.Fatalf("failed to evaluate original: %v", err)
	}
	have, err := loaded.Eval(x, ae.VarOutputs, ae.VarHidden)
	if err != nil {
		t.Fatalf("failed to evaluate loaded: %v", err)
	}

	for i := 0; i < rows(want[0].Matrix); i++ {
		matsEqual(t, "outputs", [][]float64{want[0].Matrix.RawRowView(i)}, [][]float64{have[0].Matrix.RawRowView(i)})
		matsEqual(t, "hidden outputs", [][]float64{want[1].Matrix.RawRowView(i)}, [][]float64{have[1].Matrix.RawRowView(i)})
	}
}

func TestUnitRestore(t *testing.T) {
	x := randomData(8, 4, 11)
	dir := t.TempDir() + "/unit"

	u := ae.NewUnit("u", 4, 3).Opt(optimizers.SGD).Rate(hyperparams.Constant(0.1))
	if _, err := u.Fit(x, ae.FitArgs{Epochs: 2, ModelPath: dir}); err != nil {
		t.Fatalf("failed to fit unit: %v", err)
	}

	fresh := ae.NewUnit("other", 4, 3)
	want, err := u.Eval(x, ae.VarOutputs)
	if err != nil {
		t.Fatalf("failed to evaluate original: %v", err)
	}

	have, err := fresh.RestoreAndEval(dir, x, ae.VarOutputs)
	if err != nil {
		t.Fatalf("failed to restore: %v", err)
	}

	for i := 0; i < rows(want[0].Matrix); i++ {
		matsEqual(t, "outputs", [][]float64{want[0].Matrix.RawRowView(i)}, [][]float64{have[0].Matrix.RawRowView(i)})
	}

	// restoring a mismatched architecture must fail
	if err = ae.NewUnit("wide", 4, 5).Restore(dir); err == nil {
		t.Errorf("restoring onto a mismatched unit should be rejected")
	}
}

func TestStackCheckpointRoundTrip(t *testing.T) {
	x, y := clusterData(16, 12)
	dir := t.TempDir() + "/stack"

	u := trainedUnit(t, "u", x, 3)
	s := ae.NewStack("s").
		StackUnit(u, "").
		StackClassifier("", 2).
		Rate(hyperparams.Constant(0.1))
	if err := s.Finalize(optimizers.SGD); err != nil {
		t.Fatalf("failed to finalize: %v", err)
	}

	if _, err := s.Fit(x, y, ae.FitArgs{Epochs: 3, ModelPath: dir}); err != nil {
		t.Fatalf("failed to fit stack: %v", err)
	}

	loaded, err := ae.LoadStack(dir)
	if err != nil {
		t.Fatalf("failed to load stack: %v", err)
	}
	if loaded.NumLayers() != 2 || !loaded.Finalized() {
		t.Errorf("loaded stack has %d layers (finalized: %v), should be 2 (finalized)", loaded.NumLayers(), loaded.Finalized())
	}

	wantCost, wantCorrect, err := s.Test(x, y, ae.CorrectHighest)
	if err != nil {
		t.Fatalf("failed to test original: %v", err)
	}
	haveCost, haveCorrect, err := loaded.Test(x, y, ae.CorrectHighest)
	if err != nil {
		t.Fatalf("failed to test loaded: %v", err)
	}

	if math.Abs(wantCost-haveCost) > 1e-12 || wantCorrect != haveCorrect {
		t.Errorf("loaded stack tests to (%g, %g), original to (%g, %g)", haveCost, haveCorrect, wantCost, wantCorrect)
	}

	// a stack checkpoint is not a unit checkpoint
	if _, err = ae.LoadUnit(dir); err == nil {
		t.Errorf("loading a stack checkpoint as a unit should be rejected")
	}
}

func TestSaveOverwrite(t *testing.T) {
	x := randomData(6, 3, 13)
	dir := t.TempDir() + "/unit"

	u := ae.NewUnit("u", 3, 2)
	if _, err := u.Fit(x, ae.FitArgs{Epochs: 1}); err != nil {
		t.Fatalf("failed to fit unit: %v", err)
	}

	if err := u.Save(dir, false); err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	if err := u.Save(dir, false); err == nil {
		t.Errorf("saving over an existing checkpoint without overwrite should be rejected")
	}
	if err := u.Save(dir, true); err != nil {
		t.Errorf("failed to overwrite checkpoint: %v", err)
	}
}
