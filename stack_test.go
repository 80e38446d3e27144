package autoenc_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	ae "github.com/HiYKY/autoenc"
	"github.com/HiYKY/autoenc/activations"
	"github.com/HiYKY/autoenc/hyperparams"
	"github.com/HiYKY/autoenc/optimizers"
)

// trainedUnit pretrains a small unit on x, just enough to make it stackable.
func trainedUnit(t *testing.T, name string, x *mat.Dense, nNeurons int) *ae.Unit {
	t.Helper()

	_, c := x.Dims()
	u := ae.NewUnit(name, c, nNeurons).
		Activation(activations.Sigmoid()).
		NoPenalty().
		Opt(optimizers.SGD).
		Rate(hyperparams.Constant(0.2))

	if _, err := u.Fit(x, ae.FitArgs{Epochs: 5}); err != nil {
		t.Fatalf("failed to pretrain unit %q: %v", name, err)
	}

	return u
}

// clusterData returns two tight clusters and their one-hot labels: class 0
// near (0.1, 0.1) and class 1 near (0.9, 0.9).
func clusterData(n int, seed int64) (*mat.Dense, *mat.Dense) {
	rng := rand.New(rand.NewSource(seed))

	x := mat.NewDense(n, 2, nil)
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		center := 0.1
		if i%2 == 1 {
			center = 0.9
			labels[i] = 1
		}

		x.Set(i, 0, center+0.05*rng.NormFloat64())
		x.Set(i, 1, center+0.05*rng.NormFloat64())
	}

	return x, ae.OneHot(labels, 2)
}

func TestStackUnitValidity(t *testing.T) {
	x := randomData(8, 4, 4)

	if err := ae.NewStack("s").StackUnit(ae.NewUnit("u", 4, 2), "").Error(); err == nil {
		t.Errorf("stacking an untrained unit should be rejected")
	}

	u1 := trainedUnit(t, "u1", x, 3)
	u2 := trainedUnit(t, "u2", x, 2) // wants 4 inputs, u1 provides 3

	if err := ae.NewStack("s").StackUnit(u1, "").StackUnit(u2, "").Error(); err == nil {
		t.Errorf("stacking a unit that doesn't fit should be rejected")
	}

	if err := ae.NewStack("s").StackUnit(u1, "a").StackUnit(trainedUnit(t, "u3", randomData(8, 3, 5), 2), "a").Error(); err == nil {
		t.Errorf("reusing a layer name should be rejected")
	}

	if err := ae.NewStack("s").StackClassifier("", 2).Error(); err == nil {
		t.Errorf("adding a head to an empty stack should be rejected")
	}

	if err := ae.NewStack("s").StackUnit(u1, "").StackClassifier("", 1).Error(); err == nil {
		t.Errorf("a classifier with one class should be rejected")
	}

	s := ae.NewStack("s").StackUnit(u1, "")
	if err := s.Finalize(nil); err == nil {
		t.Errorf("finalizing without a head should be rejected")
	}
}

func TestStackRequiresFinalize(t *testing.T) {
	x := randomData(8, 4, 5)
	u := trainedUnit(t, "u", x, 3)

	s := ae.NewStack("s").StackUnit(u, "").StackClassifier("", 2)
	if _, err := s.Fit(x, nil, ae.FitArgs{Epochs: 1}); err != ae.ErrNotFinalized {
		t.Errorf("Fit before Finalize returned %v, should be ErrNotFinalized", err)
	}

	if err := s.Finalize(nil); err != nil {
		t.Fatalf("failed to finalize: %v", err)
	}

	// no more layers once finalized
	if err := s.StackUnit(u, "late").Error(); err == nil {
		t.Errorf("stacking onto a finalized stack should be rejected")
	}
}

func TestStackClassifierLearns(t *testing.T) {
	x, y := clusterData(40, 6)

	u := trainedUnit(t, "u", x, 4)

	s := ae.NewStack("s").
		StackUnit(u, "").
		StackClassifier("", 2).
		Rate(hyperparams.Constant(0.5))
	if err := s.Finalize(optimizers.SGD); err != nil {
		t.Fatalf("failed to finalize: %v", err)
	}

	if _, err := s.Fit(x, y, ae.FitArgs{Epochs: 300}); err != nil {
		t.Fatalf("failed to fine-tune: %v", err)
	}

	_, correct, err := s.Test(x, y, ae.CorrectHighest)
	if err != nil {
		t.Fatalf("failed to test: %v", err)
	}

	if correct < 0.9 {
		t.Errorf("classifier is %.2f%% correct on separable clusters, should be >= 90%%", 100*correct)
	}
}

func TestStackReconstructionHead(t *testing.T) {
	x := randomData(12, 4, 7)
	u := trainedUnit(t, "u", x, 3)

	s := ae.NewStack("s").
		StackUnit(u, "").
		StackOutputLayer("", nil, nil).
		Rate(hyperparams.Constant(0.2))
	if err := s.Finalize(optimizers.SGD); err != nil {
		t.Fatalf("failed to finalize: %v", err)
	}

	// y is ignored for a reconstruction head
	if _, err := s.Fit(x, nil, ae.FitArgs{Epochs: 5}); err != nil {
		t.Fatalf("failed to fit reconstruction stack: %v", err)
	}

	vals, err := s.Eval(x, nil, ae.VarOutputs)
	if err != nil {
		t.Fatalf("failed to evaluate: %v", err)
	}
	if r, c := vals[0].Matrix.Dims(); r != 12 || c != 4 {
		t.Errorf("reconstructions have dimensions (%d, %d), should be (12, 4)", r, c)
	}

	h, err := s.HiddenOutputs(x)
	if err != nil {
		t.Fatalf("failed to get hidden outputs: %v", err)
	}
	if r, c := h.Dims(); r != 12 || c != 3 {
		t.Errorf("hidden outputs have dimensions (%d, %d), should be (12, 3)", r, c)
	}
}
