package autoenc_test

import (
	"testing"

	ae "github.com/HiYKY/autoenc"
)

func TestNewKFoldArgErrors(t *testing.T) {
	if _, err := ae.NewKFold(nil, 3); err == nil {
		t.Errorf("nil dataset should be rejected")
	}
	if _, err := ae.NewKFold(randomData(10, 2, 20), 1); err == nil {
		t.Errorf("a single fold should be rejected")
	}
	if _, err := ae.NewKFold(randomData(3, 2, 20), 5); err == nil {
		t.Errorf("more folds than rows should be rejected")
	}
}

func TestKFoldSplits(t *testing.T) {
	x := randomData(10, 2, 21)

	k, err := ae.NewKFold(x, 3)
	if err != nil {
		t.Fatalf("failed to create folds: %v", err)
	}

	// 10 rows in 3 folds: batches of 3, with a short leftover fold of 1
	wantVal := []int{3, 3, 3, 1}
	for i, want := range wantVal {
		train, val := k.Next()

		vr, vc := val.Dims()
		tr, tc := train.Dims()

		if vr != want {
			t.Errorf("fold %d has %d validation rows, should have %d", i, vr, want)
		}
		if vr+tr != 10 {
			t.Errorf("fold %d covers %d rows in total, should cover 10", i, vr+tr)
		}
		if vc != 2 || tc != 2 {
			t.Errorf("fold %d has widths (%d, %d), should keep width 2", i, tc, vc)
		}
	}

	// the cursor wraps back to the first fold
	_, val := k.Next()
	for j := 0; j < 2; j++ {
		if val.At(0, j) != x.At(0, j) {
			t.Errorf("after a full cycle, the validation set should start at row 0 again")
			break
		}
	}
}

func TestKFoldEvenSplit(t *testing.T) {
	x := randomData(9, 2, 22)

	k, err := ae.NewKFold(x, 3)
	if err != nil {
		t.Fatalf("failed to create folds: %v", err)
	}

	for i := 0; i < 3; i++ {
		train, val := k.Next()
		if r, _ := val.Dims(); r != 3 {
			t.Errorf("fold %d has %d validation rows, should have 3", i, r)
		}
		if r, _ := train.Dims(); r != 6 {
			t.Errorf("fold %d has %d training rows, should have 6", i, r)
		}
	}
}
