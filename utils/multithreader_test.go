package utils

import (
	"sync/atomic"
	"testing"
)

func TestMultiThreadCoversRange(t *testing.T) {
	const n = 10000

	counts := make([]int64, n)
	MultiThread(0, n, func(i int) {
		atomic.AddInt64(&counts[i], 1)
	}, 16, 2)

	for i, c := range counts {
		if c != 1 {
			t.Fatalf("index %d was handled %d times, should be once", i, c)
		}
	}
}

func TestMultiThreadOffsetRange(t *testing.T) {
	var sum int64
	MultiThread(5, 10, func(i int) {
		atomic.AddInt64(&sum, int64(i))
	}, 2, 1)

	// 5 + 6 + 7 + 8 + 9
	if sum != 35 {
		t.Errorf("sum over [5, 10) is %d, should be 35", sum)
	}
}

func TestMultiThreadEmptyRange(t *testing.T) {
	called := false
	MultiThread(3, 3, func(i int) { called = true }, 10, 1)

	if called {
		t.Errorf("an empty range should never call f")
	}
}
