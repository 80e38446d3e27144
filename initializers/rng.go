package initializers

import (
	"math/rand"
	"sync"
)

// The package shares one source of randomness so that a single Seed call makes
// every initializer reproducible. It starts seeded (with 42) rather than from
// the clock, so runs are repeatable unless asked otherwise.
var (
	rngMux sync.Mutex
	rng    = rand.New(rand.NewSource(42))
)

// Seed resets the randomness behind every initializer in the package.
func Seed(seed int64) {
	rngMux.Lock()
	defer rngMux.Unlock()

	rng = rand.New(rand.NewSource(seed))
}

func uniform(lo, hi float64, ws []float64) {
	rngMux.Lock()
	defer rngMux.Unlock()

	for i := range ws {
		ws[i] = lo + (hi-lo)*rng.Float64()
	}
}

// truncNormal fills ws from a normal distribution with the given stddev,
// resampling anything further than two standard deviations from zero.
func truncNormal(stddev float64, ws []float64) {
	rngMux.Lock()
	defer rngMux.Unlock()

	for i := range ws {
		v := rng.NormFloat64()
		for v < -2 || v > 2 {
			v = rng.NormFloat64()
		}
		ws[i] = v * stddev
	}
}
