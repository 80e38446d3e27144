// Package utils provides small helpers shared across the module, mainly the
// work-splitting used by batch evaluation.
package utils

import (
	"runtime"
	"sync"
)

// MultiThread runs f(i) for every i in [start, end), spread across a pool of
// goroutines. It blocks until the whole range has been handled, so it should
// be called from the thread that wants the results.
//
// Workers claim chunks of 'opsPerThread' indices at a time, which keeps
// contention on the shared cursor low when f is cheap. 'threadsPerCPU' sets
// the pool size as a multiple of runtime.NumCPU().
//
// MultiThread assumes end >= start.
func MultiThread(start, end int, f func(int), opsPerThread, threadsPerCPU int) {
	numThreads := runtime.NumCPU() * threadsPerCPU

	next := start
	var mux sync.Mutex

	var wg sync.WaitGroup
	wg.Add(numThreads)

	for t := 0; t < numThreads; t++ {
		go func() {
			defer wg.Done()

			for {
				mux.Lock()
				if next >= end {
					mux.Unlock()
					return
				}

				i := next
				next += opsPerThread
				mux.Unlock()

				e := i + opsPerThread
				if e > end {
					e = end
				}

				for ; i < e; i++ {
					f(i)
				}
			}
		}()
	}

	wg.Wait()
}
