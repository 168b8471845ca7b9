// SPDX-License-Identifier: MIT

package gbmatrix

import (
	"sync"

	"github.com/katalvlaran/gbmatrix/descriptor"
	"github.com/katalvlaran/gbmatrix/gbconfig"
)

// ThreadCount picks min(nthreads_max, ceil(work/chunk)) per spec.md §5,
// falling back to the global gbconfig defaults when ctx leaves either hint
// at zero. Exported so gbewise and gbmul, which partition work over the
// same descriptor.Context shape, share this sizing rule instead of
// recoding it.
func ThreadCount(ctx descriptor.Context, work int64) int {
	maxThreads := ctx.NThreadsMax
	if maxThreads <= 0 {
		maxThreads = gbconfig.NThreadsMax()
	}
	chunk := ctx.Chunk
	if chunk <= 0 {
		chunk = gbconfig.Chunk()
	}
	if work <= 0 || chunk <= 0 {
		return 1
	}

	want := int((work + chunk - 1) / chunk)
	if want < 1 {
		want = 1
	}
	if want > maxThreads {
		want = maxThreads
	}
	if want < 1 {
		want = 1
	}

	return want
}

// RunTasks splits n independent units of work across ThreadCount(ctx, n)
// goroutines, each handling a contiguous [lo, hi) range, and waits for all
// of them (spec.md §5: "Per-matrix kernels partition work by outer index
// ... Each task runs to completion and returns; there is no task
// suspension inside a kernel"). The first error observed across tasks is
// returned once every task has finished.
func RunTasks(ctx descriptor.Context, n int64, fn func(lo, hi int64) error) error {
	if n <= 0 {
		return nil
	}

	threads := ThreadCount(ctx, n)
	if threads <= 1 {
		return fn(0, n)
	}

	chunkSize := (n + int64(threads) - 1) / int64(threads)
	var wg sync.WaitGroup
	errs := make([]error, threads)
	for t := 0; t < threads; t++ {
		lo := int64(t) * chunkSize
		hi := lo + chunkSize
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(idx int, lo, hi int64) {
			defer wg.Done()
			errs[idx] = fn(lo, hi)
		}(t, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
