// Package batch runs many independent trash jobs through a bounded worker
// pool. It generalizes the teacher's concurrent directory-size scanner
// (disk-peek's internal/scanner.ScanMultiplePaths /
// internal/scanner.NewDevScanner) from "walk N directories concurrently"
// to "trash/restore/erase N items concurrently": same job-channel,
// index-addressed-results-slice shape, same default-worker-count pattern.
package batch

import (
	"context"
	"runtime"
	"sync"
)

// Result is the outcome of one item in a batch call.
type Result struct {
	Index int
	Err   error
}

// Run executes fn(i) for i in [0, n) across workers goroutines (default
// runtime.NumCPU(), floor 1, matching disk-peek's NewDevScanner/
// NewNormalScanner fallback). results[i] always corresponds to input index
// i, never to completion order. ctx cancellation stops new jobs from
// starting; jobs already running are not interrupted (spec.md §5: no
// cancellation of in-flight blocking syscalls).
func Run(ctx context.Context, n int, workers int, fn func(i int) error) []Result {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > n && n > 0 {
		workers = n
	}

	results := make([]Result, n)
	jobs := make(chan int, n)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					results[i] = Result{Index: i, Err: ctx.Err()}
					continue
				default:
				}
				results[i] = Result{Index: i, Err: fn(i)}
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}
