// Package pool runs independent batch jobs across a fixed-size worker pool
// and recombines their results in submission order. Jobs must be
// self-contained: no shared mutable state crosses a job boundary, so the
// pool needs no locking beyond its own bookkeeping.
package pool

import (
	"context"
	"fmt"
	"sync"
)

// Job is one unit of batch work. It must capture only immutable inputs.
type Job[T any] func(ctx context.Context) (T, error)

type indexedJob[T any] struct {
	run   Job[T]
	index int
}

// Run executes jobs concurrently on at most workers goroutines and returns
// the results in the same order as the input slice, regardless of
// completion order.
//
// The pool is fail-fast: the first job error cancels the remaining jobs and
// Run returns that error with no partial results. Jobs already running are
// not interrupted mid-flight; they finish and their results are discarded.
func Run[T any](ctx context.Context, jobs []Job[T], workers int) ([]T, error) {
	if workers < 1 {
		return nil, fmt.Errorf("pool: worker count must be positive, got %d", workers)
	}
	if len(jobs) == 0 {
		return nil, nil
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := make(chan indexedJob[T], len(jobs))
	results := make([]T, len(jobs))

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				if ctx.Err() != nil {
					continue
				}
				result, err := job.run(ctx)
				if err != nil {
					errOnce.Do(func() {
						firstErr = err
						cancel()
					})
					continue
				}
				// Each job owns a distinct slot, no lock needed.
				results[job.index] = result
			}
		}()
	}

	for i, job := range jobs {
		queue <- indexedJob[T]{run: job, index: i}
	}
	close(queue)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
