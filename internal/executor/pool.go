package executor

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/errgroup"
)

// Pool is a fixed-size worker pool executing bounded batches of
// index-keyed tasks and joining them as a barrier.
//
// A Pool is safe for reuse across many Run calls; each call is an
// independent barrier.
type Pool struct {
	sem *semaphore.Weighted
}

// New returns a Pool configured by opts.
func New(opts ...Option) *Pool {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pool{sem: semaphore.NewWeighted(int64(o.MaxWorkers))}
}

// Run dispatches fn(ctx, i) for every i in [0, n) across the pool's
// workers and blocks until every invocation has returned or one has
// failed.
//
// Returns only when every submitted task has run to completion. If any
// task fails, the aggregate call fails with the first observed failure;
// other tasks' results are discarded. No ordering is guaranteed among
// tasks of the same call.
func (p *Pool) Run(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n == 0 {
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	var acquireErr error
	for i := 0; i < n; i++ {
		i := i
		if err := p.sem.Acquire(gctx, 1); err != nil {
			// gctx was canceled by an already-failed task. Stop dispatching
			// new work, but still join every goroutine already launched
			// before returning, so a caller never observes a partially
			// finished phase.
			acquireErr = errors.Wrap(err, "executor: acquiring worker slot")
			break
		}
		g.Go(func() error {
			defer p.sem.Release(1)
			if err := fn(gctx, i); err != nil {
				return errors.Wrapf(ErrWorkerFailure, "index %d: %v", i, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return acquireErr
}

// Close releases the pool's resources. It is safe to call Close more
// than once and safe to call it even if Run calls are still pending;
// those calls are unaffected because the semaphore owns no OS resources.
func (p *Pool) Close() error {
	return nil
}
