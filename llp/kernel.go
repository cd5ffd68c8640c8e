package llp

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/llp-go/lattice/internal/executor"
	"github.com/llp-go/lattice/internal/idxset"
)

// Kernel drives the collectForbidden/advance fixed-point cycle for a
// Contract. A Kernel is single-use: once Run (or a caller-driven
// sequence of CollectForbidden/Advance) reaches quiescence, the instance
// that owns it should discard it.
type Kernel struct {
	c    Contract
	pool *executor.Pool
}

// New validates contract and returns a Kernel ready to drive it.
func New(c Contract, opts ...Option) (*Kernel, error) {
	if c.N < 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "llp: N must be non-negative")
	}
	if len(c.Forbidden) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "llp: at least one forbidden predicate is required")
	}
	if len(c.AdvanceSteps) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "llp: at least one advance step is required")
	}

	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	var execOpts []executor.Option
	if o.MaxWorkers > 0 {
		execOpts = append(execOpts, executor.WithMaxWorkers(o.MaxWorkers))
	}

	return &Kernel{c: c, pool: executor.New(execOpts...)}, nil
}

// N returns the index count of the underlying contract.
func (k *Kernel) N() int { return k.c.N }

// NewIndexSet returns a fresh index set sized to the contract's domain,
// convenient for callers that need extra scratch sets (e.g. fastcomp's
// placeholder set for its inner fixed point).
func (k *Kernel) NewIndexSet() *idxset.Set {
	return idxset.New(k.c.N)
}

func (k *Kernel) eligible(v int) bool {
	if k.c.Eligible == nil {
		return true
	}
	return k.c.Eligible(v)
}

// CollectForbidden clears out, then in parallel for every v in [0, N)
// sets out[v] iff eligible(v) && forbidden_kind(v), evaluated against a
// fixed snapshot of the instance's state (no advance may run
// concurrently with a collect). Returns whether out ended up non-empty.
func (k *Kernel) CollectForbidden(ctx context.Context, kind int, out *idxset.Set) (bool, error) {
	out.Clear()
	pred := k.c.Forbidden[kind]
	err := k.pool.Run(ctx, k.c.N, func(_ context.Context, v int) error {
		if k.eligible(v) && pred(v) {
			out.Set(v)
		}
		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "llp: collectForbidden")
	}
	return !out.IsEmpty(), nil
}

// Advance runs every advance sub-step in declared order over L (or the
// step's override selection), joining before proceeding to the next
// sub-step. Writes made by sub-step k are visible to reads in sub-step
// k+1 because each sub-step is its own barrier.
func (k *Kernel) Advance(ctx context.Context, L *idxset.Set) error {
	for step, fn := range k.c.AdvanceSteps {
		indices := L.Slice()
		if k.c.SelectionForStep != nil {
			if sel := k.c.SelectionForStep(step); sel != nil {
				indices = indices[:0]
				for v := 0; v < k.c.N; v++ {
					if sel(v) {
						indices = append(indices, v)
					}
				}
			}
		}
		if err := k.runOver(ctx, indices, func(ctx context.Context, v int) error {
			return fn(ctx, v)
		}); err != nil {
			return errors.Wrapf(err, "llp: advance step %d", step)
		}
	}
	return nil
}

func (k *Kernel) runOver(ctx context.Context, indices []int, fn func(context.Context, int) error) error {
	return k.pool.Run(ctx, len(indices), func(ctx context.Context, i int) error {
		return fn(ctx, indices[i])
	})
}

// Run executes the default outer loop:
//
//	repeat:
//	  hasForb ← collectForbidden(0, L)
//	  if hasForb: advance(L)
//	until ¬hasForb
//
// It is the correct driver for instances with a single forbidden
// predicate and no inner fixed point; instances that need more (e.g.
// fastcomp) drive CollectForbidden/Advance themselves instead.
func (k *Kernel) Run(ctx context.Context) error {
	L := k.NewIndexSet()
	for {
		hasForb, err := k.CollectForbidden(ctx, 0, L)
		if err != nil {
			return err
		}
		if !hasForb {
			return nil
		}
		if err := k.Advance(ctx, L); err != nil {
			return err
		}
	}
}

// Close releases the Kernel's executor resources.
func (k *Kernel) Close() error {
	return k.pool.Close()
}
