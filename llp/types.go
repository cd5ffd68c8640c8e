package llp

import (
	"context"
	"errors"
)

// ErrInvalidArgument indicates a malformed Contract, such as a
// negative N or zero advance steps.
var ErrInvalidArgument = errors.New("llp: invalid argument")

// Contract is the capability set an algorithm instance supplies to the
// Kernel. It replaces the overridable-method abstract base class of the
// original design with a struct of closures, per the target language's
// preference for interface/closure composition over inheritance.
type Contract struct {
	// N is the index count; the domain is [0, N).
	N int

	// Eligible reports whether v may be forbidden this iteration.
	// A nil Eligible is treated as "always eligible".
	Eligible func(v int) bool

	// Forbidden holds one predicate per forbidden-kind, evaluated by
	// CollectForbidden(kind, ...). Must hold at least one entry.
	Forbidden []func(v int) bool

	// AdvanceSteps holds one function per ordered advance sub-step,
	// invoked in order by Advance. Must hold at least one entry.
	AdvanceSteps []func(ctx context.Context, v int) error

	// SelectionForStep optionally overrides, for a given sub-step
	// index, which indices it runs over instead of the wave's L. A
	// nil return (or a nil SelectionForStep) means "use L".
	SelectionForStep func(step int) func(v int) bool
}

// Options configures a Kernel's executor pool.
type Options struct {
	MaxWorkers int
}

// Option is a functional option for configuring a Kernel.
type Option func(*Options)

// WithMaxWorkers caps the number of concurrently running phase tasks.
func WithMaxWorkers(n int) Option {
	return func(o *Options) { o.MaxWorkers = n }
}
