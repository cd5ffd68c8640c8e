package executor

import (
	"errors"
	"runtime"
)

// ErrWorkerFailure is wrapped around the first error observed from a
// failed task in a batch.
var ErrWorkerFailure = errors.New("executor: worker task failed")

// Options configures a Pool.
type Options struct {
	MaxWorkers int
}

// Option is a functional option for configuring a Pool.
type Option func(*Options)

// WithMaxWorkers caps the number of tasks that may run concurrently.
// A value <= 0 is ignored and the default is kept.
func WithMaxWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxWorkers = n
		}
	}
}

func defaultOptions() Options {
	return Options{
		MaxWorkers: 4 * runtime.GOMAXPROCS(0),
	}
}
