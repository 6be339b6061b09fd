package disk

import (
	"fmt"

	"github.com/katalvlaran/knotgrid/gridgraph"
)

// Option configures Build via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Build is invoked.
type Option func(*Options)

// Options holds the parameters of a grid build.
type Options struct {
	// Workers is the number of rows hashed concurrently. 1 is sequential.
	Workers int

	// Conn selects region connectivity for the resulting grid.
	Conn gridgraph.Connectivity

	err error
}

// DefaultOptions returns sequential hashing and 4-connectivity.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Conn:    gridgraph.Conn4,
	}
}

// WithWorkers sets how many rows are hashed concurrently.
//
//	n >= 1: at most n rows in flight
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithConnectivity overrides the neighbor connectivity of the built grid.
func WithConnectivity(c gridgraph.Connectivity) Option {
	return func(o *Options) {
		if c != gridgraph.Conn4 && c != gridgraph.Conn8 {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, c)
			return
		}
		o.Conn = c
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
