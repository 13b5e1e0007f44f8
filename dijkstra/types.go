// Package dijkstra: sentinel errors and the functional option surface.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrGraphNil indicates that a nil graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates a negative arc weight in the graph.
	// The core stores negative weights without complaint; this algorithm
	// refuses to run on them.
	ErrNegativeWeight = errors.New("dijkstra: negative arc weight encountered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Unreachable is the distance sentinel (+Inf) reported for vertices with
// no path from the source.
var Unreachable = math.Inf(1)

// Option configures ShortestPath via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// ShortestPath is invoked.
type Option func(*Options)

// Options holds configurable parameters for a ShortestPath run.
type Options struct {
	// ReturnPath, if true, returns the predecessor map; otherwise the
	// prev result is nil.
	ReturnPath bool

	// MaxDistance caps exploration: vertices whose tentative distance
	// exceeds it are never finalized. Default +Inf (no cap).
	MaxDistance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no predecessor map and no distance
// cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration at the given distance. Must be
// non-negative; negative values surface as ErrOptionViolation.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%g)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}
