// Package bfs provides tunable options and error definitions
// for the unweighted shortest-path enumerator.
package bfs

import "github.com/pkg/errors"

// Sentinel errors for enumerator execution.
var (
	// ErrNetworkNil is returned if a nil Network is passed.
	ErrNetworkNil = errors.New("bfs: network is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrExhausted is returned when reading the route of a finished enumerator.
	ErrExhausted = errors.New("bfs: enumerator exhausted")

	// ErrNeighbors is returned when fetching neighbors from the network fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Network is the read-only graph contract the enumerator walks.
// *core.Graph satisfies it.
type Network interface {
	// HasVertex reports whether id is a vertex of the network.
	HasVertex(id int) bool

	// NeighborIDs returns the vertices reachable from id over one edge.
	NeighborIDs(id int) ([]int, error)
}

// Route is one shortest-path result: Dest is reachable from the start in
// Weight hops and in no fewer.
type Route struct {
	Dest   int
	Weight int
}

// Option configures Enumerator behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation by NewEnumerator.
type Option func(*Options)

// Options holds parameters and callbacks to customize enumeration.
type Options struct {
	// MaxDepth, if > 0, stops after the routes of that weight.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnDiscover is called when a vertex enters the found-set,
	// with the distance it was assigned.
	OnDiscover func(id, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MaxDepth:   0,
		OnDiscover: func(int, int) {},
	}
}

// WithMaxDepth limits enumeration to routes of at most d hops.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnDiscover registers a callback run when a vertex is assigned its distance.
func WithOnDiscover(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}
