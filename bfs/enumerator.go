package bfs

import (
	"iter"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/lvclique/nodeset"
)

// Enumerator yields shortest routes from one start vertex, one per Next.
// It is tied to a single (network, start) pair and is single-use.
type Enumerator struct {
	net  Network
	opts Options

	found    *nodeset.Set // vertices with an assigned distance, start included
	fringe   *nodeset.Set // vertices at distance route.Weight
	next     *nodeset.Set // vertices at distance route.Weight+1, being built
	fringeIt *nodeset.Iterator

	route Route
	done  bool
	err   error // first error hit by Routes
}

// NewEnumerator prepares enumeration from start over net and positions the
// cursor on the first route. The network must be fully built.
//
// Implementation:
//   - Stage 1: Validate network, options and start vertex.
//   - Stage 2: Mark start found; seed the fringe with its neighbours at weight 1.
//   - Stage 3: Point at the first fringe member, or finish if there is none.
//
// Errors:
//   - ErrNetworkNil, ErrOptionViolation, ErrStartVertexNotFound,
//     ErrNeighbors (wrapping the network's error).
func NewEnumerator(net Network, start int, opts ...Option) (*Enumerator, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !net.HasVertex(start) {
		return nil, errors.Wrapf(ErrStartVertexNotFound, "start %d", start)
	}

	nbrs, err := net.NeighborIDs(start)
	if err != nil {
		return nil, errors.Wrapf(ErrNeighbors, "neighbors of %d: %v", start, err)
	}

	e := &Enumerator{
		net:    net,
		opts:   o,
		found:  nodeset.New(start),
		fringe: nodeset.New(),
		next:   nodeset.New(),
		route:  Route{Weight: 1},
	}
	for _, v := range nbrs {
		// self-loops and repeated neighbours are already found
		if !e.found.Contains(v) {
			e.discover(e.fringe, v, 1)
		}
	}

	e.fringeIt = e.fringe.Begin()
	if e.fringeIt.Finished() {
		e.finish()
		return e, nil
	}
	e.route.Dest = e.fringeIt.Value()

	return e, nil
}

// Current returns the route under the cursor.
// Returns ErrExhausted once every reachable vertex has been emitted.
func (e *Enumerator) Current() (Route, error) {
	if e.done {
		return Route{}, ErrExhausted
	}

	return e.route, nil
}

// Finished reports whether the enumerator is exhausted.
func (e *Enumerator) Finished() bool {
	return e.done
}

// Depth returns the weight of the level being emitted.
// Once exhausted it is one past the last emitted level.
func (e *Enumerator) Depth() int {
	return e.route.Weight
}

// Reached returns how many vertices have been assigned a distance so far,
// the start vertex included. Discovery runs one level ahead of emission.
func (e *Enumerator) Reached() int {
	return e.found.Len()
}

// Next moves the cursor to the following route.
//
// Implementation:
//   - Stage 1: Expand the vertex being left: every neighbour that is neither
//     found nor in the current fringe is marked found and queued for the
//     next level.
//   - Stage 2: Advance within the fringe.
//   - Stage 3: On fringe exhaustion promote the next fringe, bump the weight
//     and finish if the new fringe is empty.
//
// Behavior highlights:
//   - Dedupe happens at enqueue time, so a vertex reachable from two fringe
//     members is queued once, at the lower level.
//   - Calling Next on an exhausted enumerator is a no-op returning nil.
//
// Errors:
//   - ErrNeighbors if the network fails; the cursor does not move.
func (e *Enumerator) Next() error {
	if e.done {
		return nil
	}

	if e.expandable() {
		cur := e.fringeIt.Value()
		nbrs, err := e.net.NeighborIDs(cur)
		if err != nil {
			return errors.Wrapf(ErrNeighbors, "neighbors of %d: %v", cur, err)
		}
		for _, v := range nbrs {
			if e.found.Contains(v) || e.fringe.Contains(v) {
				continue
			}
			e.discover(e.next, v, e.route.Weight+1)
		}
	}

	e.fringeIt.Next()
	if e.fringeIt.Finished() {
		e.fringe, e.next = e.next, nodeset.New()
		e.route.Weight++
		e.fringeIt = e.fringe.Begin()
		klog.V(3).Infof("bfs: level %d holds %d vertices", e.route.Weight, e.fringe.Len())
		if e.fringeIt.Finished() {
			e.finish()
			return nil
		}
	}
	e.route.Dest = e.fringeIt.Value()

	return nil
}

// Routes yields the current route and every following one, advancing the
// enumerator as it goes. A network failure stops the sequence; check Err.
// Each new sequence clears the error left by the previous one.
func (e *Enumerator) Routes() iter.Seq[Route] {
	return func(yield func(Route) bool) {
		e.err = nil
		for !e.done {
			if !yield(e.route) {
				return
			}
			if err := e.Next(); err != nil {
				e.err = err
				return
			}
		}
	}
}

// Err returns the error that stopped the most recent Routes sequence, if any.
func (e *Enumerator) Err() error {
	return e.err
}

// expandable reports whether neighbours of the current level may still be
// queued under MaxDepth.
func (e *Enumerator) expandable() bool {
	return e.opts.MaxDepth == 0 || e.route.Weight < e.opts.MaxDepth
}

// discover assigns depth to v: found first, then queued into level.
func (e *Enumerator) discover(level *nodeset.Set, v, depth int) {
	e.found.Put(v)
	level.Put(v)
	e.opts.OnDiscover(v, depth)
}

// finish enters the exhausted state and drops both frontiers.
func (e *Enumerator) finish() {
	e.done = true
	e.fringe, e.next, e.fringeIt = nil, nil, nil
}
