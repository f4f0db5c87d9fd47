package bfs

// Collect returns every route from start, in emission order.
func Collect(net Network, start int, opts ...Option) ([]Route, error) {
	e, err := NewEnumerator(net, start, opts...)
	if err != nil {
		return nil, err
	}

	var out []Route
	for r := range e.Routes() {
		out = append(out, r)
	}

	return out, e.Err()
}

// Distances maps every vertex reachable from start to its hop count.
// The start vertex maps to 0.
func Distances(net Network, start int, opts ...Option) (map[int]int, error) {
	e, err := NewEnumerator(net, start, opts...)
	if err != nil {
		return nil, err
	}

	dist := map[int]int{start: 0}
	for r := range e.Routes() {
		dist[r.Dest] = r.Weight
	}

	return dist, e.Err()
}

// Histogram counts reachable vertices per hop count: out[d] is the number of
// vertices at distance d, with out[0] == 1 for the start itself.
func Histogram(net Network, start int, opts ...Option) ([]int, error) {
	e, err := NewEnumerator(net, start, opts...)
	if err != nil {
		return nil, err
	}

	out := []int{1}
	for r := range e.Routes() {
		for len(out) <= r.Weight {
			out = append(out, 0)
		}
		out[r.Weight]++
	}

	return out, e.Err()
}
