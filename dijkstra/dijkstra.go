// Package dijkstra: the algorithm itself. Options and errors live in
// types.go.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/velory/grafo/core"
)

// ShortestPath computes the minimum-cost distance from source to every
// vertex of g, relaxing arcs by their stored weight.
//
// Returns:
//
//   - dist: map from vertex to its minimum distance (Unreachable, +Inf,
//     when no path exists; 0 for the source itself).
//   - prev: predecessor map if WithReturnPath was given, nil otherwise.
//     prev[v] == u means the shortest path to v arrives through u;
//     vertices without a finalized path do not appear as keys.
//   - err:  ErrGraphNil, ErrNegativeWeight, or ErrOptionViolation.
//
// An absent source yields an empty dist map, a nil prev map, and no
// error.
func ShortestPath[T comparable](g *core.Graph[T], source T, opts ...Option) (map[T]float64, map[T]T, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// Fail-silent on an absent source: empty result, no error.
	if !g.HasVertex(source) {
		return map[T]float64{}, nil, nil
	}

	verts := g.Vertices()

	// Fail fast on negative weights before exploring anything. Unweighted
	// graphs only ever store core.DefaultWeight, so the scan is a
	// formality there.
	for _, v := range verts {
		for _, a := range g.Neighbors(v) {
			if a.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: arc %v→%v weight=%g", ErrNegativeWeight, v, a.To, a.Weight)
			}
		}
	}

	r := &runner[T]{
		g:       g,
		opts:    cfg,
		dist:    make(map[T]float64, len(verts)),
		visited: make(map[T]bool, len(verts)),
		pq:      make(nodePQ[T], 0, len(verts)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[T]T, len(verts))
	}

	r.init(verts, source)
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single ShortestPath execution.
type runner[T comparable] struct {
	g       *core.Graph[T] // input graph, read-only during the run
	opts    Options
	dist    map[T]float64 // vertex → current best distance from source
	prev    map[T]T       // vertex → predecessor (nil unless ReturnPath)
	visited map[T]bool    // vertex → distance finalized
	pq      nodePQ[T]     // min-heap frontier, lazy decrease-key
}

// init seeds every vertex with the Unreachable sentinel, zeroes the
// source, and pushes it onto the frontier.
func (r *runner[T]) init(verts []T, source T) {
	for _, v := range verts {
		r.dist[v] = Unreachable
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[T]{v: source, dist: 0})
}

// process repeatedly extracts the minimum-distance vertex from the
// frontier, finalizes it, and relaxes its outgoing arcs. Terminates when
// the frontier is empty or the minimum exceeds MaxDistance.
func (r *runner[T]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[T])

		// Skip stale entries left behind by lazy decrease-key.
		if r.visited[item.v] {
			continue
		}
		if item.dist > r.opts.MaxDistance {
			break
		}

		r.visited[item.v] = true
		r.relax(item.v)
	}
}

// relax attempts to improve the distance of every neighbor of u through
// u. An improvement updates dist (and prev), then pushes a fresh heap
// entry rather than reordering the old one.
func (r *runner[T]) relax(u T) {
	for _, a := range r.g.Neighbors(u) {
		if r.visited[a.To] {
			continue
		}
		newDist := r.dist[u] + a.Weight
		if newDist > r.opts.MaxDistance {
			continue
		}
		// Strict improvement only, to avoid duplicate pushes on ties.
		if newDist >= r.dist[a.To] {
			continue
		}

		r.dist[a.To] = newDist
		if r.prev != nil {
			r.prev[a.To] = u
		}
		heap.Push(&r.pq, &nodeItem[T]{v: a.To, dist: newDist})
	}
}

// nodeItem is one frontier entry: a vertex and its tentative distance.
type nodeItem[T comparable] struct {
	v    T
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Stale
// duplicates are tolerated and filtered at extraction time.
type nodePQ[T comparable] []*nodeItem[T]

func (pq nodePQ[T]) Len() int           { return len(pq) }
func (pq nodePQ[T]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ[T]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; called by heap.Push.
func (pq *nodePQ[T]) Push(x any) { *pq = append(*pq, x.(*nodeItem[T])) }

// Pop removes and returns the smallest element; called by heap.Pop.
func (pq *nodePQ[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
