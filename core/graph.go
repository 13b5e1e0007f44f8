// Package core: vertex and edge lifecycle plus structural queries.
//
// Every absent-input case here is a silent no-op or an empty result;
// the only error surface is AddEdge's rejection of WithWeight on an
// unweighted graph.
package core

// AddVertex inserts a vertex if missing. Idempotent: adding an existing
// vertex leaves the graph untouched.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddVertex(v T) {
	if _, exists := g.adj[v]; exists {
		return
	}
	g.adj[v] = nil // present with an empty adjacency record
	g.order = append(g.order, v)
}

// AddEdge connects u to v, creating either endpoint first if missing.
// Undirected graphs append the mirror arc v→u as well; a self-loop on an
// undirected graph therefore contributes two entries to the same record.
// Repeated calls append repeated arcs (parallel edges are kept, never
// deduplicated).
//
// The arc weight is DefaultWeight unless WithWeight is supplied on a
// weighted graph; WithWeight on an unweighted graph returns ErrBadWeight
// and leaves the graph unchanged.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddEdge(u, v T, opts ...EdgeOption) error {
	cfg := edgeConfig{weight: DefaultWeight}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.weightSet && !g.weighted {
		return ErrBadWeight
	}

	g.AddVertex(u)
	g.AddVertex(v)

	g.adj[u] = append(g.adj[u], Arc[T]{To: v, Weight: cfg.weight})
	if !g.directed {
		g.adj[v] = append(g.adj[v], Arc[T]{To: u, Weight: cfg.weight})
	}

	return nil
}

// RemoveVertex deletes v and strips every arc referencing v from every
// other record. No-op if v is absent.
// Complexity: O(V + E).
func (g *Graph[T]) RemoveVertex(v T) {
	if _, exists := g.adj[v]; !exists {
		return
	}
	delete(g.adj, v)

	// Cascade: drop all inbound references, across every record.
	for u, arcs := range g.adj {
		g.adj[u] = stripArcs(arcs, v)
	}

	for i, x := range g.order {
		if x == v {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

// RemoveEdge deletes the first arc u→v (one parallel edge per call), and
// for undirected graphs the first mirror arc v→u. No-op if either
// endpoint is absent or no such arc exists.
// Complexity: O(deg(u) + deg(v)).
func (g *Graph[T]) RemoveEdge(u, v T) {
	if _, exists := g.adj[u]; !exists {
		return
	}
	if _, exists := g.adj[v]; !exists {
		return
	}

	g.adj[u] = removeFirstArc(g.adj[u], v)
	if !g.directed {
		g.adj[v] = removeFirstArc(g.adj[v], u)
	}
}

// HasVertex reports whether v is present.
// Complexity: O(1).
func (g *Graph[T]) HasVertex(v T) bool {
	_, exists := g.adj[v]

	return exists
}

// HasEdge reports whether at least one arc u→v exists. On undirected
// graphs arcs are mirrored, so HasEdge answers symmetrically.
// Complexity: O(deg(u)).
func (g *Graph[T]) HasEdge(u, v T) bool {
	for _, a := range g.adj[u] {
		if a.To == v {
			return true
		}
	}

	return false
}

// Adjacent returns a snapshot of v's neighbor values in adjacency order,
// weights dropped. Parallel edges yield repeated entries. Returns an
// empty slice (never an error) when v is absent.
// Complexity: O(deg(v)).
func (g *Graph[T]) Adjacent(v T) []T {
	arcs := g.adj[v]
	out := make([]T, len(arcs))
	for i, a := range arcs {
		out[i] = a.To
	}

	return out
}

// Neighbors returns a snapshot of v's full adjacency record, weights
// included. Returns an empty slice when v is absent. Mutating the
// returned slice does not affect the graph.
// Complexity: O(deg(v)).
func (g *Graph[T]) Neighbors(v T) []Arc[T] {
	arcs := g.adj[v]
	out := make([]Arc[T], len(arcs))
	copy(out, arcs)

	return out
}

// Vertices returns a snapshot of all vertices in insertion order. The
// result is set-like: each vertex appears exactly once.
// Complexity: O(V).
func (g *Graph[T]) Vertices() []T {
	out := make([]T, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph[T]) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of edges. Mirrored arc pairs on an
// undirected graph count as one edge; parallel edges count individually.
// Complexity: O(V).
func (g *Graph[T]) EdgeCount() int {
	total := 0
	for _, arcs := range g.adj {
		total += len(arcs)
	}
	if !g.directed {
		total /= 2
	}

	return total
}

// InDegree counts the arcs terminating at v across the whole graph,
// self-loops included. Parallel inbound edges each count. Returns 0 when
// v is absent. Not cached: every call scans all records.
// Complexity: O(V + E).
func (g *Graph[T]) InDegree(v T) int {
	count := 0
	for _, arcs := range g.adj {
		for _, a := range arcs {
			if a.To == v {
				count++
			}
		}
	}

	return count
}

// OutDegree returns the length of v's adjacency record, or 0 when v is
// absent. On undirected graphs this equals the plain degree (a self-loop
// contributes two).
// Complexity: O(1).
func (g *Graph[T]) OutDegree(v T) int { return len(g.adj[v]) }

// Clone returns a deep copy: flags, vertices, and adjacency records.
// Mutations on the clone never touch the original.
// Complexity: O(V + E).
func (g *Graph[T]) Clone() *Graph[T] {
	clone := &Graph[T]{
		directed: g.directed,
		weighted: g.weighted,
		adj:      make(map[T][]Arc[T], len(g.adj)),
		order:    make([]T, len(g.order)),
	}
	copy(clone.order, g.order)
	for v, arcs := range g.adj {
		if arcs == nil {
			clone.adj[v] = nil
			continue
		}
		dup := make([]Arc[T], len(arcs))
		copy(dup, arcs)
		clone.adj[v] = dup
	}

	return clone
}

// stripArcs removes every arc targeting v, in place.
func stripArcs[T comparable](arcs []Arc[T], v T) []Arc[T] {
	kept := arcs[:0]
	for _, a := range arcs {
		if a.To != v {
			kept = append(kept, a)
		}
	}

	return kept
}

// removeFirstArc removes the first arc targeting v, matching on
// destination identity and ignoring weight.
func removeFirstArc[T comparable](arcs []Arc[T], v T) []Arc[T] {
	for i, a := range arcs {
		if a.To == v {
			return append(arcs[:i], arcs[i+1:]...)
		}
	}

	return arcs
}
