// Package dfs: topological ordering of directed graphs.
//
// TopologicalSort computes a linear ordering such that for every arc u→v
// of a DAG, u appears before v. The routine never pre-checks for cycles:
// a cyclic input still terminates and yields every vertex exactly once,
// but the ordering is then not a valid topological order. Callers that
// cannot guarantee a DAG should consult HasCycle first.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and arc examined once)
//   - Memory: O(V)     (frame stack and visited set)
package dfs

import (
	"github.com/velory/grafo/core"
)

// TopologicalSort computes a reverse-finishing-order linearization of all
// vertices in g, driving a depth-first walk from every unvisited vertex
// in insertion order.
//
// Returns ErrGraphNil for a nil graph and ErrNotDirected for an
// undirected one. Pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort[T comparable](g *core.Graph[T], opts ...ScanOption) ([]T, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	o := defaultScanOptions()
	for _, opt := range opts {
		opt(&o)
	}

	verts := g.Vertices()
	visited := make(map[T]bool, len(verts))
	order := make([]T, 0, len(verts)) // finishing order, reversed below

	for _, v := range verts {
		if visited[v] {
			continue
		}
		if err := finishOrder(g, v, &o, visited, &order); err != nil {
			return nil, err
		}
	}

	// Reverse the finishing order to obtain the topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

// finishOrder runs one depth-first tree from root on an explicit frame
// stack, appending each vertex to order as its frame finishes. Vertices
// are marked visited at push time, so each appears in order exactly once
// even when the graph is cyclic.
func finishOrder[T comparable](
	g *core.Graph[T],
	root T,
	o *scanOptions,
	visited map[T]bool,
	order *[]T,
) error {
	visited[root] = true
	stack := []frame[T]{{v: root, arcs: g.Neighbors(root)}}

	for len(stack) > 0 {
		select {
		case <-o.ctx.Done():
			return o.ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		if top.next < len(top.arcs) {
			nbr := top.arcs[top.next].To
			top.next++
			if !visited[nbr] {
				visited[nbr] = true
				stack = append(stack, frame[T]{v: nbr, arcs: g.Neighbors(nbr)})
			}

			continue
		}

		*order = append(*order, top.v)
		stack = stack[:len(stack)-1]
	}

	return nil
}
