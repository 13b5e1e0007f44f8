// Package dfs: cycle detection for directed graphs.
//
// HasCycle walks every component depth-first with three-color marking.
// A Gray neighbor — one still on the active walk stack — is a back edge,
// which on a directed graph is exactly a cycle.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) (frame stack and state map)
package dfs

import (
	"github.com/velory/grafo/core"
)

// HasCycle reports whether g contains at least one directed cycle,
// returning true on the first back edge found in any component.
// Self-loops count as cycles.
//
// Returns ErrGraphNil for a nil graph and ErrNotDirected for an
// undirected one. Pass WithCancelContext(ctx) to enable cancellation.
func HasCycle[T comparable](g *core.Graph[T], opts ...ScanOption) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.Directed() {
		return false, ErrNotDirected
	}
	o := defaultScanOptions()
	for _, opt := range opts {
		opt(&o)
	}

	verts := g.Vertices()
	state := make(map[T]int, len(verts))

	for _, v := range verts {
		if state[v] != White {
			continue
		}
		found, err := scanComponent(g, v, &o, state)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}

	return false, nil
}

// scanComponent walks the tree rooted at root on an explicit frame stack.
// Vertices turn Gray while any of their descendants are still being
// explored and Black once their frame pops; meeting a Gray neighbor means
// the walk has looped back onto its own active path.
func scanComponent[T comparable](
	g *core.Graph[T],
	root T,
	o *scanOptions,
	state map[T]int,
) (bool, error) {
	state[root] = Gray
	stack := []frame[T]{{v: root, arcs: g.Neighbors(root)}}

	for len(stack) > 0 {
		select {
		case <-o.ctx.Done():
			return false, o.ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		if top.next < len(top.arcs) {
			nbr := top.arcs[top.next].To
			top.next++

			switch state[nbr] {
			case Gray:
				// back edge onto the active path
				return true, nil
			case White:
				state[nbr] = Gray
				stack = append(stack, frame[T]{v: nbr, arcs: g.Neighbors(nbr)})
			}

			continue
		}

		state[top.v] = Black
		stack = stack[:len(stack)-1]
	}

	return false, nil
}
