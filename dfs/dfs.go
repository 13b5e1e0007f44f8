// Package dfs: the traversal itself. TopologicalSort and HasCycle live in
// topological.go and cycle.go.
package dfs

import (
	"fmt"

	"github.com/velory/grafo/core"
)

// walker encapsulates mutable state during one DFS run.
type walker[T comparable] struct {
	graph *core.Graph[T]
	opts  Options[T]
	res   *Result[T]
}

// DFS performs a pre-order depth-first traversal of g. With
// WithFullTraversal it covers all disconnected components; otherwise it
// explores only the tree rooted at start.
//
// A missing start vertex is not an error: the returned Result is simply
// empty. Errors are reserved for a nil graph (ErrGraphNil), context
// cancellation, and hook failures.
func DFS[T comparable](g *core.Graph[T], start T, opts ...Option[T]) (*Result[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	w := &walker[T]{
		graph: g,
		opts:  o,
		res: &Result[T]{
			Order:   make([]T, 0, n),
			Depth:   make(map[T]int, n),
			Parent:  make(map[T]T, n),
			Visited: make(map[T]bool, n),
		},
	}

	if o.FullTraversal {
		for _, v := range g.Vertices() {
			if w.res.Visited[v] {
				continue
			}
			if err := w.walk(v); err != nil {
				return w.res, err
			}
		}

		return w.res, nil
	}

	// Fail-silent on an absent start: empty result, no error.
	if !g.HasVertex(start) {
		return w.res, nil
	}

	return w.res, w.walk(start)
}

// walk explores the tree rooted at root on an explicit frame stack,
// honoring cancellation, the depth limit, filtering, and both hooks.
// Neighbor order matches the adjacency record, so the emitted pre-order
// is exactly what call recursion would produce.
func (w *walker[T]) walk(root T) error {
	if err := w.discover(root, 0); err != nil {
		return err
	}
	stack := []frame[T]{{v: root, arcs: w.graph.Neighbors(root)}}

	for len(stack) > 0 {
		// cancellation check, once per step
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		if top.next < len(top.arcs) {
			nbr := top.arcs[top.next].To
			top.next++

			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
				continue
			}
			if w.res.Visited[nbr] {
				continue
			}
			if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
				continue
			}

			w.res.Parent[nbr] = top.v
			if err := w.discover(nbr, top.depth+1); err != nil {
				return err
			}
			stack = append(stack, frame[T]{
				v:     nbr,
				arcs:  w.graph.Neighbors(nbr),
				depth: top.depth + 1,
			})

			continue
		}

		// Frame exhausted: post-order exit, then pop.
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(top.v); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %v: %w", top.v, err)
			}
		}
		stack = stack[:len(stack)-1]
	}

	return nil
}

// discover marks v visited at depth d, records the pre-order emission,
// and fires OnVisit.
func (w *walker[T]) discover(v T, d int) error {
	w.res.Visited[v] = true
	w.res.Depth[v] = d
	w.res.Order = append(w.res.Order, v)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	return nil
}
