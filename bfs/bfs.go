// Package bfs: the traversal itself. Options and result types live in
// types.go.
package bfs

import (
	"fmt"

	"github.com/velory/grafo/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[T comparable] struct {
	v     T
	depth int
}

// walker encapsulates mutable BFS state for one run.
type walker[T comparable] struct {
	graph   *core.Graph[T]
	opts    Options[T]
	queue   []queueItem[T]
	visited map[T]bool
	res     *Result[T]
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
//
// A missing start vertex is not an error: the returned Result is simply
// empty. Errors are reserved for a nil graph (ErrGraphNil), invalid
// options (ErrOptionViolation), context cancellation, and OnVisit hook
// failures.
func BFS[T comparable](g *core.Graph[T], start T, opts ...Option[T]) (*Result[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	w := &walker[T]{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem[T], 0, n),
		visited: make(map[T]bool, n),
		res: &Result[T]{
			Order:  make([]T, 0, n),
			Depth:  make(map[T]int, n),
			Parent: make(map[T]T, n),
		},
	}

	// Fail-silent on an absent start: empty result, no error.
	if !g.HasVertex(start) {
		return w.res, nil
	}

	// Seed the frontier; the start is marked visited before enqueue.
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its depth, fires OnEnqueue,
// and appends v to the frontier. Marking happens here, not at dequeue, so
// a vertex can never be enqueued twice.
func (w *walker[T]) enqueue(v T, d int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem[T]{v: v, depth: d})
}

// loop processes the frontier until empty, error, or cancellation.
func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the head of the frontier and fires OnDequeue.
func (w *walker[T]) dequeue() queueItem[T] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[T]) visit(item queueItem[T]) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors walks item's adjacency record in order, applying the
// neighbor filter and MaxDepth, and enqueues each unseen neighbor with a
// parent link back to item.
func (w *walker[T]) enqueueNeighbors(item queueItem[T]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Adjacent(item.v) {
		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		if !w.visited[nbr] {
			w.res.Parent[nbr] = item.v
			w.enqueue(nbr, nextDepth)
		}
	}
}
