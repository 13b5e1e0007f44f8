// Package dfs: visitation states, sentinel errors, options, and result
// types for the depth-first algorithms.
package dfs

import (
	"context"
	"errors"

	"github.com/velory/grafo/core"
)

// VertexState represents the visitation state of a vertex during a
// depth-first walk.
const (
	White = iota // White: not visited yet.
	Gray         // Gray: on the active walk stack (visiting).
	Black        // Black: the vertex and all its descendants are done.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS,
	// TopologicalSort, or HasCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNotDirected is returned when TopologicalSort or HasCycle is run
	// on an undirected graph.
	ErrNotDirected = errors.New("dfs: directed graph required")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option[T comparable] func(*Options[T])

// Options holds configurable parameters for DFS traversal: hooks, limits,
// filtering, and full-graph mode. Complexity remains O(V+E) when filters
// and hooks are O(1).
type Options[T comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(v T) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order).
	// Returning an error aborts traversal.
	OnExit func(v T) error

	// MaxDepth, if non-negative, limits descent to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is consulted for each neighbor before
	// descent. Return true to traverse into that neighbor, false to skip.
	FilterNeighbor func(v T) bool

	// FullTraversal, if true, restarts DFS from every unvisited vertex in
	// insertion order, covering disconnected components (forest
	// traversal). Default is false.
	FullTraversal bool
}

// DefaultOptions returns Options with: background context, no hooks, no
// depth limit (MaxDepth = -1), no filtering, single-source traversal.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[T comparable](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook, called when a vertex is
// first discovered.
func WithOnVisit[T comparable](fn func(v T) error) Option[T] {
	return func(o *Options[T]) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as the post-order hook, called after a vertex's
// descendants have been fully explored.
func WithOnExit[T comparable](fn func(v T) error) Option[T] {
	return func(o *Options[T]) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits descent to the given depth. A limit of 0 means only
// the start vertex is visited.
func WithMaxDepth[T comparable](limit int) Option[T] {
	return func(o *Options[T]) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor filters neighbors before descent. If fn(v) == false,
// that neighbor is skipped.
func WithFilterNeighbor[T comparable](fn func(v T) bool) Option[T] {
	return func(o *Options[T]) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables forest mode: DFS restarts from each unvisited
// vertex, covering disconnected components.
func WithFullTraversal[T comparable]() Option[T] {
	return func(o *Options[T]) {
		o.FullTraversal = true
	}
}

// ScanOption configures the full-graph scans (TopologicalSort, HasCycle);
// currently only cancellation.
type ScanOption func(*scanOptions)

// scanOptions holds settings for the full-graph scans.
type scanOptions struct {
	ctx context.Context
}

// defaultScanOptions returns the default scan settings (Background
// context).
func defaultScanOptions() scanOptions {
	return scanOptions{ctx: context.Background()}
}

// WithCancelContext returns a ScanOption that sets the cancellation
// context. Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) ScanOption {
	return func(o *scanOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[T comparable] struct {
	// Order records vertices in discovery (pre-order) sequence, each
	// reachable vertex exactly once.
	Order []T

	// Depth maps each discovered vertex to its distance (#edges along the
	// walk) from its tree root.
	Depth map[T]int

	// Parent maps each discovered vertex to the vertex it was discovered
	// from. Tree roots do not appear as keys.
	Parent map[T]T

	// Visited flags which vertices were reached during the traversal.
	Visited map[T]bool
}

// frame is one entry of the explicit walk stack: a vertex, its adjacency
// snapshot, the index of the next arc to examine, and its depth.
type frame[T comparable] struct {
	v     T
	arcs  []core.Arc[T]
	next  int
	depth int
}
