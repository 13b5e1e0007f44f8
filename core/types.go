// Package core: type declarations, sentinel errors, and constructors.
//
// This file declares Arc, Graph, GraphOption, EdgeOption, and the
// New/NewDirected/NewWeighted constructors. Mutation and query methods
// live in graph.go; formatting lives in format.go.
package core

import "errors"

// ErrBadWeight indicates a WithWeight override passed to AddEdge on a
// graph that was not constructed with WithWeighted.
var ErrBadWeight = errors.New("core: weight override on unweighted graph")

// DefaultWeight is the weight assigned to every arc of an unweighted
// graph, and to weighted arcs added without an explicit WithWeight.
const DefaultWeight = 1.0

// Arc is a single adjacency record entry: the destination vertex plus the
// weight of the connecting edge. Unweighted graphs store DefaultWeight on
// every arc, which is what lets the shortest-path package treat their
// edges as unit cost without a special case.
type Arc[T comparable] struct {
	// To is the destination vertex of this arc.
	To T

	// Weight is the cost of the edge. Negative values are accepted by the
	// core; algorithms document their own tolerance.
	Weight float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*graphConfig)

// graphConfig collects construction flags before the generic Graph is
// allocated, keeping GraphOption free of a type parameter.
type graphConfig struct {
	directed bool
	weighted bool
}

// WithDirected makes edges one-directional: AddEdge(u, v) appends only
// the u→v arc.
func WithDirected() GraphOption {
	return func(c *graphConfig) { c.directed = true }
}

// WithWeighted enables per-edge weights via the WithWeight edge option.
func WithWeighted() GraphOption {
	return func(c *graphConfig) { c.weighted = true }
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeConfig)

// edgeConfig holds per-call edge settings.
type edgeConfig struct {
	weight    float64
	weightSet bool
}

// WithWeight sets the weight of the edge being added. Only legal on a
// weighted graph; AddEdge returns ErrBadWeight otherwise. Negative
// weights are accepted and stored as-is.
func WithWeight(w float64) EdgeOption {
	return func(c *edgeConfig) {
		c.weight = w
		c.weightSet = true
	}
}

// Graph is the core in-memory graph structure: an adjacency map from each
// vertex to its ordered arc record, plus an insertion-order index for
// deterministic enumeration.
//
// The zero value is not usable; construct with New, NewDirected, or
// NewWeighted. Not safe for concurrent use (see package doc).
type Graph[T comparable] struct {
	directed bool
	weighted bool

	// adj maps every present vertex to its adjacency record. A vertex is
	// present iff it is a key here, and a present vertex always has a
	// record (possibly empty).
	adj map[T][]Arc[T]

	// order tracks vertex insertion order for deterministic Vertices().
	order []T
}

// New creates an empty undirected, unweighted Graph. Options may upgrade
// it; New[T](WithWeighted()) yields an undirected weighted graph.
// Complexity: O(1).
func New[T comparable](opts ...GraphOption) *Graph[T] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[T]{
		directed: cfg.directed,
		weighted: cfg.weighted,
		adj:      make(map[T][]Arc[T]),
	}
}

// NewDirected creates an empty directed, unweighted Graph. Equivalent to
// New[T](WithDirected()); extra options are applied after the flag.
func NewDirected[T comparable](opts ...GraphOption) *Graph[T] {
	combined := make([]GraphOption, 0, len(opts)+1)
	combined = append(combined, WithDirected())
	combined = append(combined, opts...)

	return New[T](combined...)
}

// NewWeighted creates an empty directed, weighted Graph — weighted edges
// are one-directional by default. For an undirected weighted graph use
// New[T](WithWeighted()).
func NewWeighted[T comparable](opts ...GraphOption) *Graph[T] {
	combined := make([]GraphOption, 0, len(opts)+2)
	combined = append(combined, WithDirected(), WithWeighted())
	combined = append(combined, opts...)

	return New[T](combined...)
}

// Directed reports whether edges are one-directional on this graph.
func (g *Graph[T]) Directed() bool { return g.directed }

// Weighted reports whether this graph accepts per-edge weights.
func (g *Graph[T]) Weighted() bool { return g.weighted }
