// Package grafo is a small family of in-memory graph abstractions —
// undirected, directed, and weighted — built on a single generic
// adjacency-list core, plus the classic algorithms that operate on it.
//
// What you get:
//
//	core/     — the generic Graph[T] primitive: vertices, edges, queries,
//	            cloning, and a pure-formatting adjacency dump
//	bfs/      — breadth-first traversal with depth and parent maps
//	dfs/      — depth-first traversal, topological sort, cycle detection
//	dijkstra/ — single-source shortest paths over stored arc weights
//
// Design notes:
//
//   - One core, three shapes. Instead of three near-identical graph types,
//     a Graph[T] is parametrized by directedness and weightedness at
//     construction time (New, NewDirected, NewWeighted), and every
//     algorithm is written once against that core.
//   - Vertices are plain comparable values. Identity is value equality;
//     adding the same vertex twice is a no-op.
//   - Absent inputs never fail. Removing a missing edge, asking for the
//     neighbors of a missing vertex, or traversing from a missing start
//     all yield empty results rather than errors.
//   - No call recursion. The depth-first algorithms run on explicit work
//     stacks, so memory stays O(V) even on adversarially deep graphs.
//   - Pure Go, stdlib runtime. Observability is delivered through
//     traversal hooks (OnVisit, OnEnqueue, OnExit), not a logger.
//
// Quick ASCII example:
//
//	    1───2
//	     \  │
//	      \ │
//	        3
//
//	a triangle: three vertices, three undirected edges.
//
// See each package's doc.go for the full option surface and error
// contracts.
package grafo
