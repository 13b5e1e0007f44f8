// Package dfs implements depth-first traversal, topological sorting, and
// cycle detection over a core.Graph.
//
// What
//
//   - DFS(g, start, opts...): pre-order depth-first traversal from a root,
//     or a full forest via WithFullTraversal, with pre-/post-order hooks,
//     depth limiting, neighbor filtering, and cancellation.
//   - TopologicalSort(g, opts...): reverse-finishing-order linearization of
//     a directed graph. Each vertex appears exactly once. No cycle
//     pre-check is performed: on a cyclic graph the call still terminates,
//     but the ordering is not a valid topological order — run HasCycle
//     first when the input is not known to be a DAG.
//   - HasCycle(g, opts...): back-edge detection via three-color marking
//     (White/Gray/Black); reports true on the first cycle found in any
//     component.
//
// No call recursion
//
//	All three algorithms run on explicit frame stacks. Recursion depth in
//	a depth-first walk is bounded only by the longest simple path, which
//	on deep chain graphs overflows the goroutine stack; the explicit
//	stack bounds memory at O(V) heap deterministically.
//
// Semantics
//
//   - DFS emits pre-order: a vertex is recorded and OnVisit fires at
//     discovery, before its descendants. OnExit fires after the subtree is
//     exhausted.
//   - An absent start vertex is not an error: DFS returns an empty Result,
//     matching the fail-silent contract of the core.
//   - TopologicalSort and HasCycle are defined for directed graphs only
//     and return ErrNotDirected otherwise (every mirrored arc of an
//     undirected graph would otherwise read as a trivial cycle).
//
// Determinism
//
//	Neighbors are explored in adjacency append order and full-graph scans
//	iterate core.Vertices() insertion order, so results are reproducible.
//
// Complexity (V = |vertices|, E = |arcs|)
//
//   - Time:   O(V + E) for all three algorithms
//   - Memory: O(V) for the frame stack and state maps
//
// Errors
//
//   - ErrGraphNil    if the graph pointer is nil.
//   - ErrNotDirected if TopologicalSort or HasCycle is run on an
//     undirected graph.
//   - context.Canceled / DeadlineExceeded if the context ends mid-walk.
//   - Wrapped user-supplied hook errors from OnVisit / OnExit.
package dfs
