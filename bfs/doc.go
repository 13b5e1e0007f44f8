// Package bfs provides breadth-first search over a core.Graph, returning
// the level-order visit sequence, unweighted distances, and parent links.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a
//     start vertex, using a FIFO frontier.
//   - Returns a Result containing:
//   - Order: visit sequence, start first, each reachable vertex once
//   - Depth: map from vertex → distance (edges) from the start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a vertex joins the frontier)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows pruning individual arcs via WithFilterNeighbor and bounding
//     exploration via WithMaxDepth.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs and level layering.
//
// Semantics
//
//	Vertices are marked visited when enqueued, not when dequeued, so no
//	vertex is ever enqueued twice. A start vertex that is absent from the
//	graph is not an error: BFS returns an empty Result, matching the
//	fail-silent contract of the core.
//
// Determinism
//
//	core.Neighbors preserves arc append order and the frontier is FIFO,
//	so the visit sequence is fully reproducible.
//
// Complexity (V = |vertices|, E = |arcs|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, Depth map, Parent map, and visited set
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrOptionViolation if an invalid Option is supplied (negative MaxDepth).
//   - context.Canceled / DeadlineExceeded if the context ends mid-search.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
