// Package dijkstra implements single-source shortest paths over a
// core.Graph, processing vertices in order of increasing distance with a
// min-heap priority queue.
//
// What
//
//   - ShortestPath(g, source, opts...) returns the distance from source to
//     every vertex of the graph. Unreachable vertices carry the Unreachable
//     sentinel (+Inf); the source itself carries 0.
//   - WithReturnPath() additionally returns a predecessor map for path
//     reconstruction; WithMaxDistance(x) stops exploring beyond a cap.
//
// Edge weights
//
//	Relaxation uses the stored arc weight. Unweighted graphs store every
//	arc with core.DefaultWeight (1), so on them ShortestPath degrades to
//	exactly the unit-cost search the contract describes — same distances,
//	same complexity — while weighted graphs get true weighted relaxation
//	rather than silently ignoring their weights.
//
// Negative weights
//
//	The core accepts negative weights on storage; this algorithm does
//	not. All arcs are pre-scanned and a negative weight fails fast with
//	ErrNegativeWeight before any exploration happens.
//
// Implementation notes
//
//   - “Lazy decrease-key”: a relaxation pushes a fresh heap entry instead
//     of adjusting the old one; stale entries are skipped on extraction
//     via the visited set.
//   - An absent source vertex is not an error: the result is an empty
//     distance map, matching the fail-silent contract of the core.
//
// Complexity (V = |vertices|, E = |arcs|)
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E) (distance map plus worst-case heap entries)
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrNegativeWeight  if any arc has a negative weight.
//   - ErrOptionViolation if an invalid Option is supplied (negative
//     MaxDistance).
package dijkstra
