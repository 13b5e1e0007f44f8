// Package core defines the central generic Graph type: a mutable,
// adjacency-list graph over any comparable vertex type.
//
// What
//
//   - Graph[T] stores a mapping from each vertex to its ordered adjacency
//     record, a slice of Arc[T] (destination + weight) entries.
//   - One type covers all three classic shapes. Directedness and
//     weightedness are fixed at construction:
//   - New[T]()         — undirected, unweighted
//   - NewDirected[T]() — directed, unweighted
//   - NewWeighted[T]() — directed, weighted
//     or compose the flags yourself via WithDirected / WithWeighted.
//   - Structural mutation (AddVertex, AddEdge, RemoveVertex, RemoveEdge),
//     membership queries (HasVertex, HasEdge), adjacency snapshots
//     (Adjacent, Neighbors), introspection (Vertices, VertexCount,
//     EdgeCount, InDegree, OutDegree), Clone, and a pure-formatting
//     adjacency dump (String, Fprint).
//
// Semantics
//
//   - Vertex identity is value equality. AddVertex is idempotent.
//   - AddEdge creates both endpoints if missing, then appends the arc;
//     undirected graphs append the mirror arc as well. Parallel edges are
//     permitted: repeated AddEdge calls produce repeated entries, and the
//     core never deduplicates them. Self-loops are permitted.
//   - RemoveEdge removes only the first matching arc (one parallel edge at
//     a time); RemoveVertex removes the vertex and strips every arc that
//     referenced it anywhere in the graph.
//   - Absent inputs are silent: removals no-op, Adjacent returns an empty
//     snapshot, queries return false/zero. No operation on a missing
//     vertex is an error.
//   - Unweighted graphs store every arc with Weight 1; supplying
//     WithWeight on an unweighted graph is the one rejected misuse
//     (ErrBadWeight).
//
// Determinism
//
//	Vertices() enumerates in insertion order and adjacency records keep
//	append order, so every traversal built on this core is reproducible.
//
// Concurrency
//
//	Graph is NOT safe for concurrent use. The core assumes a single
//	writer and single reader; callers sharing a Graph across goroutines
//	must guard it with their own sync.RWMutex (or work on Clone copies).
//
// Complexity (V = |vertices|, E = |arcs|)
//
//   - AddVertex, AddEdge, HasVertex: O(1) amortized
//   - HasEdge, RemoveEdge, Adjacent, Neighbors: O(deg)
//   - RemoveVertex, InDegree, EdgeCount, Clone, String: O(V + E)
package core
