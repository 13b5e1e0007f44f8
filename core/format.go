// Package core: human-readable adjacency dump.
//
// Formatting is pure: the graph never writes to a process-wide stream on
// its own. Callers pick the sink — fmt.Println(g) for stdout, Fprint for
// anything else. The output is a diagnostic aid, one line per vertex, and
// is not a machine-parseable contract.
package core

import (
	"fmt"
	"io"
	"strings"
)

// String renders the adjacency structure, one vertex per line in
// insertion order:
//
//	Vertex <v> -> <neighbor1> <neighbor2> ...
//
// Weighted graphs append each arc's cost:
//
//	Vertex <v> -> <neighbor1>(weight: <w1>) <neighbor2>(weight: <w2>)
//
// Complexity: O(V + E).
func (g *Graph[T]) String() string {
	var b strings.Builder
	g.writeTo(&b)

	return b.String()
}

// Fprint writes the same dump as String to w, returning any write error.
func (g *Graph[T]) Fprint(w io.Writer) error {
	sw := &stickyWriter{w: w}
	g.writeTo(sw)

	return sw.err
}

// writeTo renders the dump onto any writer; errors are the caller's
// concern (strings.Builder never fails, Fprint uses stickyWriter).
func (g *Graph[T]) writeTo(w io.Writer) {
	for _, v := range g.order {
		fmt.Fprintf(w, "Vertex %v ->", v)
		for _, a := range g.adj[v] {
			if g.weighted {
				fmt.Fprintf(w, " %v(weight: %g)", a.To, a.Weight)
			} else {
				fmt.Fprintf(w, " %v", a.To)
			}
		}
		fmt.Fprintln(w)
	}
}

// stickyWriter records the first write error and swallows the rest, so
// writeTo can stay free of error plumbing.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return len(p), nil
	}
	if _, err := s.w.Write(p); err != nil {
		s.err = err
	}

	return len(p), nil
}
