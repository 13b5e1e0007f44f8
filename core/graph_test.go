package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velory/grafo/core"
)

// TestAddVertex_Idempotent verifies that re-adding a vertex changes
// neither the vertex count nor the adjacency structure.
func TestAddVertex_Idempotent(t *testing.T) {
	g := core.New[string]()
	g.AddVertex("A")
	require.NoError(t, g.AddEdge("A", "B"))

	g.AddVertex("A")
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, []string{"B"}, g.Adjacent("A"))
}

// TestAddEdge_UndirectedSymmetry checks that an undirected edge is
// visible from both endpoints and that RemoveEdge clears both directions.
func TestAddEdge_UndirectedSymmetry(t *testing.T) {
	g := core.New[string]()
	require.NoError(t, g.AddEdge("A", "B"))

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))

	g.RemoveEdge("A", "B")
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
}

// TestAddEdge_DirectedAsymmetry checks that a directed edge points one
// way only until the reverse is added explicitly.
func TestAddEdge_DirectedAsymmetry(t *testing.T) {
	g := core.NewDirected[string]()
	require.NoError(t, g.AddEdge("A", "B"))

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))

	require.NoError(t, g.AddEdge("B", "A"))
	assert.True(t, g.HasEdge("B", "A"))
}

// TestAddEdge_CreatesEndpoints verifies that AddEdge registers missing
// endpoints rather than leaving dangling references.
func TestAddEdge_CreatesEndpoints(t *testing.T) {
	g := core.NewDirected[int]()
	require.NoError(t, g.AddEdge(1, 2))

	assert.True(t, g.HasVertex(1))
	assert.True(t, g.HasVertex(2))
	assert.Equal(t, 2, g.VertexCount())
	assert.Empty(t, g.Adjacent(2))
}

// TestAddEdge_SelfLoop covers self-loops on both orientations. An
// undirected self-loop stores the mirror too, so the record holds two
// entries; a single RemoveEdge clears both.
func TestAddEdge_SelfLoop(t *testing.T) {
	und := core.New[string]()
	require.NoError(t, und.AddEdge("A", "A"))
	assert.True(t, und.HasEdge("A", "A"))
	assert.Equal(t, []string{"A", "A"}, und.Adjacent("A"))

	und.RemoveEdge("A", "A")
	assert.False(t, und.HasEdge("A", "A"))
	assert.Empty(t, und.Adjacent("A"))

	dir := core.NewDirected[string]()
	require.NoError(t, dir.AddEdge("A", "A"))
	assert.Equal(t, []string{"A"}, dir.Adjacent("A"))
}

// TestAddEdge_ParallelEdgesKept verifies the multi-edge allowance:
// repeated AddEdge calls accumulate entries, and RemoveEdge peels off one
// at a time.
func TestAddEdge_ParallelEdgesKept(t *testing.T) {
	g := core.NewDirected[string]()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))

	assert.Equal(t, []string{"B", "B", "C"}, g.Adjacent("A"))
	assert.Equal(t, 2, g.InDegree("B"))

	g.RemoveEdge("A", "B")
	assert.True(t, g.HasEdge("A", "B"), "one parallel edge must survive")
	assert.Equal(t, []string{"B", "C"}, g.Adjacent("A"))

	g.RemoveEdge("A", "B")
	assert.False(t, g.HasEdge("A", "B"))
}

// TestAddEdge_WeightHandling covers the weight surface: defaults,
// explicit weights, negative weights, and the unweighted rejection.
func TestAddEdge_WeightHandling(t *testing.T) {
	g := core.NewWeighted[string]()
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(2.5)))
	require.NoError(t, g.AddEdge("A", "C")) // defaults to 1.0
	require.NoError(t, g.AddEdge("A", "D", core.WithWeight(-4)))

	want := []core.Arc[string]{
		{To: "B", Weight: 2.5},
		{To: "C", Weight: 1.0},
		{To: "D", Weight: -4},
	}
	if diff := cmp.Diff(want, g.Neighbors("A")); diff != "" {
		t.Errorf("Neighbors(A) mismatch (-want +got):\n%s", diff)
	}

	plain := core.New[string]()
	err := plain.AddEdge("A", "B", core.WithWeight(3))
	assert.ErrorIs(t, err, core.ErrBadWeight)
	assert.False(t, plain.HasVertex("A"), "rejected AddEdge must not create vertices")
}

// TestRemoveEdge_MatchesOnDestinationOnly verifies that weighted removal
// ignores the stored weight.
func TestRemoveEdge_MatchesOnDestinationOnly(t *testing.T) {
	g := core.NewWeighted[string]()
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(7)))

	g.RemoveEdge("A", "B")
	assert.False(t, g.HasEdge("A", "B"))
}

// TestRemoveVertex_Cascade checks that removal strips every inbound
// reference, parallel arcs included.
func TestRemoveVertex_Cascade(t *testing.T) {
	g := core.NewDirected[string]()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("C", "B"))
	require.NoError(t, g.AddEdge("B", "D"))

	g.RemoveVertex("B")

	assert.False(t, g.HasVertex("B"))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("C", "B"))
	for _, v := range g.Vertices() {
		assert.NotContains(t, g.Adjacent(v), "B")
	}
	assert.True(t, g.HasVertex("D"), "cascade must not remove former neighbors")
}

// TestAbsentInputs_AreSilent exercises the fail-silent contract: missing
// vertices never error, removals no-op, snapshots come back empty.
func TestAbsentInputs_AreSilent(t *testing.T) {
	g := core.New[string]()
	require.NoError(t, g.AddEdge("A", "B"))

	g.RemoveVertex("ghost")
	g.RemoveEdge("ghost", "A")
	g.RemoveEdge("A", "ghost")

	assert.False(t, g.HasVertex("ghost"))
	assert.False(t, g.HasEdge("ghost", "A"))
	assert.Empty(t, g.Adjacent("ghost"))
	assert.Empty(t, g.Neighbors("ghost"))
	assert.Zero(t, g.InDegree("ghost"))
	assert.Zero(t, g.OutDegree("ghost"))
	assert.Equal(t, 2, g.VertexCount())
	assert.True(t, g.HasEdge("A", "B"))
}

// TestVertices_InsertionOrder pins the deterministic enumeration that the
// traversal packages rely on.
func TestVertices_InsertionOrder(t *testing.T) {
	g := core.NewDirected[int]()
	require.NoError(t, g.AddEdge(3, 1))
	g.AddVertex(2)
	require.NoError(t, g.AddEdge(1, 2))

	assert.Equal(t, []int{3, 1, 2}, g.Vertices())

	g.RemoveVertex(1)
	assert.Equal(t, []int{3, 2}, g.Vertices())
}

// TestDegreesAndCounts covers InDegree/OutDegree/EdgeCount across
// orientations.
func TestDegreesAndCounts(t *testing.T) {
	dir := core.NewDirected[string]()
	require.NoError(t, dir.AddEdge("A", "B"))
	require.NoError(t, dir.AddEdge("C", "B"))
	require.NoError(t, dir.AddEdge("B", "B"))

	assert.Equal(t, 3, dir.InDegree("B"))
	assert.Equal(t, 1, dir.OutDegree("B"))
	assert.Equal(t, 3, dir.EdgeCount())

	und := core.New[string]()
	require.NoError(t, und.AddEdge("A", "B"))
	require.NoError(t, und.AddEdge("B", "C"))

	assert.Equal(t, 2, und.EdgeCount())
	assert.Equal(t, 2, und.OutDegree("B"))
}

// TestClone_IsDeep verifies that mutations on a clone leave the original
// untouched, and vice versa.
func TestClone_IsDeep(t *testing.T) {
	g := core.NewWeighted[string]()
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(2)))
	require.NoError(t, g.AddEdge("B", "C"))

	c := g.Clone()
	require.True(t, c.Directed())
	require.True(t, c.Weighted())
	assert.Equal(t, g.Vertices(), c.Vertices())
	if diff := cmp.Diff(g.Neighbors("A"), c.Neighbors("A")); diff != "" {
		t.Errorf("clone adjacency mismatch (-orig +clone):\n%s", diff)
	}

	c.RemoveVertex("B")
	assert.True(t, g.HasVertex("B"))
	assert.True(t, g.HasEdge("A", "B"))

	require.NoError(t, g.AddEdge("A", "C", core.WithWeight(9)))
	assert.False(t, c.HasEdge("A", "C"))
}

// TestScenario_Triangle runs the end-to-end structural scenario: build
// the triangle 1-2-3, then knock out vertex 2.
func TestScenario_Triangle(t *testing.T) {
	g := core.New[int]()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(1, 3))

	require.Equal(t, 3, g.VertexCount())

	g.RemoveVertex(2)
	assert.False(t, g.HasVertex(2))
	assert.False(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(3, 2))
	assert.True(t, g.HasEdge(1, 3))
	assert.True(t, g.HasEdge(3, 1))
	assert.Equal(t, 1, g.EdgeCount())
}
