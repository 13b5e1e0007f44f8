package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velory/grafo/core"
	"github.com/velory/grafo/dfs"
)

// TestHasCycle_NilGraph verifies the nil-pointer guard.
func TestHasCycle_NilGraph(t *testing.T) {
	_, err := dfs.HasCycle[string](nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestHasCycle_UndirectedGraph ensures undirected graphs are rejected.
func TestHasCycle_UndirectedGraph(t *testing.T) {
	g := core.New[string]()
	_, err := dfs.HasCycle(g)
	assert.ErrorIs(t, err, dfs.ErrNotDirected)
}

// TestHasCycle_ChainThenBackEdge walks the spec scenario: A→B→C is
// acyclic until the back edge C→A closes the loop.
func TestHasCycle_ChainThenBackEdge(t *testing.T) {
	g := core.NewDirected[string]()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")

	ok, err := dfs.HasCycle(g)
	require.NoError(t, err)
	assert.False(t, ok)

	_ = g.AddEdge("C", "A")
	ok, err = dfs.HasCycle(g)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestHasCycle_SelfLoop treats v→v as a cycle.
func TestHasCycle_SelfLoop(t *testing.T) {
	g := core.NewDirected[int]()
	_ = g.AddEdge(1, 1)

	ok, err := dfs.HasCycle(g)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestHasCycle_DiamondIsAcyclic distinguishes converging paths from
// cycles: two routes into D must not read as a back edge.
func TestHasCycle_DiamondIsAcyclic(t *testing.T) {
	g := core.NewDirected[string]()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("A", "C")
	_ = g.AddEdge("B", "D")
	_ = g.AddEdge("C", "D")

	ok, err := dfs.HasCycle(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestHasCycle_CycleInLaterComponent finds a loop that is only reachable
// from a later root.
func TestHasCycle_CycleInLaterComponent(t *testing.T) {
	g := core.NewDirected[string]()
	_ = g.AddEdge("A", "B") // clean component first
	_ = g.AddEdge("X", "Y")
	_ = g.AddEdge("Y", "X")

	ok, err := dfs.HasCycle(g)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestHasCycle_EmptyGraph is trivially cycle-free.
func TestHasCycle_EmptyGraph(t *testing.T) {
	g := core.NewDirected[string]()
	ok, err := dfs.HasCycle(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestHasCycle_Cancelled aborts the scan.
func TestHasCycle_Cancelled(t *testing.T) {
	g := core.NewDirected[int]()
	_ = g.AddEdge(1, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.HasCycle(g, dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
