package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kastelov/eigenrank/core"
)

func TestConnectedComponents_Empty(t *testing.T) {
	g := core.NewGraph()
	require.Empty(t, g.ConnectedComponents())
}

func TestConnectedComponents_SingleComponent(t *testing.T) {
	// Path A-B-C collapses into one sorted component.
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	comps := g.ConnectedComponents()
	require.Equal(t, [][]string{{"A", "B", "C"}}, comps)
}

func TestConnectedComponents_TwoIslandsAndIsolated(t *testing.T) {
	// Islands {A,B}, {C,D} and the isolated vertex Z.
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "D", 0)
	require.NoError(t, g.AddVertex("Z"))

	comps := g.ConnectedComponents()
	require.Equal(t, [][]string{{"A", "B"}, {"C", "D"}, {"Z"}}, comps)
}

func TestConnectedComponents_DirectionBlind(t *testing.T) {
	// A→B→C in a directed graph is still one component.
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	comps := g.ConnectedComponents()
	require.Equal(t, [][]string{{"A", "B", "C"}}, comps)
}

func TestConnectedComponents_PartitionExact(t *testing.T) {
	// Every vertex appears exactly once across all components.
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "D", 0)
	_, _ = g.AddEdge("D", "E", 0)
	require.NoError(t, g.AddVertex("F"))

	seen := make(map[string]int)
	for _, comp := range g.ConnectedComponents() {
		for _, id := range comp {
			seen[id]++
		}
	}
	for _, id := range g.Vertices() {
		require.Equal(t, 1, seen[id], "vertex %s", id)
	}
}
