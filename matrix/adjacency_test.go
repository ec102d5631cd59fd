package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kastelov/eigenrank/core"
	"github.com/kastelov/eigenrank/matrix"
)

func TestBuildAdjacency_WeightedTriangle(t *testing.T) {
	// Graph: A-B(1), B-C(2), C-A(3)
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("C", "A", 3)

	order := []string{"A", "B", "C"}
	mat, err := matrix.BuildAdjacency(g, order)
	require.NoError(t, err)
	require.Equal(t, 3, mat.Rows())

	at := func(i, j int) float64 {
		v, err := mat.At(i, j)
		require.NoError(t, err)
		return v
	}
	require.Equal(t, 1.0, at(0, 1))
	require.Equal(t, 1.0, at(1, 0)) // undirected: symmetric
	require.Equal(t, 2.0, at(1, 2))
	require.Equal(t, 3.0, at(0, 2))
	require.Equal(t, 0.0, at(0, 0)) // no self-loops
}

func TestBuildAdjacency_UnweightedUnitEntries(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)

	mat, err := matrix.BuildAdjacency(g, []string{"A", "B"})
	require.NoError(t, err)
	v, err := mat.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, core.DefaultEdgeWeight, v)
}

func TestBuildAdjacency_ComponentRestriction(t *testing.T) {
	// Edges A-B and C-D; restricting the order to {A,B} must ignore C,D
	// entirely and yield the 2x2 submatrix.
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "D", 0)

	mat, err := matrix.BuildAdjacency(g, []string{"A", "B"})
	require.NoError(t, err)
	require.Equal(t, 2, mat.Rows())
	v, err := mat.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestBuildAdjacency_DirectedAsymmetric(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)

	mat, err := matrix.BuildAdjacency(g, []string{"A", "B"})
	require.NoError(t, err)
	ab, err := mat.At(0, 1)
	require.NoError(t, err)
	ba, err := mat.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, ab)
	require.Equal(t, 0.0, ba)
}

func TestBuildAdjacency_Errors(t *testing.T) {
	_, err := matrix.BuildAdjacency(nil, []string{"A"})
	require.ErrorIs(t, err, matrix.ErrGraphNil)

	g := core.NewGraph()
	_, err = matrix.BuildAdjacency(g, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	require.NoError(t, g.AddVertex("A"))
	_, err = matrix.BuildAdjacency(g, []string{"A", "ghost"})
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)
}
