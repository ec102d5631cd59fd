package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kastelov/eigenrank/matrix"
)

const (
	eigenTol   = 1e-10
	eigenIters = 300
)

// denseFrom builds a Dense from row slices (test helper).
func denseFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

func TestMatVec_Dense(t *testing.T) {
	m := denseFrom(t, [][]float64{{1, 2}, {3, 4}})
	y, err := matrix.MatVec(m, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7}, y)
}

func TestMatVec_LengthMismatch(t *testing.T) {
	m := denseFrom(t, [][]float64{{1, 2}, {3, 4}})
	_, err := matrix.MatVec(m, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatVec_NilInputs(t *testing.T) {
	_, err := matrix.MatVec(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	m := denseFrom(t, [][]float64{{1}})
	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestEigen_Known2x2(t *testing.T) {
	// [[2,1],[1,2]] has eigenvalues 1 and 3.
	m := denseFrom(t, [][]float64{{2, 1}, {1, 2}})
	vals, vecs, err := matrix.Eigen(m, eigenTol, eigenIters)
	require.NoError(t, err)
	require.Len(t, vals, 2)

	sorted := append([]float64(nil), vals...)
	if sorted[0] > sorted[1] {
		sorted[0], sorted[1] = sorted[1], sorted[0]
	}
	require.InDelta(t, 1.0, sorted[0], 1e-9)
	require.InDelta(t, 3.0, sorted[1], 1e-9)

	// Every (value, column) pair satisfies A·v = λ·v.
	requireEigenPairs(t, m, vals, vecs)
}

func TestEigen_AlreadyDiagonal(t *testing.T) {
	m := denseFrom(t, [][]float64{{5, 0}, {0, -2}})
	vals, vecs, err := matrix.Eigen(m, eigenTol, eigenIters)
	require.NoError(t, err)
	require.Equal(t, []float64{5, -2}, vals)

	// Q stays the identity for a diagonal input.
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := vecs.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.InDelta(t, 1.0, v, 1e-12)
			} else {
				require.InDelta(t, 0.0, v, 1e-12)
			}
		}
	}
}

func TestEigen_PathGraphDominantPair(t *testing.T) {
	// Adjacency of the 4-node path 0-1-2-3; the dominant eigenvalue is
	// 2·cos(π/5) ≈ 1.618 and its eigenvector is ∝ sin(kπ/5).
	m := denseFrom(t, [][]float64{
		{0, 1, 0, 0},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{0, 0, 1, 0},
	})
	vals, vecs, err := matrix.Eigen(m, eigenTol, eigenIters)
	require.NoError(t, err)
	requireEigenPairs(t, m, vals, vecs)

	// Locate the largest eigenvalue.
	best := 0
	for k, v := range vals {
		if v > vals[best] {
			best = k
		}
	}
	require.InDelta(t, 2*math.Cos(math.Pi/5), vals[best], 1e-9)
}

func TestEigen_RejectsAsymmetric(t *testing.T) {
	m := denseFrom(t, [][]float64{{0, 1}, {2, 0}})
	_, _, err := matrix.Eigen(m, eigenTol, eigenIters)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestEigen_RejectsNonSquare(t *testing.T) {
	m := denseFrom(t, [][]float64{{0, 1, 2}, {1, 0, 3}})
	_, _, err := matrix.Eigen(m, eigenTol, eigenIters)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEigen_FailsWithoutBudget(t *testing.T) {
	// One sweep cannot diagonalize the path adjacency to 1e-12.
	m := denseFrom(t, [][]float64{
		{0, 1, 0, 0},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{0, 0, 1, 0},
	})
	_, _, err := matrix.Eigen(m, 1e-12, 1)
	require.ErrorIs(t, err, matrix.ErrEigenFailed)
}

// requireEigenPairs asserts A·v_k ≈ λ_k·v_k for every returned pair and
// that each eigenvector column has unit norm.
func requireEigenPairs(t *testing.T, m matrix.Matrix, vals []float64, vecs matrix.Matrix) {
	t.Helper()
	n := m.Rows()
	for k := 0; k < n; k++ {
		v := make([]float64, n)
		norm := 0.0
		for i := 0; i < n; i++ {
			x, err := vecs.At(i, k)
			require.NoError(t, err)
			v[i] = x
			norm += x * x
		}
		require.InDelta(t, 1.0, math.Sqrt(norm), 1e-9, "eigenvector %d norm", k)

		av, err := matrix.MatVec(m, v)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			require.InDelta(t, vals[k]*v[i], av[i], 1e-8, "pair %d row %d", k, i)
		}
	}
}
