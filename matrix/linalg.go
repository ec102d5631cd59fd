// Package matrix: dense linear-algebra kernels (mat-vec product and
// Jacobi eigen-decomposition). Loop orders are fixed so results are
// bit-for-bit reproducible across runs.
package matrix

import (
	"fmt"
	"math"
)

// operation tags used for uniform error wrapping.
const (
	opMatVec = "MatVec"
	opEigen  = "Eigen"
)

// matrixErrorf wraps an underlying error with the operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("matrix.%s: %w", tag, err)
}

// MatVec computes y = m·x.
//
// Inputs:
//   - m: any Matrix; a *Dense unlocks the flat row-major fast path.
//   - x: vector of length m.Cols().
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time, O(r) memory.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	// Validate m is not nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	// Validate x is non-nil and matches the column count.
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		for i := 0; i < d.r; i++ {
			acc := 0.0
			base := i * d.c
			for j := 0; j < d.c; j++ {
				if xv := x[j]; xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			mv, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Eigen computes all eigenvalues and eigenvectors of a symmetric matrix
// via cyclic Jacobi sweeps.
//
// Implementation:
//   - Stage 1: Validate symmetric square input within tol.
//   - Stage 2: Sweep all (p,q) pairs in fixed p→q order, annihilating
//     each off-diagonal entry with a stable Jacobi rotation and
//     accumulating the rotations into Q.
//   - Stage 3: Converged when max |off-diagonal| ≤ tol; the diagonal
//     then holds the eigenvalues and the columns of Q the corresponding
//     unit eigenvectors (Q is orthogonal).
//
// Inputs:
//   - m: symmetric Matrix (within tol); n := m.Rows().
//   - tol: convergence threshold (typ. 1e-9..1e-12 for float64).
//   - maxIter: cap on full sweeps.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix), in the
//     order produced by the sweeps, not sorted.
//   - Matrix: Q whose column k is the unit eigenvector for eigenvalue k.
//
// Errors:
//   - ErrDimensionMismatch (non-square), ErrAsymmetry (not symmetric
//     within tol), ErrEigenFailed (off-diagonal mass ≥ tol after maxIter).
//
// Determinism: fixed pivot order and update order produce stable results.
// Complexity: O(maxIter * n^3) time, O(n^2) memory.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	// Stage 1: validate (not nil, square, symmetric within tol).
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	n := m.Rows()

	// Working copy A (flat row-major) and orthogonal accumulator Q = I.
	a := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			a[i*n+j] = v
		}
	}
	vecs, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	for iter := 0; iter < maxIter; iter++ {
		// Convergence test on the largest off-diagonal magnitude.
		if offDiagMax(a, n) <= tol {
			return diagonal(a, n), vecs, nil
		}

		// One cyclic sweep: annihilate every (p,q) above the diagonal.
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				apq := a[p*n+q]
				if math.Abs(apq) <= tol {
					continue // already negligible, skip the rotation
				}

				// Stable rotation: t = sign(tau)/(|tau|+sqrt(1+tau^2)).
				app := a[p*n+p]
				aqq := a[q*n+q]
				tau := (aqq - app) / (2 * apq)
				t := 1 / (math.Abs(tau) + math.Sqrt(1+tau*tau))
				if tau < 0 {
					t = -t
				}
				c := 1 / math.Sqrt(1+t*t)
				s := t * c

				rotate(a, vecs.data, n, p, q, c, s)
			}
		}
	}

	// Final check after the last sweep.
	if offDiagMax(a, n) <= tol {
		return diagonal(a, n), vecs, nil
	}

	return nil, nil, matrixErrorf(opEigen, fmt.Errorf("%w: off-diagonal above %g after %d sweeps", ErrEigenFailed, tol, maxIter))
}

// rotate applies A ← Jᵀ·A·J and Q ← Q·J for the Jacobi rotation J with
// J[p][p]=c, J[q][q]=c, J[p][q]=s, J[q][p]=-s. qd is Q's flat storage.
func rotate(a, qd []float64, n, p, q int, c, s float64) {
	// Column rotation: A ← A·J (touches columns p and q of every row).
	for i := 0; i < n; i++ {
		aip, aiq := a[i*n+p], a[i*n+q]
		a[i*n+p] = c*aip - s*aiq
		a[i*n+q] = s*aip + c*aiq
	}
	// Row rotation: A ← Jᵀ·A (touches rows p and q of every column).
	for j := 0; j < n; j++ {
		apj, aqj := a[p*n+j], a[q*n+j]
		a[p*n+j] = c*apj - s*aqj
		a[q*n+j] = s*apj + c*aqj
	}
	// Accumulate eigenvectors: Q ← Q·J.
	for i := 0; i < n; i++ {
		qip, qiq := qd[i*n+p], qd[i*n+q]
		qd[i*n+p] = c*qip - s*qiq
		qd[i*n+q] = s*qip + c*qiq
	}
}

// offDiagMax returns the largest |a[i][j]| with i != j.
func offDiagMax(a []float64, n int) float64 {
	max := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v := math.Abs(a[i*n+j]); v > max {
				max = v
			}
		}
	}

	return max
}

// diagonal extracts the main diagonal of a into a fresh slice.
func diagonal(a []float64, n int) []float64 {
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = a[i*n+i]
	}

	return d
}
