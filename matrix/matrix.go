// Package matrix provides dense linear-algebra primitives for the
// eigenrank centrality kernels: a row-major Dense matrix, mat-vec
// products, and a Jacobi eigen-decomposition for symmetric matrices.
package matrix

// Matrix is the minimal read/write surface shared by all dense kernels.
//
// Implementations must keep At/Set bounds-safe (returning ErrOutOfRange
// rather than panicking) so numeric loops can propagate errors uniformly.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (row, col).
	At(row, col int) (float64, error)

	// Set assigns value v at (row, col).
	Set(row, col int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
