// Package matrix provides dense, verified, and plain numeric matrices over
// real, complex, and rational elements.
//
// The matrix package provides:
//
//   - RealMatrix, ComplexMatrix, and RationalMatrix, storing one
//     interval.Interval, interval.ComplexInterval, or exact big.Rat per
//     cell respectively, with directed-rounding matrix multiplication
//     (naive and Rump's midpoint-radius algorithm), elementwise arithmetic,
//     and operator norms.
//   - Dense, a plain float64 matrix (with Transpose) that the float64
//     kernels in matrix/ops (LU, inverse, Jacobi eigendecomposition) work
//     on for the ordinary floating-point approximation step that
//     ops.MatInv/ops.EigSolver then wrap in a rigorous enclosure.
//   - A deterministic column-band worker pool (columnbands.go) shared by
//     every matrix multiplication kernel.
//
// See matrix/ops for the verified matrix inversion and eigenvalue solvers
// built on top of this package.
package matrix
