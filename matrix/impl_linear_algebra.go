// SPDX-License-Identifier: MIT
// Package matrix provides Transpose, the one plain-float64 Dense operation
// the verified-numerics layer needs outside the interval-valued types:
// matrix/ops's EigSolver uses it to turn a Jacobi eigenvector matrix Q into
// its own inverse Q^T (valid because Jacobi rotations keep Q orthogonal),
// avoiding a second LU-based inversion for the one case where the inverse
// is free.
//
// Notes:
//   - matrixErrorf centralizes error wrapping so kernel call sites stay
//     one line; keep the "<tag>: <err>" shape stable so errors.Is/As
//     continue to work against wrapped sentinels.
package matrix

import "fmt"

// opTranspose is the wrapping tag used by matrixErrorf for this kernel.
const opTranspose = "Transpose"

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As still match the underlying sentinel.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns mᵀ as a freshly allocated Dense; m is never mutated.
// Fast-path walks a *Dense backing slice directly; the fallback uses the
// generic At/Set interface for any other Matrix implementation.
// Complexity: O(r*c) time, O(r*c) space.
func Transpose(m Matrix) (Matrix, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast-path for Dense → Dense
	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	// Return result
	return res, nil
}
