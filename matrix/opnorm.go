// SPDX-License-Identifier: MIT

package matrix

import "github.com/ivlath/ivlath/rounded"

// OpNorm1 computes the matrix 1-norm max_j sum_i mag(A[i,j]), every
// partial sum rounded up so the result is a guaranteed upper bound on the
// true operator norm. NG propagates from A and from a None backend.
func OpNorm1(o rounded.Ops, a *RealMatrix) (float64, bool) {
	best := 0.0
	for j := 0; j < a.c; j++ {
		colSum := 0.0
		for i := 0; i < a.r; i++ {
			colSum = o.Add(colSum, a.unsafeAt(i, j).Mag(), rounded.Up)
		}
		if colSum > best {
			best = colSum
		}
	}
	return best, a.NG() || o.RaisesNG()
}

// OpNormInf computes the matrix infinity-norm max_i sum_j mag(A[i,j]),
// symmetric to OpNorm1 with rows and columns swapped.
func OpNormInf(o rounded.Ops, a *RealMatrix) (float64, bool) {
	best := 0.0
	for i := 0; i < a.r; i++ {
		rowSum := 0.0
		for j := 0; j < a.c; j++ {
			rowSum = o.Add(rowSum, a.unsafeAt(i, j).Mag(), rounded.Up)
		}
		if rowSum > best {
			best = rowSum
		}
	}
	return best, a.NG() || o.RaisesNG()
}
