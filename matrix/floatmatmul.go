// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/ivlath/ivlath/rounded"
)

// floatMatMul computes a*b at float64 precision, every accumulation step
// rounded in dir, parallelized across output column bands. Within a
// band the reduction over the inner axis l proceeds strictly increasing
// (l = 0, 1, ..., k-1) so results are deterministic regardless of worker
// count — spec.md §5's ordering guarantee.
func floatMatMul(o rounded.Ops, dir rounded.Direction, a, b floatBuf, workers int) (floatBuf, error) {
	if a.c != b.r {
		return floatBuf{}, ErrDimensionMismatch
	}
	out := newFloatBuf(a.r, b.c)
	k := a.c
	err := runColumnBands(b.c, workers, func(lo, hi int) error {
		for j := lo; j < hi; j++ {
			for i := 0; i < a.r; i++ {
				acc := 0.0
				for l := 0; l < k; l++ {
					acc = o.Fma(a.at(i, l), b.at(l, j), acc, dir)
				}
				out.set(i, j, acc)
			}
		}
		return nil
	})
	return out, err
}

// absBuf returns the elementwise absolute value of a.
func absBuf(a floatBuf) floatBuf {
	out := newFloatBuf(a.r, a.c)
	for i, v := range a.data {
		out.data[i] = math.Abs(v)
	}
	return out
}

// addBufDirected returns a+b elementwise, each sum rounded in dir.
func addBufDirected(o rounded.Ops, a, b floatBuf, dir rounded.Direction) floatBuf {
	out := newFloatBuf(a.r, a.c)
	for i := range a.data {
		out.data[i] = o.Add(a.data[i], b.data[i], dir)
	}
	return out
}
