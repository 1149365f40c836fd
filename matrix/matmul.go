// SPDX-License-Identifier: MIT

package matrix

import (
	"math/big"

	"github.com/ivlath/ivlath/config"
	"github.com/ivlath/ivlath/interval"
	"github.com/ivlath/ivlath/rounded"
)

// naiveRealMatMul evaluates C = A*B by direct interval accumulation, one
// fused Add/Mul per inner-axis step, l increasing left to right — the
// slow path spec.md §4.6 keeps as a differential-testing reference for
// Rump's midpoint-radius algorithm.
func naiveRealMatMul(o rounded.Ops, a, b *RealMatrix, workers int) (*RealMatrix, error) {
	if a.c != b.r {
		return nil, ErrDimensionMismatch
	}
	out, _ := newRealMatrixUnchecked(a.r, b.c)
	k := a.c
	err := runColumnBands(b.c, workers, func(lo, hi int) error {
		for j := lo; j < hi; j++ {
			for i := 0; i < a.r; i++ {
				acc := interval.NewSingleton(0)
				for l := 0; l < k; l++ {
					acc = acc.Add(o, a.unsafeAt(i, l).Mul(o, b.unsafeAt(l, j)))
				}
				out.unsafeSet(i, j, acc)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// rumpRealMatMul evaluates C = A*B via Rump's midpoint-radius split
// (spec.md §4.6): the midpoint product is bracketed by a rounded-down and
// a rounded-up plain float matmul, and the radius bound
//
//	rad(C) >= |mid(A)|*rad(B) + rad(A)*(|mid(B)|+rad(B))
//
// is accumulated with two more rounded-up float matmuls. Every inner
// kernel is the same deterministic, column-parallel floatMatMul.
func rumpRealMatMul(o rounded.Ops, a, b *RealMatrix, workers int) (*RealMatrix, error) {
	if a.c != b.r {
		return nil, ErrDimensionMismatch
	}
	ma, ra := a.MidRad(o)
	mb, rb := b.MidRad(o)

	lo, err := floatMatMul(o, rounded.Down, ma, mb, workers)
	if err != nil {
		return nil, err
	}
	hi, err := floatMatMul(o, rounded.Up, ma, mb, workers)
	if err != nil {
		return nil, err
	}

	t1, err := floatMatMul(o, rounded.Up, absBuf(ma), rb, workers)
	if err != nil {
		return nil, err
	}
	mbPlusRb := addBufDirected(o, absBuf(mb), rb, rounded.Up)
	t2, err := floatMatMul(o, rounded.Up, ra, mbPlusRb, workers)
	if err != nil {
		return nil, err
	}
	rad := addBufDirected(o, t1, t2, rounded.Up)

	ng := a.NG() || b.NG() || o.RaisesNG()
	out, _ := newRealMatrixUnchecked(a.r, b.c)
	for i := 0; i < a.r; i++ {
		for j := 0; j < b.c; j++ {
			cLo := o.Sub(lo.at(i, j), rad.at(i, j), rounded.Down)
			cHi := o.Add(hi.at(i, j), rad.at(i, j), rounded.Up)
			v, verr := interval.NewFromBounds(cLo, cHi)
			if verr != nil {
				v = interval.NaI()
			}
			if ng {
				v = v.WithNG()
			}
			out.unsafeSet(i, j, v)
		}
	}
	return out, nil
}

// RealMatMul multiplies two RealMatrix operands, dispatching to the fast
// (Rump) or slow (naive) kernel per mode. workers <= 0 selects
// defaultWorkers scaled to the host.
func RealMatMul(o rounded.Ops, a, b *RealMatrix, mode config.MatMulMode, workers int) (*RealMatrix, error) {
	if workers <= 0 {
		workers = defaultWorkers(b.Cols())
	}
	if mode == config.SlowMatMul {
		return naiveRealMatMul(o, a, b, workers)
	}
	return rumpRealMatMul(o, a, b, workers)
}

// FloatToReal lifts a plain row-major float64 matrix into a RealMatrix of
// exact, zero-radius singleton intervals — the entry point for the
// float-times-interval and interval-times-float mixing variants spec.md
// §4.5 describes: the caller lifts the float operand once, then calls
// RealMatMul as usual.
func FloatToReal(data [][]float64) (*RealMatrix, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(data), len(data[0])
	out, _ := newRealMatrixUnchecked(r, c)
	for i := 0; i < r; i++ {
		if len(data[i]) != c {
			return nil, ErrBadShape
		}
		for j := 0; j < c; j++ {
			out.unsafeSet(i, j, interval.NewSingleton(data[i][j]))
		}
	}
	return out, nil
}

func elementwiseAdd(o rounded.Ops, a, b *RealMatrix) *RealMatrix {
	out, _ := newRealMatrixUnchecked(a.r, a.c)
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			out.unsafeSet(i, j, a.unsafeAt(i, j).Add(o, b.unsafeAt(i, j)))
		}
	}
	return out
}

func elementwiseSub(o rounded.Ops, a, b *RealMatrix) *RealMatrix {
	out, _ := newRealMatrixUnchecked(a.r, a.c)
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			out.unsafeSet(i, j, a.unsafeAt(i, j).Sub(o, b.unsafeAt(i, j)))
		}
	}
	return out
}

// ComplexMatMul multiplies two ComplexMatrix operands via the real matmul
// kernel and Gauss's identity: (ac-bd) + i(ad+bc), spec.md §4.5's
// "complex variants via real/imaginary split".
func ComplexMatMul(o rounded.Ops, a, b *ComplexMatrix, mode config.MatMulMode, workers int) (*ComplexMatrix, error) {
	aRe, aIm := a.SplitParts()
	bRe, bIm := b.SplitParts()

	ac, err := RealMatMul(o, aRe, bRe, mode, workers)
	if err != nil {
		return nil, err
	}
	bd, err := RealMatMul(o, aIm, bIm, mode, workers)
	if err != nil {
		return nil, err
	}
	ad, err := RealMatMul(o, aRe, bIm, mode, workers)
	if err != nil {
		return nil, err
	}
	bc, err := RealMatMul(o, aIm, bRe, mode, workers)
	if err != nil {
		return nil, err
	}

	re := elementwiseSub(o, ac, bd)
	im := elementwiseAdd(o, ad, bc)
	return JoinParts(re, im)
}

// RationalMatMul multiplies two RationalMatrix operands with exact
// *big.Rat arithmetic. Rational bounds have no rounding error, so this is
// always the naive triple loop — spec.md §4.6's stated rational bypass.
func RationalMatMul(a, b *RationalMatrix) (*RationalMatrix, error) {
	if a.c != b.r {
		return nil, ErrDimensionMismatch
	}
	out, _ := NewRationalMatrix(a.r, b.c)
	for i := 0; i < a.r; i++ {
		for j := 0; j < b.c; j++ {
			acc := new(big.Rat)
			tmp := new(big.Rat)
			for l := 0; l < a.c; l++ {
				tmp.Mul(a.unsafeAt(i, l), b.unsafeAt(l, j))
				acc.Add(acc, tmp)
			}
			out.unsafeSet(i, j, acc)
		}
	}
	return out, nil
}

// Operand tags a matrix value with the ElementKind it should be
// multiplied under, letting Multiply branch once per call while the
// inner kernels (RealMatMul, ComplexMatMul, RationalMatMul) stay
// monomorphic, per spec.md §9's dispatch recommendation.
type Operand struct {
	Kind     ElementKind
	Real     *RealMatrix
	Complex  *ComplexMatrix
	Rational *RationalMatrix
}

// Multiply dispatches a*b to the kernel matching both operands' shared
// ElementKind.
func Multiply(o rounded.Ops, mode config.MatMulMode, workers int, a, b Operand) (Operand, error) {
	if a.Kind != b.Kind {
		return Operand{}, ErrDimensionMismatch
	}
	switch a.Kind {
	case RealFloat, RealInterval:
		res, err := RealMatMul(o, a.Real, b.Real, mode, workers)
		if err != nil {
			return Operand{}, err
		}
		return Operand{Kind: a.Kind, Real: res}, nil
	case ComplexFloat, ComplexInterval:
		res, err := ComplexMatMul(o, a.Complex, b.Complex, mode, workers)
		if err != nil {
			return Operand{}, err
		}
		return Operand{Kind: a.Kind, Complex: res}, nil
	case RealRational, ComplexRational:
		if a.Kind == ComplexRational {
			return Operand{}, ErrMatrixNotImplemented
		}
		res, err := RationalMatMul(a.Rational, b.Rational)
		if err != nil {
			return Operand{}, err
		}
		return Operand{Kind: a.Kind, Rational: res}, nil
	default:
		return Operand{}, ErrMatrixNotImplemented
	}
}

func isExactlyZero(v interval.Interval) bool {
	b := v.Bare()
	return !b.IsEmpty() && b.Lo() == 0 && b.Hi() == 0
}

func isExactlyOne(v interval.Interval) bool {
	b := v.Bare()
	return !b.IsEmpty() && b.Lo() == 1 && b.Hi() == 1
}

// MatMulScaled computes C := alpha*(A*B) + beta*Cprev, with fast paths
// skipping the A*B product entirely when alpha is exactly 0 and skipping
// the accumulate term when beta is exactly 0 (Cprev may be nil in that
// case). NG on the result is the OR of NG on A, B, alpha and beta
// unconditionally, independent of which fast path fired, since NG
// records provenance rather than whether a value happened to be used.
func MatMulScaled(o rounded.Ops, alpha interval.Interval, a, b *RealMatrix, beta interval.Interval, cPrev *RealMatrix, mode config.MatMulMode, workers int) (*RealMatrix, error) {
	needAB := !isExactlyZero(alpha)
	needAccum := cPrev != nil && !isExactlyZero(beta)

	var ab *RealMatrix
	if needAB {
		var err error
		ab, err = RealMatMul(o, a, b, mode, workers)
		if err != nil {
			return nil, err
		}
	}

	rows, cols := a.r, b.c
	if !needAB {
		rows, cols = cPrev.r, cPrev.c
	}
	out, _ := newRealMatrixUnchecked(rows, cols)
	anyNG := a.NG() || b.NG() || alpha.NG() || beta.NG()

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var acc interval.Interval
			if needAB {
				term := ab.unsafeAt(i, j)
				if !isExactlyOne(alpha) {
					term = alpha.Mul(o, term)
				}
				acc = term
			} else {
				acc = interval.NewSingleton(0)
			}
			if needAccum {
				bt := cPrev.unsafeAt(i, j)
				if !isExactlyOne(beta) {
					bt = beta.Mul(o, bt)
				}
				acc = acc.Add(o, bt)
			}
			if anyNG {
				acc = acc.WithNG()
			}
			out.unsafeSet(i, j, acc)
		}
	}
	return out, nil
}
