// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/ivlath/ivlath/config"
	"github.com/ivlath/ivlath/interval"
	"github.com/ivlath/ivlath/rounded"

	"gonum.org/v1/gonum/mat"
)

// RealMatrix is a dense row-major matrix of interval.Interval — the
// storage this module's verified operations (MatMul, OpNorm, and
// matrix/ops's MatInv/EigSolver) operate on for the RealInterval element
// kind, adapted from Dense's row-major layout but element-typed for
// Interval instead of float64.
type RealMatrix struct {
	r, c int
	data []interval.Interval
}

// NewRealMatrix allocates an r×c matrix of NaI entries, matching Dense's
// "always start from a well-defined value" constructor discipline.
//
// Fails with config.ErrUnsupportedBoundType under the process-wide
// config.Global().BoundType() when it names anything other than
// Binary64 — the only bound type with a working numeric backend. This
// is the package's user-facing boundary check; internal call sites
// building a result over an already-validated input (matrix-multiply
// output, Identity, a complex split) use newRealMatrixUnchecked and
// inherit their input's already-validated BoundType instead of
// re-deriving it.
func NewRealMatrix(r, c int) (*RealMatrix, error) {
	if bt := config.Global().BoundType(); bt != config.Binary64 {
		return nil, config.ErrUnsupportedBoundType
	}
	return newRealMatrixUnchecked(r, c)
}

func newRealMatrixUnchecked(r, c int) (*RealMatrix, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]interval.Interval, r*c)
	for i := range data {
		data[i] = interval.NaI()
	}
	return &RealMatrix{r: r, c: c, data: data}, nil
}

// Rows and Cols report the shape.
func (m *RealMatrix) Rows() int { return m.r }
func (m *RealMatrix) Cols() int { return m.c }

// At retrieves the element at (i, j). Returns ErrOutOfRange on invalid
// indices, matching Dense.At's safety contract.
func (m *RealMatrix) At(i, j int) (interval.Interval, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return interval.Interval{}, ErrOutOfRange
	}
	return m.data[i*m.c+j], nil
}

// Set assigns v at (i, j).
func (m *RealMatrix) Set(i, j int, v interval.Interval) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return ErrOutOfRange
	}
	m.data[i*m.c+j] = v
	return nil
}

// unsafeAt/unsafeSet skip bounds checks for hot loops that have already
// validated indices via shape checks — the same fast-path discipline
// impl_linear_algebra.go uses on Dense's flat buffer.
func (m *RealMatrix) unsafeAt(i, j int) interval.Interval    { return m.data[i*m.c+j] }
func (m *RealMatrix) unsafeSet(i, j int, v interval.Interval) { m.data[i*m.c+j] = v }

// NG reports whether any element carries the NG flag.
func (m *RealMatrix) NG() bool {
	for _, v := range m.data {
		if v.NG() {
			return true
		}
	}
	return false
}

// IsAllNaI reports whether every element is NaI — the sentinel-free
// failure mode spec.md §4.7/§4.8 describe for an unverifiable result.
func (m *RealMatrix) IsAllNaI() bool {
	for _, v := range m.data {
		if !interval.IsNaI(v) {
			return false
		}
	}
	return true
}

// AllNaI builds an r×c matrix where every entry is NaI.
func AllNaI(r, c int) *RealMatrix {
	data := make([]interval.Interval, r*c)
	for i := range data {
		data[i] = interval.NaI()
	}
	return &RealMatrix{r: r, c: c, data: data}
}

// MidFloat extracts the float64 midpoint of every entry into a floatBuf —
// the "mid(A)" step spec.md §4.6/§4.7/§4.8 all use as their entry point
// into a non-verified float solver. Callers that expose this value to
// verified arithmetic again must reattach NG themselves.
func (m *RealMatrix) MidFloat() floatBuf {
	out := newFloatBuf(m.r, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.set(i, j, m.unsafeAt(i, j).Bare().Mid())
		}
	}
	return out
}

// MidRad extracts Rump's midpoint-radius pair for every entry: mid is
// (inf+sup)/2 rounded up, rad is mid-inf rounded up, so mid±rad always
// encloses the source interval regardless of which way true rounding
// would have gone (spec.md §4.6).
func (m *RealMatrix) MidRad(o rounded.Ops) (mid, rad floatBuf) {
	mid = newFloatBuf(m.r, m.c)
	rad = newFloatBuf(m.r, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			b := m.unsafeAt(i, j).Bare()
			lo, hi := b.Lo(), b.Hi()
			mv := o.Div(o.Add(lo, hi, rounded.Up), 2, rounded.Up)
			rv := o.Sub(mv, lo, rounded.Up)
			mid.set(i, j, mv)
			rad.set(i, j, rv)
		}
	}
	return mid, rad
}

// Identity builds the n×n identity RealMatrix with com-decorated
// singleton entries.
func Identity(n int) *RealMatrix {
	m, _ := newRealMatrixUnchecked(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := 0.0
			if i == j {
				v = 1.0
			}
			m.unsafeSet(i, j, interval.NewSingleton(v))
		}
	}
	return m
}

// MidGonum copies every entry's midpoint into a *mat.Dense — the bridge
// matrix/ops's EigSolver uses to hand its non-verified fallback float
// solver step (gonum's eigendecomposition) its input,
// per spec.md §4.7/§4.8's "step 1: compute an ordinary float
// approximation" opening move.
func (m *RealMatrix) MidGonum() *mat.Dense {
	data := make([]float64, m.r*m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			data[i*m.c+j] = m.unsafeAt(i, j).Bare().Mid()
		}
	}
	return mat.NewDense(m.r, m.c, data)
}

// MidDense copies every entry's midpoint into a *Dense — the bridge
// matrix/ops's MatInv and EigSolver use to hand the package's own plain
// float64 kernels (Inverse, Eigen, Transpose) their input, the same role
// MidGonum plays for gonum's solvers.
func (m *RealMatrix) MidDense() *Dense {
	d, _ := NewDense(m.r, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			_ = d.Set(i, j, m.unsafeAt(i, j).Bare().Mid())
		}
	}
	return d
}

// FromMatrix lifts any plain float64 Matrix (typically a *Dense produced
// by ops.Inverse/ops.Eigen/Transpose) into singleton RealMatrix entries.
// ng follows FromGonumDense's convention: false for a midpoint handed to
// a further rigorous verification step, true when the lifted values ARE
// the claimed final result with no further rigorous bound attached.
func FromMatrix(src Matrix, ng bool) (*RealMatrix, error) {
	r, c := src.Rows(), src.Cols()
	if r <= 0 || c <= 0 {
		return nil, ErrInvalidDimensions
	}
	out, _ := newRealMatrixUnchecked(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			fv, err := src.At(i, j)
			if err != nil {
				return nil, err
			}
			v := interval.NewSingleton(fv)
			if ng {
				v = v.WithNG()
			}
			out.unsafeSet(i, j, v)
		}
	}
	return out, nil
}

// FromGonumDense lifts a *mat.Dense produced by a non-verified float
// solver into singleton RealMatrix entries. ng controls whether every
// entry is tagged NG: false when the lift is merely a midpoint input to
// a rigorous verification step that follows (the lift itself introduces
// no enclosure claim), true when the lifted values ARE the claimed final
// result with no further rigorous bound attached.
func FromGonumDense(d *mat.Dense, ng bool) (*RealMatrix, error) {
	r, c := d.Dims()
	if r <= 0 || c <= 0 {
		return nil, ErrInvalidDimensions
	}
	out, _ := newRealMatrixUnchecked(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := interval.NewSingleton(d.At(i, j))
			if ng {
				v = v.WithNG()
			}
			out.unsafeSet(i, j, v)
		}
	}
	return out, nil
}

// Add and Sub are elementwise operations between two RealMatrix values
// of matching shape. Defined as methods (not package functions) so the
// package-level names Add/Sub stay free — the same namespace trick
// interval.Interval uses against bareinterval.go's package-level Add/Sub.
func (a *RealMatrix) Add(o rounded.Ops, b *RealMatrix) (*RealMatrix, error) {
	if a.r != b.r || a.c != b.c {
		return nil, ErrDimensionMismatch
	}
	return elementwiseAdd(o, a, b), nil
}

func (a *RealMatrix) Sub(o rounded.Ops, b *RealMatrix) (*RealMatrix, error) {
	if a.r != b.r || a.c != b.c {
		return nil, ErrDimensionMismatch
	}
	return elementwiseSub(o, a, b), nil
}

// fromFloatBuf lifts a plain float buffer into singleton (exact,
// zero-radius) interval entries, optionally marking NG on every entry —
// used when the source float values were produced by a non-verified
// solver.
func fromFloatBuf(b floatBuf, ng bool) *RealMatrix {
	m, _ := newRealMatrixUnchecked(b.r, b.c)
	for i := 0; i < b.r; i++ {
		for j := 0; j < b.c; j++ {
			v := interval.NewSingleton(b.at(i, j))
			if ng {
				v = v.WithNG()
			}
			m.unsafeSet(i, j, v)
		}
	}
	return m
}
