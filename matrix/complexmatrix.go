// SPDX-License-Identifier: MIT

package matrix

import "github.com/ivlath/ivlath/interval"

// ComplexMatrix is a dense row-major matrix of interval.ComplexInterval,
// used for the ComplexInterval element kind and, via its real/imaginary
// RealMatrix split, as the storage MatMul's complex-times-complex Gauss
// identity variants operate on.
type ComplexMatrix struct {
	r, c int
	data []interval.ComplexInterval
}

// NewComplexMatrix allocates an r×c matrix of NaI-in-both-parts entries.
func NewComplexMatrix(r, c int) (*ComplexMatrix, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]interval.ComplexInterval, r*c)
	for i := range data {
		data[i] = interval.ComplexInterval{Re: interval.NaI(), Im: interval.NaI()}
	}
	return &ComplexMatrix{r: r, c: c, data: data}, nil
}

func (m *ComplexMatrix) Rows() int { return m.r }
func (m *ComplexMatrix) Cols() int { return m.c }

func (m *ComplexMatrix) At(i, j int) (interval.ComplexInterval, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return interval.ComplexInterval{}, ErrOutOfRange
	}
	return m.data[i*m.c+j], nil
}

func (m *ComplexMatrix) Set(i, j int, v interval.ComplexInterval) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return ErrOutOfRange
	}
	m.data[i*m.c+j] = v
	return nil
}

func (m *ComplexMatrix) unsafeAt(i, j int) interval.ComplexInterval { return m.data[i*m.c+j] }
func (m *ComplexMatrix) unsafeSet(i, j int, v interval.ComplexInterval) {
	m.data[i*m.c+j] = v
}

// SplitParts returns the real and imaginary components as independent
// RealMatrix values, the entry point for MatMul's real-imaginary split
// of complex-times-complex products.
func (m *ComplexMatrix) SplitParts() (re, im *RealMatrix) {
	re, _ = newRealMatrixUnchecked(m.r, m.c)
	im, _ = newRealMatrixUnchecked(m.r, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v := m.unsafeAt(i, j)
			re.unsafeSet(i, j, v.Re)
			im.unsafeSet(i, j, v.Im)
		}
	}
	return re, im
}

// JoinParts rebuilds a ComplexMatrix from independently computed real and
// imaginary RealMatrix values.
func JoinParts(re, im *RealMatrix) (*ComplexMatrix, error) {
	if re.r != im.r || re.c != im.c {
		return nil, ErrDimensionMismatch
	}
	out, _ := NewComplexMatrix(re.r, re.c)
	for i := 0; i < re.r; i++ {
		for j := 0; j < re.c; j++ {
			out.unsafeSet(i, j, interval.NewComplex(re.unsafeAt(i, j), im.unsafeAt(i, j)))
		}
	}
	return out, nil
}
