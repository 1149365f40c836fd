// SPDX-License-Identifier: MIT

package matrix

import "math/big"

// RationalMatrix is a dense row-major matrix of *big.Rat, the storage for
// the RealRational element kind — the rational bounds bypass spec.md
// §4.6 describes: exact arithmetic, no rounding error, so it always
// takes the naive multiplication path (MatMul never routes it through
// Rump's midpoint-radius split).
type RationalMatrix struct {
	r, c int
	data []*big.Rat
}

// NewRationalMatrix allocates an r×c matrix of zero entries.
func NewRationalMatrix(r, c int) (*RationalMatrix, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]*big.Rat, r*c)
	for i := range data {
		data[i] = new(big.Rat)
	}
	return &RationalMatrix{r: r, c: c, data: data}, nil
}

func (m *RationalMatrix) Rows() int { return m.r }
func (m *RationalMatrix) Cols() int { return m.c }

func (m *RationalMatrix) At(i, j int) (*big.Rat, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return nil, ErrOutOfRange
	}
	return m.data[i*m.c+j], nil
}

func (m *RationalMatrix) Set(i, j int, v *big.Rat) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return ErrOutOfRange
	}
	m.data[i*m.c+j] = v
	return nil
}

func (m *RationalMatrix) unsafeAt(i, j int) *big.Rat { return m.data[i*m.c+j] }

func (m *RationalMatrix) unsafeSet(i, j int, v *big.Rat) { m.data[i*m.c+j] = v }
