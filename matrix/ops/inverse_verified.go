// Package ops provides advanced matrix operations for the ivlath/matrix package.
// MatInv computes a verified enclosure of a square matrix's inverse via a
// Brouwer fixed-point / Neumann-series residual bound around an ordinary
// floating-point approximation.
package ops

import (
	"errors"
	"fmt"

	"github.com/ivlath/ivlath/config"
	"github.com/ivlath/ivlath/interval"
	"github.com/ivlath/ivlath/matrix"
	"github.com/ivlath/ivlath/rounded"
)

// MatInv returns a verified enclosure of a^-1.
// Blueprint:
//
//	Stage 1 (Validate): a must be square.
//	Stage 2 (Approximate): C = mid(a)^-1 via this package's LU-based Inverse.
//	Stage 3 (Residual): F = a*C - I, Y = ||C*F||_inf, Z1 = ||F||_inf, every
//	  norm accumulated with round-up arithmetic so Y and Z1 are guaranteed
//	  upper bounds.
//	Stage 4 (Verify): if Z1 < 1, the Neumann series a^-1 - C has norm at
//	  most Y/(1-Z1); every entry of C gets that radius. Otherwise the
//	  approximation cannot be certified and the result is all-NaI.
//
// NG on the result is a.NG() || o.RaisesNG() — the residual bound is
// itself a rigorous proof step, so it does not add fresh NG beyond what
// the input or an unreliable rounding backend already carries.
func MatInv(o rounded.Ops, a *matrix.RealMatrix) (*matrix.RealMatrix, error) {
	// Stage 1: Validate input shape
	n := a.Rows()
	if n != a.Cols() {
		return nil, fmt.Errorf("MatInv: non-square %dx%d: %w", n, a.Cols(), matrix.ErrNonSquare)
	}

	// Stage 2: Ordinary float approximation of the inverse
	approx, err := Inverse(a.MidDense())
	if err != nil {
		if errors.Is(err, ErrSingular) {
			return matrix.AllNaI(n, n), nil // midpoint itself is singular: unverifiable
		}
		return nil, fmt.Errorf("MatInv: %w", err)
	}
	c, err := matrix.FromMatrix(approx, false)
	if err != nil {
		return nil, fmt.Errorf("MatInv: %w", err)
	}

	// Stage 3: Residual F = a*C - I and its norm bounds
	prod, err := matrix.RealMatMul(o, a, c, config.FastMatMul, 0)
	if err != nil {
		return nil, fmt.Errorf("MatInv: %w", err)
	}
	f, err := prod.Sub(o, matrix.Identity(n))
	if err != nil {
		return nil, fmt.Errorf("MatInv: %w", err)
	}
	cf, err := matrix.RealMatMul(o, c, f, config.FastMatMul, 0)
	if err != nil {
		return nil, fmt.Errorf("MatInv: %w", err)
	}
	y, _ := matrix.OpNormInf(o, cf)
	z1, _ := matrix.OpNormInf(o, f)

	// Stage 4: Verify via Neumann-series radius, else fall back to all-NaI
	if z1 >= 1 {
		return matrix.AllNaI(n, n), nil
	}
	denom := o.Sub(1, z1, rounded.Down)
	if denom <= 0 {
		return matrix.AllNaI(n, n), nil
	}
	rad := o.Div(y, denom, rounded.Up)

	ng := a.NG() || o.RaisesNG()
	out, err := matrix.NewRealMatrix(n, n)
	if err != nil {
		return nil, fmt.Errorf("MatInv: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			center, _ := c.At(i, j)
			mid := center.Bare().Mid()
			lo := o.Sub(mid, rad, rounded.Down)
			hi := o.Add(mid, rad, rounded.Up)
			v, verr := interval.NewFromBounds(lo, hi)
			if verr != nil {
				v = interval.NaI()
			}
			if ng {
				v = v.WithNG()
			}
			out.Set(i, j, v)
		}
	}
	return out, nil
}
