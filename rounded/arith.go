// SPDX-License-Identifier: MIT

package rounded

import (
	"math"
	"math/big"
)

// precBinary64 is the significand precision of IEEE 754 binary64, used to
// size every big.Float intermediate so results round back to float64
// exactly as specified by dir.
const precBinary64 = 53

// bigAt builds a big.Float at binary64 precision and the rounding mode for
// dir, seeded with x. nearest-ties-to-even is used for ToNearest so the
// final conversion back to float64 matches native float64 semantics.
func bigAt(x float64, dir Direction) *big.Float {
	return new(big.Float).SetPrec(precBinary64).SetMode(dir.bigMode()).SetFloat64(x)
}

func bigResult(z *big.Float) float64 {
	f, _ := z.Float64()
	return f
}

// Add returns x+y rounded in direction dir.
func (o Ops) Add(x, y float64, dir Direction) float64 {
	if o.kind == None {
		return widen(x+y, dir)
	}
	if special := specialSum(x, y); special != nil {
		return *special
	}
	z := bigAt(x, dir)
	z.Add(z, new(big.Float).SetPrec(precBinary64).SetFloat64(y))
	return bigResult(z)
}

// Sub returns x-y rounded in direction dir.
func (o Ops) Sub(x, y float64, dir Direction) float64 {
	return o.Add(x, -y, dir)
}

// Mul returns x*y rounded in direction dir.
func (o Ops) Mul(x, y float64, dir Direction) float64 {
	if o.kind == None {
		return widen(x*y, dir)
	}
	if special := specialProduct(x, y); special != nil {
		return *special
	}
	z := bigAt(x, dir)
	z.Mul(z, new(big.Float).SetPrec(precBinary64).SetFloat64(y))
	return bigResult(z)
}

// Div returns x/y rounded in direction dir.
func (o Ops) Div(x, y float64, dir Direction) float64 {
	if o.kind == None {
		return widen(x/y, dir)
	}
	if y == 0 {
		return x / y // preserve native NaN/±Inf semantics for 0 and ±0 divisors
	}
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return x / y
	}
	z := bigAt(x, dir)
	z.Quo(z, new(big.Float).SetPrec(precBinary64).SetFloat64(y))
	return bigResult(z)
}

// Sqrt returns sqrt(x) rounded in direction dir. x must be >= 0; NaN
// propagates for negative x exactly as math.Sqrt does.
func (o Ops) Sqrt(x float64, dir Direction) float64 {
	if o.kind == None {
		return widen(math.Sqrt(x), dir)
	}
	if x < 0 || math.IsNaN(x) {
		return math.Sqrt(x)
	}
	if x == 0 || math.IsInf(x, 1) {
		return x
	}
	z := new(big.Float).SetPrec(precBinary64).SetMode(dir.bigMode()).SetFloat64(x)
	z.Sqrt(z)
	return bigResult(z)
}

// Fma returns x*y+z rounded once, in direction dir, computing the
// intermediate product at double precision so the only rounding error is
// the one the caller asked for.
func (o Ops) Fma(x, y, z float64, dir Direction) float64 {
	if o.kind == None {
		return widen(math.FMA(x, y, z), dir)
	}
	if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z) {
		return math.FMA(x, y, z)
	}
	prod := new(big.Float).SetPrec(2 * precBinary64).SetFloat64(x)
	prod.Mul(prod, new(big.Float).SetPrec(2*precBinary64).SetFloat64(y))
	sum := new(big.Float).SetPrec(precBinary64).SetMode(dir.bigMode())
	sum.Add(prod, new(big.Float).SetPrec(2*precBinary64).SetFloat64(z))
	return bigResult(sum)
}

// Inv returns 1/x rounded in direction dir.
func (o Ops) Inv(x float64, dir Direction) float64 {
	return o.Div(1, x, dir)
}

// specialSum short-circuits NaN/Inf combinations to native semantics; nil
// means the caller should fall through to the big.Float path.
func specialSum(x, y float64) *float64 {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		r := x + y
		return &r
	}
	return nil
}

func specialProduct(x, y float64) *float64 {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) || x == 0 || y == 0 {
		r := x * y
		return &r
	}
	return nil
}
