// SPDX-License-Identifier: MIT

package rounded

import (
	"math"
	"math/big"
)

// Pow returns x**y rounded in direction dir. When y is an exact integer
// and the Correct backend is selected, the result is computed by repeated
// squaring in big.Float with enough precision that every intermediate is
// exact — the only rounding happens in the final
// conversion, matching the directed-rounding contract. For non-integer y,
// big.Float has no pow primitive, so Pow falls back to native math.Pow
// widened one ULP outward; callers must treat that result as NG regardless
// of backend (see Ops.RaisesNG, which only reports the backend-wide case —
// callers computing pow with a real exponent under Correct must still OR
// in NG themselves, as spec.md §9's open question on divergent corner
// evaluation requires).
func (o Ops) Pow(x, y float64, dir Direction) float64 {
	if o.kind == None {
		return widen(math.Pow(x, y), dir)
	}
	if n, ok := exactInt(y); ok {
		return o.powInt(x, n, dir)
	}
	return widen(math.Pow(x, y), dir)
}

// PowIsExact reports whether a call to Pow with this exponent is computed
// by the exact repeated-squaring path (true) or the ULP-widened fallback
// (false), under the Correct backend. Callers use this to decide whether
// they must independently raise NG.
func (o Ops) PowIsExact(y float64) bool {
	if o.kind == None {
		return false
	}
	_, ok := exactInt(y)
	return ok
}

func exactInt(y float64) (int, bool) {
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, false
	}
	if y != math.Trunc(y) {
		return 0, false
	}
	const limit = 1 << 20 // repeated squaring beyond this is not worth exactness
	if y > limit || y < -limit {
		return 0, false
	}
	return int(y), true
}

func (o Ops) powInt(x float64, n int, dir Direction) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if n == 0 {
		return 1
	}
	neg := n < 0
	if neg {
		n = -n
	}
	// x**n has at most precBinary64*n significant bits, so every product
	// below is exact at this precision.
	prec := uint(precBinary64 * n)
	base := new(big.Float).SetPrec(prec).SetFloat64(x)
	result := new(big.Float).SetPrec(prec).SetFloat64(1)
	for n > 0 {
		if n&1 == 1 {
			result.Mul(result, base)
		}
		base.Mul(base, base)
		n >>= 1
	}
	if neg {
		one := new(big.Float).SetPrec(precBinary64).SetFloat64(1)
		final := new(big.Float).SetPrec(precBinary64).SetMode(dir.bigMode())
		final.Quo(one, result)
		return bigResult(final)
	}
	final := new(big.Float).SetPrec(precBinary64).SetMode(dir.bigMode())
	final.Set(result)
	return bigResult(final)
}

// Rootn returns the real n-th root of x rounded in direction dir. n==2 is
// routed through Sqrt, which is exact under the Correct backend; every
// other n falls back to native math.Pow(x, 1/n) widened outward, since
// big.Float has no general root primitive.
func (o Ops) Rootn(x float64, n int, dir Direction) float64 {
	if n == 2 && x >= 0 {
		return o.Sqrt(x, dir)
	}
	if o.kind == None {
		return widen(rootn(x, n), dir)
	}
	return widen(rootn(x, n), dir)
}

// RootnIsExact mirrors PowIsExact: true only for n==2, x>=0 under Correct.
func (o Ops) RootnIsExact(x float64, n int) bool {
	return o.kind == Correct && n == 2 && x >= 0
}

func rootn(x float64, n int) float64 {
	if n == 0 {
		return math.NaN()
	}
	if x < 0 {
		if n%2 == 0 {
			return math.NaN()
		}
		return -math.Pow(-x, 1/float64(n))
	}
	return math.Pow(x, 1/float64(n))
}

// Atan2 returns atan2(y, x) rounded in direction dir. Always computed via
// native math.Atan2 widened outward — big.Float has no atan2 primitive,
// so this is NG under either backend when used for enclosure purposes.
func (o Ops) Atan2(y, x float64, dir Direction) float64 {
	return widen(math.Atan2(y, x), dir)
}
