// SPDX-License-Identifier: MIT

package interval

import (
	"math"

	"github.com/ivlath/ivlath/config"
	"github.com/ivlath/ivlath/rounded"
)

// powRounded computes x**n (n >= 0) rounded in dir, dispatching on the
// process-wide config.Global().Power(): FastPow defers to the backend's
// native Pow (repeated-squaring under the Correct backend); SlowPow
// computes the same value by n-1 plain multiplications — a naive
// reference path kept for differential testing against FastPow.
func powRounded(o rounded.Ops, x float64, n int, dir rounded.Direction) float64 {
	if config.Global().Power() != config.SlowPow {
		return o.Pow(x, float64(n), dir)
	}
	r := 1.0
	for i := 0; i < n; i++ {
		r = o.Mul(r, x, dir)
	}
	return r
}

// PowInt returns a**n for integer n. Literal integer powers are computed
// directly rather than as inv(a)**n — that rewrite is unsound for
// intervals straddling zero.
func PowInt(o rounded.Ops, a BareInterval, n int) BareInterval {
	if a.empty {
		return Empty()
	}
	if n == 0 {
		return Singleton(1)
	}
	if n < 0 {
		if a.lo <= 0 && a.hi >= 0 {
			return Entire()
		}
		pos := PowInt(o, a, -n)
		return BareInterval{
			lo: o.Inv(pos.hi, rounded.Down),
			hi: o.Inv(pos.lo, rounded.Up),
		}
	}
	if n%2 == 1 {
		return BareInterval{
			lo: powRounded(o, a.lo, n, rounded.Down),
			hi: powRounded(o, a.hi, n, rounded.Up),
		}
	}
	switch {
	case a.lo >= 0:
		return BareInterval{lo: powRounded(o, a.lo, n, rounded.Down), hi: powRounded(o, a.hi, n, rounded.Up)}
	case a.hi <= 0:
		return BareInterval{lo: powRounded(o, a.hi, n, rounded.Down), hi: powRounded(o, a.lo, n, rounded.Up)}
	default:
		return BareInterval{lo: 0, hi: powRounded(o, a.Mag(), n, rounded.Up)}
	}
}

// PowReal returns a**x for interval exponent x, restricted to a ∩ [0,
// +Inf). It reports divergent=true when a corner evaluation produced ±Inf
// in the direction the hull did not expect — the resolution of spec.md
// §9's open question: callers (Interval.PowReal) decorate the result Trv
// when divergent is true, regardless of what the bare hull computed.
func PowReal(o rounded.Ops, a, x BareInterval) (result BareInterval, divergent bool) {
	if a.empty || x.empty {
		return Empty(), false
	}
	if a.hi < 0 {
		return Empty(), false
	}
	clamped := BareInterval{lo: math.Max(a.lo, 0), hi: a.hi}

	// FastPow shortcuts the two cases with a cheaper exact algorithm;
	// SlowPow always falls through to the general four-corner evaluation
	// below, even when x happens to be 0.5 or an integer.
	if config.Global().Power() != config.SlowPow {
		if x.lo == 0.5 && x.hi == 0.5 {
			return Sqrt(o, clamped), false
		}
		if x.lo == x.hi && x.lo == math.Trunc(x.lo) && !math.IsInf(x.lo, 0) {
			return PowInt(o, clamped, int(x.lo)), false
		}
	}

	exps := [2]float64{x.lo, x.hi}
	bases := [2]float64{clamped.lo, clamped.hi}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, b := range bases {
		for _, e := range exps {
			d := o.Pow(b, e, rounded.Down)
			u := o.Pow(b, e, rounded.Up)
			if d == math.Inf(1) || u == math.Inf(-1) {
				divergent = true
				continue
			}
			lo = math.Min(lo, d)
			hi = math.Max(hi, u)
		}
	}
	if divergent || lo > hi {
		return Entire(), true
	}
	return BareInterval{lo: lo, hi: hi}, false
}
