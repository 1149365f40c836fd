// SPDX-License-Identifier: MIT

package interval

import (
	"math"

	"github.com/ivlath/ivlath/rounded"
)

// monotoneIncreasing evaluates a monotone increasing function f at both
// endpoints with outward rounding, the shared shape for exp, exp2, exp10,
// expm1, atan, sinh, tanh and asinh.
func monotoneIncreasing(t rounded.Transcendentals, a BareInterval, f func(rounded.Transcendentals, float64, rounded.Direction) float64) BareInterval {
	if a.empty {
		return Empty()
	}
	return BareInterval{lo: f(t, a.lo, rounded.Down), hi: f(t, a.hi, rounded.Up)}
}

// Exp returns e**a, monotone increasing on all of Entire.
func Exp(t rounded.Transcendentals, a BareInterval) BareInterval {
	return monotoneIncreasing(t, a, func(t rounded.Transcendentals, x float64, d rounded.Direction) float64 { return t.Exp(x, d) })
}

// Exp2 returns 2**a, monotone increasing on all of Entire.
func Exp2(t rounded.Transcendentals, a BareInterval) BareInterval {
	return monotoneIncreasing(t, a, func(t rounded.Transcendentals, x float64, d rounded.Direction) float64 { return t.Exp2(x, d) })
}

// Exp10 returns 10**a, monotone increasing on all of Entire.
func Exp10(t rounded.Transcendentals, a BareInterval) BareInterval {
	return monotoneIncreasing(t, a, func(t rounded.Transcendentals, x float64, d rounded.Direction) float64 { return t.Exp10(x, d) })
}

// Expm1 returns e**a - 1.
func Expm1(t rounded.Transcendentals, a BareInterval) BareInterval {
	return monotoneIncreasing(t, a, func(t rounded.Transcendentals, x float64, d rounded.Direction) float64 { return t.Expm1(x, d) })
}

// Log returns ln(a); undefined for a.hi <= 0, and degrades to Trv in the
// caller (Interval.Log) whenever 0 is in a's domain restriction.
func Log(t rounded.Transcendentals, a BareInterval) BareInterval {
	if a.empty || a.hi <= 0 {
		return Empty()
	}
	lo := math.Max(a.lo, smallestPositive)
	return BareInterval{lo: t.Log(lo, rounded.Down), hi: t.Log(a.hi, rounded.Up)}
}

// smallestPositive stands in for "the smallest representable value
// greater than 0" when log's domain is clamped away from 0.
const smallestPositive = 5e-324

// Log1p returns ln(1+a); undefined for a.hi <= -1.
func Log1p(t rounded.Transcendentals, a BareInterval) BareInterval {
	if a.empty || a.hi <= -1 {
		return Empty()
	}
	lo := math.Max(a.lo, -1+smallestPositive)
	return BareInterval{lo: t.Log1p(lo, rounded.Down), hi: t.Log1p(a.hi, rounded.Up)}
}

// Log2 and Log10 mirror Log at a different base.
func Log2(t rounded.Transcendentals, a BareInterval) BareInterval {
	if a.empty || a.hi <= 0 {
		return Empty()
	}
	lo := math.Max(a.lo, smallestPositive)
	return BareInterval{lo: t.Log2(lo, rounded.Down), hi: t.Log2(a.hi, rounded.Up)}
}

func Log10(t rounded.Transcendentals, a BareInterval) BareInterval {
	if a.empty || a.hi <= 0 {
		return Empty()
	}
	lo := math.Max(a.lo, smallestPositive)
	return BareInterval{lo: t.Log10(lo, rounded.Down), hi: t.Log10(a.hi, rounded.Up)}
}

// Asin returns arcsin(a), monotone increasing, restricted to a ∩ [-1,1].
func Asin(t rounded.Transcendentals, a BareInterval) BareInterval {
	if a.empty || a.hi < -1 || a.lo > 1 {
		return Empty()
	}
	lo, hi := math.Max(a.lo, -1), math.Min(a.hi, 1)
	return BareInterval{lo: t.Asin(lo, rounded.Down), hi: t.Asin(hi, rounded.Up)}
}

// Acos returns arccos(a), monotone decreasing, restricted to a ∩ [-1,1].
func Acos(t rounded.Transcendentals, a BareInterval) BareInterval {
	if a.empty || a.hi < -1 || a.lo > 1 {
		return Empty()
	}
	lo, hi := math.Max(a.lo, -1), math.Min(a.hi, 1)
	return BareInterval{lo: t.Acos(hi, rounded.Down), hi: t.Acos(lo, rounded.Up)}
}

func Atan(t rounded.Transcendentals, a BareInterval) BareInterval {
	return monotoneIncreasing(t, a, func(t rounded.Transcendentals, x float64, d rounded.Direction) float64 { return t.Atan(x, d) })
}

func Sinh(t rounded.Transcendentals, a BareInterval) BareInterval {
	return monotoneIncreasing(t, a, func(t rounded.Transcendentals, x float64, d rounded.Direction) float64 { return t.Sinh(x, d) })
}

func Tanh(t rounded.Transcendentals, a BareInterval) BareInterval {
	return monotoneIncreasing(t, a, func(t rounded.Transcendentals, x float64, d rounded.Direction) float64 { return t.Tanh(x, d) })
}

// Asinh returns arsinh(a), monotone increasing on all of Entire.
func Asinh(t rounded.Transcendentals, a BareInterval) BareInterval {
	return monotoneIncreasing(t, a, func(t rounded.Transcendentals, x float64, d rounded.Direction) float64 { return t.Asinh(x, d) })
}

// Acosh returns arcosh(a); undefined for a.hi < 1, restricted to a ∩ [1, +Inf).
func Acosh(t rounded.Transcendentals, a BareInterval) BareInterval {
	if a.empty || a.hi < 1 {
		return Empty()
	}
	lo := math.Max(a.lo, 1)
	return BareInterval{lo: t.Acosh(lo, rounded.Down), hi: t.Acosh(a.hi, rounded.Up)}
}

// Atanh returns artanh(a); undefined for a.hi <= -1 or a.lo >= 1, restricted
// to a ∩ (-1, 1).
func Atanh(t rounded.Transcendentals, a BareInterval) BareInterval {
	if a.empty || a.hi <= -1 || a.lo >= 1 {
		return Empty()
	}
	lo, hi := math.Max(a.lo, -1+smallestPositive), math.Min(a.hi, 1-smallestPositive)
	return BareInterval{lo: t.Atanh(lo, rounded.Down), hi: t.Atanh(hi, rounded.Up)}
}

// Cosh is even, minimized at x=0: decreasing on (-Inf,0], increasing on
// [0,+Inf).
func Cosh(t rounded.Transcendentals, a BareInterval) BareInterval {
	if a.empty {
		return Empty()
	}
	if a.lo >= 0 {
		return BareInterval{lo: t.Cosh(a.lo, rounded.Down), hi: t.Cosh(a.hi, rounded.Up)}
	}
	if a.hi <= 0 {
		return BareInterval{lo: t.Cosh(a.hi, rounded.Down), hi: t.Cosh(a.lo, rounded.Up)}
	}
	hi := math.Max(t.Cosh(a.lo, rounded.Up), t.Cosh(a.hi, rounded.Up))
	return BareInterval{lo: 1, hi: hi}
}

// containsCongruent reports whether some integer k puts target+k*period
// inside [lo, hi].
func containsCongruent(lo, hi, target, period float64) bool {
	k := math.Ceil((lo - target) / period)
	candidate := target + k*period
	return candidate <= hi
}

// Sin locates the interior extrema at π/2 + 2kπ (max, +1) and
// -π/2 + 2kπ (min, -1) by reduction modulo the period; otherwise the
// function is monotone between consecutive extrema and endpoint
// evaluation suffices.
func Sin(t rounded.Transcendentals, a BareInterval) BareInterval {
	if a.empty {
		return Empty()
	}
	if a.IsEntire() || a.hi-a.lo >= 2*math.Pi {
		return BareInterval{lo: -1, hi: 1}
	}
	lo := math.Min(t.Sin(a.lo, rounded.Down), t.Sin(a.hi, rounded.Down))
	hi := math.Max(t.Sin(a.lo, rounded.Up), t.Sin(a.hi, rounded.Up))
	if containsCongruent(a.lo, a.hi, math.Pi/2, 2*math.Pi) {
		hi = 1
	}
	if containsCongruent(a.lo, a.hi, -math.Pi/2, 2*math.Pi) {
		lo = -1
	}
	return BareInterval{lo: lo, hi: hi}
}

// Cos locates the interior extrema at 0 + 2kπ (max, +1) and π + 2kπ
// (min, -1).
func Cos(t rounded.Transcendentals, a BareInterval) BareInterval {
	if a.empty {
		return Empty()
	}
	if a.IsEntire() || a.hi-a.lo >= 2*math.Pi {
		return BareInterval{lo: -1, hi: 1}
	}
	lo := math.Min(t.Cos(a.lo, rounded.Down), t.Cos(a.hi, rounded.Down))
	hi := math.Max(t.Cos(a.lo, rounded.Up), t.Cos(a.hi, rounded.Up))
	if containsCongruent(a.lo, a.hi, 0, 2*math.Pi) {
		hi = 1
	}
	if containsCongruent(a.lo, a.hi, math.Pi, 2*math.Pi) {
		lo = -1
	}
	return BareInterval{lo: lo, hi: hi}
}

// Tan has asymptotes at π/2 + kπ; when one falls strictly inside (lo,hi)
// the interval straddles a pole on both sides and the result is Entire.
// Between consecutive poles tan is monotone increasing, so the pole-free
// case reduces to endpoint evaluation.
func Tan(t rounded.Transcendentals, a BareInterval) BareInterval {
	if a.empty {
		return Empty()
	}
	if a.IsEntire() {
		return Entire()
	}
	k := math.Ceil((a.lo - math.Pi/2) / math.Pi)
	pole := math.Pi/2 + k*math.Pi
	if pole > a.lo && pole < a.hi {
		return Entire()
	}
	return BareInterval{lo: t.Tan(a.lo, rounded.Down), hi: t.Tan(a.hi, rounded.Up)}
}
