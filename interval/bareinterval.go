// SPDX-License-Identifier: MIT

package interval

import (
	"math"

	"github.com/ivlath/ivlath/rounded"
)

// BareInterval is the bare [lo, hi] pair, with no decoration or NG
// tracking — spec.md §4.2. The zero value is the singleton [0, 0];
// the empty interval is built with Empty().
type BareInterval struct {
	lo, hi float64
	empty  bool
}

// FromBounds builds [a, b]. It fails with ErrInvalidBounds when a > b,
// a = +Inf, or b = -Inf — none of those can bound a nonempty real set.
func FromBounds(a, b float64) (BareInterval, error) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return Empty(), nil
	}
	if a > b || a == math.Inf(1) || b == math.Inf(-1) {
		return BareInterval{}, ErrInvalidBounds
	}
	return BareInterval{lo: a, hi: b}, nil
}

// Singleton returns from_bounds(x, x); NaN maps to Empty.
func Singleton(x float64) BareInterval {
	if math.IsNaN(x) {
		return Empty()
	}
	return BareInterval{lo: x, hi: x}
}

// Empty returns the canonical empty interval.
func Empty() BareInterval { return BareInterval{empty: true} }

// Entire returns (-Inf, +Inf).
func Entire() BareInterval { return BareInterval{lo: math.Inf(-1), hi: math.Inf(1)} }

// IsEmpty reports whether b is the empty set.
func (b BareInterval) IsEmpty() bool { return b.empty }

// IsEntire reports whether b is exactly (-Inf, +Inf).
func (b BareInterval) IsEntire() bool {
	return !b.empty && b.lo == math.Inf(-1) && b.hi == math.Inf(1)
}

// Lo and Hi return the bounds. Both are meaningless (and unused by every
// method in this package) when IsEmpty is true.
func (b BareInterval) Lo() float64 { return b.lo }
func (b BareInterval) Hi() float64 { return b.hi }

// Contains reports whether x is a member of b.
func (b BareInterval) Contains(x float64) bool {
	if b.empty || math.IsNaN(x) {
		return false
	}
	return x >= b.lo && x <= b.hi
}

// Add returns a+b, outward-rounded componentwise.
func Add(o rounded.Ops, a, b BareInterval) BareInterval {
	if a.empty || b.empty {
		return Empty()
	}
	return BareInterval{
		lo: o.Add(a.lo, b.lo, rounded.Down),
		hi: o.Add(a.hi, b.hi, rounded.Up),
	}
}

// Sub returns a-b, outward-rounded componentwise.
func Sub(o rounded.Ops, a, b BareInterval) BareInterval {
	if a.empty || b.empty {
		return Empty()
	}
	return BareInterval{
		lo: o.Sub(a.lo, b.hi, rounded.Down),
		hi: o.Sub(a.hi, b.lo, rounded.Up),
	}
}

// Mul returns a*b via the nine-case sign analysis on the endpoints:
// [min down(ac,ad,bc,bd), max up(ac,ad,bc,bd)].
func Mul(o rounded.Ops, a, b BareInterval) BareInterval {
	if a.empty || b.empty {
		return Empty()
	}
	ac := o.Mul(a.lo, b.lo, rounded.Down)
	ad := o.Mul(a.lo, b.hi, rounded.Down)
	bc := o.Mul(a.hi, b.lo, rounded.Down)
	bd := o.Mul(a.hi, b.hi, rounded.Down)
	lo := math.Min(math.Min(ac, ad), math.Min(bc, bd))

	acU := o.Mul(a.lo, b.lo, rounded.Up)
	adU := o.Mul(a.lo, b.hi, rounded.Up)
	bcU := o.Mul(a.hi, b.lo, rounded.Up)
	bdU := o.Mul(a.hi, b.hi, rounded.Up)
	hi := math.Max(math.Max(acU, adU), math.Max(bcU, bdU))

	return BareInterval{lo: lo, hi: hi}
}

// Div returns a/b. When b does not contain 0, this is multiplication by
// the reciprocal. When b contains a thin zero ([0,0] or a degenerate
// straddle with lo==hi==0), the set-based flavor defines the quotient as
// empty. When b straddles zero with nonzero width, the quotient is
// unbounded on both sides and the set-based flavor returns Entire.
func Div(o rounded.Ops, a, b BareInterval) BareInterval {
	if a.empty || b.empty {
		return Empty()
	}
	if b.lo == 0 && b.hi == 0 {
		return Empty()
	}
	if b.lo <= 0 && b.hi >= 0 {
		return Entire()
	}
	recip := reciprocal(o, b)
	return Mul(o, a, recip)
}

func reciprocal(o rounded.Ops, b BareInterval) BareInterval {
	return BareInterval{
		lo: o.Inv(b.hi, rounded.Down),
		hi: o.Inv(b.lo, rounded.Up),
	}
}

// Sqrt is defined on [max(lo,0), hi] intersected with [0, +Inf). Callers
// (Interval.Sqrt) degrade decoration to Trv when a.lo < 0.
func Sqrt(o rounded.Ops, a BareInterval) BareInterval {
	if a.empty || a.hi < 0 {
		return Empty()
	}
	lo := math.Max(a.lo, 0)
	return BareInterval{
		lo: o.Sqrt(lo, rounded.Down),
		hi: o.Sqrt(a.hi, rounded.Up),
	}
}

// Mig is the "midpoint-minimizing magnitude": the infimum of |x| over
// x in a. Zero when a contains 0.
func (a BareInterval) Mig() float64 {
	if a.empty {
		return 0
	}
	if a.lo <= 0 && a.hi >= 0 {
		return 0
	}
	return math.Min(math.Abs(a.lo), math.Abs(a.hi))
}

// Mag is the magnitude: the supremum of |x| over x in a.
func (a BareInterval) Mag() float64 {
	if a.empty {
		return 0
	}
	return math.Max(math.Abs(a.lo), math.Abs(a.hi))
}

// Hull returns the tightest interval enclosing both a and b — their
// interval union when neither is empty.
func Hull(a, b BareInterval) BareInterval {
	if a.empty {
		return b
	}
	if b.empty {
		return a
	}
	return BareInterval{lo: math.Min(a.lo, b.lo), hi: math.Max(a.hi, b.hi)}
}

// Mid returns the float64 midpoint of a. Not guaranteed to enclose — this
// is the "constructed from a floating-point midpoint raises NG" source
// spec.md §3 refers to; callers that expose this to an Interval must OR
// NG into the result themselves.
func (a BareInterval) Mid() float64 {
	if a.empty {
		return math.NaN()
	}
	if a.IsEntire() {
		return 0
	}
	return (a.lo + a.hi) / 2
}
