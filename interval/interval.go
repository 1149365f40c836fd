// SPDX-License-Identifier: MIT

package interval

import (
	"math"

	"github.com/ivlath/ivlath/config"
	"github.com/ivlath/ivlath/rounded"
)

// Interval is BareInterval plus a Decoration and the NG ("not
// guaranteed") flag — spec.md §4.4. The zero value is NOT meaningful;
// use one of the constructors.
type Interval struct {
	bare BareInterval
	dec  Decoration
	ng   bool
}

// unbounded reports whether b has an infinite endpoint (not Com-eligible).
func unbounded(b BareInterval) bool {
	return !b.IsEmpty() && (math.IsInf(b.lo, 0) || math.IsInf(b.hi, 0))
}

func decorationFor(b BareInterval) Decoration {
	switch {
	case b.IsEmpty():
		return Trv
	case unbounded(b):
		return Dac
	default:
		return Com
	}
}

// NewFromBounds builds [a, b] with decoration/NG inferred from the
// bounds: Com for a finite nonempty result, Dac if unbounded (Entire or
// one-sided infinite bound), Trv for empty. Constructors never raise NG —
// the NG bit here records unverified steps, not legitimate finite bounds.
//
// Fails with config.ErrUnsupportedBoundType under the process-wide
// config.Global().BoundType() when it names anything other than
// Binary64 — the only bound type with a working numeric backend.
func NewFromBounds(a, b float64) (Interval, error) {
	if bt := config.Global().BoundType(); bt != config.Binary64 {
		return Interval{}, config.ErrUnsupportedBoundType
	}
	bare, err := FromBounds(a, b)
	if err != nil {
		return Interval{}, err
	}
	return Interval{bare: bare, dec: decorationFor(bare)}, nil
}

// NewSingleton wraps Singleton(x).
func NewSingleton(x float64) Interval {
	bare := Singleton(x)
	return Interval{bare: bare, dec: decorationFor(bare)}
}

// NewEmpty wraps Empty().
func NewEmpty() Interval { return Interval{bare: Empty(), dec: Trv} }

// NewEntire wraps Entire().
func NewEntire() Interval { return Interval{bare: Entire(), dec: Dac} }

// Bare returns the underlying BareInterval.
func (v Interval) Bare() BareInterval { return v.bare }

// Decoration returns v's decoration.
func (v Interval) Decoration() Decoration { return v.dec }

// NG reports whether v's provenance includes an unverified step.
func (v Interval) NG() bool { return v.ng }

// IsEmpty, IsEntire delegate to the bare interval.
func (v Interval) IsEmpty() bool  { return v.bare.IsEmpty() }
func (v Interval) IsEntire() bool { return v.bare.IsEntire() }

// WithNG returns a copy of v with NG forced true — used by callers that
// construct an Interval from an unverified source (e.g. a floating-point
// midpoint) and must mark the provenance accordingly.
func (v Interval) WithNG() Interval {
	v.ng = true
	return v
}

// combine applies the shared three-step recipe every Interval operation
// follows (spec.md §4.4): run the bare op (already done by the caller),
// take the minimum of input decorations possibly lowered further by
// decorationFor, and OR the NG flags.
func combine(bare BareInterval, dec Decoration, ng bool) Interval {
	d := Min(dec, decorationFor(bare))
	return Interval{bare: bare, dec: d, ng: ng}
}

// Add returns a+b.
func (a Interval) Add(o rounded.Ops, b Interval) Interval {
	if IsNaI(a) || IsNaI(b) {
		return NaI()
	}
	return combine(Add(o, a.bare, b.bare), Min(a.dec, b.dec), a.ng || b.ng || o.RaisesNG())
}

// Sub returns a-b.
func (a Interval) Sub(o rounded.Ops, b Interval) Interval {
	if IsNaI(a) || IsNaI(b) {
		return NaI()
	}
	return combine(Sub(o, a.bare, b.bare), Min(a.dec, b.dec), a.ng || b.ng || o.RaisesNG())
}

// Mul returns a*b.
func (a Interval) Mul(o rounded.Ops, b Interval) Interval {
	if IsNaI(a) || IsNaI(b) {
		return NaI()
	}
	return combine(Mul(o, a.bare, b.bare), Min(a.dec, b.dec), a.ng || b.ng || o.RaisesNG())
}

// Div returns a/b, degrading decoration to Trv when b's denominator
// straddles zero (spec.md §4.3's named example of a per-operation
// downgrade beyond the plain decoration minimum).
func (a Interval) Div(o rounded.Ops, b Interval) Interval {
	if IsNaI(a) || IsNaI(b) {
		return NaI()
	}
	bare := Div(o, a.bare, b.bare)
	dec := Min(a.dec, b.dec)
	if b.bare.lo <= 0 && b.bare.hi >= 0 {
		dec = Min(dec, Trv)
	}
	return combine(bare, dec, a.ng || b.ng || o.RaisesNG())
}

// Sqrt degrades decoration to Trv when a's domain had to be clamped away
// from a negative lower bound.
func (a Interval) Sqrt(o rounded.Ops) Interval {
	if IsNaI(a) {
		return NaI()
	}
	bare := Sqrt(o, a.bare)
	dec := a.dec
	if !a.bare.IsEmpty() && a.bare.lo < 0 {
		dec = Min(dec, Trv)
	}
	return combine(bare, dec, a.ng || o.RaisesNG())
}

// PowInt returns a**n for integer n.
func (a Interval) PowInt(o rounded.Ops, n int) Interval {
	if IsNaI(a) {
		return NaI()
	}
	return combine(PowInt(o, a.bare, n), a.dec, a.ng || o.RaisesNG())
}

// PowReal returns a**x for interval exponent x, decorating Trv whenever
// the bare evaluation diverged in the wrong direction at a corner
// (spec.md §9's resolved open question).
func (a Interval) PowReal(o rounded.Ops, x Interval) Interval {
	if IsNaI(a) || IsNaI(x) {
		return NaI()
	}
	bare, divergent := PowReal(o, a.bare, x.bare)
	dec := Min(a.dec, x.dec)
	if divergent {
		dec = Min(dec, Trv)
	}
	return combine(bare, dec, a.ng || x.ng || o.RaisesNG())
}

// Mig, Mag delegate to the bare interval; both are exact (no rounding).
func (a Interval) Mig() float64 { return a.bare.Mig() }
func (a Interval) Mag() float64 { return a.bare.Mag() }

// Hull returns the tightest Interval enclosing both a and b.
func (a Interval) Hull(b Interval) Interval {
	if IsNaI(a) || IsNaI(b) {
		return NaI()
	}
	return combine(Hull(a.bare, b.bare), Min(a.dec, b.dec), a.ng || b.ng)
}

// monotoneWrap applies f and ORs t.RaisesNG() into the result's NG flag —
// the same "backend/collaborator may be unable to guarantee this result"
// signal Add/Sub/Mul/Div get from o.RaisesNG(), just sourced from the
// injected Transcendentals instead of the algebraic Ops.
func monotoneWrap(t rounded.Transcendentals, a Interval, f func(rounded.Transcendentals, BareInterval) BareInterval) Interval {
	if IsNaI(a) {
		return NaI()
	}
	return combine(f(t, a.bare), a.dec, a.ng || t.RaisesNG())
}

// Exp, Expm1, Asin, Acos, Atan, Sinh, Cosh, Tanh are monotone (or
// piecewise-monotone with a provable extremum) transcendentals; none
// needs a further decoration downgrade beyond the input minimum.
func (a Interval) Exp(t rounded.Transcendentals) Interval   { return monotoneWrap(t, a, Exp) }
func (a Interval) Expm1(t rounded.Transcendentals) Interval { return monotoneWrap(t, a, Expm1) }
func (a Interval) Asin(t rounded.Transcendentals) Interval  { return monotoneWrap(t, a, Asin) }
func (a Interval) Acos(t rounded.Transcendentals) Interval  { return monotoneWrap(t, a, Acos) }
func (a Interval) Atan(t rounded.Transcendentals) Interval  { return monotoneWrap(t, a, Atan) }
func (a Interval) Sinh(t rounded.Transcendentals) Interval  { return monotoneWrap(t, a, Sinh) }
func (a Interval) Cosh(t rounded.Transcendentals) Interval  { return monotoneWrap(t, a, Cosh) }
func (a Interval) Tanh(t rounded.Transcendentals) Interval  { return monotoneWrap(t, a, Tanh) }
func (a Interval) Sin(t rounded.Transcendentals) Interval   { return monotoneWrap(t, a, Sin) }
func (a Interval) Cos(t rounded.Transcendentals) Interval   { return monotoneWrap(t, a, Cos) }

// Tan degrades decoration to Trv when the input straddles a pole — the
// bare result is Entire in that case, which decorationFor already maps
// below Com, but the pole makes the function discontinuous on the input
// so Trv (not Dac) is the honest claim.
func (a Interval) Tan(t rounded.Transcendentals) Interval {
	if IsNaI(a) {
		return NaI()
	}
	bare := Tan(t, a.bare)
	dec := a.dec
	if bare.IsEntire() && !a.bare.IsEntire() {
		dec = Min(dec, Trv)
	}
	return combine(bare, dec, a.ng || t.RaisesNG())
}

// Cot, Sec, Csc are the reciprocal trig functions, composed directly from
// Tan/Cos/Sin and Div rather than as separate primitives — Div already
// carries the zero-straddle Trv downgrade and NG propagation these
// reciprocals need, so cot/sec/csc reuse it instead of duplicating it.
func (a Interval) Cot(o rounded.Ops, t rounded.Transcendentals) Interval {
	return NewSingleton(1).Div(o, a.Tan(t))
}

func (a Interval) Sec(o rounded.Ops, t rounded.Transcendentals) Interval {
	return NewSingleton(1).Div(o, a.Cos(t))
}

func (a Interval) Csc(o rounded.Ops, t rounded.Transcendentals) Interval {
	return NewSingleton(1).Div(o, a.Sin(t))
}

// Exp2, Exp10 mirror Exp at a different base.
func (a Interval) Exp2(t rounded.Transcendentals) Interval  { return monotoneWrap(t, a, Exp2) }
func (a Interval) Exp10(t rounded.Transcendentals) Interval { return monotoneWrap(t, a, Exp10) }

// Asinh mirrors Asin/Atan's unrestricted monotone-increasing wrap.
func (a Interval) Asinh(t rounded.Transcendentals) Interval { return monotoneWrap(t, a, Asinh) }

// Acosh degrades decoration to Trv when a's domain had to be clamped away
// from below 1, mirroring Sqrt's clamp downgrade.
func (a Interval) Acosh(t rounded.Transcendentals) Interval {
	if IsNaI(a) {
		return NaI()
	}
	bare := Acosh(t, a.bare)
	dec := a.dec
	if !a.bare.IsEmpty() && a.bare.lo < 1 {
		dec = Min(dec, Trv)
	}
	return combine(bare, dec, a.ng || t.RaisesNG())
}

// Atanh degrades decoration to Trv when a's domain had to be clamped
// inside (-1, 1).
func (a Interval) Atanh(t rounded.Transcendentals) Interval {
	if IsNaI(a) {
		return NaI()
	}
	bare := Atanh(t, a.bare)
	dec := a.dec
	if !a.bare.IsEmpty() && (a.bare.lo <= -1 || a.bare.hi >= 1) {
		dec = Min(dec, Trv)
	}
	return combine(bare, dec, a.ng || t.RaisesNG())
}

// Log degrades decoration to Trv when 0 is in a's domain (spec.md §4.3's
// named example).
func (a Interval) Log(t rounded.Transcendentals) Interval {
	if IsNaI(a) {
		return NaI()
	}
	bare := Log(t, a.bare)
	dec := a.dec
	if !a.bare.IsEmpty() && a.bare.lo <= 0 {
		dec = Min(dec, Trv)
	}
	return combine(bare, dec, a.ng || t.RaisesNG())
}

// Log1p, Log2, Log10 mirror Log's domain-restriction downgrade.
func (a Interval) Log1p(t rounded.Transcendentals) Interval {
	if IsNaI(a) {
		return NaI()
	}
	bare := Log1p(t, a.bare)
	dec := a.dec
	if !a.bare.IsEmpty() && a.bare.lo <= -1 {
		dec = Min(dec, Trv)
	}
	return combine(bare, dec, a.ng || t.RaisesNG())
}

func (a Interval) Log2(t rounded.Transcendentals) Interval {
	if IsNaI(a) {
		return NaI()
	}
	bare := Log2(t, a.bare)
	dec := a.dec
	if !a.bare.IsEmpty() && a.bare.lo <= 0 {
		dec = Min(dec, Trv)
	}
	return combine(bare, dec, a.ng || t.RaisesNG())
}

func (a Interval) Log10(t rounded.Transcendentals) Interval {
	if IsNaI(a) {
		return NaI()
	}
	bare := Log10(t, a.bare)
	dec := a.dec
	if !a.bare.IsEmpty() && a.bare.lo <= 0 {
		dec = Min(dec, Trv)
	}
	return combine(bare, dec, a.ng || t.RaisesNG())
}
