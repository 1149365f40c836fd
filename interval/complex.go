// SPDX-License-Identifier: MIT

package interval

import "github.com/ivlath/ivlath/rounded"

// ComplexInterval is (Re, Im Interval) with Gauss-identity complex
// arithmetic — spec.md §4.4. Both components share one decoration and
// one NG flag on the output of any operation (the minimum / OR across
// both component operations), not independent per-component values.
type ComplexInterval struct {
	Re, Im Interval
}

// NewComplex builds a ComplexInterval from its real and imaginary parts,
// collapsing to their shared decoration/NG immediately so every later
// operation sees one consistent pair.
func NewComplex(re, im Interval) ComplexInterval {
	dec := Min(re.dec, im.dec)
	ng := re.ng || im.ng
	re.dec, im.dec = dec, dec
	re.ng, im.ng = ng, ng
	return ComplexInterval{Re: re, Im: im}
}

// IsNaI reports whether either component is NaI.
func (c ComplexInterval) IsNaI() bool { return IsNaI(c.Re) || IsNaI(c.Im) }

func complexNaI() ComplexInterval { return ComplexInterval{Re: NaI(), Im: NaI()} }

func shared(re, im Interval) (Decoration, bool) {
	return Min(re.dec, im.dec), re.ng || im.ng
}

// Add returns c+d via componentwise real/imaginary addition.
func (c ComplexInterval) Add(o rounded.Ops, d ComplexInterval) ComplexInterval {
	if c.IsNaI() || d.IsNaI() {
		return complexNaI()
	}
	re := c.Re.Add(o, d.Re)
	im := c.Im.Add(o, d.Im)
	return NewComplex(re, im)
}

// Sub returns c-d via componentwise real/imaginary subtraction.
func (c ComplexInterval) Sub(o rounded.Ops, d ComplexInterval) ComplexInterval {
	if c.IsNaI() || d.IsNaI() {
		return complexNaI()
	}
	re := c.Re.Sub(o, d.Re)
	im := c.Im.Sub(o, d.Im)
	return NewComplex(re, im)
}

// Mul returns c*d via the Gauss identity: the real and imaginary parts
// of (a+ib)(c+id) are evaluated as four interval products and two
// combining sums, each with the outward rounding BareInterval already
// applies.
func (c ComplexInterval) Mul(o rounded.Ops, d ComplexInterval) ComplexInterval {
	if c.IsNaI() || d.IsNaI() {
		return complexNaI()
	}
	ac := c.Re.Mul(o, d.Re)
	bd := c.Im.Mul(o, d.Im)
	ad := c.Re.Mul(o, d.Im)
	bc := c.Im.Mul(o, d.Re)
	re := ac.Sub(o, bd)
	im := ad.Add(o, bc)
	return NewComplex(re, im)
}

// Div returns c/d via c * conj(d) / |d|^2, the standard complex-division
// identity lifted to interval components.
func (c ComplexInterval) Div(o rounded.Ops, d ComplexInterval) ComplexInterval {
	if c.IsNaI() || d.IsNaI() {
		return complexNaI()
	}
	denom := d.Re.Mul(o, d.Re).Add(o, d.Im.Mul(o, d.Im))
	reNum := c.Re.Mul(o, d.Re).Add(o, c.Im.Mul(o, d.Im))
	imNum := c.Im.Mul(o, d.Re).Sub(o, c.Re.Mul(o, d.Im))
	re := reNum.Div(o, denom)
	im := imNum.Div(o, denom)
	return NewComplex(re, im)
}
