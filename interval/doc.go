// SPDX-License-Identifier: MIT

// Package interval implements a correctly-rounded interval number type
// per IEEE Std 1788-2015's set-based flavor: BareInterval (the bare
// [lo, hi] pair), Decoration (the com/dac/def/trv/ill validity lattice),
// Interval (BareInterval plus Decoration and the NG "not guaranteed" bit),
// NaI (the Not-an-Interval sentinel), and ComplexInterval (a pair of
// Interval with Gauss-identity complex arithmetic).
//
// Every arithmetic method takes a rounded.Ops (the transcendental
// functions take a rounded.Transcendentals instead) to perform its
// directed floating-point steps; none of the types here hold their own Ops —
// callers own that choice and thread it through, matching rounded's
// stateless, share-across-goroutines design.
package interval
