// SPDX-License-Identifier: MIT

// Package rounded implements RoundedOps: float add/sub/mul/div/sqrt/fma/pow
// and the transcendentals, each with an explicit rounding direction, backed
// by one of two selectable backends (see BackendKind).
//
// Every Ops method takes its rounding Direction as an explicit parameter
// rather than mutating the FPU control word, so the same Ops value is safe
// to share across goroutines (spec.md §5: "rounding modes are per-call...
// this avoids races on the FPU control word across worker threads").
package rounded

import "math/big"

// Direction selects which way a result is rounded when it is not exactly
// representable.
type Direction uint8

const (
	// ToNearest rounds to the nearest representable value (ties to even).
	ToNearest Direction = iota
	// Up rounds toward +Inf.
	Up
	// Down rounds toward -Inf.
	Down
	// TowardZero rounds toward zero (truncation).
	TowardZero
)

// String renders the direction for diagnostics.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case TowardZero:
		return "toward-zero"
	default:
		return "nearest"
	}
}

// bigMode maps a Direction onto the matching big.RoundingMode.
func (d Direction) bigMode() big.RoundingMode {
	switch d {
	case Up:
		return big.ToPositiveInf
	case Down:
		return big.ToNegativeInf
	case TowardZero:
		return big.ToZero
	default:
		return big.ToNearestEven
	}
}
