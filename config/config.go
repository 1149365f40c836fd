// SPDX-License-Identifier: MIT

// Package config holds the process-wide, immutable configuration recognized
// by ivlath: bound type, IEEE-1788 flavor, rounding backend, and the
// power/matmul algorithm selection.
//
// Design goals (mirrors the teacher's options.go discipline):
//   - Deterministic behavior: no hidden defaulting, no implicit randomness.
//   - Safe by construction: Option constructors panic only on nonsensical
//     literal arguments (programmer error), never on valid combinations.
//   - A Config value is immutable once built. The only shared mutable state
//     in this module is the process-wide default, held behind an
//     atomic.Pointer and read once per call site — never mutated mid-run.
package config

import (
	"fmt"

	"github.com/ivlath/ivlath/rounded"
)

// BoundType selects the floating-point representation backing every
// Interval in the module. Binary64 is the only bound type with a working
// numeric backend in this release; Binary32 and ArbitraryPrecision are
// recognized (so the option surface matches the documented table) but
// surface ErrUnsupportedBoundType the first time a constructor is invoked
// under them.
type BoundType uint8

const (
	// Binary64 is the default bound type (float64) and the only one with
	// a working rounded.Ops backend.
	Binary64 BoundType = iota
	// Binary32 is recognized but not yet backed by a numeric implementation.
	Binary32
	// ArbitraryPrecision is recognized but not yet backed by a numeric
	// implementation; arbitrary-precision arithmetic beyond the bound
	// type's native precision is an explicit non-goal of this module.
	ArbitraryPrecision
)

// String renders the bound type for diagnostics.
func (b BoundType) String() string {
	switch b {
	case Binary64:
		return "binary64"
	case Binary32:
		return "binary32"
	case ArbitraryPrecision:
		return "arbitrary-precision"
	default:
		return fmt.Sprintf("BoundType(%d)", uint8(b))
	}
}

// Flavor selects the IEEE-1788 flavor. SetBased is the only supported
// flavor; the field exists so the config surface matches the documented
// table even though no alternative flavor is implemented.
type Flavor uint8

// SetBased is the only recognized Flavor value.
const SetBased Flavor = 0

// String renders the flavor for diagnostics.
func (f Flavor) String() string { return "set-based" }

// RoundingBackend selects which rounded.Ops backend arithmetic uses.
type RoundingBackend uint8

const (
	// RoundingCorrect selects the correctly-rounded backend (default).
	RoundingCorrect RoundingBackend = iota
	// RoundingNone selects the native-float + ULP-widening backend, which
	// raises the NG flag on every arithmetic result it touches.
	RoundingNone
)

// String renders the rounding backend for diagnostics.
func (r RoundingBackend) String() string {
	if r == RoundingNone {
		return "none"
	}
	return "correct"
}

// PowerMode selects the exponentiation algorithm used by BareInterval.Pow*.
type PowerMode uint8

const (
	// FastPow is the default: corner-evaluation / repeated-squaring power.
	FastPow PowerMode = iota
	// SlowPow forces the reference (non-optimized) evaluation path; useful
	// for differential testing against FastPow.
	SlowPow
)

// String renders the power mode for diagnostics.
func (p PowerMode) String() string {
	if p == SlowPow {
		return "slow"
	}
	return "fast"
}

// MatMulMode selects the matrix-multiplication algorithm.
type MatMulMode uint8

const (
	// FastMatMul is the default: Rump's midpoint-radius algorithm.
	FastMatMul MatMulMode = iota
	// SlowMatMul forces the naive triple-loop interval kernel.
	SlowMatMul
)

// String renders the matmul mode for diagnostics.
func (m MatMulMode) String() string {
	if m == SlowMatMul {
		return "slow"
	}
	return "fast"
}

// Config is the immutable, fully-resolved process configuration. Build one
// with New; do not construct the struct literal directly from outside the
// package (fields are unexported to keep defaults centralized).
type Config struct {
	bound    BoundType
	flavor   Flavor
	rounding RoundingBackend
	power    PowerMode
	matmul   MatMulMode
}

// BoundType returns the configured bound type.
func (c Config) BoundType() BoundType { return c.bound }

// Flavor returns the configured IEEE-1788 flavor.
func (c Config) Flavor() Flavor { return c.flavor }

// Rounding returns the configured rounding backend.
func (c Config) Rounding() RoundingBackend { return c.rounding }

// Power returns the configured exponentiation algorithm.
func (c Config) Power() PowerMode { return c.power }

// MatMul returns the configured matrix-multiplication algorithm.
func (c Config) MatMul() MatMulMode { return c.matmul }

// Ops builds the rounded.Ops matching this Config's Rounding selection —
// the bridge that gives the Rounding field a real consumer instead of a
// value nobody reads. RoundingCorrect maps to rounded.Correct,
// RoundingNone to rounded.None; the returned Ops uses the default
// Transcendentals (native math.* widened one ULP outward).
func (c Config) Ops() rounded.Ops {
	kind := rounded.Correct
	if c.rounding == RoundingNone {
		kind = rounded.None
	}
	return rounded.New(kind)
}

// Option mutates a Config under construction. Safe to apply repeatedly.
type Option func(*Config)

// WithBoundType selects the element bound type.
func WithBoundType(b BoundType) Option {
	return func(c *Config) { c.bound = b }
}

// WithFlavor selects the IEEE-1788 flavor. Panics if f is not SetBased,
// since no other flavor is implemented and accepting it silently would
// violate the "recognized option" contract.
func WithFlavor(f Flavor) Option {
	if f != SetBased {
		panic(fmt.Sprintf("config: WithFlavor: unsupported flavor %v", f))
	}
	return func(c *Config) { c.flavor = f }
}

// WithRounding selects the rounding backend.
func WithRounding(r RoundingBackend) Option {
	return func(c *Config) { c.rounding = r }
}

// WithPower selects the exponentiation algorithm.
func WithPower(p PowerMode) Option {
	return func(c *Config) { c.power = p }
}

// WithMatMul selects the matrix-multiplication algorithm.
func WithMatMul(m MatMulMode) Option {
	return func(c *Config) { c.matmul = m }
}

// defaultConfig is the single source of truth for documented defaults.
func defaultConfig() Config {
	return Config{
		bound:    Binary64,
		flavor:   SetBased,
		rounding: RoundingCorrect,
		power:    FastPow,
		matmul:   FastMatMul,
	}
}

// New resolves opts against the documented defaults and returns a fully
// immutable Config. Last-writer-wins for repeated options.
func New(opts ...Option) Config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Default returns the documented default Config.
func Default() Config { return defaultConfig() }
