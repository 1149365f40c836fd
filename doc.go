// Package ivlath provides validated numerics via interval arithmetic,
// conforming to the set-based flavor of IEEE Std 1788-2015, plus verified
// linear algebra over interval-valued matrices.
//
// Every primitive in this module takes inputs drawn from uncertain ranges
// and produces a closed interval guaranteed to contain the exact
// mathematical result, despite running on finite-precision floating
// point. That guarantee rests on choosing rounding directions, midpoint
// representations, and decoration propagations so that no bit of
// accuracy is silently lost.
//
// Subpackages:
//
//	rounded/    — directed-rounding float primitives (+ − × ÷ √ and
//	              transcendentals), selectable between a correctly-rounded
//	              backend and a conservative native-float backend.
//	interval/   — BareInterval, Decoration, Interval (bare + decoration +
//	              not-guaranteed flag), NaI, and ComplexInterval.
//	matrix/     — dense float/interval/complex-interval/rational matrices,
//	              verified matrix multiplication (naive and Rump
//	              midpoint-radius), and operator norms.
//	matrix/ops/ — verified matrix inversion (Brouwer fixed-point /
//	              Neumann-series validation) and verified eigenvalue
//	              enclosure (Gershgorin discs after similarity
//	              refinement).
//	config/     — immutable process-wide configuration (bound type,
//	              rounding backend, power/matmul algorithm selection).
//
// Data flow mirrors the dependency order above: rounded → interval →
// matrix → matrix/ops, with config threaded through (or read from its
// process-wide atomic default) at every layer.
//
// Display/formatting, parsing of interval literals, piecewise-function
// glue, and FFI to an actual correctly-rounded transcendental library are
// out of scope — each is treated as an external collaborator. See
// rounded.Transcendentals for the contract such a library would satisfy.
package ivlath
