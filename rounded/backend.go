// SPDX-License-Identifier: MIT

package rounded

// BackendKind selects which strategy Ops uses to produce directed-rounded
// results. See spec.md §4.1.
type BackendKind uint8

const (
	// Correct selects the correctly-rounded backend: big.Float arithmetic
	// for the algebraic primitives (+ − × ÷ √), and ULP-widening for the
	// operations big.Float has no equivalent for (real-exponent pow,
	// rootn other than sqrt, atan2, and all transcendentals — see
	// Transcendentals).
	Correct BackendKind = iota
	// None selects the native-float backend: every result is the native
	// float64 operation widened one ULP outward in the requested
	// direction. Ops.RaisesNG reports true for this backend.
	None
)

// String renders the backend kind for diagnostics.
func (k BackendKind) String() string {
	if k == None {
		return "none"
	}
	return "correct"
}

// Ops is RoundedOps: a stateless value bound to one BackendKind and one
// Transcendentals implementation. Safe to share across goroutines — no
// method mutates global state or the FPU control word.
type Ops struct {
	kind   BackendKind
	transc Transcendentals
}

// New constructs an Ops for the given backend with the default
// Transcendentals (native math.* widened one ULP outward).
func New(kind BackendKind) Ops {
	return Ops{kind: kind, transc: DefaultTranscendentals{}}
}

// NewWithTranscendentals constructs an Ops with an injected
// Transcendentals implementation — the FFI seam spec.md §6.3 describes.
func NewWithTranscendentals(kind BackendKind, t Transcendentals) Ops {
	if t == nil {
		t = DefaultTranscendentals{}
	}
	return Ops{kind: kind, transc: t}
}

// Kind returns the backend kind this Ops was constructed with.
func (o Ops) Kind() BackendKind { return o.kind }

// RaisesNG reports whether every result produced by this Ops must set the
// caller's NG (not-guaranteed) flag. True exactly for the None backend.
func (o Ops) RaisesNG() bool { return o.kind == None }
