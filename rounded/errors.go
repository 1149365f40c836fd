// SPDX-License-Identifier: MIT

package rounded

import "errors"

// ErrUnsupportedDirection is returned by callers that validate a Direction
// value read from untrusted input before passing it to an Ops method;
// Ops methods themselves never return it — out-of-range Direction values
// fall through their switch statements to the ToNearest case instead of
// panicking or erroring, matching Direction's zero-value default.
var ErrUnsupportedDirection = errors.New("rounded: unsupported direction")
