// SPDX-License-Identifier: MIT

package interval

import "errors"

// ErrInvalidBounds is returned by FromBounds when the requested pair
// cannot represent a bare interval: a > b, a = +Inf, or b = -Inf.
var ErrInvalidBounds = errors.New("interval: invalid bounds")
