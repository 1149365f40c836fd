// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrUnsupportedBoundType is returned by interval/matrix constructors when
// invoked under a Config whose BoundType has no numeric backend yet
// (Binary32, ArbitraryPrecision). Binary64 never returns this error.
var ErrUnsupportedBoundType = errors.New("config: unsupported bound type")
