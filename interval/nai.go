// SPDX-License-Identifier: MIT

package interval

// NaI returns the Not-an-Interval sentinel: decoration Ill, NG set.
// Arithmetic on NaI always returns NaI.
func NaI() Interval {
	return Interval{bare: Empty(), dec: Ill, ng: true}
}

// IsNaI reports whether v is the NaI sentinel.
func IsNaI(v Interval) bool { return v.dec == Ill }
