// SPDX-License-Identifier: MIT

package matrix

// floatBuf is a row-major flat float64 buffer, the same layout Dense uses
// (offset = i*c+j), specialized for the midpoint/radius intermediates
// inside Rump's kernel: those legitimately hold ±Inf (an overflowed
// radius bound, say) that Dense's public NaN/Inf ingestion policy would
// reject. Internal to this package; never exposed across the API
// boundary.
type floatBuf struct {
	r, c int
	data []float64
}

func newFloatBuf(r, c int) floatBuf {
	return floatBuf{r: r, c: c, data: make([]float64, r*c)}
}

func (m floatBuf) at(i, j int) float64    { return m.data[i*m.c+j] }
func (m floatBuf) set(i, j int, v float64) { m.data[i*m.c+j] = v }
