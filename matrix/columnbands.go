// SPDX-License-Identifier: MIT

package matrix

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// columnBands splits [0, cols) into up to workers disjoint, contiguous
// half-open ranges. Each worker owns one band's columns end to end —
// reads of A and B are shared (read-only) but writes to the output never
// overlap, so no synchronization primitive is needed inside the kernel
// (spec.md §5's worker-pool shape).
func columnBands(cols, workers int) [][2]int {
	if workers < 1 {
		workers = 1
	}
	if workers > cols {
		workers = cols
	}
	bands := make([][2]int, 0, workers)
	base := cols / workers
	rem := cols % workers
	start := 0
	for i := 0; i < workers; i++ {
		width := base
		if i < rem {
			width++
		}
		if width == 0 {
			continue
		}
		bands = append(bands, [2]int{start, start + width})
		start += width
	}
	return bands
}

// defaultWorkers returns a worker count scaled to the host, capped by the
// number of columns a band can usefully own.
func defaultWorkers(cols int) int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		n = 1
	}
	if n > cols {
		n = cols
	}
	return n
}

// runColumnBands drives work(lo, hi) once per band produced by
// columnBands(cols, workers), concurrently, and waits for all bands to
// finish. A failing band does not cancel the others: every band runs to
// completion and the first error returned by any band is returned.
func runColumnBands(cols, workers int, work func(lo, hi int) error) error {
	bands := columnBands(cols, workers)
	g, _ := errgroup.WithContext(context.Background())
	for _, band := range bands {
		lo, hi := band[0], band[1]
		g.Go(func() error { return work(lo, hi) })
	}
	return g.Wait()
}
