// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// hitTestScanline is a throwaway scanline that probes a single pixel.
// It reports one span so the sweep stops after the probed row, and
// discards everything except whether the probe column was touched.
type hitTestScanline struct {
	x   int32
	hit bool
}

func newHitTestScanline(x int32) *hitTestScanline {
	return &hitTestScanline{x: x}
}

func (sl *hitTestScanline) Reset(_, _ int32) {}
func (sl *hitTestScanline) ResetSpans()      {}
func (sl *hitTestScanline) Finalize(int32)   {}
func (sl *hitTestScanline) Y() int32         { return 0 }
func (sl *hitTestScanline) Begin() []Span    { return nil }

// NumSpans pretends the row is non-empty so SweepScanline never skips
// ahead to another row.
func (sl *hitTestScanline) NumSpans() int { return 1 }

func (sl *hitTestScanline) AddCell(x int32, _ uint32) {
	if sl.x == x {
		sl.hit = true
	}
}

func (sl *hitTestScanline) AddCells(x int32, covers []byte) {
	if sl.x >= x && sl.x < x+int32(len(covers)) {
		sl.hit = true
	}
}

func (sl *hitTestScanline) AddSpan(x, length int32, _ uint32) {
	if sl.x >= x && sl.x < x+length {
		sl.hit = true
	}
}
