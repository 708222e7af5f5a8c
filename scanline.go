// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Scanline containers collect the coverage spans of one pixel row as
// the rasterizer sweeps it, and hand them to a renderer. The three
// implementations trade generality for compactness:
//
//   - ScanlineU8 keeps a cover byte per pixel; spans index into it.
//   - ScanlineP8 packs runs of equal cover into single entries.
//   - ScanlineBin keeps only spans, discarding coverage, for masks
//     and quick previews.
//
// All containers reuse their buffers across rows and across frames;
// Reset sizes them once per viewport, ResetSpans clears them per row.

// Span is one horizontal run of covered pixels.
//
// When Len is positive, Covers holds one cover byte per pixel (nil for
// a binary container, meaning full coverage). When Len is negative the
// span is a solid run: |Len| pixels all share Covers[0].
type Span struct {
	X      int32
	Len    int32
	Covers []byte
}

// Scanline is the contract between the rasterizer sweep, the scanline
// containers and the render drivers.
//
// Reset sizes the container for columns minX..maxX inclusive and must
// be called before the first sweep; ResetSpans clears the container
// for the next row without releasing storage. AddCell, AddCells,
// AddSpan and Finalize are called in x order; adding cells outside
// the Reset range is a contract violation and panics on the bounds
// check. The sweep itself emits through AddCell and AddSpan; AddCells
// is for producers that already hold a run of cover bytes. NumSpans,
// Y and Begin expose the finished row.
type Scanline interface {
	Reset(minX, maxX int32)
	ResetSpans()
	AddCell(x int32, cover uint32)
	AddCells(x int32, covers []byte)
	AddSpan(x, length int32, cover uint32)
	Finalize(y int32)
	NumSpans() int
	Y() int32
	Begin() []Span
}

// lastXSentinel parks the merge position far away from any real
// column, so the first add after a reset never extends a span.
const lastXSentinel = 0x7FFFFFF0

// fillCovers sets every byte of dst to v.
func fillCovers(dst []byte, v byte) {
	for i := range dst {
		dst[i] = v
	}
}
