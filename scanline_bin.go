// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// ScanlineBin is the binary scanline container: spans only, coverage
// discarded. A pixel is either touched or not, which is all a mask,
// hit region or quick preview needs. Spans carry a nil Covers slice
// and renderers treat them as fully covered.
type ScanlineBin struct {
	lastX int32
	y     int32
	spans []Span
}

// NewScanlineBin returns an empty container. Reset must size it before
// the first sweep.
func NewScanlineBin() *ScanlineBin {
	return &ScanlineBin{lastX: lastXSentinel}
}

// Reset sizes the container for columns minX..maxX and clears it.
func (sl *ScanlineBin) Reset(minX, maxX int32) {
	maxLen := int(maxX-minX) + 3
	if maxLen > cap(sl.spans) {
		sl.spans = make([]Span, 0, maxLen)
	}
	sl.spans = sl.spans[:0]
	sl.lastX = lastXSentinel
}

// ResetSpans clears the container for the next row.
func (sl *ScanlineBin) ResetSpans() {
	sl.lastX = lastXSentinel
	sl.spans = sl.spans[:0]
}

// AddCell marks the single pixel at x as touched. The cover value is
// ignored.
func (sl *ScanlineBin) AddCell(x int32, _ uint32) {
	if x == sl.lastX+1 {
		sl.spans[len(sl.spans)-1].Len++
	} else {
		sl.spans = append(sl.spans, Span{X: x, Len: 1})
	}
	sl.lastX = x
}

// AddCells marks len(covers) pixels starting at x as touched. The
// cover bytes are ignored.
func (sl *ScanlineBin) AddCells(x int32, covers []byte) {
	sl.AddSpan(x, int32(len(covers)), 0)
}

// AddSpan marks length pixels starting at x as touched. The cover
// value is ignored.
func (sl *ScanlineBin) AddSpan(x, length int32, _ uint32) {
	if x == sl.lastX+1 {
		sl.spans[len(sl.spans)-1].Len += length
	} else {
		sl.spans = append(sl.spans, Span{X: x, Len: length})
	}
	sl.lastX = x + length - 1
}

// Finalize stamps the row number once the sweep of a row is complete.
func (sl *ScanlineBin) Finalize(y int32) {
	sl.y = y
}

// Y returns the row stamped by Finalize.
func (sl *ScanlineBin) Y() int32 {
	return sl.y
}

// NumSpans returns the number of spans in the finished row.
func (sl *ScanlineBin) NumSpans() int {
	return len(sl.spans)
}

// Begin returns the spans of the finished row. The slice is valid
// until the next ResetSpans.
func (sl *ScanlineBin) Begin() []Span {
	return sl.spans
}
