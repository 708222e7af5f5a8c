// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// ScanlineP8 is the packed scanline container. Runs of pixels that
// share one cover value are stored as a single solid span with a
// negative length; only genuinely per-pixel coverage spends one byte
// per pixel. Consecutive solid spans with equal cover coalesce.
//
// Renderers that special-case solid runs (one blend call instead of a
// per-pixel loop) get that information for free from the sign of
// Span.Len.
type ScanlineP8 struct {
	lastX  int32
	y      int32
	covers []byte // consumed front to back within a row
	used   int32  // covers consumed so far
	spans  []Span
}

// NewScanlineP8 returns an empty container. Reset must size it before
// the first sweep.
func NewScanlineP8() *ScanlineP8 {
	return &ScanlineP8{lastX: lastXSentinel}
}

// Reset sizes the container for columns minX..maxX and clears it.
func (sl *ScanlineP8) Reset(minX, maxX int32) {
	maxLen := int(maxX-minX) + 3
	if maxLen > cap(sl.covers) {
		sl.covers = make([]byte, maxLen)
		sl.spans = make([]Span, 0, maxLen)
	}
	sl.covers = sl.covers[:maxLen]
	sl.spans = sl.spans[:0]
	sl.used = 0
	sl.lastX = lastXSentinel
}

// ResetSpans clears the container for the next row.
func (sl *ScanlineP8) ResetSpans() {
	sl.lastX = lastXSentinel
	sl.used = 0
	sl.spans = sl.spans[:0]
}

// AddCell records cover for the single pixel at x.
func (sl *ScanlineP8) AddCell(x int32, cover uint32) {
	sl.covers[sl.used] = byte(cover)
	sl.used++
	if x == sl.lastX+1 && len(sl.spans) > 0 && sl.spans[len(sl.spans)-1].Len > 0 {
		s := &sl.spans[len(sl.spans)-1]
		s.Len++
		s.Covers = sl.covers[sl.used-s.Len : sl.used]
	} else {
		sl.spans = append(sl.spans, Span{X: x, Len: 1, Covers: sl.covers[sl.used-1 : sl.used]})
	}
	sl.lastX = x
}

// AddCells records a block of per-pixel covers starting at x.
func (sl *ScanlineP8) AddCells(x int32, covers []byte) {
	n := int32(len(covers))
	copy(sl.covers[sl.used:], covers)
	sl.used += n
	if x == sl.lastX+1 && len(sl.spans) > 0 && sl.spans[len(sl.spans)-1].Len > 0 {
		s := &sl.spans[len(sl.spans)-1]
		s.Len += n
		s.Covers = sl.covers[sl.used-s.Len : sl.used]
	} else {
		sl.spans = append(sl.spans, Span{X: x, Len: n, Covers: sl.covers[sl.used-n : sl.used]})
	}
	sl.lastX = x + n - 1
}

// AddSpan records length pixels of uniform cover starting at x as a
// solid run. An adjacent solid run with the same cover is extended
// instead of starting a new span.
func (sl *ScanlineP8) AddSpan(x, length int32, cover uint32) {
	if x == sl.lastX+1 && len(sl.spans) > 0 {
		if s := &sl.spans[len(sl.spans)-1]; s.Len < 0 && s.Covers[0] == byte(cover) {
			s.Len -= length
			sl.lastX = x + length - 1
			return
		}
	}
	sl.covers[sl.used] = byte(cover)
	sl.spans = append(sl.spans, Span{X: x, Len: -length, Covers: sl.covers[sl.used : sl.used+1]})
	sl.used++
	sl.lastX = x + length - 1
}

// Finalize stamps the row number once the sweep of a row is complete.
func (sl *ScanlineP8) Finalize(y int32) {
	sl.y = y
}

// Y returns the row stamped by Finalize.
func (sl *ScanlineP8) Y() int32 {
	return sl.y
}

// NumSpans returns the number of spans in the finished row.
func (sl *ScanlineP8) NumSpans() int {
	return len(sl.spans)
}

// Begin returns the spans of the finished row. The slice is valid
// until the next ResetSpans.
func (sl *ScanlineP8) Begin() []Span {
	return sl.spans
}
