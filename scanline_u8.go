// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// ScanlineU8 is the unpacked scanline container: one cover byte per
// pixel column, with spans indexing into the cover buffer. It is the
// best fit when the consumer reads per-pixel coverage anyway, such as
// solid-color blending.
type ScanlineU8 struct {
	minX   int32
	lastX  int32
	y      int32
	covers []byte
	spans  []Span
}

// NewScanlineU8 returns an empty container. Reset must size it before
// the first sweep.
func NewScanlineU8() *ScanlineU8 {
	return &ScanlineU8{lastX: lastXSentinel}
}

// Reset sizes the container for columns minX..maxX and clears it.
func (sl *ScanlineU8) Reset(minX, maxX int32) {
	maxLen := int(maxX-minX) + 2
	if maxLen > cap(sl.covers) {
		sl.covers = make([]byte, maxLen)
		sl.spans = make([]Span, 0, maxLen)
	}
	sl.covers = sl.covers[:maxLen]
	sl.spans = sl.spans[:0]
	sl.minX = minX
	sl.lastX = lastXSentinel
}

// ResetSpans clears the container for the next row.
func (sl *ScanlineU8) ResetSpans() {
	sl.lastX = lastXSentinel
	sl.spans = sl.spans[:0]
}

// AddCell records cover for the single pixel at x.
func (sl *ScanlineU8) AddCell(x int32, cover uint32) {
	i := x - sl.minX
	sl.covers[i] = byte(cover)
	if i == sl.lastX+1 {
		s := &sl.spans[len(sl.spans)-1]
		s.Len++
		s.Covers = sl.covers[s.X-sl.minX : i+1]
	} else {
		sl.spans = append(sl.spans, Span{X: x, Len: 1, Covers: sl.covers[i : i+1]})
	}
	sl.lastX = i
}

// AddCells records a block of per-pixel covers starting at x.
func (sl *ScanlineU8) AddCells(x int32, covers []byte) {
	i := x - sl.minX
	n := int32(len(covers))
	copy(sl.covers[i:], covers)
	if i == sl.lastX+1 {
		s := &sl.spans[len(sl.spans)-1]
		s.Len += n
		s.Covers = sl.covers[s.X-sl.minX : i+n]
	} else {
		sl.spans = append(sl.spans, Span{X: x, Len: n, Covers: sl.covers[i : i+n]})
	}
	sl.lastX = i + n - 1
}

// AddSpan records length pixels of uniform cover starting at x.
// The cover is expanded into the per-pixel buffer; packing solid runs
// is ScanlineP8's job.
func (sl *ScanlineU8) AddSpan(x, length int32, cover uint32) {
	i := x - sl.minX
	fillCovers(sl.covers[i:i+length], byte(cover))
	if i == sl.lastX+1 {
		s := &sl.spans[len(sl.spans)-1]
		s.Len += length
		s.Covers = sl.covers[s.X-sl.minX : i+length]
	} else {
		sl.spans = append(sl.spans, Span{X: x, Len: length, Covers: sl.covers[i : i+length]})
	}
	sl.lastX = i + length - 1
}

// Finalize stamps the row number once the sweep of a row is complete.
func (sl *ScanlineU8) Finalize(y int32) {
	sl.y = y
}

// Y returns the row stamped by Finalize.
func (sl *ScanlineU8) Y() int32 {
	return sl.y
}

// NumSpans returns the number of spans in the finished row.
func (sl *ScanlineU8) NumSpans() int {
	return len(sl.spans)
}

// Begin returns the spans of the finished row, x-ordered and
// non-overlapping. The slice is valid until the next ResetSpans.
func (sl *ScanlineU8) Begin() []Span {
	return sl.spans
}
