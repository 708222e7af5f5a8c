// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Segment clipping against the rasterizer's clip box, in sub-pixel
// coordinates, before cells are accumulated.
//
// This is not general line clipping: a segment that lies entirely
// outside the box in x is not dropped but degraded to a vertical
// segment pinned to the near box edge. Its vertical cover still enters
// the accumulator, so a polygon whose outline leaves the box keeps
// filling the pixels it encloses inside the box. Only segments fully
// above or fully below the box are dropped, because no scanline in the
// box can see them. Segments fully outside in Y are dropped the same
// way mid-split. The flag layout follows the Liang-Barsky outcode
// scheme.

// Outcode bits, one per boundary.
const (
	clipFlagX2 = 1 << iota // x > box.X2
	clipFlagY2             // y > box.Y2
	clipFlagX1             // x < box.X1
	clipFlagY1             // y < box.Y1
)

// clippingFlags computes the outcode of a point against box.
func clippingFlags(x, y PolyCoord, box RectI) uint32 {
	var f uint32
	if x > box.X2 {
		f |= clipFlagX2
	}
	if y > box.Y2 {
		f |= clipFlagY2
	}
	if x < box.X1 {
		f |= clipFlagX1
	}
	if y < box.Y1 {
		f |= clipFlagY1
	}
	return f
}

// clippingFlagsY computes only the vertical outcode bits.
func clippingFlagsY(y PolyCoord, box RectI) uint32 {
	var f uint32
	if y > box.Y2 {
		f |= clipFlagY2
	}
	if y < box.Y1 {
		f |= clipFlagY1
	}
	return f
}

// mulDiv interpolates a crossing point: a*b/c rounded half away from
// zero, in float64 so the intermediate product cannot overflow.
func mulDiv(a, b, c float64) int32 {
	return iround(a * b / c)
}

// clipper feeds polygon segments to a cell accumulator, clipping them
// against an optional box. It keeps the previous vertex and its
// outcode between calls, like the accumulator keeps its current cell.
//
// With no clip box set every segment passes through untouched.
type clipper struct {
	clipBox  RectI
	x1, y1   PolyCoord
	f1       uint32
	clipping bool
}

// setClipBox enables clipping against the given sub-pixel box.
// The box is normalized here; the clipping paths assume it.
func (c *clipper) setClipBox(x1, y1, x2, y2 PolyCoord) {
	c.clipBox = RectI{X1: x1, Y1: y1, X2: x2, Y2: y2}.Normalized()
	c.clipping = true
}

// resetClipping disables clipping; segments pass straight through.
func (c *clipper) resetClipping() {
	c.clipping = false
}

// moveTo starts a new segment chain at (x, y).
func (c *clipper) moveTo(x, y PolyCoord) {
	c.x1, c.y1 = x, y
	if c.clipping {
		c.f1 = clippingFlags(x, y, c.clipBox)
	}
}

// lineTo clips the segment from the previous vertex to (x2, y2) and
// hands the visible pieces, at most three, to the accumulator.
func (c *clipper) lineTo(cells *cellAccumulator, x2, y2 PolyCoord) {
	if !c.clipping {
		cells.line(c.x1, c.y1, x2, y2)
		c.x1, c.y1 = x2, y2
		return
	}

	f2 := clippingFlags(x2, y2, c.clipBox)

	// Both endpoints off the same horizontal side: invisible, and no
	// boundary edge is needed because no visible row is crossed.
	if (c.f1&(clipFlagY1|clipFlagY2)) == (f2&(clipFlagY1|clipFlagY2)) &&
		c.f1&(clipFlagY1|clipFlagY2) != 0 {
		c.x1, c.y1 = x2, y2
		c.f1 = f2
		return
	}

	x1, y1, f1 := c.x1, c.y1, c.f1
	box := c.clipBox

	switch ((f1 & (clipFlagX2 | clipFlagX1)) << 1) | (f2 & (clipFlagX2 | clipFlagX1)) {
	case 0: // both inside in x
		c.lineClipY(cells, x1, y1, x2, y2, f1, f2)

	case 1: // x2 crosses the right boundary
		y3 := y1 + mulDiv(float64(box.X2-x1), float64(y2-y1), float64(x2-x1))
		f3 := clippingFlagsY(y3, box)
		c.lineClipY(cells, x1, y1, box.X2, y3, f1, f3)
		c.lineClipY(cells, box.X2, y3, box.X2, y2, f3, f2)

	case 2: // x1 crosses the right boundary
		y3 := y1 + mulDiv(float64(box.X2-x1), float64(y2-y1), float64(x2-x1))
		f3 := clippingFlagsY(y3, box)
		c.lineClipY(cells, box.X2, y1, box.X2, y3, f1, f3)
		c.lineClipY(cells, box.X2, y3, x2, y2, f3, f2)

	case 3: // both right of the box: degrade to a boundary edge
		c.lineClipY(cells, box.X2, y1, box.X2, y2, f1, f2)

	case 4: // x2 crosses the left boundary
		y3 := y1 + mulDiv(float64(box.X1-x1), float64(y2-y1), float64(x2-x1))
		f3 := clippingFlagsY(y3, box)
		c.lineClipY(cells, x1, y1, box.X1, y3, f1, f3)
		c.lineClipY(cells, box.X1, y3, box.X1, y2, f3, f2)

	case 6: // right to left across the box
		y3 := y1 + mulDiv(float64(box.X2-x1), float64(y2-y1), float64(x2-x1))
		y4 := y1 + mulDiv(float64(box.X1-x1), float64(y2-y1), float64(x2-x1))
		f3 := clippingFlagsY(y3, box)
		f4 := clippingFlagsY(y4, box)
		c.lineClipY(cells, box.X2, y1, box.X2, y3, f1, f3)
		c.lineClipY(cells, box.X2, y3, box.X1, y4, f3, f4)
		c.lineClipY(cells, box.X1, y4, box.X1, y2, f4, f2)

	case 8: // x1 crosses the left boundary
		y3 := y1 + mulDiv(float64(box.X1-x1), float64(y2-y1), float64(x2-x1))
		f3 := clippingFlagsY(y3, box)
		c.lineClipY(cells, box.X1, y1, box.X1, y3, f1, f3)
		c.lineClipY(cells, box.X1, y3, x2, y2, f3, f2)

	case 9: // left to right across the box
		y3 := y1 + mulDiv(float64(box.X1-x1), float64(y2-y1), float64(x2-x1))
		y4 := y1 + mulDiv(float64(box.X2-x1), float64(y2-y1), float64(x2-x1))
		f3 := clippingFlagsY(y3, box)
		f4 := clippingFlagsY(y4, box)
		c.lineClipY(cells, box.X1, y1, box.X1, y3, f1, f3)
		c.lineClipY(cells, box.X1, y3, box.X2, y4, f3, f4)
		c.lineClipY(cells, box.X2, y4, box.X2, y2, f4, f2)

	case 12: // both left of the box: degrade to a boundary edge
		c.lineClipY(cells, box.X1, y1, box.X1, y2, f1, f2)
	}

	c.f1 = f2
	c.x1, c.y1 = x2, y2
}

// lineClipY clips an x-resolved segment against the horizontal
// boundaries and accumulates it. f1 and f2 may still carry x bits;
// only the y bits are inspected.
func (c *clipper) lineClipY(cells *cellAccumulator, x1, y1, x2, y2 PolyCoord, f1, f2 uint32) {
	f1 &= clipFlagY1 | clipFlagY2
	f2 &= clipFlagY1 | clipFlagY2

	if f1|f2 == 0 {
		cells.line(x1, y1, x2, y2)
		return
	}
	if f1 == f2 {
		// Invisible by y.
		return
	}

	tx1, ty1, tx2, ty2 := x1, y1, x2, y2
	box := c.clipBox

	if f1&clipFlagY1 != 0 {
		tx1 = x1 + mulDiv(float64(box.Y1-y1), float64(x2-x1), float64(y2-y1))
		ty1 = box.Y1
	}
	if f1&clipFlagY2 != 0 {
		tx1 = x1 + mulDiv(float64(box.Y2-y1), float64(x2-x1), float64(y2-y1))
		ty1 = box.Y2
	}
	if f2&clipFlagY1 != 0 {
		tx2 = x1 + mulDiv(float64(box.Y1-y1), float64(x2-x1), float64(y2-y1))
		ty2 = box.Y1
	}
	if f2&clipFlagY2 != 0 {
		tx2 = x1 + mulDiv(float64(box.Y2-y1), float64(x2-x1), float64(y2-y1))
		ty2 = box.Y2
	}
	cells.line(tx1, ty1, tx2, ty2)
}
