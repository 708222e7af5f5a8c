// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// RectI is an integer rectangle with inclusive corners. The pipeline
// uses it in two units: sub-pixel coordinates for geometry clipping and
// whole pixels for render clipping.
type RectI struct {
	X1, Y1, X2, Y2 int32
}

// Normalized returns the rectangle with corners ordered so that
// X1 <= X2 and Y1 <= Y2.
func (r RectI) Normalized() RectI {
	if r.X1 > r.X2 {
		r.X1, r.X2 = r.X2, r.X1
	}
	if r.Y1 > r.Y2 {
		r.Y1, r.Y2 = r.Y2, r.Y1
	}
	return r
}

// IsValid reports whether the rectangle contains at least one point.
func (r RectI) IsValid() bool {
	return r.X1 <= r.X2 && r.Y1 <= r.Y2
}

// HitTest reports whether (x, y) lies inside the rectangle.
func (r RectI) HitTest(x, y int32) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Intersect returns the overlap of two rectangles. The result may be
// invalid when they do not overlap; callers check IsValid.
func (r RectI) Intersect(o RectI) RectI {
	return RectI{
		X1: maxInt32(r.X1, o.X1),
		Y1: maxInt32(r.Y1, o.Y1),
		X2: minInt32(r.X2, o.X2),
		Y2: minInt32(r.Y2, o.Y2),
	}
}
