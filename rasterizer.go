// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

// Anti-aliasing scale. Coverage is reported on a 0..255 scale derived
// from the sub-pixel grid; aaShift matching PolySubpixelShift means the
// conversion in calculateAlpha is a pure shift.
const (
	aaShift  = 8
	aaScale  = 1 << aaShift
	aaMask   = aaScale - 1
	aaScale2 = aaScale * 2
	aaMask2  = aaScale2 - 1
)

// FillingRule selects how accumulated winding maps to inside/outside.
type FillingRule int

const (
	// FillNonZero fills every pixel whose winding number is non-zero.
	FillNonZero FillingRule = iota

	// FillEvenOdd fills pixels enclosed an odd number of times.
	FillEvenOdd
)

// String returns the rule name for diagnostics.
func (f FillingRule) String() string {
	switch f {
	case FillNonZero:
		return "NonZero"
	case FillEvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}

// status tracks the geometry phase of the rasterizer.
type status int

const (
	statusInitial status = iota
	statusMoveTo
	statusLineTo
	statusClosed
)

// Rasterizer converts filled polygons to anti-aliased scanlines.
//
// Feed it geometry with MoveTo/LineTo (sub-pixel units), MoveToD/
// LineToD (user units) or AddPath, then pull coverage out with
// RewindScanlines and SweepScanline. The rasterizer has two phases:
// while geometry is added, cells accumulate unordered; the first
// rewind sorts them, and from then on the cell store is immutable.
// Adding geometry after a rewind starts a fresh shape.
//
// The zero value is not ready for use; call NewRasterizer.
type Rasterizer struct {
	cells   cellAccumulator
	clipper clipper
	rule    FillingRule
	auto    bool
	startX  PolyCoord
	startY  PolyCoord
	status  status
	scanY   int32
}

// NewRasterizer returns a rasterizer with no clip box, the non-zero
// filling rule and automatic polygon closing.
func NewRasterizer(opts ...Option) *Rasterizer {
	r := &Rasterizer{auto: true}
	r.cells.reset()
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reset discards all accumulated geometry, keeping clip state and
// storage for reuse.
func (r *Rasterizer) Reset() {
	r.cells.reset()
	r.status = statusInitial
}

// SetClipBox clips all subsequently added geometry to the rectangle
// (x1,y1)-(x2,y2) in user units. Accumulated geometry is discarded.
func (r *Rasterizer) SetClipBox(x1, y1, x2, y2 float64) {
	r.Reset()
	r.clipper.setClipBox(Upscale(x1), Upscale(y1), Upscale(x2), Upscale(y2))
}

// ResetClipping removes the clip box. Accumulated geometry is
// discarded.
func (r *Rasterizer) ResetClipping() {
	r.Reset()
	r.clipper.resetClipping()
}

// SetFillingRule selects the fill rule applied during sweeping.
func (r *Rasterizer) SetFillingRule(rule FillingRule) {
	r.rule = rule
}

// FillingRule returns the active fill rule.
func (r *Rasterizer) FillingRule() FillingRule {
	return r.rule
}

// SetAutoClose controls whether an open sub-path is closed implicitly
// when a new one starts or sweeping begins. Fill semantics require
// closed outlines; disable only when the source closes every polygon
// itself.
func (r *Rasterizer) SetAutoClose(flag bool) {
	r.auto = flag
}

// MoveTo starts a new contour at (x, y) in sub-pixel units.
func (r *Rasterizer) MoveTo(x, y PolyCoord) {
	if r.cells.sorted {
		r.Reset()
	}
	if r.auto {
		r.ClosePolygon()
	}
	r.startX, r.startY = x, y
	r.clipper.moveTo(x, y)
	r.status = statusMoveTo
}

// LineTo adds a contour edge to (x, y) in sub-pixel units.
func (r *Rasterizer) LineTo(x, y PolyCoord) {
	r.clipper.lineTo(&r.cells, x, y)
	r.status = statusLineTo
}

// MoveToD starts a new contour at (x, y) in user units.
// Non-finite coordinates are ignored.
func (r *Rasterizer) MoveToD(x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}
	r.MoveTo(Upscale(x), Upscale(y))
}

// LineToD adds a contour edge to (x, y) in user units.
// Non-finite coordinates are ignored.
func (r *Rasterizer) LineToD(x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}
	r.LineTo(Upscale(x), Upscale(y))
}

// ClosePolygon closes the current contour with an edge back to its
// first vertex. A contour with no edges is left untouched.
func (r *Rasterizer) ClosePolygon() {
	if r.status == statusLineTo {
		r.clipper.lineTo(&r.cells, r.startX, r.startY)
		r.status = statusClosed
	}
}

// AddVertex dispatches one path command in user units. It is the
// building block of AddPath; sources that cannot implement
// VertexSource can drive it directly.
func (r *Rasterizer) AddVertex(x, y float64, cmd PathCommand) {
	switch {
	case cmd.IsMoveTo():
		r.MoveToD(x, y)
	case cmd.IsVertex():
		r.LineToD(x, y)
	case cmd.IsClose():
		r.ClosePolygon()
	}
}

// Edge adds a detached edge in sub-pixel units, outside any contour.
func (r *Rasterizer) Edge(x1, y1, x2, y2 PolyCoord) {
	if r.cells.sorted {
		r.Reset()
	}
	r.clipper.moveTo(x1, y1)
	r.clipper.lineTo(&r.cells, x2, y2)
	r.status = statusMoveTo
}

// EdgeD adds a detached edge in user units.
func (r *Rasterizer) EdgeD(x1, y1, x2, y2 float64) {
	if !finite(x1) || !finite(y1) || !finite(x2) || !finite(y2) {
		return
	}
	r.Edge(Upscale(x1), Upscale(y1), Upscale(x2), Upscale(y2))
}

// AddPath pulls all vertices of a path into the rasterizer.
// The source must emit flattened geometry; see VertexSource.
func (r *Rasterizer) AddPath(vs VertexSource, pathID uint32) {
	vs.Rewind(pathID)
	if r.cells.sorted {
		r.Reset()
	}
	for {
		x, y, cmd := vs.Vertex()
		if cmd.IsStop() {
			break
		}
		r.AddVertex(x, y, cmd)
	}
}

// MinX returns the leftmost pixel column touched by the outline.
func (r *Rasterizer) MinX() int32 { return r.cells.minX }

// MinY returns the topmost pixel row touched by the outline.
func (r *Rasterizer) MinY() int32 { return r.cells.minY }

// MaxX returns the rightmost pixel column touched by the outline.
func (r *Rasterizer) MaxX() int32 { return r.cells.maxX }

// MaxY returns the bottom pixel row touched by the outline.
func (r *Rasterizer) MaxY() int32 { return r.cells.maxY }

// RewindScanlines prepares sweeping: the open contour is closed, cells
// are sorted and merged, and the sweep position moves to the top of
// the outline. It returns false when there is nothing to sweep.
//
// Rewinding again restarts sweeping over the same cells and yields
// identical scanlines.
func (r *Rasterizer) RewindScanlines() bool {
	if r.auto {
		r.ClosePolygon()
	}
	r.cells.sortCells()
	if r.cells.totalCells() == 0 {
		return false
	}
	r.scanY = r.cells.minY
	Logger().Debug("raster: sweep ready",
		"cells", r.cells.totalCells(),
		"rows", r.cells.maxY-r.cells.minY+1)
	return true
}

// NavigateScanline positions the sweep at an arbitrary row. It returns
// false when the row is outside the outline.
func (r *Rasterizer) NavigateScanline(y int32) bool {
	if r.auto {
		r.ClosePolygon()
	}
	r.cells.sortCells()
	if r.cells.totalCells() == 0 || y < r.cells.minY || y > r.cells.maxY {
		return false
	}
	r.scanY = y
	return true
}

// SweepScanline fills sl with the spans of the next non-empty row.
// It returns false when the outline is exhausted; the container
// contents are unspecified after that.
func (r *Rasterizer) SweepScanline(sl Scanline) bool {
	for {
		if r.scanY > r.cells.maxY {
			return false
		}
		sl.ResetSpans()

		cells := r.cells.rowCells(r.scanY)
		cover := int32(0)

		i := 0
		for i < len(cells) {
			c := cells[i]
			x := c.x
			cover += c.cover
			i++

			// A cell with area describes a partially covered pixel;
			// without it the running cover alone decides.
			if c.area != 0 {
				alpha := r.calculateAlpha((cover << (PolySubpixelShift + 1)) - c.area)
				if alpha != 0 {
					sl.AddCell(x, alpha)
				}
				x++
			}

			// The gap to the next cell is interior or exterior as a
			// whole, depending on the running cover.
			if i < len(cells) && cells[i].x > x {
				alpha := r.calculateAlpha(cover << (PolySubpixelShift + 1))
				if alpha != 0 {
					sl.AddSpan(x, cells[i].x-x, alpha)
				}
			}
		}

		if sl.NumSpans() != 0 {
			break
		}
		r.scanY++
	}

	sl.Finalize(r.scanY)
	r.scanY++
	return true
}

// HitTest reports whether pixel (tx, ty) receives any coverage from
// the outline.
func (r *Rasterizer) HitTest(tx, ty int32) bool {
	if !r.NavigateScanline(ty) {
		return false
	}
	sl := newHitTestScanline(tx)
	r.SweepScanline(sl)
	return sl.hit
}

// calculateAlpha converts a doubled sub-pixel area to a 0..255 cover
// value under the active fill rule. No gamma is applied; coverage maps
// linearly.
func (r *Rasterizer) calculateAlpha(area int32) uint32 {
	cover := area >> (PolySubpixelShift*2 + 1 - aaShift)
	if cover < 0 {
		cover = -cover
	}
	if r.rule == FillEvenOdd {
		cover &= aaMask2
		if cover > aaScale {
			cover = aaScale2 - cover
		}
	}
	if cover > aaMask {
		cover = aaMask
	}
	return uint32(cover)
}

// finite reports whether v is a usable coordinate.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
