// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// PixelFormat is the destination surface contract. Implementations own
// the pixel memory and the blend arithmetic; coordinates are whole
// pixels with (0, 0) at the top left, spans grow rightward.
//
// Pixel formats trust their callers: coordinates must already be
// inside [0, Width()) x [0, Height()). BaseRenderer is the layer that
// enforces this, so rendering goes through it rather than calling a
// pixel format directly.
type PixelFormat interface {
	Width() int
	Height() int

	// GetPixel returns the color at (x, y) in straight-alpha form.
	GetPixel(x, y int) RGBA8
	// CopyPixel stores c at (x, y) without blending.
	CopyPixel(x, y int, c RGBA8)
	// BlendPixel blends c into (x, y) with the given coverage.
	BlendPixel(x, y int, c RGBA8, cover uint8)

	// CopyHLine stores c into the run x1..x2 inclusive.
	CopyHLine(x1, y, x2 int, c RGBA8)
	// BlendHLine blends c into the run x1..x2 inclusive with one
	// coverage value.
	BlendHLine(x1, y, x2 int, c RGBA8, cover uint8)

	// BlendSolidHSpan blends c into length pixels starting at (x, y),
	// one coverage byte per pixel. covers holds at least length bytes.
	BlendSolidHSpan(x, y, length int, c RGBA8, covers []uint8)
	// BlendColorHSpan blends length individual colors starting at
	// (x, y). When covers is non-nil it holds one coverage byte per
	// pixel; otherwise cover applies to the whole run.
	BlendColorHSpan(x, y, length int, colors []RGBA8, covers []uint8, cover uint8)
}

// BaseRenderer clips drawing operations to a rectangle and forwards
// them to a PixelFormat. The clip box is in whole pixels, inclusive on
// all sides, and starts out covering the full surface. No operation
// ever touches memory outside the clip box.
type BaseRenderer struct {
	pf   PixelFormat
	clip RectI
}

// NewBaseRenderer wraps a pixel format with clipping over its full
// surface.
func NewBaseRenderer(pf PixelFormat) *BaseRenderer {
	r := &BaseRenderer{pf: pf}
	r.ResetClipping(true)
	return r
}

// PixelFormat returns the wrapped surface.
func (r *BaseRenderer) PixelFormat() PixelFormat { return r.pf }

// Width returns the surface width in pixels.
func (r *BaseRenderer) Width() int { return r.pf.Width() }

// Height returns the surface height in pixels.
func (r *BaseRenderer) Height() int { return r.pf.Height() }

// ClipBox returns the active clip rectangle.
func (r *BaseRenderer) ClipBox() RectI { return r.clip }

// SetClipBox sets the clip rectangle, intersected with the surface
// bounds. Reports whether the result is visible; an empty intersection
// leaves the renderer clipping everything.
func (r *BaseRenderer) SetClipBox(x1, y1, x2, y2 int) bool {
	cb := RectI{int32(x1), int32(y1), int32(x2), int32(y2)}.Normalized()
	cb = cb.Intersect(r.surfaceRect())
	if !cb.IsValid() {
		r.clip = RectI{X1: 1, Y1: 1, X2: 0, Y2: 0}
		return false
	}
	r.clip = cb
	return true
}

// ResetClipping restores the clip box to the full surface when visible
// is true, or to an empty rectangle that rejects everything.
func (r *BaseRenderer) ResetClipping(visible bool) {
	if visible {
		r.clip = r.surfaceRect()
	} else {
		r.clip = RectI{X1: 1, Y1: 1, X2: 0, Y2: 0}
	}
}

func (r *BaseRenderer) surfaceRect() RectI {
	return RectI{X1: 0, Y1: 0, X2: int32(r.pf.Width()) - 1, Y2: int32(r.pf.Height()) - 1}
}

func (r *BaseRenderer) inClip(x, y int) bool {
	return r.clip.HitTest(int32(x), int32(y))
}

// Clear fills the entire surface with c, ignoring the clip box.
func (r *BaseRenderer) Clear(c RGBA8) {
	w := r.pf.Width()
	if w == 0 {
		return
	}
	for y := 0; y < r.pf.Height(); y++ {
		r.pf.CopyHLine(0, y, w-1, c)
	}
}

// GetPixel returns the color at (x, y), or zero outside the clip box.
func (r *BaseRenderer) GetPixel(x, y int) RGBA8 {
	if !r.inClip(x, y) {
		return RGBA8{}
	}
	return r.pf.GetPixel(x, y)
}

// CopyPixel stores c at (x, y) if inside the clip box.
func (r *BaseRenderer) CopyPixel(x, y int, c RGBA8) {
	if r.inClip(x, y) {
		r.pf.CopyPixel(x, y, c)
	}
}

// BlendPixel blends c into (x, y) if inside the clip box.
func (r *BaseRenderer) BlendPixel(x, y int, c RGBA8, cover uint8) {
	if r.inClip(x, y) {
		r.pf.BlendPixel(x, y, c, cover)
	}
}

// CopyHLine stores c into the visible part of the run x1..x2 at row y.
func (r *BaseRenderer) CopyHLine(x1, y, x2 int, c RGBA8) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y < int(r.clip.Y1) || y > int(r.clip.Y2) {
		return
	}
	if x1 > int(r.clip.X2) || x2 < int(r.clip.X1) {
		return
	}
	if x1 < int(r.clip.X1) {
		x1 = int(r.clip.X1)
	}
	if x2 > int(r.clip.X2) {
		x2 = int(r.clip.X2)
	}
	r.pf.CopyHLine(x1, y, x2, c)
}

// BlendHLine blends c into the visible part of the run x1..x2 at row y
// with one coverage value.
func (r *BaseRenderer) BlendHLine(x1, y, x2 int, c RGBA8, cover uint8) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y < int(r.clip.Y1) || y > int(r.clip.Y2) {
		return
	}
	if x1 > int(r.clip.X2) || x2 < int(r.clip.X1) {
		return
	}
	if x1 < int(r.clip.X1) {
		x1 = int(r.clip.X1)
	}
	if x2 > int(r.clip.X2) {
		x2 = int(r.clip.X2)
	}
	r.pf.BlendHLine(x1, y, x2, c, cover)
}

// BlendSolidHSpan blends c into the visible part of a span with
// per-pixel coverage. covers holds at least length bytes; it is
// trimmed in step with the span when the clip box cuts it.
func (r *BaseRenderer) BlendSolidHSpan(x, y, length int, c RGBA8, covers []uint8) {
	if y < int(r.clip.Y1) || y > int(r.clip.Y2) {
		return
	}
	if x < int(r.clip.X1) {
		d := int(r.clip.X1) - x
		length -= d
		if length <= 0 {
			return
		}
		covers = covers[d:]
		x = int(r.clip.X1)
	}
	if x+length-1 > int(r.clip.X2) {
		length = int(r.clip.X2) - x + 1
		if length <= 0 {
			return
		}
	}
	r.pf.BlendSolidHSpan(x, y, length, c, covers[:length])
}

// BlendColorHSpan blends per-pixel colors into the visible part of a
// span. colors and covers (when non-nil) are trimmed in step with the
// span when the clip box cuts it.
func (r *BaseRenderer) BlendColorHSpan(x, y, length int, colors []RGBA8, covers []uint8, cover uint8) {
	if y < int(r.clip.Y1) || y > int(r.clip.Y2) {
		return
	}
	if x < int(r.clip.X1) {
		d := int(r.clip.X1) - x
		length -= d
		if length <= 0 {
			return
		}
		colors = colors[d:]
		if covers != nil {
			covers = covers[d:]
		}
		x = int(r.clip.X1)
	}
	if x+length-1 > int(r.clip.X2) {
		length = int(r.clip.X2) - x + 1
		if length <= 0 {
			return
		}
	}
	if covers != nil {
		covers = covers[:length]
	}
	r.pf.BlendColorHSpan(x, y, length, colors[:length], covers, cover)
}

// CopyBar fills the visible part of a rectangle with c, corners
// inclusive.
func (r *BaseRenderer) CopyBar(x1, y1, x2, y2 int, c RGBA8) {
	rc := RectI{int32(x1), int32(y1), int32(x2), int32(y2)}.Normalized()
	rc = rc.Intersect(r.clip)
	if !rc.IsValid() {
		return
	}
	for y := rc.Y1; y <= rc.Y2; y++ {
		r.pf.CopyHLine(int(rc.X1), int(y), int(rc.X2), c)
	}
}

// RenderScanlinesAASolid rasterizes the accumulated path and blends it
// into ren with a single color. The scanline container is reset to the
// path bounds and reused for every row.
func RenderScanlinesAASolid(ras *Rasterizer, sl Scanline, ren *BaseRenderer, c RGBA8) {
	if !ras.RewindScanlines() {
		return
	}
	sl.Reset(ras.MinX(), ras.MaxX())
	for ras.SweepScanline(sl) {
		y := int(sl.Y())
		for _, sp := range sl.Begin() {
			x := int(sp.X)
			switch {
			case sp.Len < 0:
				// Solid run sharing one cover byte.
				ren.BlendHLine(x, y, x-int(sp.Len)-1, c, sp.Covers[0])
			case sp.Covers != nil:
				ren.BlendSolidHSpan(x, y, int(sp.Len), c, sp.Covers)
			default:
				// Binary span, full coverage.
				ren.BlendHLine(x, y, x+int(sp.Len)-1, c, 255)
			}
		}
	}
}

// RenderScanlinesBinSolid rasterizes the accumulated path and blends
// every span at full coverage, producing an aliased fill regardless of
// the scanline container.
func RenderScanlinesBinSolid(ras *Rasterizer, sl Scanline, ren *BaseRenderer, c RGBA8) {
	if !ras.RewindScanlines() {
		return
	}
	sl.Reset(ras.MinX(), ras.MaxX())
	for ras.SweepScanline(sl) {
		y := int(sl.Y())
		for _, sp := range sl.Begin() {
			length := int(sp.Len)
			if length < 0 {
				length = -length
			}
			ren.BlendHLine(int(sp.X), y, int(sp.X)+length-1, c, 255)
		}
	}
}

// RenderScanlinesAA rasterizes the accumulated path and colors it from
// a span generator: per span, the allocator hands the generator a
// color buffer and the result is blended with the span's coverage.
func RenderScanlinesAA(ras *Rasterizer, sl Scanline, ren *BaseRenderer, alloc *SpanAllocator, gen SpanGenerator) {
	if !ras.RewindScanlines() {
		return
	}
	sl.Reset(ras.MinX(), ras.MaxX())
	gen.Prepare()
	for ras.SweepScanline(sl) {
		y := int(sl.Y())
		for _, sp := range sl.Begin() {
			x := int(sp.X)
			length := int(sp.Len)
			if length < 0 {
				length = -length
			}
			colors := alloc.Allocate(length)
			gen.Generate(colors, x, y, length)
			if sp.Len < 0 {
				ren.BlendColorHSpan(x, y, length, colors, nil, sp.Covers[0])
			} else {
				ren.BlendColorHSpan(x, y, length, colors, sp.Covers, 255)
			}
		}
	}
}
