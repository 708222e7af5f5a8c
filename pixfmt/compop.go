// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pixfmt

import (
	"github.com/gogpu/raster"
	"github.com/gogpu/raster/internal/blend"
)

// CompOp selects the compositing operator applied by CompOpRGBA32.
// The values mirror the internal blend operator table one-to-one.
type CompOp uint8

// Compositing operators: the Porter-Duff set, the arithmetic extensions
// and the separable blend modes.
const (
	CompOpClear CompOp = iota
	CompOpSrc
	CompOpDst
	CompOpSrcOver
	CompOpDstOver
	CompOpSrcIn
	CompOpDstIn
	CompOpSrcOut
	CompOpDstOut
	CompOpSrcAtop
	CompOpDstAtop
	CompOpXor
	CompOpPlus
	CompOpMinus
	CompOpMultiply
	CompOpScreen
	CompOpOverlay
	CompOpDarken
	CompOpLighten
	CompOpColorDodge
	CompOpColorBurn
	CompOpHardLight
	CompOpSoftLight
	CompOpDifference
	CompOpExclusion

	numCompOps
)

var compOpNames = [numCompOps]string{
	"clear", "src", "dst", "src-over", "dst-over",
	"src-in", "dst-in", "src-out", "dst-out",
	"src-atop", "dst-atop", "xor",
	"plus", "minus",
	"multiply", "screen", "overlay", "darken", "lighten",
	"color-dodge", "color-burn", "hard-light", "soft-light",
	"difference", "exclusion",
}

// String returns the conventional hyphenated operator name.
func (op CompOp) String() string {
	if op >= numCompOps {
		return "unknown"
	}
	return compOpNames[op]
}

// CompOpByName maps a hyphenated operator name back to its CompOp.
// The second result is false for unrecognized names.
func CompOpByName(name string) (CompOp, bool) {
	for i, n := range compOpNames {
		if n == name {
			return CompOp(i), true
		}
	}
	return CompOpSrcOver, false
}

func (op CompOp) fn() blend.Func {
	return blend.Get(blend.Op(op))
}

// CompOpRGBA32 is a straight-alpha RGBA surface that composites with a
// runtime-selectable operator instead of plain alpha interpolation.
//
// Each blend premultiplies source and destination, applies the operator
// at full strength, interpolates the destination toward that result by
// the coverage, and stores the straight-alpha equivalent. Pixels the
// operator leaves unchanged are not rewritten, so low-alpha destination
// colors survive the premultiply round trip untouched.
type CompOpRGBA32 struct {
	buf *Buffer
	op  CompOp
}

var _ raster.PixelFormat = (*CompOpRGBA32)(nil)

// NewCompOpRGBA32 allocates a zeroed width x height surface using op.
func NewCompOpRGBA32(width, height int, op CompOp) (*CompOpRGBA32, error) {
	buf, err := NewBuffer(width, height, 4)
	if err != nil {
		return nil, err
	}
	return &CompOpRGBA32{buf: buf, op: op}, nil
}

// WrapCompOpRGBA32 adopts an existing 4-byte-per-pixel buffer, sharing
// its memory. Wrapping the buffer of an RGBA32 lets a scene mix plain
// and composited fills on one surface.
func WrapCompOpRGBA32(buf *Buffer, op CompOp) (*CompOpRGBA32, error) {
	if buf.BytesPerPixel() != 4 {
		return nil, ErrInvalidFormat
	}
	return &CompOpRGBA32{buf: buf, op: op}, nil
}

// Buffer returns the underlying pixel buffer.
func (p *CompOpRGBA32) Buffer() *Buffer { return p.buf }

// Op returns the active compositing operator.
func (p *CompOpRGBA32) Op() CompOp { return p.op }

// SetOp switches the compositing operator for subsequent blends.
func (p *CompOpRGBA32) SetOp(op CompOp) { p.op = op }

// Width returns the surface width in pixels.
func (p *CompOpRGBA32) Width() int { return p.buf.Width() }

// Height returns the surface height in pixels.
func (p *CompOpRGBA32) Height() int { return p.buf.Height() }

// GetPixel returns the color at (x, y).
func (p *CompOpRGBA32) GetPixel(x, y int) raster.RGBA8 {
	o := y*p.buf.stride + x*4
	return raster.RGBA8{
		R: p.buf.data[o+0],
		G: p.buf.data[o+1],
		B: p.buf.data[o+2],
		A: p.buf.data[o+3],
	}
}

// CopyPixel stores c at (x, y) without compositing.
func (p *CompOpRGBA32) CopyPixel(x, y int, c raster.RGBA8) {
	o := y*p.buf.stride + x*4
	p.buf.data[o+0] = c.R
	p.buf.data[o+1] = c.G
	p.buf.data[o+2] = c.B
	p.buf.data[o+3] = c.A
}

// CopyHLine fills pixels x1..x2 on row y with c, inclusive.
func (p *CompOpRGBA32) CopyHLine(x1, y, x2 int, c raster.RGBA8) {
	row := p.buf.Row(y)
	for o := x1 * 4; o <= x2*4; o += 4 {
		row[o+0] = c.R
		row[o+1] = c.G
		row[o+2] = c.B
		row[o+3] = c.A
	}
}

// compositePix composites the premultiplied source sp into the pixel at
// byte offset o, scaled by cover.
func (p *CompOpRGBA32) compositePix(f blend.Func, o int, sp raster.RGBA8, cover uint8) {
	d := raster.RGBA8{
		R: p.buf.data[o+0],
		G: p.buf.data[o+1],
		B: p.buf.data[o+2],
		A: p.buf.data[o+3],
	}
	dp := d.Premultiply()
	rr, rg, rb, ra := f(sp.R, sp.G, sp.B, sp.A, dp.R, dp.G, dp.B, dp.A)
	if cover < 255 {
		rr = blend.Lerp255(dp.R, rr, cover)
		rg = blend.Lerp255(dp.G, rg, cover)
		rb = blend.Lerp255(dp.B, rb, cover)
		ra = blend.Lerp255(dp.A, ra, cover)
	}
	if rr == dp.R && rg == dp.G && rb == dp.B && ra == dp.A {
		// Unchanged in premultiplied space. Skipping the store keeps
		// the straight-alpha bytes exact instead of round-tripped.
		return
	}
	res := raster.RGBA8{R: rr, G: rg, B: rb, A: ra}.Demultiply()
	p.buf.data[o+0] = res.R
	p.buf.data[o+1] = res.G
	p.buf.data[o+2] = res.B
	p.buf.data[o+3] = res.A
}

// BlendPixel composites c into (x, y) with the given coverage.
func (p *CompOpRGBA32) BlendPixel(x, y int, c raster.RGBA8, cover uint8) {
	if cover == 0 {
		return
	}
	p.compositePix(p.op.fn(), y*p.buf.stride+x*4, c.Premultiply(), cover)
}

// BlendHLine composites c into pixels x1..x2 on row y with uniform
// coverage.
func (p *CompOpRGBA32) BlendHLine(x1, y, x2 int, c raster.RGBA8, cover uint8) {
	if x1 > x2 || cover == 0 {
		return
	}
	f := p.op.fn()
	sp := c.Premultiply()
	base := y * p.buf.stride
	for x := x1; x <= x2; x++ {
		p.compositePix(f, base+x*4, sp, cover)
	}
}

// BlendSolidHSpan composites length pixels of c starting at (x, y),
// each scaled by its entry in covers.
func (p *CompOpRGBA32) BlendSolidHSpan(x, y, length int, c raster.RGBA8, covers []uint8) {
	if length <= 0 {
		return
	}
	f := p.op.fn()
	sp := c.Premultiply()
	base := y * p.buf.stride
	for i := 0; i < length; i++ {
		if covers[i] == 0 {
			continue
		}
		p.compositePix(f, base+(x+i)*4, sp, covers[i])
	}
}

// BlendColorHSpan composites length individually colored pixels
// starting at (x, y). Per-pixel coverage comes from covers when
// non-nil, otherwise the uniform cover applies.
func (p *CompOpRGBA32) BlendColorHSpan(x, y, length int, colors []raster.RGBA8, covers []uint8, cover uint8) {
	f := p.op.fn()
	base := y * p.buf.stride
	for i := 0; i < length; i++ {
		cv := cover
		if covers != nil {
			cv = covers[i]
		}
		if cv == 0 {
			continue
		}
		p.compositePix(f, base+(x+i)*4, colors[i].Premultiply(), cv)
	}
}
