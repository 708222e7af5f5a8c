// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pixfmt

import (
	"github.com/gogpu/raster"
	"github.com/gogpu/raster/internal/blend"
	"github.com/gogpu/raster/internal/wide"
)

// RGBA32 is a 32-bit straight-alpha surface with R, G, B, A byte order.
//
// Blending interpolates the color channels toward the source and unions
// the alpha channel, so a fully covered opaque fill stores the source
// color exactly. Horizontal span operations run through the wide batch
// kernels; single pixels take the scalar path with identical rounding.
type RGBA32 struct {
	buf *Buffer
}

var _ raster.PixelFormat = (*RGBA32)(nil)

// NewRGBA32 allocates a zeroed width x height surface.
func NewRGBA32(width, height int) (*RGBA32, error) {
	buf, err := NewBuffer(width, height, 4)
	if err != nil {
		return nil, err
	}
	return &RGBA32{buf: buf}, nil
}

// AttachRGBA32 wraps caller-owned pixel memory without copying it.
func AttachRGBA32(data []byte, width, height, stride int) (*RGBA32, error) {
	buf, err := Attach(data, width, height, 4, stride)
	if err != nil {
		return nil, err
	}
	return &RGBA32{buf: buf}, nil
}

// WrapRGBA32 adopts an existing 4-byte-per-pixel buffer. The returned
// format shares the buffer's memory.
func WrapRGBA32(buf *Buffer) (*RGBA32, error) {
	if buf.BytesPerPixel() != 4 {
		return nil, ErrInvalidFormat
	}
	return &RGBA32{buf: buf}, nil
}

// Buffer returns the underlying pixel buffer.
func (p *RGBA32) Buffer() *Buffer { return p.buf }

// Width returns the surface width in pixels.
func (p *RGBA32) Width() int { return p.buf.Width() }

// Height returns the surface height in pixels.
func (p *RGBA32) Height() int { return p.buf.Height() }

// GetPixel returns the color at (x, y).
func (p *RGBA32) GetPixel(x, y int) raster.RGBA8 {
	o := y*p.buf.stride + x*4
	return raster.RGBA8{
		R: p.buf.data[o+0],
		G: p.buf.data[o+1],
		B: p.buf.data[o+2],
		A: p.buf.data[o+3],
	}
}

// CopyPixel stores c at (x, y) without blending.
func (p *RGBA32) CopyPixel(x, y int, c raster.RGBA8) {
	o := y*p.buf.stride + x*4
	p.buf.data[o+0] = c.R
	p.buf.data[o+1] = c.G
	p.buf.data[o+2] = c.B
	p.buf.data[o+3] = c.A
}

// BlendPixel blends c into (x, y) with the given coverage.
func (p *RGBA32) BlendPixel(x, y int, c raster.RGBA8, cover uint8) {
	alpha := blend.MulDiv255(c.A, cover)
	if alpha == 0 {
		return
	}
	o := y*p.buf.stride + x*4
	if alpha == 255 {
		p.buf.data[o+0] = c.R
		p.buf.data[o+1] = c.G
		p.buf.data[o+2] = c.B
		p.buf.data[o+3] = 255
		return
	}
	p.buf.data[o+0] = blend.Lerp255(p.buf.data[o+0], c.R, alpha)
	p.buf.data[o+1] = blend.Lerp255(p.buf.data[o+1], c.G, alpha)
	p.buf.data[o+2] = blend.Lerp255(p.buf.data[o+2], c.B, alpha)
	p.buf.data[o+3] = blend.Prelerp255(p.buf.data[o+3], alpha, alpha)
}

// CopyHLine fills pixels x1..x2 on row y with c, inclusive.
func (p *RGBA32) CopyHLine(x1, y, x2 int, c raster.RGBA8) {
	row := p.buf.Row(y)
	for o := x1 * 4; o <= x2*4; o += 4 {
		row[o+0] = c.R
		row[o+1] = c.G
		row[o+2] = c.B
		row[o+3] = c.A
	}
}

// BlendHLine blends c into pixels x1..x2 on row y with uniform coverage.
func (p *RGBA32) BlendHLine(x1, y, x2 int, c raster.RGBA8, cover uint8) {
	if x1 > x2 {
		return
	}
	alpha := blend.MulDiv255(c.A, cover)
	if alpha == 0 {
		return
	}
	if alpha == 255 {
		// Full coverage of an opaque color degenerates to a copy.
		p.CopyHLine(x1, y, x2, c)
		return
	}
	row := p.buf.Row(y)
	wide.BlendSolidHLineAA(row[x1*4:], x2-x1+1, c.R, c.G, c.B, c.A, cover)
}

// BlendSolidHSpan blends length pixels of c starting at (x, y), each
// scaled by its entry in covers.
func (p *RGBA32) BlendSolidHSpan(x, y, length int, c raster.RGBA8, covers []uint8) {
	if length <= 0 || c.A == 0 {
		return
	}
	row := p.buf.Row(y)
	wide.BlendSolidSpanAA(row[x*4:], length, c.R, c.G, c.B, c.A, covers)
}

// BlendColorHSpan blends length individually colored pixels starting at
// (x, y). Per-pixel coverage comes from covers when non-nil, otherwise
// the uniform cover applies.
func (p *RGBA32) BlendColorHSpan(x, y, length int, colors []raster.RGBA8, covers []uint8, cover uint8) {
	row := p.buf.Row(y)
	o := x * 4
	for i := 0; i < length; i++ {
		cv := cover
		if covers != nil {
			cv = covers[i]
		}
		c := colors[i]
		alpha := blend.MulDiv255(c.A, cv)
		switch {
		case alpha == 255:
			row[o+0] = c.R
			row[o+1] = c.G
			row[o+2] = c.B
			row[o+3] = 255
		case alpha != 0:
			row[o+0] = blend.Lerp255(row[o+0], c.R, alpha)
			row[o+1] = blend.Lerp255(row[o+1], c.G, alpha)
			row[o+2] = blend.Lerp255(row[o+2], c.B, alpha)
			row[o+3] = blend.Prelerp255(row[o+3], alpha, alpha)
		}
		o += 4
	}
}
