package pixfmt

import (
	"github.com/gogpu/raster"
	"github.com/gogpu/raster/internal/blend"
)

// RGB24 is a 24-bit opaque surface with R, G, B byte order. The source
// alpha still steers blending; it just has nowhere to be stored, so
// GetPixel always reports full opacity.
type RGB24 struct {
	buf *Buffer
}

var _ raster.PixelFormat = (*RGB24)(nil)

// NewRGB24 allocates a zeroed width x height surface.
func NewRGB24(width, height int) (*RGB24, error) {
	buf, err := NewBuffer(width, height, 3)
	if err != nil {
		return nil, err
	}
	return &RGB24{buf: buf}, nil
}

// AttachRGB24 wraps caller-owned pixel memory without copying it.
func AttachRGB24(data []byte, width, height, stride int) (*RGB24, error) {
	buf, err := Attach(data, width, height, 3, stride)
	if err != nil {
		return nil, err
	}
	return &RGB24{buf: buf}, nil
}

// Buffer returns the underlying pixel buffer.
func (p *RGB24) Buffer() *Buffer { return p.buf }

// Width returns the surface width in pixels.
func (p *RGB24) Width() int { return p.buf.Width() }

// Height returns the surface height in pixels.
func (p *RGB24) Height() int { return p.buf.Height() }

// GetPixel returns the color at (x, y) with full alpha.
func (p *RGB24) GetPixel(x, y int) raster.RGBA8 {
	o := y*p.buf.stride + x*3
	return raster.RGBA8{
		R: p.buf.data[o+0],
		G: p.buf.data[o+1],
		B: p.buf.data[o+2],
		A: 255,
	}
}

// CopyPixel stores c at (x, y) without blending. Alpha is dropped.
func (p *RGB24) CopyPixel(x, y int, c raster.RGBA8) {
	o := y*p.buf.stride + x*3
	p.buf.data[o+0] = c.R
	p.buf.data[o+1] = c.G
	p.buf.data[o+2] = c.B
}

// BlendPixel blends c into (x, y) with the given coverage.
func (p *RGB24) BlendPixel(x, y int, c raster.RGBA8, cover uint8) {
	alpha := blend.MulDiv255(c.A, cover)
	if alpha == 0 {
		return
	}
	o := y*p.buf.stride + x*3
	if alpha == 255 {
		p.buf.data[o+0] = c.R
		p.buf.data[o+1] = c.G
		p.buf.data[o+2] = c.B
		return
	}
	p.buf.data[o+0] = blend.Lerp255(p.buf.data[o+0], c.R, alpha)
	p.buf.data[o+1] = blend.Lerp255(p.buf.data[o+1], c.G, alpha)
	p.buf.data[o+2] = blend.Lerp255(p.buf.data[o+2], c.B, alpha)
}

// CopyHLine fills pixels x1..x2 on row y with c, inclusive.
func (p *RGB24) CopyHLine(x1, y, x2 int, c raster.RGBA8) {
	row := p.buf.Row(y)
	for o := x1 * 3; o <= x2*3; o += 3 {
		row[o+0] = c.R
		row[o+1] = c.G
		row[o+2] = c.B
	}
}

// BlendHLine blends c into pixels x1..x2 on row y with uniform coverage.
func (p *RGB24) BlendHLine(x1, y, x2 int, c raster.RGBA8, cover uint8) {
	if x1 > x2 {
		return
	}
	alpha := blend.MulDiv255(c.A, cover)
	if alpha == 0 {
		return
	}
	if alpha == 255 {
		p.CopyHLine(x1, y, x2, c)
		return
	}
	row := p.buf.Row(y)
	for o := x1 * 3; o <= x2*3; o += 3 {
		row[o+0] = blend.Lerp255(row[o+0], c.R, alpha)
		row[o+1] = blend.Lerp255(row[o+1], c.G, alpha)
		row[o+2] = blend.Lerp255(row[o+2], c.B, alpha)
	}
}

// BlendSolidHSpan blends length pixels of c starting at (x, y), each
// scaled by its entry in covers.
func (p *RGB24) BlendSolidHSpan(x, y, length int, c raster.RGBA8, covers []uint8) {
	if length <= 0 || c.A == 0 {
		return
	}
	row := p.buf.Row(y)
	o := x * 3
	for i := 0; i < length; i++ {
		alpha := blend.MulDiv255(c.A, covers[i])
		switch {
		case alpha == 255:
			row[o+0] = c.R
			row[o+1] = c.G
			row[o+2] = c.B
		case alpha != 0:
			row[o+0] = blend.Lerp255(row[o+0], c.R, alpha)
			row[o+1] = blend.Lerp255(row[o+1], c.G, alpha)
			row[o+2] = blend.Lerp255(row[o+2], c.B, alpha)
		}
		o += 3
	}
}

// BlendColorHSpan blends length individually colored pixels starting at
// (x, y). Per-pixel coverage comes from covers when non-nil, otherwise
// the uniform cover applies.
func (p *RGB24) BlendColorHSpan(x, y, length int, colors []raster.RGBA8, covers []uint8, cover uint8) {
	row := p.buf.Row(y)
	o := x * 3
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
		case alpha != 0:
			row[o+0] = blend.Lerp255(row[o+0], c.R, alpha)
			row[o+1] = blend.Lerp255(row[o+1], c.G, alpha)
			row[o+2] = blend.Lerp255(row[o+2], c.B, alpha)
		}
		o += 3
	}
}
