package pixfmt

import (
	"github.com/gogpu/raster"
	"github.com/gogpu/raster/internal/blend"
)

// Gray8 is an 8-bit grayscale surface. Incoming colors collapse to
// their luminance before blending; GetPixel reports the stored value on
// all three channels with full alpha.
type Gray8 struct {
	buf *Buffer
}

var _ raster.PixelFormat = (*Gray8)(nil)

// NewGray8 allocates a zeroed width x height surface.
func NewGray8(width, height int) (*Gray8, error) {
	buf, err := NewBuffer(width, height, 1)
	if err != nil {
		return nil, err
	}
	return &Gray8{buf: buf}, nil
}

// AttachGray8 wraps caller-owned pixel memory without copying it.
func AttachGray8(data []byte, width, height, stride int) (*Gray8, error) {
	buf, err := Attach(data, width, height, 1, stride)
	if err != nil {
		return nil, err
	}
	return &Gray8{buf: buf}, nil
}

// Buffer returns the underlying pixel buffer.
func (p *Gray8) Buffer() *Buffer { return p.buf }

// Width returns the surface width in pixels.
func (p *Gray8) Width() int { return p.buf.Width() }

// Height returns the surface height in pixels.
func (p *Gray8) Height() int { return p.buf.Height() }

// GetPixel returns the gray value at (x, y) replicated across R, G, B.
func (p *Gray8) GetPixel(x, y int) raster.RGBA8 {
	v := p.buf.data[y*p.buf.stride+x]
	return raster.RGBA8{R: v, G: v, B: v, A: 255}
}

// CopyPixel stores the luminance of c at (x, y) without blending.
func (p *Gray8) CopyPixel(x, y int, c raster.RGBA8) {
	p.buf.data[y*p.buf.stride+x] = c.Luminance()
}

// BlendPixel blends the luminance of c into (x, y) with the given
// coverage.
func (p *Gray8) BlendPixel(x, y int, c raster.RGBA8, cover uint8) {
	alpha := blend.MulDiv255(c.A, cover)
	if alpha == 0 {
		return
	}
	o := y*p.buf.stride + x
	v := c.Luminance()
	if alpha == 255 {
		p.buf.data[o] = v
		return
	}
	p.buf.data[o] = blend.Lerp255(p.buf.data[o], v, alpha)
}

// CopyHLine fills pixels x1..x2 on row y with the luminance of c.
func (p *Gray8) CopyHLine(x1, y, x2 int, c raster.RGBA8) {
	row := p.buf.Row(y)
	v := c.Luminance()
	for o := x1; o <= x2; o++ {
		row[o] = v
	}
}

// BlendHLine blends the luminance of c into pixels x1..x2 on row y with
// uniform coverage.
func (p *Gray8) BlendHLine(x1, y, x2 int, c raster.RGBA8, cover uint8) {
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
	v := c.Luminance()
	for o := x1; o <= x2; o++ {
		row[o] = blend.Lerp255(row[o], v, alpha)
	}
}

// BlendSolidHSpan blends length pixels of c's luminance starting at
// (x, y), each scaled by its entry in covers.
func (p *Gray8) BlendSolidHSpan(x, y, length int, c raster.RGBA8, covers []uint8) {
	if length <= 0 || c.A == 0 {
		return
	}
	row := p.buf.Row(y)
	v := c.Luminance()
	for i := 0; i < length; i++ {
		alpha := blend.MulDiv255(c.A, covers[i])
		o := x + i
		switch {
		case alpha == 255:
			row[o] = v
		case alpha != 0:
			row[o] = blend.Lerp255(row[o], v, alpha)
		}
	}
}

// BlendColorHSpan blends length individually colored pixels starting at
// (x, y), each collapsed to luminance. Per-pixel coverage comes from
// covers when non-nil, otherwise the uniform cover applies.
func (p *Gray8) BlendColorHSpan(x, y, length int, colors []raster.RGBA8, covers []uint8, cover uint8) {
	row := p.buf.Row(y)
	for i := 0; i < length; i++ {
		cv := cover
		if covers != nil {
			cv = covers[i]
		}
		c := colors[i]
		alpha := blend.MulDiv255(c.A, cv)
		if alpha == 0 {
			continue
		}
		o := x + i
		v := c.Luminance()
		if alpha == 255 {
			row[o] = v
			continue
		}
		row[o] = blend.Lerp255(row[o], v, alpha)
	}
}
