package raster

import (
	"image/color"

	"github.com/gogpu/raster/internal/blend"
)

// RGBA8 is an 8-bit straight-alpha (non-premultiplied) color, the
// color type every pixel format in this module blends with. All blend
// arithmetic on it is integer and exactly rounded, so rendering the
// same scene twice produces identical bytes.
//
// RGBA8 implements image/color.Color.
type RGBA8 struct {
	R, G, B, A uint8
}

// RGB8 creates an opaque color from RGB components.
func RGB8(r, g, b uint8) RGBA8 {
	return RGBA8{R: r, G: g, B: b, A: 255}
}

// RGBA8FromFloats creates a color from components in [0, 1], rounded
// to the nearest 8-bit value.
func RGBA8FromFloats(r, g, b, a float64) RGBA8 {
	return RGBA8{
		R: uint8(clamp255(r*255) + 0.5),
		G: uint8(clamp255(g*255) + 0.5),
		B: uint8(clamp255(b*255) + 0.5),
		A: uint8(clamp255(a*255) + 0.5),
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an
// optional leading '#'. Invalid strings yield opaque black.
func Hex(hex string) RGBA8 {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	a := uint32(255)

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return RGBA8{A: 255}
	}

	return RGBA8{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// RGBA implements image/color.Color: alpha-premultiplied 16-bit
// components.
func (c RGBA8) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r = r * uint32(c.A) / 0xff
	g = uint32(c.G)
	g |= g << 8
	g = g * uint32(c.A) / 0xff
	b = uint32(c.B)
	b |= b << 8
	b = b * uint32(c.A) / 0xff
	a = uint32(c.A)
	a |= a << 8
	return
}

// FromColor converts a standard color.Color to RGBA8, un-premultiplying
// through color.NRGBA.
func FromColor(c color.Color) RGBA8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Premultiply returns the color with channels scaled by alpha, exactly
// rounded.
func (c RGBA8) Premultiply() RGBA8 {
	return RGBA8{
		R: blend.MulDiv255(c.R, c.A),
		G: blend.MulDiv255(c.G, c.A),
		B: blend.MulDiv255(c.B, c.A),
		A: c.A,
	}
}

// Demultiply returns the straight-alpha form of a premultiplied color.
// Fully transparent maps to transparent black.
func (c RGBA8) Demultiply() RGBA8 {
	return RGBA8{
		R: blend.Demul255(c.R, c.A),
		G: blend.Demul255(c.G, c.A),
		B: blend.Demul255(c.B, c.A),
		A: c.A,
	}
}

// Luminance returns the perceived brightness using the standard
// integer weights 299/587/114.
func (c RGBA8) Luminance() uint8 {
	return uint8((int(c.R)*299 + int(c.G)*587 + int(c.B)*114) / 1000)
}

// IsOpaque reports whether blending with this color reduces to a copy
// at full coverage.
func (c RGBA8) IsOpaque() bool {
	return c.A == 255
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors.
var (
	Black       = RGB8(0, 0, 0)
	White       = RGB8(255, 255, 255)
	Red         = RGB8(255, 0, 0)
	Green       = RGB8(0, 255, 0)
	Blue        = RGB8(0, 0, 255)
	Yellow      = RGB8(255, 255, 0)
	Cyan        = RGB8(0, 255, 255)
	Magenta     = RGB8(255, 0, 255)
	Transparent = RGBA8{}
)
