// Package blend provides exact integer math utilities for alpha
// blending.
//
// The div255 helper replaces integer division by 255 with shifts and
// adds while keeping the exactly rounded result. It is called for
// every pixel in every blend operation, and its rounding defines the
// byte-level output contract of the renderer.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255 divides x by 255, rounded to nearest, without division.
//
// Formula: (x + 128 + ((x + 128) >> 8)) >> 8
//
// This equals (x + 127) / 255 for all x up to 65279, which covers
// every product of two bytes.
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// MulDiv255 multiplies two bytes and divides by 255, rounded to
// nearest.
//
// Formula: (a * b + 127) / 255
func MulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// Lerp255 interpolates from p toward q by alpha a, rounded to nearest.
//
// Formula: (p*(255-a) + q*a + 127) / 255
//
// This equals p + (q-p)*a/255 with a single rounding step, so
// Lerp255(p, q, 0) == p and Lerp255(p, q, 255) == q hold exactly.
func Lerp255(p, q, a byte) byte {
	return byte(div255(uint32(p)*uint32(255-a) + uint32(q)*uint32(a)))
}

// Prelerp255 computes p + q - p*a/255, the premultiplied form of
// source-over. With q == a it yields the alpha union
// a' = p + a - p*a/255, which never exceeds 255.
func Prelerp255(p, q, a byte) byte {
	return byte(uint32(p) + uint32(q) - div255(uint32(p)*uint32(a)))
}

// Demul255 returns the straight value of premultiplied v at alpha a,
// rounded to nearest and clamped. Fully transparent maps to zero.
func Demul255(v, a byte) byte {
	if a == 0 {
		return 0
	}
	d := (uint32(v)*255 + uint32(a)/2) / uint32(a)
	if d > 255 {
		return 255
	}
	return byte(d)
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// subClamp subtracts b from a, clamping to 0.
func subClamp(a, b byte) byte {
	if b >= a {
		return 0
	}
	return a - b
}

// minByte returns the smaller of two bytes.
func minByte(a, b byte) byte {
	if a < b {
		return a
	}
	return b
}

// maxByte returns the larger of two bytes.
func maxByte(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}
