// This file implements batch anti-aliased blending over straight-alpha
// RGBA spans, the hot path under the scanline renderer.
package wide

import "github.com/gogpu/raster/internal/blend"

// BlendSolidSpanAA blends a solid straight-alpha color over a span of
// RGBA pixels with per-pixel coverage, 16 pixels at a time.
//
// Per pixel, with alpha = srcA*cover/255 rounded:
//
//	C' = C + (srcC - C) * alpha / 255
//	A' = A + alpha - A * alpha / 255
//
// Lanes with zero coverage reduce to the identity, so no per-lane
// branch is needed. The scalar tail uses the blend package helpers,
// which round identically to the lane operations.
//
// Parameters:
//   - dst: destination buffer in RGBA order, at least count*4 bytes
//   - count: number of pixels to blend
//   - r, g, b, a: source color (straight alpha, 0-255)
//   - covers: one coverage byte per pixel, at least count bytes
func BlendSolidSpanAA(dst []byte, count int, r, g, b, a uint8, covers []byte) {
	if count <= 0 || a == 0 {
		return
	}

	splatR := SplatU16(uint16(r))
	splatG := SplatU16(uint16(g))
	splatB := SplatU16(uint16(b))
	splatA := SplatU16(uint16(a))

	offset := 0
	ci := 0
	var batch RGBABatch
	for n := count / 16; n > 0; n-- {
		batch.LoadRGBA(dst[offset:])
		alpha := splatA.MulDiv255(LoadCovers(covers[ci:]))

		batch.R = batch.R.Lerp(splatR, alpha)
		batch.G = batch.G.Lerp(splatG, alpha)
		batch.B = batch.B.Lerp(splatB, alpha)
		batch.A = batch.A.Add(alpha).Sub(batch.A.MulDiv255(alpha))

		batch.StoreRGBA(dst[offset:])
		offset += 64 // 16 pixels * 4 bytes
		ci += 16
	}

	for i := count % 16; i > 0; i-- {
		alpha := blend.MulDiv255(a, covers[ci])
		if alpha != 0 {
			dst[offset+0] = blend.Lerp255(dst[offset+0], r, alpha)
			dst[offset+1] = blend.Lerp255(dst[offset+1], g, alpha)
			dst[offset+2] = blend.Lerp255(dst[offset+2], b, alpha)
			dst[offset+3] = blend.Prelerp255(dst[offset+3], alpha, alpha)
		}
		offset += 4
		ci++
	}
}

// BlendSolidHLineAA blends a solid straight-alpha color over a span of
// RGBA pixels with uniform coverage. The combined alpha is computed
// once and broadcast to all lanes.
//
// Parameters:
//   - dst: destination buffer in RGBA order, at least count*4 bytes
//   - count: number of pixels to blend
//   - r, g, b, a: source color (straight alpha, 0-255)
//   - cover: coverage applied to every pixel (0-255)
func BlendSolidHLineAA(dst []byte, count int, r, g, b, a uint8, cover uint8) {
	if count <= 0 {
		return
	}
	alpha := blend.MulDiv255(a, cover)
	if alpha == 0 {
		return
	}

	splatR := SplatU16(uint16(r))
	splatG := SplatU16(uint16(g))
	splatB := SplatU16(uint16(b))
	alphaVec := SplatU16(uint16(alpha))

	offset := 0
	var batch RGBABatch
	for n := count / 16; n > 0; n-- {
		batch.LoadRGBA(dst[offset:])

		batch.R = batch.R.Lerp(splatR, alphaVec)
		batch.G = batch.G.Lerp(splatG, alphaVec)
		batch.B = batch.B.Lerp(splatB, alphaVec)
		batch.A = batch.A.Add(alphaVec).Sub(batch.A.MulDiv255(alphaVec))

		batch.StoreRGBA(dst[offset:])
		offset += 64
	}

	for i := count % 16; i > 0; i-- {
		dst[offset+0] = blend.Lerp255(dst[offset+0], r, alpha)
		dst[offset+1] = blend.Lerp255(dst[offset+1], g, alpha)
		dst[offset+2] = blend.Lerp255(dst[offset+2], b, alpha)
		dst[offset+3] = blend.Prelerp255(dst[offset+3], alpha, alpha)
		offset += 4
	}
}
