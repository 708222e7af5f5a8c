// This file implements the separable blend modes beyond Porter-Duff
// compositing, following the W3C Compositing and Blending Level 1
// specification. Each mode combines a per-channel blend function with
// the standard compositing formula.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
//   - PDF Blend Modes: Addendum (ISO 32000-1:2008)
package blend

import "math"

// separableBlend applies a per-channel blend function inside the
// standard compositing formula:
//
//	Result = (1 - Sa) * D + (1 - Da) * S + Sa * Da * B(Sc, Dc)
//
// where B(Sc, Dc) operates on unpremultiplied source and destination
// channels.
//
// Parameters:
//   - sr, sg, sb, sa: source color (premultiplied alpha)
//   - dr, dg, db, da: destination color (premultiplied alpha)
//   - blendChan: per-channel blend function B(s, d) on unmultiplied values
//
// Returns: resulting color (r, g, b, a) after blending.
func separableBlend(sr, sg, sb, sa, dr, dg, db, da byte, blendChan func(s, d byte) byte) (byte, byte, byte, byte) {
	// Fully transparent layers reduce to the other layer.
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	// Unpremultiply to recover the channel values the blend functions
	// are defined on.
	sur := Demul255(sr, sa)
	sug := Demul255(sg, sa)
	sub := Demul255(sb, sa)
	dur := Demul255(dr, da)
	dug := Demul255(dg, da)
	dub := Demul255(db, da)

	blendR := blendChan(sur, dur)
	blendG := blendChan(sug, dug)
	blendB := blendChan(sub, dub)

	invSa := 255 - sa
	invDa := 255 - da

	// Final alpha: Sa + Da * (1 - Sa)
	finalA := addClamp(sa, MulDiv255(da, invSa))

	// (1 - Sa) * D + (1 - Da) * S
	finalR := addClamp(MulDiv255(dr, invSa), MulDiv255(sr, invDa))
	finalG := addClamp(MulDiv255(dg, invSa), MulDiv255(sg, invDa))
	finalB := addClamp(MulDiv255(db, invSa), MulDiv255(sb, invDa))

	// + Sa * Da * B
	saDa := MulDiv255(sa, da)
	finalR = addClamp(finalR, MulDiv255(saDa, blendR))
	finalG = addClamp(finalG, MulDiv255(saDa, blendG))
	finalB = addClamp(finalB, MulDiv255(saDa, blendB))

	return finalR, finalG, finalB, finalA
}

// Separable blend mode implementations

// blendMultiply multiplies source and destination channels.
// Formula: B(Cb, Cs) = Cb * Cs
func blendMultiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, MulDiv255)
}

// blendScreen produces a lighter result than multiply.
// Formula: B(Cb, Cs) = 1 - (1 - Cb) * (1 - Cs)
func blendScreen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		return 255 - MulDiv255(255-s, 255-d)
	})
}

// blendOverlay combines Multiply and Screen based on the backdrop.
// Formula: B(Cb, Cs) = HardLight(Cs, Cb) (swapped parameters)
func blendOverlay(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		return hardLightChan(d, s)
	})
}

// blendDarken selects the darker of source and destination.
// Formula: B(Cb, Cs) = min(Cb, Cs)
func blendDarken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, minByte)
}

// blendLighten selects the lighter of source and destination.
// Formula: B(Cb, Cs) = max(Cb, Cs)
func blendLighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, maxByte)
}

// blendColorDodge brightens the destination to reflect the source.
// Formula: B(Cb, Cs) = if Cs == 1: 1, else: min(1, Cb / (1 - Cs))
func blendColorDodge(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if s == 255 {
			return 255
		}
		invS := uint32(255 - s)
		result := (uint32(d)*255 + invS/2) / invS
		if result > 255 {
			return 255
		}
		return byte(result)
	})
}

// blendColorBurn darkens the destination to reflect the source.
// Formula: B(Cb, Cs) = if Cs == 0: 0, else: 1 - min(1, (1 - Cb) / Cs)
func blendColorBurn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if s == 0 {
			return 0
		}
		invD := uint32(255 - d)
		result := (invD*255 + uint32(s)/2) / uint32(s)
		if result > 255 {
			return 0
		}
		return 255 - byte(result)
	})
}

// blendHardLight combines Multiply and Screen based on the source.
// Formula: B(Cb, Cs) = if Cs <= 0.5: Multiply(Cb, 2*Cs), else: Screen(Cb, 2*Cs - 1)
func blendHardLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, hardLightChan)
}

// hardLightChan is the per-channel hard-light function, computed in
// uint32 so the doubled operand cannot overflow.
func hardLightChan(s, d byte) byte {
	if s < 128 {
		// 2 * Cs * Cb
		return byte(div255(2 * uint32(s) * uint32(d)))
	}
	// 1 - 2 * (1 - Cs) * (1 - Cb)
	return byte(255 - div255(2*uint32(255-s)*uint32(255-d)))
}

// blendSoftLight is a softer version of HardLight.
// Formula: B(Cb, Cs) = W3C soft-light curve over Cb and Cs
func blendSoftLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		sf := float64(s) / 255.0
		df := float64(d) / 255.0

		var result float64
		if sf <= 0.5 {
			// B(Cb, Cs) = Cb - (1 - 2*Cs) * Cb * (1 - Cb)
			result = df - (1-2*sf)*df*(1-df)
		} else {
			// B(Cb, Cs) = Cb + (2*Cs - 1) * (D(Cb) - Cb)
			// where D(x) = if x <= 0.25: ((16*x - 12)*x + 4)*x, else: sqrt(x)
			var dx float64
			if df <= 0.25 {
				dx = ((16*df-12)*df + 4) * df
			} else {
				dx = math.Sqrt(df)
			}
			result = df + (2*sf-1)*(dx-df)
		}

		if result < 0 {
			return 0
		}
		if result > 1 {
			return 255
		}
		return byte(result*255 + 0.5)
	})
}

// blendDifference produces the absolute difference of the channels.
// Formula: B(Cb, Cs) = |Cb - Cs|
func blendDifference(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if s > d {
			return s - d
		}
		return d - s
	})
}

// blendExclusion is similar to Difference but with lower contrast.
// Formula: B(Cb, Cs) = Cb + Cs - 2 * Cb * Cs
func blendExclusion(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		v := int(s) + int(d) - 2*int(MulDiv255(s, d))
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return byte(v)
	})
}
