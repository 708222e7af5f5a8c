package blend

// Porter-Duff implementations (premultiplied alpha)

// blendClear clears the destination to transparent black.
func blendClear(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

// blendSrc replaces destination with source.
func blendSrc(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

// blendDst keeps destination unchanged.
func blendDst(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return dr, dg, db, da
}

// blendSrcOver composites source over destination (default operator).
// Formula: S + D * (1 - Sa)
func blendSrcOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, MulDiv255(dr, invSa)),
		addClamp(sg, MulDiv255(dg, invSa)),
		addClamp(sb, MulDiv255(db, invSa)),
		addClamp(sa, MulDiv255(da, invSa))
}

// blendDstOver composites destination over source.
// Formula: S * (1 - Da) + D
func blendDstOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return addClamp(MulDiv255(sr, invDa), dr),
		addClamp(MulDiv255(sg, invDa), dg),
		addClamp(MulDiv255(sb, invDa), db),
		addClamp(MulDiv255(sa, invDa), da)
}

// blendSrcIn shows source where destination is opaque.
// Formula: S * Da
func blendSrcIn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return MulDiv255(sr, da), MulDiv255(sg, da), MulDiv255(sb, da), MulDiv255(sa, da)
}

// blendDstIn shows destination where source is opaque.
// Formula: D * Sa
func blendDstIn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return MulDiv255(dr, sa), MulDiv255(dg, sa), MulDiv255(db, sa), MulDiv255(da, sa)
}

// blendSrcOut shows source where destination is transparent.
// Formula: S * (1 - Da)
func blendSrcOut(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return MulDiv255(sr, invDa), MulDiv255(sg, invDa), MulDiv255(sb, invDa), MulDiv255(sa, invDa)
}

// blendDstOut shows destination where source is transparent.
// Formula: D * (1 - Sa)
func blendDstOut(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return MulDiv255(dr, invSa), MulDiv255(dg, invSa), MulDiv255(db, invSa), MulDiv255(da, invSa)
}

// blendSrcAtop composites source over destination, keeping destination
// alpha.
// Formula: S * Da + D * (1 - Sa)
func blendSrcAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(MulDiv255(sr, da), MulDiv255(dr, invSa)),
		addClamp(MulDiv255(sg, da), MulDiv255(dg, invSa)),
		addClamp(MulDiv255(sb, da), MulDiv255(db, invSa)),
		da
}

// blendDstAtop composites destination over source, keeping source
// alpha.
// Formula: S * (1 - Da) + D * Sa
func blendDstAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return addClamp(MulDiv255(sr, invDa), MulDiv255(dr, sa)),
		addClamp(MulDiv255(sg, invDa), MulDiv255(dg, sa)),
		addClamp(MulDiv255(sb, invDa), MulDiv255(db, sa)),
		sa
}

// blendXor shows source and destination where they don't overlap.
// Formula: S * (1 - Da) + D * (1 - Sa)
func blendXor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	invSa := 255 - sa
	return addClamp(MulDiv255(sr, invDa), MulDiv255(dr, invSa)),
		addClamp(MulDiv255(sg, invDa), MulDiv255(dg, invSa)),
		addClamp(MulDiv255(sb, invDa), MulDiv255(db, invSa)),
		addClamp(MulDiv255(sa, invDa), MulDiv255(da, invSa))
}

// blendPlus adds source and destination colors (clamped to 255).
// Formula: min(S + D, 255)
func blendPlus(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}

// blendMinus subtracts source from destination (clamped to 0). The
// result alpha is the union Sa + Da - Sa*Da.
// Formula: max(D - S, 0)
func blendMinus(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return subClamp(dr, sr),
		subClamp(dg, sg),
		subClamp(db, sb),
		Prelerp255(da, sa, sa)
}
