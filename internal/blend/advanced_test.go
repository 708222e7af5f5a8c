package blend

import "testing"

func TestSeparableTransparentLayers(t *testing.T) {
	s := pix{100, 50, 25, 200}
	d := pix{30, 60, 90, 120}

	// Transparent source leaves the destination.
	if got := runOp(blendMultiply, pix{0, 0, 0, 0}, d); got != d {
		t.Errorf("multiply with transparent source = %v, want %v", got, d)
	}
	// Transparent destination exposes the source.
	if got := runOp(blendMultiply, s, pix{0, 0, 0, 0}); got != s {
		t.Errorf("multiply with transparent destination = %v, want %v", got, s)
	}
}

func TestBlendMultiplyOpaque(t *testing.T) {
	got := runOp(blendMultiply, pix{255, 128, 0, 255}, pix{128, 128, 128, 255})
	want := pix{128, 64, 0, 255}
	if got != want {
		t.Errorf("blendMultiply() = %v, want %v", got, want)
	}
}

func TestBlendScreenOpaque(t *testing.T) {
	got := runOp(blendScreen, pix{255, 0, 128, 255}, pix{128, 128, 128, 255})
	want := pix{255, 128, 192, 255}
	if got != want {
		t.Errorf("blendScreen() = %v, want %v", got, want)
	}
}

func TestBlendDarkenLightenOpaque(t *testing.T) {
	s := pix{200, 10, 128, 255}
	d := pix{100, 50, 128, 255}

	if got := runOp(blendDarken, s, d); got != (pix{100, 10, 128, 255}) {
		t.Errorf("blendDarken() = %v", got)
	}
	if got := runOp(blendLighten, s, d); got != (pix{200, 50, 128, 255}) {
		t.Errorf("blendLighten() = %v", got)
	}
}

// TestHardLightChanBoundary checks both halves of the piecewise curve
// around the switch point, where a careless doubled operand would
// overflow a byte.
func TestHardLightChanBoundary(t *testing.T) {
	tests := []struct {
		name string
		s, d byte
		want byte
	}{
		{"multiply branch", 127, 200, 199},
		{"screen branch", 128, 200, 200},
		{"screen branch dark backdrop", 128, 0, 1},
		{"full source", 255, 77, 255},
		{"zero source", 0, 77, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hardLightChan(tt.s, tt.d)
			if got != tt.want {
				t.Errorf("hardLightChan(%d, %d) = %d, want %d", tt.s, tt.d, got, tt.want)
			}
		})
	}
}

func TestBlendOverlayIsSwappedHardLight(t *testing.T) {
	s := pix{77, 144, 201, 255}
	d := pix{10, 160, 90, 255}

	got := runOp(blendOverlay, s, d)
	want := pix{
		hardLightChan(d.r, s.r),
		hardLightChan(d.g, s.g),
		hardLightChan(d.b, s.b),
		255,
	}
	if got != want {
		t.Errorf("blendOverlay() = %v, want %v", got, want)
	}
}

func TestBlendColorDodgeEdges(t *testing.T) {
	// Full source channel dodges to white regardless of backdrop.
	got := runOp(blendColorDodge, pix{255, 255, 255, 255}, pix{10, 0, 200, 255})
	if got != (pix{255, 255, 255, 255}) {
		t.Errorf("blendColorDodge() full source = %v, want white", got)
	}
	// Zero backdrop stays zero below full source.
	got = runOp(blendColorDodge, pix{100, 100, 100, 255}, pix{0, 0, 0, 255})
	if got != (pix{0, 0, 0, 255}) {
		t.Errorf("blendColorDodge() zero backdrop = %v, want black", got)
	}
}

func TestBlendColorBurnEdges(t *testing.T) {
	// Zero source burns to black.
	got := runOp(blendColorBurn, pix{0, 0, 0, 255}, pix{10, 128, 200, 255})
	if got != (pix{0, 0, 0, 255}) {
		t.Errorf("blendColorBurn() zero source = %v, want black", got)
	}
	// Full backdrop stays white above zero source.
	got = runOp(blendColorBurn, pix{100, 100, 100, 255}, pix{255, 255, 255, 255})
	if got != (pix{255, 255, 255, 255}) {
		t.Errorf("blendColorBurn() white backdrop = %v, want white", got)
	}
}

func TestBlendDifferenceOpaque(t *testing.T) {
	got := runOp(blendDifference, pix{200, 10, 128, 255}, pix{50, 60, 128, 255})
	want := pix{150, 50, 0, 255}
	if got != want {
		t.Errorf("blendDifference() = %v, want %v", got, want)
	}
}

func TestBlendExclusionBounds(t *testing.T) {
	// Identical full channels cancel completely.
	got := runOp(blendExclusion, pix{255, 255, 255, 255}, pix{255, 255, 255, 255})
	if got != (pix{0, 0, 0, 255}) {
		t.Errorf("blendExclusion() white on white = %v, want black", got)
	}
	// Disjoint channels pass through.
	got = runOp(blendExclusion, pix{255, 0, 0, 255}, pix{0, 255, 0, 255})
	if got != (pix{255, 255, 0, 255}) {
		t.Errorf("blendExclusion() disjoint = %v", got)
	}
}

func TestBlendSoftLightCurve(t *testing.T) {
	// Source below one half darkens toward Cb^2.
	got := runOp(blendSoftLight, pix{0, 0, 0, 255}, pix{128, 128, 128, 255})
	if got.r != 64 {
		t.Errorf("blendSoftLight() dark source = %d, want 64", got.r)
	}
	// Neutral gray source is close to the identity.
	got = runOp(blendSoftLight, pix{128, 128, 128, 255}, pix{77, 77, 77, 255})
	if diff := int(got.r) - 77; diff < -2 || diff > 2 {
		t.Errorf("blendSoftLight() neutral source moved backdrop to %d", got.r)
	}
}

func BenchmarkBlendSrcOver(b *testing.B) {
	var sink byte
	for i := 0; i < b.N; i++ {
		r, _, _, _ := blendSrcOver(120, 60, 30, 200, 10, 20, 30, 40)
		sink = r
	}
	_ = sink
}

func BenchmarkBlendMultiply(b *testing.B) {
	var sink byte
	for i := 0; i < b.N; i++ {
		r, _, _, _ := blendMultiply(120, 60, 30, 200, 10, 20, 30, 40)
		sink = r
	}
	_ = sink
}
