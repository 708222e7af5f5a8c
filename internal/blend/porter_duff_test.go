package blend

import "testing"

// pix bundles a premultiplied RGBA quad for table tests.
type pix struct {
	r, g, b, a byte
}

func runOp(f Func, s, d pix) pix {
	r, g, b, a := f(s.r, s.g, s.b, s.a, d.r, d.g, d.b, d.a)
	return pix{r, g, b, a}
}

func TestBlendClear(t *testing.T) {
	got := runOp(blendClear, pix{255, 0, 0, 255}, pix{0, 0, 255, 255})
	if got != (pix{0, 0, 0, 0}) {
		t.Errorf("blendClear() = %v, want transparent black", got)
	}
}

func TestBlendSrcAndDst(t *testing.T) {
	s := pix{255, 0, 0, 255}
	d := pix{0, 0, 255, 255}
	if got := runOp(blendSrc, s, d); got != s {
		t.Errorf("blendSrc() = %v, want %v", got, s)
	}
	if got := runOp(blendDst, s, d); got != d {
		t.Errorf("blendDst() = %v, want %v", got, d)
	}
}

func TestBlendSrcOver(t *testing.T) {
	tests := []struct {
		name string
		s, d pix
		want pix
	}{
		{
			name: "opaque source replaces",
			s:    pix{255, 0, 0, 255},
			d:    pix{0, 0, 255, 255},
			want: pix{255, 0, 0, 255},
		},
		{
			name: "transparent source keeps destination",
			s:    pix{0, 0, 0, 0},
			d:    pix{10, 20, 30, 255},
			want: pix{10, 20, 30, 255},
		},
		{
			name: "half coverage red over opaque blue",
			s:    pix{128, 0, 0, 128},
			d:    pix{0, 0, 255, 255},
			want: pix{128, 0, 127, 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runOp(blendSrcOver, tt.s, tt.d)
			if got != tt.want {
				t.Errorf("blendSrcOver() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlendDstOver(t *testing.T) {
	// Opaque destination wins entirely.
	got := runOp(blendDstOver, pix{255, 0, 0, 255}, pix{0, 0, 255, 255})
	if got != (pix{0, 0, 255, 255}) {
		t.Errorf("blendDstOver() = %v, want destination", got)
	}
	// Transparent destination exposes source.
	got = runOp(blendDstOver, pix{255, 0, 0, 255}, pix{0, 0, 0, 0})
	if got != (pix{255, 0, 0, 255}) {
		t.Errorf("blendDstOver() over transparent = %v, want source", got)
	}
}

func TestBlendSrcIn(t *testing.T) {
	tests := []struct {
		name string
		s, d pix
		want pix
	}{
		{"opaque destination", pix{200, 100, 50, 255}, pix{0, 0, 0, 255}, pix{200, 100, 50, 255}},
		{"transparent destination", pix{200, 100, 50, 255}, pix{0, 0, 0, 0}, pix{0, 0, 0, 0}},
		{"half destination", pix{200, 100, 50, 255}, pix{0, 0, 0, 128}, pix{100, 50, 25, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runOp(blendSrcIn, tt.s, tt.d)
			if got != tt.want {
				t.Errorf("blendSrcIn() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlendDstIn(t *testing.T) {
	got := runOp(blendDstIn, pix{0, 0, 0, 128}, pix{200, 100, 50, 255})
	want := pix{100, 50, 25, 128}
	if got != want {
		t.Errorf("blendDstIn() = %v, want %v", got, want)
	}
}

func TestBlendSrcOutDstOut(t *testing.T) {
	s := pix{200, 100, 50, 255}
	d := pix{40, 80, 120, 255}

	// Both layers opaque erase each other.
	if got := runOp(blendSrcOut, s, d); got != (pix{0, 0, 0, 0}) {
		t.Errorf("blendSrcOut() opaque = %v, want zero", got)
	}
	if got := runOp(blendDstOut, s, d); got != (pix{0, 0, 0, 0}) {
		t.Errorf("blendDstOut() opaque = %v, want zero", got)
	}

	// Half coverage source erases half the destination.
	got := runOp(blendDstOut, pix{0, 0, 0, 128}, d)
	want := pix{20, 40, 60, 127}
	if got != want {
		t.Errorf("blendDstOut() half = %v, want %v", got, want)
	}
}

func TestBlendAtopKeepsAlpha(t *testing.T) {
	s := pix{200, 0, 0, 200}
	d := pix{0, 0, 100, 100}

	got := runOp(blendSrcAtop, s, d)
	if got.a != d.a {
		t.Errorf("blendSrcAtop() alpha = %d, want destination alpha %d", got.a, d.a)
	}

	got = runOp(blendDstAtop, s, d)
	if got.a != s.a {
		t.Errorf("blendDstAtop() alpha = %d, want source alpha %d", got.a, s.a)
	}
}

func TestBlendXorOpaqueCancels(t *testing.T) {
	got := runOp(blendXor, pix{255, 0, 0, 255}, pix{0, 0, 255, 255})
	if got != (pix{0, 0, 0, 0}) {
		t.Errorf("blendXor() of two opaque layers = %v, want zero", got)
	}
}

func TestBlendPlus(t *testing.T) {
	got := runOp(blendPlus, pix{100, 200, 255, 100}, pix{100, 100, 10, 100})
	want := pix{200, 255, 255, 200}
	if got != want {
		t.Errorf("blendPlus() = %v, want %v", got, want)
	}
}

func TestBlendMinus(t *testing.T) {
	got := runOp(blendMinus, pix{50, 200, 0, 255}, pix{100, 100, 10, 255})
	want := pix{50, 0, 10, 255}
	if got != want {
		t.Errorf("blendMinus() = %v, want %v", got, want)
	}

	// Alpha is the union of the two layers.
	got = runOp(blendMinus, pix{0, 0, 0, 128}, pix{0, 0, 0, 128})
	wantA := byte(128 + 128 - (128*128+127)/255)
	if got.a != wantA {
		t.Errorf("blendMinus() alpha = %d, want %d", got.a, wantA)
	}
}

// TestGetCoversAllOps makes sure every operator value dispatches to a
// working kernel and unknown values fall back to source-over.
func TestGetCoversAllOps(t *testing.T) {
	s := pix{120, 60, 30, 200}
	d := pix{10, 20, 30, 40}
	for op := Op(0); op < NumOps; op++ {
		f := Get(op)
		if f == nil {
			t.Fatalf("Get(%d) returned nil", op)
		}
		runOp(f, s, d) // must not panic
	}

	fallback := runOp(Get(NumOps+1), s, d)
	want := runOp(blendSrcOver, s, d)
	if fallback != want {
		t.Errorf("Get(unknown) = %v, want source-over result %v", fallback, want)
	}
}
