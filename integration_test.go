package raster_test

import (
	"bytes"
	"testing"

	"github.com/gogpu/raster"
	"github.com/gogpu/raster/pixfmt"
)

func newWhiteRGBA32(t *testing.T, w, h int) (*pixfmt.RGBA32, *raster.BaseRenderer) {
	t.Helper()
	pf, err := pixfmt.NewRGBA32(w, h)
	if err != nil {
		t.Fatalf("NewRGBA32() error = %v", err)
	}
	ren := raster.NewBaseRenderer(pf)
	ren.Clear(raster.White)
	return pf, ren
}

func fillRect(ras *raster.Rasterizer, x1, y1, x2, y2 float64) {
	ras.MoveToD(x1, y1)
	ras.LineToD(x2, y1)
	ras.LineToD(x2, y2)
	ras.LineToD(x1, y2)
	ras.ClosePolygon()
}

func TestRenderAlignedSquareExactBytes(t *testing.T) {
	pf, ren := newWhiteRGBA32(t, 12, 12)

	ras := raster.NewRasterizer()
	fillRect(ras, 2, 2, 8, 8)
	raster.RenderScanlinesAASolid(ras, raster.NewScanlineU8(), ren, raster.Black)

	// A pixel-aligned opaque fill has no partial coverage anywhere:
	// every byte of the surface is predictable.
	want := make([]byte, 12*12*4)
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			o := (y*12 + x) * 4
			v := byte(255)
			if x >= 2 && x <= 7 && y >= 2 && y <= 7 {
				v = 0
			}
			want[o+0] = v
			want[o+1] = v
			want[o+2] = v
			want[o+3] = 255
		}
	}
	if !bytes.Equal(pf.Buffer().Data(), want) {
		t.Error("rendered bytes differ from the expected surface")
	}
}

func TestRenderHalfPixelSquareCoverage(t *testing.T) {
	pf, ren := newWhiteRGBA32(t, 10, 10)

	ras := raster.NewRasterizer()
	fillRect(ras, 2.5, 2.5, 6.5, 6.5)
	raster.RenderScanlinesAASolid(ras, raster.NewScanlineU8(), ren, raster.Black)

	// Black at coverage c over white leaves 255 - c in each channel.
	tests := []struct {
		x, y int
		want uint8
	}{
		{4, 4, 0},     // interior, full coverage
		{2, 4, 127},   // left edge, half coverage: 255 - 128
		{6, 4, 127},   // right edge
		{4, 2, 127},   // top edge
		{2, 2, 191},   // corner, quarter coverage: 255 - 64
		{8, 4, 255},   // outside
	}
	for _, tt := range tests {
		got := pf.GetPixel(tt.x, tt.y)
		if got.R != tt.want || got.G != tt.want || got.B != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want gray %d", tt.x, tt.y, got, tt.want)
		}
		if got.A != 255 {
			t.Errorf("pixel (%d,%d) alpha = %d, want 255", tt.x, tt.y, got.A)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	render := func() []byte {
		pf, ren := newWhiteRGBA32(t, 64, 64)
		ras := raster.NewRasterizer()
		ras.MoveToD(3.7, 1.2)
		ras.LineToD(60.1, 17.9)
		ras.LineToD(44.4, 58.6)
		ras.LineToD(8.9, 51.3)
		ras.LineToD(1.1, 22.8)
		ras.ClosePolygon()
		raster.RenderScanlinesAASolid(ras, raster.NewScanlineU8(), ren,
			raster.RGBA8{R: 30, G: 90, B: 200, A: 180})
		return pf.Buffer().Data()
	}

	if !bytes.Equal(render(), render()) {
		t.Error("two renders of the same scene produced different bytes")
	}
}

func TestRendererClipRestrictsOutput(t *testing.T) {
	clipped, renClipped := newWhiteRGBA32(t, 12, 12)
	plain, renPlain := newWhiteRGBA32(t, 12, 12)

	if !renClipped.SetClipBox(3, 3, 6, 6) {
		t.Fatal("SetClipBox() = false")
	}

	draw := func(ren *raster.BaseRenderer) {
		ras := raster.NewRasterizer()
		fillRect(ras, 1.2, 1.4, 9.8, 9.6)
		raster.RenderScanlinesAASolid(ras, raster.NewScanlineU8(), ren, raster.Red)
	}
	draw(renClipped)
	draw(renPlain)

	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			in := x >= 3 && x <= 6 && y >= 3 && y <= 6
			got := clipped.GetPixel(x, y)
			if in {
				if want := plain.GetPixel(x, y); got != want {
					t.Errorf("in-clip pixel (%d,%d) = %v, want %v", x, y, got, want)
				}
			} else if got != raster.White {
				t.Errorf("out-of-clip pixel (%d,%d) = %v, want white", x, y, got)
			}
		}
	}
}

// axisRamp colors pixels by position, opaque.
type axisRamp struct{}

func (axisRamp) Prepare() {}

func (axisRamp) Generate(colors []raster.RGBA8, x, y, length int) {
	for i := 0; i < length; i++ {
		colors[i] = raster.RGBA8{R: uint8((x + i) * 16), G: uint8(y * 16), B: 77, A: 255}
	}
}

func TestRenderSpanGenerator(t *testing.T) {
	pf, ren := newWhiteRGBA32(t, 16, 16)

	ras := raster.NewRasterizer()
	fillRect(ras, 2, 2, 14, 14)
	raster.RenderScanlinesAA(ras, raster.NewScanlineU8(), ren,
		raster.NewSpanAllocator(), axisRamp{})

	// Interior pixels are fully covered and opaque, so the generated
	// color lands exactly.
	for _, pt := range [][2]int{{2, 2}, {7, 3}, {13, 13}, {5, 11}} {
		want := raster.RGBA8{R: uint8(pt[0] * 16), G: uint8(pt[1] * 16), B: 77, A: 255}
		if got := pf.GetPixel(pt[0], pt[1]); got != want {
			t.Errorf("pixel (%d,%d) = %v, want %v", pt[0], pt[1], got, want)
		}
	}
	if got := pf.GetPixel(0, 0); got != raster.White {
		t.Errorf("pixel outside the fill = %v, want white", got)
	}
}

func TestRenderCompOpMultiply(t *testing.T) {
	base, err := pixfmt.NewRGBA32(8, 8)
	if err != nil {
		t.Fatalf("NewRGBA32() error = %v", err)
	}
	raster.NewBaseRenderer(base).Clear(raster.RGBA8{R: 255, G: 128, B: 64, A: 255})

	comp, err := pixfmt.WrapCompOpRGBA32(base.Buffer(), pixfmt.CompOpMultiply)
	if err != nil {
		t.Fatalf("WrapCompOpRGBA32() error = %v", err)
	}
	ren := raster.NewBaseRenderer(comp)

	ras := raster.NewRasterizer()
	fillRect(ras, 2, 2, 6, 6)
	raster.RenderScanlinesAASolid(ras, raster.NewScanlineU8(), ren,
		raster.RGBA8{R: 128, G: 128, B: 128, A: 255})

	// Inside the square the background is multiplied by mid-gray.
	want := raster.RGBA8{R: 128, G: 64, B: 32, A: 255}
	if got := base.GetPixel(4, 4); got != want {
		t.Errorf("multiplied pixel = %v, want %v", got, want)
	}
	// Outside it is untouched.
	if got := base.GetPixel(0, 0); got != (raster.RGBA8{R: 255, G: 128, B: 64, A: 255}) {
		t.Errorf("outside pixel = %v, want the background", got)
	}
}

func TestRenderGray8(t *testing.T) {
	pf, err := pixfmt.NewGray8(10, 10)
	if err != nil {
		t.Fatalf("NewGray8() error = %v", err)
	}
	ren := raster.NewBaseRenderer(pf)
	ren.Clear(raster.White)

	ras := raster.NewRasterizer()
	fillRect(ras, 2, 2, 8, 8)
	raster.RenderScanlinesAASolid(ras, raster.NewScanlineU8(), ren, raster.Red)

	// Pure red collapses to luminance 76.
	if got := pf.GetPixel(4, 4).R; got != 76 {
		t.Errorf("filled gray = %d, want 76", got)
	}
	if got := pf.GetPixel(0, 0).R; got != 255 {
		t.Errorf("background gray = %d, want 255", got)
	}
}

func TestRenderRGB24(t *testing.T) {
	pf, err := pixfmt.NewRGB24(10, 10)
	if err != nil {
		t.Fatalf("NewRGB24() error = %v", err)
	}
	ren := raster.NewBaseRenderer(pf)
	ren.Clear(raster.White)

	ras := raster.NewRasterizer()
	fillRect(ras, 2.5, 2.5, 6.5, 6.5)
	raster.RenderScanlinesAASolid(ras, raster.NewScanlineU8(), ren, raster.Black)

	if got := pf.GetPixel(4, 4); got != (raster.RGBA8{A: 255}) {
		t.Errorf("interior = %v, want black", got)
	}
	if got := pf.GetPixel(2, 4).R; got != 127 {
		t.Errorf("half-covered edge = %d, want 127", got)
	}
}
