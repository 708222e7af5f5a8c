package pixfmt

import (
	"testing"

	"github.com/gogpu/raster"
)

func TestRGB24_PixelRoundTrip(t *testing.T) {
	p, err := NewRGB24(4, 4)
	if err != nil {
		t.Fatalf("NewRGB24() error = %v", err)
	}

	p.CopyPixel(1, 2, raster.RGBA8{R: 10, G: 20, B: 30, A: 40})
	want := raster.RGBA8{R: 10, G: 20, B: 30, A: 255}
	if got := p.GetPixel(1, 2); got != want {
		t.Errorf("GetPixel() = %v, want %v (alpha forced opaque)", got, want)
	}
}

func TestRGB24_BlendPixel(t *testing.T) {
	tests := []struct {
		name  string
		src   raster.RGBA8
		cover uint8
		want  raster.RGBA8
	}{
		{
			name:  "opaque full cover",
			src:   raster.RGBA8{R: 200, G: 150, B: 100, A: 255},
			cover: 255,
			want:  raster.RGBA8{R: 200, G: 150, B: 100, A: 255},
		},
		{
			name:  "half alpha over black",
			src:   raster.RGBA8{R: 255, G: 255, B: 255, A: 128},
			cover: 255,
			want:  raster.RGBA8{R: 128, G: 128, B: 128, A: 255},
		},
		{
			name:  "zero cover",
			src:   raster.RGBA8{R: 255, A: 255},
			cover: 0,
			want:  raster.RGBA8{A: 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewRGB24(2, 1)
			if err != nil {
				t.Fatalf("NewRGB24() error = %v", err)
			}
			p.BlendPixel(0, 0, tt.src, tt.cover)
			if got := p.GetPixel(0, 0); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRGB24_SpansMatchBlendPixel(t *testing.T) {
	src := raster.RGBA8{R: 90, G: 200, B: 30, A: 210}
	covers := []uint8{0, 13, 128, 255, 254, 1}

	span, err := NewRGB24(8, 1)
	if err != nil {
		t.Fatalf("NewRGB24() error = %v", err)
	}
	ref, err := NewRGB24(8, 1)
	if err != nil {
		t.Fatalf("NewRGB24() error = %v", err)
	}
	for x := 0; x < 8; x++ {
		bg := raster.RGBA8{R: uint8(x * 31), G: 77, B: uint8(x * 11), A: 255}
		span.CopyPixel(x, 0, bg)
		ref.CopyPixel(x, 0, bg)
	}

	span.BlendSolidHSpan(1, 0, len(covers), src, covers)
	for i, cv := range covers {
		ref.BlendPixel(1+i, 0, src, cv)
	}

	for x := 0; x < 8; x++ {
		if got, want := span.GetPixel(x, 0), ref.GetPixel(x, 0); got != want {
			t.Errorf("pixel %d: span %v, per-pixel %v", x, got, want)
		}
	}
}

func TestRGB24_BlendHLine(t *testing.T) {
	p, err := NewRGB24(6, 1)
	if err != nil {
		t.Fatalf("NewRGB24() error = %v", err)
	}

	p.BlendHLine(1, 0, 4, raster.RGBA8{R: 255, G: 255, B: 255, A: 255}, 128)
	want := raster.RGBA8{R: 128, G: 128, B: 128, A: 255}
	for x := 1; x <= 4; x++ {
		if got := p.GetPixel(x, 0); got != want {
			t.Errorf("pixel %d = %v, want %v", x, got, want)
		}
	}
	if got := p.GetPixel(0, 0); got != (raster.RGBA8{A: 255}) {
		t.Errorf("pixel left of span = %v, want black", got)
	}
}
