package pixfmt

import (
	"testing"

	"github.com/gogpu/raster"
)

func TestGray8_Luminance(t *testing.T) {
	tests := []struct {
		name string
		c    raster.RGBA8
		want uint8
	}{
		{name: "white", c: raster.RGBA8{R: 255, G: 255, B: 255, A: 255}, want: 255},
		{name: "black", c: raster.RGBA8{A: 255}, want: 0},
		{name: "pure red", c: raster.RGBA8{R: 255, A: 255}, want: 76},
		{name: "pure green", c: raster.RGBA8{G: 255, A: 255}, want: 149},
		{name: "pure blue", c: raster.RGBA8{B: 255, A: 255}, want: 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewGray8(1, 1)
			if err != nil {
				t.Fatalf("NewGray8() error = %v", err)
			}
			p.CopyPixel(0, 0, tt.c)
			got := p.GetPixel(0, 0)
			if got.R != tt.want || got.G != tt.want || got.B != tt.want || got.A != 255 {
				t.Errorf("GetPixel() = %v, want gray %d", got, tt.want)
			}
		})
	}
}

func TestGray8_BlendPixel(t *testing.T) {
	p, err := NewGray8(1, 1)
	if err != nil {
		t.Fatalf("NewGray8() error = %v", err)
	}

	// Half-covered white over black lands mid-gray.
	p.BlendPixel(0, 0, raster.RGBA8{R: 255, G: 255, B: 255, A: 255}, 128)
	if got := p.GetPixel(0, 0).R; got != 128 {
		t.Errorf("half-covered white = %d, want 128", got)
	}

	// Full cover replaces.
	p.BlendPixel(0, 0, raster.RGBA8{R: 255, G: 255, B: 255, A: 255}, 255)
	if got := p.GetPixel(0, 0).R; got != 255 {
		t.Errorf("full-covered white = %d, want 255", got)
	}
}

func TestGray8_SpansMatchBlendPixel(t *testing.T) {
	src := raster.RGBA8{R: 200, G: 40, B: 90, A: 230}
	covers := []uint8{0, 30, 128, 255, 5}

	span, err := NewGray8(7, 1)
	if err != nil {
		t.Fatalf("NewGray8() error = %v", err)
	}
	ref, err := NewGray8(7, 1)
	if err != nil {
		t.Fatalf("NewGray8() error = %v", err)
	}
	for x := 0; x < 7; x++ {
		bg := raster.RGBA8{R: uint8(x * 40), G: uint8(x * 40), B: uint8(x * 40), A: 255}
		span.CopyPixel(x, 0, bg)
		ref.CopyPixel(x, 0, bg)
	}

	span.BlendSolidHSpan(1, 0, len(covers), src, covers)
	for i, cv := range covers {
		ref.BlendPixel(1+i, 0, src, cv)
	}

	for x := 0; x < 7; x++ {
		if got, want := span.GetPixel(x, 0), ref.GetPixel(x, 0); got != want {
			t.Errorf("pixel %d: span %v, per-pixel %v", x, got, want)
		}
	}
}

func TestGray8_BlendHLine(t *testing.T) {
	p, err := NewGray8(5, 2)
	if err != nil {
		t.Fatalf("NewGray8() error = %v", err)
	}

	p.BlendHLine(0, 1, 4, raster.RGBA8{R: 255, G: 255, B: 255, A: 255}, 255)
	for x := 0; x < 5; x++ {
		if got := p.GetPixel(x, 1).R; got != 255 {
			t.Errorf("row 1 pixel %d = %d, want 255", x, got)
		}
		if got := p.GetPixel(x, 0).R; got != 0 {
			t.Errorf("row 0 pixel %d = %d, want 0", x, got)
		}
	}
}
