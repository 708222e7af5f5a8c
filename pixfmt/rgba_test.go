package pixfmt

import (
	"bytes"
	"testing"

	"github.com/gogpu/raster"
)

// Reference arithmetic, written with plain integer division so the
// tests do not share rounding code with the implementation.

func lerpRef(p, q, a uint8) uint8 {
	return uint8((int(p)*(255-int(a)) + int(q)*int(a) + 127) / 255)
}

func mulRef(a, b uint8) uint8 {
	return uint8((int(a)*int(b) + 127) / 255)
}

func unionRef(p, a uint8) uint8 {
	return uint8(int(p) + int(a) - (int(p)*int(a)+127)/255)
}

func fillRGBA(p *RGBA32, c raster.RGBA8) {
	for y := 0; y < p.Height(); y++ {
		p.CopyHLine(0, y, p.Width()-1, c)
	}
}

func TestRGBA32_CopyAndGetPixel(t *testing.T) {
	p, err := NewRGBA32(4, 4)
	if err != nil {
		t.Fatalf("NewRGBA32() error = %v", err)
	}

	c := raster.RGBA8{R: 10, G: 20, B: 30, A: 40}
	p.CopyPixel(2, 3, c)
	if got := p.GetPixel(2, 3); got != c {
		t.Errorf("GetPixel(2, 3) = %v, want %v", got, c)
	}
	if got := p.GetPixel(0, 0); got != (raster.RGBA8{}) {
		t.Errorf("untouched pixel = %v, want zero", got)
	}
}

func TestRGBA32_BlendPixel(t *testing.T) {
	dst := raster.RGBA8{R: 0, G: 0, B: 255, A: 255}
	src := raster.RGBA8{R: 255, G: 0, B: 0, A: 255}

	tests := []struct {
		name  string
		src   raster.RGBA8
		cover uint8
		want  raster.RGBA8
	}{
		{
			name:  "opaque full cover replaces",
			src:   src,
			cover: 255,
			want:  src,
		},
		{
			name:  "zero alpha is a no-op",
			src:   raster.RGBA8{R: 255, A: 0},
			cover: 255,
			want:  dst,
		},
		{
			name:  "zero cover is a no-op",
			src:   src,
			cover: 0,
			want:  dst,
		},
		{
			name:  "half cover interpolates",
			src:   src,
			cover: 128,
			want:  raster.RGBA8{R: 128, G: 0, B: 127, A: 255},
		},
		{
			name:  "translucent source",
			src:   raster.RGBA8{R: 100, G: 200, B: 50, A: 64},
			cover: 255,
			want: raster.RGBA8{
				R: lerpRef(0, 100, 64),
				G: lerpRef(0, 200, 64),
				B: lerpRef(255, 50, 64),
				A: 255,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewRGBA32(2, 2)
			if err != nil {
				t.Fatalf("NewRGBA32() error = %v", err)
			}
			fillRGBA(p, dst)

			p.BlendPixel(1, 1, tt.src, tt.cover)
			if got := p.GetPixel(1, 1); got != tt.want {
				t.Errorf("BlendPixel() = %v, want %v", got, tt.want)
			}
			if got := p.GetPixel(0, 1); got != dst {
				t.Errorf("neighbor pixel changed to %v", got)
			}
		})
	}
}

func TestRGBA32_AlphaUnion(t *testing.T) {
	p, err := NewRGBA32(1, 1)
	if err != nil {
		t.Fatalf("NewRGBA32() error = %v", err)
	}

	src := raster.RGBA8{R: 200, G: 100, B: 50, A: 128}
	p.BlendPixel(0, 0, src, 255)
	if got := p.GetPixel(0, 0).A; got != 128 {
		t.Fatalf("alpha after first blend = %d, want 128", got)
	}

	// A second translucent layer raises coverage without reaching full
	// opacity: 128 + 128 - 128*128/255.
	p.BlendPixel(0, 0, src, 255)
	if got, want := p.GetPixel(0, 0).A, unionRef(128, 128); got != want {
		t.Errorf("alpha after second blend = %d, want %d", got, want)
	}
}

func TestRGBA32_CopyHLine(t *testing.T) {
	p, err := NewRGBA32(6, 2)
	if err != nil {
		t.Fatalf("NewRGBA32() error = %v", err)
	}

	c := raster.RGBA8{R: 1, G: 2, B: 3, A: 4}
	p.CopyHLine(1, 1, 4, c)
	for x := 0; x < 6; x++ {
		want := raster.RGBA8{}
		if x >= 1 && x <= 4 {
			want = c
		}
		if got := p.GetPixel(x, 1); got != want {
			t.Errorf("pixel (%d, 1) = %v, want %v", x, got, want)
		}
	}
	for x := 0; x < 6; x++ {
		if got := p.GetPixel(x, 0); got != (raster.RGBA8{}) {
			t.Errorf("row 0 pixel (%d, 0) changed to %v", x, got)
		}
	}
}

func TestRGBA32_BlendHLineMatchesBlendPixel(t *testing.T) {
	src := raster.RGBA8{R: 90, G: 160, B: 220, A: 180}
	bg := raster.RGBA8{R: 40, G: 40, B: 40, A: 255}

	for _, cover := range []uint8{1, 77, 128, 254, 255} {
		line, err := NewRGBA32(40, 1)
		if err != nil {
			t.Fatalf("NewRGBA32() error = %v", err)
		}
		ref, err := NewRGBA32(40, 1)
		if err != nil {
			t.Fatalf("NewRGBA32() error = %v", err)
		}
		fillRGBA(line, bg)
		fillRGBA(ref, bg)

		line.BlendHLine(2, 0, 37, src, cover)
		for x := 2; x <= 37; x++ {
			ref.BlendPixel(x, 0, src, cover)
		}

		if !bytes.Equal(line.Buffer().Data(), ref.Buffer().Data()) {
			t.Errorf("cover %d: BlendHLine and per-pixel blending disagree", cover)
		}
	}
}

func TestRGBA32_BlendSolidHSpanMatchesBlendPixel(t *testing.T) {
	src := raster.RGBA8{R: 255, G: 80, B: 10, A: 200}
	bg := raster.RGBA8{R: 0, G: 60, B: 120, A: 255}

	// Spans longer than one batch exercise both the wide lanes and the
	// scalar tail.
	covers := make([]uint8, 37)
	for i := range covers {
		covers[i] = uint8(i * 7)
	}

	span, err := NewRGBA32(40, 1)
	if err != nil {
		t.Fatalf("NewRGBA32() error = %v", err)
	}
	ref, err := NewRGBA32(40, 1)
	if err != nil {
		t.Fatalf("NewRGBA32() error = %v", err)
	}
	fillRGBA(span, bg)
	fillRGBA(ref, bg)

	span.BlendSolidHSpan(1, 0, len(covers), src, covers)
	for i, cv := range covers {
		ref.BlendPixel(1+i, 0, src, cv)
	}

	if !bytes.Equal(span.Buffer().Data(), ref.Buffer().Data()) {
		t.Error("BlendSolidHSpan and per-pixel blending disagree")
	}
}

func TestRGBA32_BlendColorHSpan(t *testing.T) {
	bg := raster.RGBA8{R: 10, G: 10, B: 10, A: 255}
	colors := []raster.RGBA8{
		{R: 255, A: 255},
		{G: 255, A: 128},
		{B: 255, A: 0},
	}

	t.Run("uniform cover", func(t *testing.T) {
		p, err := NewRGBA32(4, 1)
		if err != nil {
			t.Fatalf("NewRGBA32() error = %v", err)
		}
		fillRGBA(p, bg)

		p.BlendColorHSpan(0, 0, len(colors), colors, nil, 255)
		if got := p.GetPixel(0, 0); got != (raster.RGBA8{R: 255, A: 255}) {
			t.Errorf("opaque color = %v", got)
		}
		want := raster.RGBA8{
			R: lerpRef(10, 0, 128),
			G: lerpRef(10, 255, 128),
			B: lerpRef(10, 0, 128),
			A: 255,
		}
		if got := p.GetPixel(1, 0); got != want {
			t.Errorf("translucent color = %v, want %v", got, want)
		}
		if got := p.GetPixel(2, 0); got != bg {
			t.Errorf("zero-alpha color changed pixel to %v", got)
		}
	})

	t.Run("per-pixel covers", func(t *testing.T) {
		p, err := NewRGBA32(4, 1)
		if err != nil {
			t.Fatalf("NewRGBA32() error = %v", err)
		}
		ref, err := NewRGBA32(4, 1)
		if err != nil {
			t.Fatalf("NewRGBA32() error = %v", err)
		}
		fillRGBA(p, bg)
		fillRGBA(ref, bg)

		covers := []uint8{255, 100, 50}
		p.BlendColorHSpan(0, 0, len(colors), colors, covers, 0)
		for i := range colors {
			ref.BlendPixel(i, 0, colors[i], covers[i])
		}
		if !bytes.Equal(p.Buffer().Data(), ref.Buffer().Data()) {
			t.Error("BlendColorHSpan with covers disagrees with per-pixel blending")
		}
	})
}

func TestRGBA32_Attach(t *testing.T) {
	data := make([]byte, 4*3*4)
	p, err := AttachRGBA32(data, 4, 3, 16)
	if err != nil {
		t.Fatalf("AttachRGBA32() error = %v", err)
	}

	p.CopyPixel(1, 2, raster.RGBA8{R: 9, G: 8, B: 7, A: 6})
	o := 2*16 + 1*4
	if data[o] != 9 || data[o+1] != 8 || data[o+2] != 7 || data[o+3] != 6 {
		t.Error("CopyPixel did not write through to attached memory")
	}
}

func TestWrapRGBA32_RejectsWrongPixelSize(t *testing.T) {
	buf, err := NewBuffer(4, 4, 3)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}
	if _, err := WrapRGBA32(buf); err != ErrInvalidFormat {
		t.Errorf("WrapRGBA32(3bpp) error = %v, want ErrInvalidFormat", err)
	}
}
