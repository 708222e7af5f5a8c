package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// diffResult summarizes a pixel-by-pixel comparison of two images of
// equal size.
type diffResult struct {
	Width, Height int
	Differing     int
	FirstX        int
	FirstY        int
	FirstA        color.NRGBA
	FirstB        color.NRGBA
	MaxDelta      int
}

// Equal reports whether the images matched exactly.
func (d *diffResult) Equal() bool { return d.Differing == 0 }

// Within reports whether the difference stays inside a pixel budget.
func (d *diffResult) Within(tolerance int) bool { return d.Differing <= tolerance }

func (d *diffResult) String() string {
	if d.Equal() {
		return fmt.Sprintf("identical (%dx%d)", d.Width, d.Height)
	}
	total := d.Width * d.Height
	return fmt.Sprintf("%d/%d pixels differ, first at (%d, %d): %v vs %v, max channel delta %d",
		d.Differing, total, d.FirstX, d.FirstY, d.FirstA, d.FirstB, d.MaxDelta)
}

// toNRGBA normalizes a decoded image to origin-anchored straight-alpha
// bytes. Images that already have that shape pass through untouched.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// compareImages walks both images pixel by pixel in normalized
// straight-alpha form. The sizes must match; positions are compared
// relative to each image's own origin, so sub-images line up the way a
// viewer shows them.
func compareImages(a, b image.Image) (*diffResult, error) {
	ab := a.Bounds()
	bb := b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return nil, fmt.Errorf("size mismatch: %dx%d vs %dx%d", ab.Dx(), ab.Dy(), bb.Dx(), bb.Dy())
	}

	na := toNRGBA(a)
	nb := toNRGBA(b)
	d := &diffResult{Width: ab.Dx(), Height: ab.Dy()}
	rowLen := d.Width * 4

	for y := 0; y < d.Height; y++ {
		rowA := na.Pix[y*na.Stride : y*na.Stride+rowLen]
		rowB := nb.Pix[y*nb.Stride : y*nb.Stride+rowLen]
		if bytes.Equal(rowA, rowB) {
			continue
		}
		for x := 0; x < d.Width; x++ {
			o := x * 4
			pa := color.NRGBA{R: rowA[o], G: rowA[o+1], B: rowA[o+2], A: rowA[o+3]}
			pb := color.NRGBA{R: rowB[o], G: rowB[o+1], B: rowB[o+2], A: rowB[o+3]}
			if pa == pb {
				continue
			}
			if d.Differing == 0 {
				d.FirstX, d.FirstY = x, y
				d.FirstA, d.FirstB = pa, pb
			}
			d.Differing++
			for _, delta := range [4]int{
				absInt(int(pa.R) - int(pb.R)),
				absInt(int(pa.G) - int(pb.G)),
				absInt(int(pa.B) - int(pb.B)),
				absInt(int(pa.A) - int(pb.A)),
			} {
				if delta > d.MaxDelta {
					d.MaxDelta = delta
				}
			}
		}
	}
	return d, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
