package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gogpu/raster/pixfmt"
)

// bufferImage exposes a 4-byte-per-pixel buffer as an image without
// copying. Straight alpha maps directly onto image.NRGBA.
func bufferImage(buf *pixfmt.Buffer) (*image.NRGBA, error) {
	if buf.BytesPerPixel() != 4 {
		return nil, fmt.Errorf("cannot encode %d-byte pixels as NRGBA", buf.BytesPerPixel())
	}
	return &image.NRGBA{
		Pix:    buf.Data(),
		Stride: buf.Stride(),
		Rect:   image.Rect(0, 0, buf.Width(), buf.Height()),
	}, nil
}

// writeImage encodes img to path, picking the codec from the file
// extension (.png or .bmp).
func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, img)
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = fmt.Errorf("unsupported image extension %q (want .png or .bmp)", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

// readImage decodes a PNG or BMP file. Both codecs register themselves
// with the image package, so sniffing handles the dispatch.
func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}
