// Package raster converts filled vector outlines to anti-aliased
// pixels.
//
// # Overview
//
// raster is a Pure Go scanline rasterization core in the Anti-Grain
// Geometry tradition, built for the GoGPU ecosystem. Geometry goes in
// as polygon vertices on a 1/256 sub-pixel grid; coverage comes out as
// scanline spans with 8-bit anti-aliasing, computed entirely in integer
// arithmetic so the same scene always renders to the same bytes.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/raster"
//	    "github.com/gogpu/raster/pixfmt"
//	)
//
//	pf, _ := pixfmt.NewRGBA32(512, 512)
//	ren := raster.NewBaseRenderer(pf)
//	ren.Clear(raster.White)
//
//	ras := raster.NewRasterizer()
//	ras.MoveToD(100, 100)
//	ras.LineToD(400, 150)
//	ras.LineToD(250, 420)
//	ras.ClosePolygon()
//
//	raster.RenderScanlinesAASolid(ras, raster.NewScanlineU8(), ren, raster.Red)
//
// # Architecture
//
// The pipeline has four stages, each replaceable on its own:
//   - Rasterizer: clips edges and accumulates coverage cells
//   - Scanline containers: ScanlineU8, ScanlineP8, ScanlineBin
//   - BaseRenderer: pixel-space clipping over a PixelFormat
//   - pixfmt: RGBA32, RGB24, Gray8 and compositing surfaces
//
// Span generators (gradients, images, patterns) plug in through the
// SpanGenerator interface and RenderScanlinesAA.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Sub-pixel coordinates carry 8 fractional bits (PolySubpixelShift)
//
// # Determinism
//
// Every blend and coverage computation rounds exactly; there are no
// fast approximations that differ by platform, span length or code
// path. Byte-for-byte reproducibility is the contract the tests pin
// down, and what makes image diffing (cmd/pixdiff) meaningful.
package raster

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
