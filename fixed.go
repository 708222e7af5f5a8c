// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "golang.org/x/image/math/fixed"

// Fixed-point coordinate space for scanline conversion.
//
// Every coordinate entering the rasterizer is snapped onto a 1/256
// sub-pixel grid and all coverage arithmetic is integer from there on.
// The algorithms are derived from Anti-Grain Geometry, which uses this
// representation for deterministic results across platforms: the same
// input produces bit-identical coverage on every architecture.
//
// PolyCoord is a 24.8 fixed-point number (8 fractional bits). The high
// 24 bits address the pixel, the low 8 bits the sub-pixel position
// inside it.
type PolyCoord = int32

// Fixed-point constants for PolyCoord.
const (
	// PolySubpixelShift is the number of fractional bits in a PolyCoord.
	PolySubpixelShift = 8

	// PolySubpixelScale is 1.0 in PolyCoord representation (2^8 = 256).
	PolySubpixelScale = 1 << PolySubpixelShift

	// PolySubpixelMask is the mask for the fractional part of a PolyCoord.
	PolySubpixelMask = PolySubpixelScale - 1
)

// Upscale converts a floating-point coordinate to PolyCoord.
//
// Rounding is half away from zero: 0.5 sub-pixel units round to 1,
// -0.5 to -1. Coverage at pixel boundaries depends on this exact rule,
// so it must not be replaced with half-even or half-up rounding.
func Upscale(v float64) PolyCoord {
	if v < 0 {
		return PolyCoord(v*PolySubpixelScale - 0.5)
	}
	return PolyCoord(v*PolySubpixelScale + 0.5)
}

// Downscale converts a PolyCoord back to a floating-point coordinate.
func Downscale(v PolyCoord) float64 {
	return float64(v) / PolySubpixelScale
}

// PolyCoordFromInt converts a whole-pixel coordinate to PolyCoord.
func PolyCoordFromInt(n int32) PolyCoord {
	return n << PolySubpixelShift
}

// PolyFloor returns the index of the pixel containing v.
// Shifts arithmetically, so negative coordinates floor correctly.
func PolyFloor(v PolyCoord) int32 {
	return v >> PolySubpixelShift
}

// PolyCeil returns the index of the first pixel at or after v.
func PolyCeil(v PolyCoord) int32 {
	return (v + PolySubpixelMask) >> PolySubpixelShift
}

// PolyFrac returns the sub-pixel position of v inside its pixel (0..255).
func PolyFrac(v PolyCoord) int32 {
	return v & PolySubpixelMask
}

// FromFixed26_6 converts a 26.6 fixed-point value (the convention of
// golang.org/x/image/math/fixed, used by font and vector producers) to
// PolyCoord. The conversion is exact: 26.6 is a coarser grid.
func FromFixed26_6(v fixed.Int26_6) PolyCoord {
	return PolyCoord(v) << (PolySubpixelShift - 6)
}

// ToFixed26_6 converts a PolyCoord to a 26.6 fixed-point value,
// rounding to the nearest 1/64 with ties toward positive infinity.
func ToFixed26_6(v PolyCoord) fixed.Int26_6 {
	return fixed.Int26_6((v + 2) >> (PolySubpixelShift - 6))
}

// PointFromFixed26_6 converts a 26.6 point to sub-pixel coordinates.
func PointFromFixed26_6(p fixed.Point26_6) (x, y PolyCoord) {
	return FromFixed26_6(p.X), FromFixed26_6(p.Y)
}

// Helper functions shared by the coverage pipeline.

// absInt32 returns the absolute value of an int32.
func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// minInt32 returns the minimum of two int32 values.
func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// maxInt32 returns the maximum of two int32 values.
func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// iround rounds a float64 to the nearest int32, half away from zero.
// The clipper uses it when interpolating crossing points so that both
// clipped and unclipped renders land on the same sub-pixel grid.
func iround(v float64) int32 {
	if v < 0 {
		return int32(v - 0.5)
	}
	return int32(v + 0.5)
}
