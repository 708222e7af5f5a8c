// Package pixfmt implements the pixel formats the scanline renderer
// draws into.
//
// RGBA32, RGB24 and Gray8 are straight-alpha (non-premultiplied)
// surfaces blended with exact integer interpolation: rendering the
// same scene into the same buffer always produces identical bytes.
// CompOpRGBA32 wraps the same RGBA memory with a runtime-selectable
// compositing operator covering the Porter-Duff set and the separable
// blend modes.
//
// All formats satisfy raster.PixelFormat and trust their callers for
// bounds; wrap them in a raster.BaseRenderer to get clipping.
package pixfmt
