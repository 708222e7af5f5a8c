package raster

// SpanGenerator produces per-pixel colors for RenderScanlinesAA.
// Gradient, image and pattern sources implement it outside this
// module; the driver only needs the two calls.
//
// Prepare runs once per rendering pass, before the first span.
// Generate fills colors (length entries) for the run starting at pixel
// (x, y).
type SpanGenerator interface {
	Prepare()
	Generate(colors []RGBA8, x, y, length int)
}

// SpanAllocator hands out a reusable color buffer for span rendering,
// so generating a frame allocates at most a handful of times.
type SpanAllocator struct {
	colors []RGBA8
}

// NewSpanAllocator returns an empty allocator. The zero value is also
// ready to use.
func NewSpanAllocator() *SpanAllocator {
	return &SpanAllocator{}
}

// Allocate returns a color slice with the given length. The backing
// array grows in multiples of 256 entries and is reused by later
// calls, so the slice is only valid until the next Allocate.
func (a *SpanAllocator) Allocate(length int) []RGBA8 {
	if length > cap(a.colors) {
		n := (length + 255) &^ 255
		a.colors = make([]RGBA8, n)
	}
	return a.colors[:length]
}
