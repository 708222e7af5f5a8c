package pixfmt

import "errors"

// Common errors for buffer construction.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixfmt: invalid dimensions")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("pixfmt: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("pixfmt: data buffer too small")

	// ErrInvalidFormat is returned when a buffer's bytes-per-pixel does
	// not match the format wrapping it.
	ErrInvalidFormat = errors.New("pixfmt: buffer pixel size does not match format")
)

// Buffer is the raw pixel memory behind a pixel format: a contiguous
// byte slice addressed by row stride. It knows bytes per pixel but not
// channel meaning; the pixel formats layer that on top.
//
// Buffer is safe for concurrent read access. Writes require external
// synchronization.
type Buffer struct {
	data   []byte
	width  int
	height int
	stride int
	bpp    int
}

// NewBuffer allocates a buffer with tightly packed rows.
// Returns ErrInvalidDimensions if width or height is non-positive.
func NewBuffer(width, height, bpp int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	stride := width * bpp
	return &Buffer{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		bpp:    bpp,
	}, nil
}

// NewBufferWithStride allocates a buffer with a custom row stride for
// alignment. Stride must be at least width*bpp.
func NewBufferWithStride(width, height, bpp, stride int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < width*bpp {
		return nil, ErrInvalidStride
	}

	return &Buffer{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		bpp:    bpp,
	}, nil
}

// Attach wraps existing pixel memory without copying. The caller must
// keep data valid for the lifetime of the buffer. Stride must be at
// least width*bpp and data must cover stride*height bytes.
func Attach(data []byte, width, height, bpp, stride int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < width*bpp {
		return nil, ErrInvalidStride
	}
	required := stride * height
	if len(data) < required {
		return nil, ErrDataTooSmall
	}

	return &Buffer{
		data:   data[:required],
		width:  width,
		height: height,
		stride: stride,
		bpp:    bpp,
	}, nil
}

// Clone creates a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([]byte, len(b.data))
	copy(data, b.data)

	return &Buffer{
		data:   data,
		width:  b.width,
		height: b.height,
		stride: b.stride,
		bpp:    b.bpp,
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Stride returns the number of bytes per row, including padding.
func (b *Buffer) Stride() int { return b.stride }

// BytesPerPixel returns the pixel size in bytes.
func (b *Buffer) BytesPerPixel() int { return b.bpp }

// Data returns the raw pixel data slice. Rows are stride bytes apart.
func (b *Buffer) Data() []byte { return b.data }

// Row returns the pixel bytes of row y, without stride padding.
// Returns nil if y is out of bounds.
func (b *Buffer) Row(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.width*b.bpp]
}

// PixOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *Buffer) PixOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.bpp
}

// Clear sets all bytes to zero.
func (b *Buffer) Clear() {
	clear(b.data)
}
