package wide

// RGBABatch holds 16 RGBA pixels for batch processing.
// Uses Structure-of-Arrays (SoA) layout for SIMD-friendly access.
//
// Traditional Array-of-Structures (AoS) layout:
//
//	[R0, G0, B0, A0, R1, G1, B1, A1, ...]
//
// Structure-of-Arrays (SoA) layout:
//
//	R: [R0, R1, R2, ..., R15]
//	G: [G0, G1, G2, ..., G15]
//	B: [B0, B1, B2, ..., B15]
//	A: [A0, A1, A2, ..., A15]
//
// SoA layout enables SIMD operations on entire color channels at once.
type RGBABatch struct {
	R, G, B, A U16x16
}

// LoadRGBA loads 16 RGBA pixels from a byte slice into the channels.
// p must have at least 64 bytes (16 pixels * 4 bytes), stored as
// [R, G, B, A] per pixel.
func (b *RGBABatch) LoadRGBA(p []byte) {
	for i := 0; i < 16; i++ {
		offset := i * 4
		b.R[i] = uint16(p[offset+0])
		b.G[i] = uint16(p[offset+1])
		b.B[i] = uint16(p[offset+2])
		b.A[i] = uint16(p[offset+3])
	}
}

// StoreRGBA stores 16 RGBA pixels from the channels to a byte slice.
// p must have at least 64 bytes (16 pixels * 4 bytes).
func (b *RGBABatch) StoreRGBA(p []byte) {
	for i := 0; i < 16; i++ {
		offset := i * 4
		// Intentional truncation - channel values are bounded by 255
		p[offset+0] = uint8(b.R[i]) // #nosec G115
		p[offset+1] = uint8(b.G[i]) // #nosec G115
		p[offset+2] = uint8(b.B[i]) // #nosec G115
		p[offset+3] = uint8(b.A[i]) // #nosec G115
	}
}

// LoadCovers loads 16 coverage bytes into a U16x16.
// covers must have at least 16 elements.
func LoadCovers(covers []byte) U16x16 {
	var result U16x16
	for i := range result {
		result[i] = uint16(covers[i])
	}
	return result
}
