package wide

// U16x16 represents 16 uint16 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
// This type carries color channels and coverage values during batch
// alpha blending.
type U16x16 [16]uint16

// SplatU16 creates U16x16 with all elements set to n.
// This is useful for broadcasting a solid color channel or a uniform
// coverage value to all lanes.
func SplatU16(n uint16) U16x16 {
	var result U16x16
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs element-wise addition.
// Returns a new U16x16 with v[i] + other[i] for each element.
func (v U16x16) Add(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
// Returns a new U16x16 with v[i] - other[i] for each element.
// Callers must guarantee v[i] >= other[i].
func (v U16x16) Sub(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Inv computes 255 - v for each element (inverse alpha).
// Lanes must hold 8-bit values.
func (v U16x16) Inv() U16x16 {
	var result U16x16
	for i := range v {
		result[i] = 255 - v[i]
	}
	return result
}

// MulDiv255 performs (v * other) / 255 for each element, rounded to
// nearest. The division uses the shift identity
//
//	(x + 128 + ((x + 128) >> 8)) >> 8 == (x + 127) / 255
//
// which is exact for x up to 65279, so batch results match the scalar
// blend helpers bit for bit.
func (v U16x16) MulDiv255(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		t := uint32(v[i])*uint32(other[i]) + 128
		result[i] = uint16((t + (t >> 8)) >> 8) // #nosec G115 -- result bounded by 255
	}
	return result
}

// Lerp interpolates each element from v toward q by alpha a, rounded to
// nearest: (v*(255-a) + q*a + 127) / 255. Computed with a single
// division so the result is bit-identical to the scalar Lerp255.
// Lanes must hold 8-bit values.
func (v U16x16) Lerp(q, a U16x16) U16x16 {
	var result U16x16
	for i := range v {
		t := uint32(v[i])*uint32(255-a[i]) + uint32(q[i])*uint32(a[i]) + 128
		result[i] = uint16((t + (t >> 8)) >> 8) // #nosec G115 -- result bounded by 255
	}
	return result
}

// Clamp clamps each element to [0, maxVal].
// Any value greater than maxVal is set to maxVal.
func (v U16x16) Clamp(maxVal uint16) U16x16 {
	var result U16x16
	for i := range v {
		if v[i] > maxVal {
			result[i] = maxVal
		} else {
			result[i] = v[i]
		}
	}
	return result
}
