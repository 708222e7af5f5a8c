// Package wide provides SIMD-friendly wide types for batch pixel blending.
//
// The U16x16 type holds 16 uint16 lanes in a fixed-size array so the Go
// compiler can auto-vectorize the simple per-lane loops on supported
// architectures (SSE, AVX, NEON). RGBABatch layers a Structure-of-Arrays
// view of 16 RGBA pixels on top of it.
//
// Every lane operation rounds exactly the same way as the scalar helpers
// in internal/blend. Batch and scalar code paths therefore produce
// identical bytes, which keeps rendering deterministic regardless of how
// a span is chunked.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - Exact rounding everywhere; never trade determinism for speed
package wide
