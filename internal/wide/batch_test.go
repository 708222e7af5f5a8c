package wide

import "testing"

func TestRGBABatch_LoadStoreRoundTrip(t *testing.T) {
	src := make([]byte, 64)
	for i := range src {
		src[i] = byte(i * 3)
	}

	var batch RGBABatch
	batch.LoadRGBA(src)

	got := make([]byte, 64)
	batch.StoreRGBA(got)

	for i := range src {
		if got[i] != src[i] {
			t.Fatalf("byte %d = %d, want %d", i, got[i], src[i])
		}
	}
}

func TestRGBABatch_ChannelSeparation(t *testing.T) {
	src := make([]byte, 64)
	for i := 0; i < 16; i++ {
		src[i*4+0] = 10
		src[i*4+1] = 20
		src[i*4+2] = 30
		src[i*4+3] = 40
	}

	var batch RGBABatch
	batch.LoadRGBA(src)

	if batch.R != SplatU16(10) || batch.G != SplatU16(20) ||
		batch.B != SplatU16(30) || batch.A != SplatU16(40) {
		t.Error("channels not deinterleaved into SoA lanes")
	}
}

func TestLoadCovers(t *testing.T) {
	covers := make([]byte, 16)
	for i := range covers {
		covers[i] = byte(i * 16)
	}
	v := LoadCovers(covers)
	for i := range v {
		if v[i] != uint16(covers[i]) {
			t.Fatalf("lane %d = %d, want %d", i, v[i], covers[i])
		}
	}
}
