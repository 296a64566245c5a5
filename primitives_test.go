package xc320

import "testing"

func TestRotlRotrAreInverses(t *testing.T) {
	xs := []uint64{0, 1, 0xFFFFFFFFFFFFFFFF, 0x0123456789ABCDEF, 0x8000000000000001}

	for _, x := range xs {
		for n := uint(0); n < 64; n++ {
			if got := rotr(rotl(x, n), n); got != x {
				t.Fatalf("rotr(rotl(%#x, %d), %d) = %#x, want %#x", x, n, n, got, x)
			}
		}
	}
}

func TestRotlZeroIsIdentity(t *testing.T) {
	x := uint64(0xDEADBEEFCAFEBABE)
	if got := rotl(x, 0); got != x {
		t.Fatalf("rotl(x, 0) = %#x, want %#x", got, x)
	}
	if got := rotr(x, 0); got != x {
		t.Fatalf("rotr(x, 0) = %#x, want %#x", got, x)
	}
}

func TestLoadStoreLE64RoundTrip(t *testing.T) {
	vals := []uint64{0, 1, 0xFFFFFFFFFFFFFFFF, 0x0102030405060708}
	buf := make([]byte, 8)

	for _, v := range vals {
		storeLE64(buf, v)
		got := loadLE64(buf)
		if got != v {
			t.Fatalf("loadLE64(storeLE64(%#x)) = %#x", v, got)
		}
	}

	// Byte 0 must be the low-order byte.
	storeLE64(buf, 0x0102030405060708)
	if buf[0] != 0x08 || buf[7] != 0x01 {
		t.Fatalf("storeLE64 produced %x, want little-endian layout", buf)
	}
}

func TestRCWrapsModulo128(t *testing.T) {
	for i := 0; i < 128; i++ {
		if RC(i) != RC(i+128) {
			t.Fatalf("RC(%d) != RC(%d): round-constant table does not wrap at 128", i, i+128)
		}
	}
	if RC(-1) != RC(127) {
		t.Fatalf("RC(-1) = %#x, want RC(127) = %#x", RC(-1), RC(127))
	}
}
