package xc320

import "testing"

func TestParseBlockLittleEndian(t *testing.T) {
	block := make([]byte, BlockSize)
	for i := range block {
		block[i] = byte(i)
	}

	words := parseBlock(block)
	if len(words) != 16 {
		t.Fatalf("parseBlock returned %d words, want 16", len(words))
	}

	want0 := uint64(0x0706050403020100)
	if words[0] != want0 {
		t.Fatalf("words[0] = %#x, want %#x", words[0], want0)
	}

	want15 := uint64(0x7F7E7D7C7B7A7978)
	if words[15] != want15 {
		t.Fatalf("words[15] = %#x, want %#x", words[15], want15)
	}
}

func TestParseBlockAcceptsLargerSlice(t *testing.T) {
	block := make([]byte, BlockSize+64)
	for i := range block {
		block[i] = byte(i)
	}

	words := parseBlock(block)
	trimmed := parseBlock(block[:BlockSize])
	if words != trimmed {
		t.Fatal("parseBlock read past the first 128 bytes")
	}
}

func TestCompressBlockDeterministic(t *testing.T) {
	h1 := initH
	h2 := initH
	block := parseBlock(make([]byte, BlockSize))

	compressBlock(&h1, &block)
	compressBlock(&h2, &block)

	if h1 != h2 {
		t.Fatalf("compressBlock not deterministic: %v != %v", h1, h2)
	}
}

func TestCompressBlockSensitiveToEveryInputWord(t *testing.T) {
	base := initH
	zero := parseBlock(make([]byte, BlockSize))
	baseOut := base
	compressBlock(&baseOut, &zero)

	for w := 0; w < 15; w++ { // word 15 is, by contract, never read (see compress.go)
		h := initH
		block := zero
		block[w] ^= 1
		compressBlock(&h, &block)
		if h == baseOut {
			t.Fatalf("compressBlock output unaffected by flipping block word %d", w)
		}
	}
}

func TestCompressBlockIgnoresWord15(t *testing.T) {
	h1 := initH
	h2 := initH
	b1 := parseBlock(make([]byte, BlockSize))
	b2 := b1
	b2[15] ^= 0xFFFFFFFFFFFFFFFF

	compressBlock(&h1, &b1)
	compressBlock(&h2, &b2)

	if h1 != h2 {
		t.Fatal("compressBlock's output depends on block word 15, contradicting its documented contract")
	}
}
