package xc320

// Block compressor (C3): folds one 128-byte block into the 5-word hash
// state. b must hold the 16 little-endian words parsed from the block.
// Only b[0..14] are read here (via bw=b[i], c=b[i+5], d=b[i+10] for
// i=0..4); b[15] is never read by this function. Open question (spec.md
// §4.3, §9): whether that lone unused word is intentional is left
// unresolved upstream and preserved as-is here rather than "fixed".
const (
	compressK0 = 0x6A09E667BB67AE85
	compressK1 = 0x3C6EF372A54FF53A
	compressK2 = 0x510E527F9B05688C
	compressK3 = 0x1F83D9AB5BE0CD19
)

// compressBlock updates h in place from one parsed 128-byte block.
// Iterations run ascending i = 0..4 and each reads h[(i+1)%5] / h[(i+4)%5]
// from the *current*, partially-updated state; that ordering is load
// bearing, not incidental (spec.md §4.3).
func compressBlock(h *[5]uint64, b *[16]uint64) {
	for i := 0; i < 5; i++ {
		a := h[i]
		bw := b[i]
		c := b[i+5]
		d := b[i+10]

		a = rotl(a+(bw^compressK0), 13)
		a = rotl(a^(c+compressK1), 29)
		a = rotl(a+(d^compressK2), 37)
		a ^= h[(i+1)%5]
		a = rotl(a+h[(i+4)%5], 17)
		a ^= a >> 32
		a ^= a << 21
		a *= compressK3
		a ^= a >> 29
		a ^= a << 17

		h[i] = a
	}
}

// parseBlock reads 16 little-endian 64-bit words from a 128-byte slice.
// p must have at least 128 bytes; callers consume straight from the input
// slice when a full block is available, without an intermediate copy.
func parseBlock(p []byte) [16]uint64 {
	var b [16]uint64
	for i := range b {
		b[i] = loadLE64(p[i*8 : i*8+8])
	}
	return b
}
