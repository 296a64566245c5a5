package xc320

// Salt generator (C4). A local 32-word array, seeded from saltSeed and
// XORed with the live hash state on the first five words, runs seven
// rounds of fixed mixing before five salt words are extracted.
//
// saltSeed mixes SHA-2's initial hash values (words 0..7), hex digits of
// π as used historically for Blowfish's P-array (words 8..15, the
// textbook "nothing up my sleeve" source), and 16 further fixed constants
// (words 16..31).
var saltSeed = [32]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,

	0x243f6a8885a308d3, 0x13198a2e03707344, 0xa4093822299f31d0, 0x082efa98ec4e6c89,
	0x452821e638d01377, 0xbe5466cf34e90c6c, 0xc0ac29b7c97c50dd, 0x3f84d5b5b5470917,

	0x9e3779b97f4a7c15, 0xbf58476d1ce4e5b9, 0x94d049bb133111eb, 0xff51afd7ed558ccd,
	0xc4ceb9fe1a85ec53, 0x2545f4914f6cdd1d, 0x27d4eb2f165667c5, 0x85ebca6b3f7ba5c5,
	0xc2b2ae3d27d4eb4f, 0x165667b19e3779f9, 0xd6e8feb86659fd93, 0x1122334455667788,
	0x8899aabbccddeeff, 0x0f1e2d3c4b5a6978, 0x7a6b5c4d3e2f1001, 0x9988776655443322,
}

const saltCounterStep = 0x7C5F8E4D3B2A6917

// saltF is the final word-mixing function applied to each of the five
// extracted salt words.
func saltF(v uint64) uint64 {
	v ^= v >> 31
	v *= 0x3A8F7E6D5C4B2918
	v ^= v >> 29
	v *= 0x276D9C5F8E3B41A2
	return v
}

// deriveSalt runs the C4 salt generator against the current hash state.
func deriveSalt(h [5]uint64) [5]uint64 {
	s := saltSeed
	for i := 0; i < 5; i++ {
		s[i] ^= h[i]
	}

	counter := uint64(0)
	for round := 0; round < 7; round++ {
		for j := 0; j < 32; j++ {
			rot1 := uint((j*7 + round*3) % 64)
			rot2 := uint((j*5 + round*2) % 64)
			// The (j+3)&7 index deliberately restricts to the first eight
			// of the 32 seed words, not all 32, preserved per spec.md §4.4/§9.
			s[j] ^= rotl(s[j], rot1) ^ rotr(s[(j+3)&7], rot2)
			s[j] += counter
		}
		counter += saltCounterStep
	}

	var salt [5]uint64
	for i := 0; i < 5; i++ {
		salt[i] = saltF(s[i] ^ s[(i+3)&7])
	}
	return salt
}
