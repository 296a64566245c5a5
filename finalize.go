package xc320

// Finalizer (C7). finalize implements spec.md §4.7 steps 1-8 exactly,
// ending at the raw streaming digest. finalizeSingleShot layers the
// single-shot API's three extra post-serialization mixing passes on top,
// preserving the streaming/single-shot divergence spec.md §4.7 and §9
// both call out as intentional and not to be "fixed".
//
// finalize mutates ctx (pads the buffer, runs the last compression, runs
// the five BIG-box stages); callers that must not disturb their own
// Context (the hash.Hash Digest wrapper in xc320.go) pass a copy.
func finalize(ctx *Context) [Size]byte {
	// Step 1: single-bit pad, zero-fill. No length suffix is written:
	// classical Merkle-Damgård length padding is omitted, and that
	// omission is preserved deliberately (spec.md §4.7, §9).
	ctx.buf[ctx.n] = 0x80
	for i := ctx.n + 1; i < BlockSize; i++ {
		ctx.buf[i] = 0
	}

	// Step 2: one last block compression.
	block := parseBlock(ctx.buf[:])
	compressBlock(&ctx.h, &block)

	// Step 3: five BIG-box stages.
	for i := 0; i < 5; i++ {
		ctx.bigBoxState[i] = runBigBoxStage(ctx, i)
	}

	outputMixA(&ctx.h)
	outputMixB(&ctx.h, &ctx.bigBoxState)
	outputMixC(&ctx.h, &ctx.bigBoxState)
	outputMixD(&ctx.h)

	var out [Size]byte
	for i := 0; i < 5; i++ {
		storeLE64(out[i*8:i*8+8], ctx.h[i])
	}
	return out
}

// outputMixA is spec.md §4.7 step 4: per-word mixing.
func outputMixA(h *[5]uint64) {
	rot := [5]uint{31, 27, 33, 23, 29}
	for i := 0; i < 5; i++ {
		x := h[i]
		x ^= rotr(x, rot[i])
		x *= 0x510E9BB7927522F5
		x += 0x243F6A8885A308D3
		x ^= rotr(x, rot[(i+1)%5])
		x *= 0xA0761D647ABD642F
		x ^= x >> 23
		x ^= x >> 38
		h[i] = x
	}
}

// outputMixB is spec.md §4.7 step 5: cross-BIG-box folding.
func outputMixB(h *[5]uint64, big *[5][5]uint64) {
	for i := 0; i < 5; i++ {
		acc := h[i]
		for bb := 0; bb < 5; bb++ {
			acc ^= big[bb][i]
			acc = rotr(acc, 19) ^ rotl(acc, 37)
			acc += big[bb][(i+2)%5]
			acc *= 0x9E3779B97F4A7C15
		}
		acc ^= acc >> 29
		acc *= 0xBF58476D1CE4E5B9
		acc ^= acc >> 27
		acc *= 0x94D049BB133111EB
		acc ^= acc >> 31
		h[i] = acc
	}
}

// extraMix is the small avalanche step shared by output-mix C and the
// single-shot post-mixing passes.
func extraMix(x uint64) uint64 {
	x ^= x >> 27
	x *= 0x9E3779B97F4A7C15
	x ^= x >> 31
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 29
	x += rotl(x, 41)
	return x
}

// outputMixC is spec.md §4.7 step 6: three rounds.
func outputMixC(h *[5]uint64, big *[5][5]uint64) {
	for r := 0; r < 3; r++ {
		for i := 0; i < 5; i++ {
			h[i] = extraMix(h[i])
			h[i] ^= big[r%5][i]
			h[i] = rotl(h[i], uint(17+r*5))
		}
	}
}

// outputMixD is spec.md §4.7 step 7: five rounds.
func outputMixD(h *[5]uint64) {
	for round := 0; round < 5; round++ {
		var m uint64
		for i := 0; i < 5; i++ {
			m ^= h[i]
			m = rotl(m, 17) ^ h[(i+2)%5]
		}
		for i := 0; i < 5; i++ {
			h[i] ^= rotl(m, uint(i*13))
			h[i] *= 0x9E3779B97F4A7C15
			h[i] ^= h[(i+1)%5] >> uint(i*7+3)
			h[i] = rotr(h[i], uint(23+i*5))
		}
	}
}

// finalizeSingleShot adds the single-shot API's extra post-serialization
// mixing, re-reading the 40 streaming-digest bytes as five little-endian
// words (spec.md §4.7). The exact arithmetic of these three passes is not
// pinned by spec.md beyond "three additional post-serialization mixing
// passes" over the re-read words; this implementation's choice (extraMix
// plus a round-constant XOR and a round-varying rotation) is this
// package's own fixed, internally consistent answer rather than a literal
// reproduction of an unavailable reference table.
func finalizeSingleShot(ctx *Context) [Size]byte {
	digest := finalize(ctx)

	var h [5]uint64
	for i := 0; i < 5; i++ {
		h[i] = loadLE64(digest[i*8 : i*8+8])
	}

	for pass := 0; pass < 3; pass++ {
		for i := 0; i < 5; i++ {
			h[i] = extraMix(h[i])
			h[i] ^= RC((pass*5 + i) & 127)
			h[i] = rotl(h[i], uint(11+pass*7+i*3)%64)
		}
	}

	var out [Size]byte
	for i := 0; i < 5; i++ {
		storeLE64(out[i*8:i*8+8], h[i])
	}
	return out
}
