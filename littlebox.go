package xc320

// LITTLE-box executor (C5), the work-horse of the finalizer. It takes a
// batch of up to four 10-word lanes and an ARX mixing sweep touches only
// the six "load slots" of each lane, {0,1,4,5,8,9}, leaving {2,3,6,7}
// untouched, exactly as spec.md §4.5 describes.
//
// vec4 stands in for the reference's 4-lane SIMD register. Go has no
// portable 4-lane vector type, so every vector op below is a plain
// 4-element loop/literal, per spec.md §9: "any implementation may use
// native 4-lane, 2×2-lane pairs, or scalar; only the output matters".
type vec4 [4]uint64

func vecAdd(a, b vec4) vec4 {
	return vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func vecXor(a, b vec4) vec4 {
	return vec4{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

func vecRotl(a vec4, n uint) vec4 {
	return vec4{rotl(a[0], n), rotl(a[1], n), rotl(a[2], n), rotl(a[3], n)}
}

func vecRotr(a vec4, n uint) vec4 {
	return vec4{rotr(a[0], n), rotr(a[1], n), rotr(a[2], n), rotr(a[3], n)}
}

func vecMulScalar(a vec4, k uint64) vec4 {
	return vec4{a[0] * k, a[1] * k, a[2] * k, a[3] * k}
}

// permute reorders lanes per spec.md §4.5's two-bits-per-destination-lane
// convention: pattern byte b maps destination d to source (b>>(2*d))&3.
func permute(v vec4, pattern byte) vec4 {
	var out vec4
	for d := 0; d < 4; d++ {
		out[d] = v[(pattern>>(2*uint(d)))&3]
	}
	return out
}

// mixLanes is the cross-lane permutation-and-XOR diffusion step shared by
// ARX and HXOR.
func mixLanes(v vec4) vec4 {
	p0 := permute(v, 0x4E)
	p1 := permute(p0, 0xB1)
	x := vecXor(p0, p1)
	return vecXor(x, vecRotl(x, 17))
}

const littleBoxMulConst = 0x800000000000808A

// arx runs the per-vector ARX sweep defined in spec.md §4.5.
func arx(v, saltV, rc vec4, r1, r2 uint) vec4 {
	v = vecAdd(v, saltV)
	v = vecXor(v, rc)
	v = vecAdd(v, vecRotl(v, r1))
	v = vecXor(v, vecRotr(v, r2))
	v = mixLanes(v)
	v = vecMulScalar(v, littleBoxMulConst)
	return v
}

// hxor is the horizontal reduction taking a 4-lane vector to one word.
func hxor(v vec4) uint64 {
	v = mixLanes(v)
	v = vecXor(v, permute(v, 0x4E))
	v = vecXor(v, permute(v, 0xB1))
	r := v[0] ^ v[1] ^ v[2] ^ v[3]
	r ^= r >> 31
	r *= 0x88
	r ^= r >> 29
	r *= 0x8000000000008089
	r ^= r >> 32
	r = rotr(r, 17) ^ rotl(r, 43)
	r *= 0x8000000080008081
	r ^= r >> 27
	return r
}

// runLittleBoxes processes a batch of 1..4 lanes in place under a shared
// salt word and round base. Batches shorter than four are padded with
// zero lanes internally (their outputs discarded) and never receive the
// cross-lane tail mix, which spec.md §4.5 reserves for full 4-lane
// batches.
func runLittleBoxes(lanes []*[10]uint64, salt uint64, r0 int) {
	n := len(lanes)
	if n < 1 || n > 4 {
		panic("xc320: runLittleBoxes: batch size must be 1..4")
	}

	var zero [10]uint64
	var real [4]*[10]uint64
	for i := 0; i < 4; i++ {
		if i < n {
			real[i] = lanes[i]
		} else {
			real[i] = &zero
		}
	}

	load := func(idx int) vec4 {
		return vec4{real[0][idx], real[1][idx], real[2][idx], real[3][idx]}
	}

	V0, V0l := load(1), load(0)
	V1, V1l := load(5), load(4)
	V2, V2l := load(9), load(8)

	saltV := vec4{salt, salt, salt, salt}
	rc0 := vec4{RC(r0 + 0), RC(r0 + 1), RC(r0 + 2), RC(r0 + 3)}
	rc1 := vec4{RC(r0 + 4), RC(r0 + 5), RC(r0 + 6), RC(r0 + 7)}
	rc2 := vec4{RC(r0 + 8), RC(r0 + 9), RC(r0 + 10), RC(r0 + 11)}

	V0 = arx(V0, saltV, rc0, 7, 13)
	V0l = arx(V0l, saltV, rc0, 7, 13)
	V1 = arx(V1, saltV, rc1, 11, 17)
	V1l = arx(V1l, saltV, rc1, 11, 17)
	V2 = arx(V2, saltV, rc2, 19, 23)
	V2l = arx(V2l, saltV, rc2, 19, 23)

	V0, V0l = mixLanes(V0), mixLanes(V0l)
	V1, V1l = mixLanes(V1), mixLanes(V1l)
	V2, V2l = mixLanes(V2), mixLanes(V2l)

	hxorOf := func(a, b, c vec4, pattern byte) uint64 {
		return hxor(vecXor(vecXor(permute(a, pattern), permute(b, pattern)), permute(c, pattern)))
	}

	l9_0 := hxorOf(V0, V1, V2, 0x00)
	l9_1 := hxorOf(V0, V1, V2, 0x55)
	l9_2 := hxorOf(V0l, V1l, V2l, 0xAA)
	l9_3 := hxorOf(V0l, V1l, V2l, 0xFF)

	if n > 0 {
		real[0][0], real[0][1] = V0[0], V0[1]
		real[0][4], real[0][5] = V1[0], V1[1]
		real[0][8] = V2[0]
		real[0][9] = l9_0
	}
	if n > 1 {
		real[1][0], real[1][1] = V0[2], V0[3]
		real[1][4], real[1][5] = V1[2], V1[3]
		real[1][8] = V2[2]
		real[1][9] = l9_1
	}
	if n > 2 {
		real[2][0], real[2][1] = V0l[0], V0l[1]
		real[2][4], real[2][5] = V1l[0], V1l[1]
		real[2][8] = V2l[0]
		real[2][9] = l9_2
	}
	if n > 3 {
		real[3][0], real[3][1] = V0l[2], V0l[3]
		real[3][4], real[3][5] = V1l[2], V1l[3]
		real[3][8] = V2l[2]
		real[3][9] = l9_3
	}

	if n == 4 {
		m := real[0][9] ^ real[1][9] ^ real[2][9] ^ real[3][9]
		m = rotr(m, 17) ^ rotl(m, 43)
		m *= 0x9E3779B97F4A7C15
		real[0][9] ^= m
		real[1][9] ^= rotr(m, 11)
		real[2][9] ^= rotl(m, 23)
		real[3][9] ^= m ^ (m >> 31)
	}
}
