package xc320

import "testing"

func TestGammaMixDeterministic(t *testing.T) {
	a := gammaMix(1, 2, 3, 4)
	b := gammaMix(1, 2, 3, 4)
	if a != b {
		t.Fatalf("gammaMix not deterministic: %#x != %#x", a, b)
	}
}

func TestGammaMixSensitiveToEachInput(t *testing.T) {
	x, y, z, k := uint64(0x1111111111111111), uint64(0x2222222222222222), uint64(0x3333333333333333), uint64(0x4444444444444444)
	base := gammaMix(x, y, z, k)

	if got := gammaMix(x^1, y, z, k); got == base {
		t.Fatal("gammaMix ignores x")
	}
	if got := gammaMix(x, y^1, z, k); got == base {
		t.Fatal("gammaMix ignores y")
	}
	if got := gammaMix(x, y, z^1, k); got == base {
		t.Fatal("gammaMix ignores z")
	}
	if got := gammaMix(x, y, z, k^1); got == base {
		t.Fatal("gammaMix ignores k")
	}
}

func TestSigmaTransformCoversAllFourPatterns(t *testing.T) {
	x := uint64(0x0123456789ABCDEF)
	seen := map[uint64]bool{}
	for v := 0; v < 4; v++ {
		seen[sigmaTransform(x, v)] = true
	}
	if len(seen) != 4 {
		t.Fatalf("sigmaTransform produced %d distinct outputs across patterns 0..3, want 4", len(seen))
	}
}

func TestSigmaTransformDefaultsToPattern3(t *testing.T) {
	x := uint64(0x0123456789ABCDEF)
	if got, want := sigmaTransform(x, 99), sigmaTransform(x, 3); got != want {
		t.Fatalf("sigmaTransform(x, 99) = %#x, want fallback to pattern 3 = %#x", got, want)
	}
}

func TestLittleProcessesAreDistinct(t *testing.T) {
	x := uint64(0x9E3779B97F4A7C15)
	outs := []uint64{
		p2(x, 0), p3(x, 0), p4(x, 0), p5(x, 0), p6(x, 0), p7(x, 0), p8(x, 0),
	}
	seen := map[uint64]bool{}
	for _, o := range outs {
		seen[o] = true
	}
	if len(seen) != len(outs) {
		t.Fatalf("P2..P8 collided on a shared input: got %d distinct outputs, want %d", len(seen), len(outs))
	}
}

func TestP1AndP9Deterministic(t *testing.T) {
	x, salt := uint64(11), uint64(22)
	if p1(x, salt, 0) != p1(x, salt, 0) {
		t.Fatal("p1 not deterministic")
	}
	if p9(x, salt, 0) != p9(x, salt, 0) {
		t.Fatal("p9 not deterministic")
	}
	if p1(x, salt, 0) == p9(x, salt, 0) {
		t.Fatal("p1 and p9 collided on the same inputs")
	}
}

func TestP10FoldsAllNineWords(t *testing.T) {
	var words [9]uint64
	for i := range words {
		words[i] = uint64(i + 1)
	}
	base := p10(words, 0)

	for i := range words {
		perturbed := words
		perturbed[i] ^= 0xFFFFFFFFFFFFFFFF
		if p10(perturbed, 0) == base {
			t.Fatalf("p10 ignores words[%d]", i)
		}
	}
}
