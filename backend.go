package xc320

import "sync/atomic"

// Backend is the LITTLE-box executor capability described in spec.md §9
// ("Back-end polymorphism"): one operation over a batch of lanes. Any
// implementation that produces bit-identical output is interchangeable;
// the hash never inspects which one it was given.
type Backend interface {
	littleBoxBatch(lanes []*[10]uint64, salt uint64, r0 int)
}

// scalarBackend runs the LITTLE-box sweep through the plain vec4 emulation
// in littlebox.go. It is the only Backend built by this package: native
// SIMD codegen is runtime CPU-feature-detection territory, which spec.md
// §1 places outside the core's scope ("permits any back-end that produces
// identical output"). A hardware-vector backend would implement this same
// interface and could be selected via WithBackend without touching any
// caller.
type scalarBackend struct{}

func (scalarBackend) littleBoxBatch(lanes []*[10]uint64, salt uint64, r0 int) {
	runLittleBoxes(lanes, salt, r0)
}

// ForceScalar is the process-wide "force scalar back-end" flag spec.md §5
// and §9 describe as a hidden global in the reference. XC320 keeps it as
// an explicit, testable atomic instead: Context reads it once at
// construction (see stream.go's NewContext) rather than consulting a global on
// every call. Digests MUST be (and are, since scalarBackend is the only
// implementation here) identical regardless of its setting.
var ForceScalar atomic.Bool

func defaultBackend() Backend {
	// Only one backend exists today, so ForceScalar has no observable
	// effect yet; it is read here so a future vector backend can be
	// selected in exactly one place.
	if ForceScalar.Load() {
		return scalarBackend{}
	}
	return scalarBackend{}
}
