package xc320

// Streaming facade (C8). Context owns the 5-word hash state, a 128-byte
// carry buffer, a bit-length counter, and, for the duration of Final,
// the ten LITTLE-box lanes and five BIG-box sub-states the finalizer
// needs. Total size is roughly 1.2 KiB, matching spec.md §7's estimate,
// and the struct is a flat value type: no entity here holds a reference
// to another.
type Context struct {
	h    [5]uint64
	buf  [BlockSize]byte
	n    int    // bytes currently buffered, always < BlockSize except momentarily
	bits uint64 // total bits ever passed to Update

	littleBoxState [10][10]uint64
	bigBoxState    [5][5]uint64

	backend Backend
	workers int

	closed bool // set once Final or Wipe has run; further Update/Final panics
}

// BlockSize is the compressor's block size in bytes (spec.md §3).
const BlockSize = 128

// Size is the digest length in bytes (spec.md §1, §6).
const Size = 40

// Option configures a Context at construction.
type Option func(*Context)

// WithBackend selects the LITTLE-box executor implementation (spec.md §9
// "Back-end polymorphism"). Defaults to the process-wide ForceScalar
// setting, which today always resolves to the scalar backend.
func WithBackend(b Backend) Option {
	return func(c *Context) { c.backend = b }
}

// WithWorkers sets the worker-pool size used to fan the ten BIG-box lane
// computations out across goroutines (spec.md §5 "inter-lane fork-join").
// n <= 1 runs lanes sequentially, which is also the default: the fold that
// follows is always sequential regardless of this setting.
func WithWorkers(n int) Option {
	return func(c *Context) { c.workers = n }
}

// NewContext returns an initialized streaming context (the C8 init
// operation).
func NewContext(opts ...Option) *Context {
	c := &Context{backend: defaultBackend()}
	c.reset()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// initH are the five fixed initial hash words from spec.md §6, before the
// golden-ratio-style XOR and the init-mix are applied.
var initH = [5]uint64{
	0xBB67AE854A7D9E31,
	0x5BE0CD19B7F3A69C,
	0x6A09E667F2B5C8D3,
	0x3C6EF372D8B4F1A6,
	0x510E527F4D8C3A92,
}

func (c *Context) reset() {
	c.h = initH
	c.h[0] ^= 0x9E3779B97F4A7C15
	c.h[1] ^= 0xBF58476D1CE4E5B9
	c.h[2] ^= 0x94D049BB133111EB

	// Init-mix: ascending i, reading the partially-updated state, exactly
	// as spec.md §6 specifies.
	for i := 0; i < 5; i++ {
		c.h[i] ^= RC(i * 10)
		c.h[i] = rotl(c.h[i], uint(17+i*7))
		c.h[i] *= 0x9E3779B97F4A7C15
		c.h[i] ^= c.h[(i+2)%5]
	}

	c.buf = [BlockSize]byte{}
	c.n = 0
	c.bits = 0
	c.littleBoxState = [10][10]uint64{}
	c.bigBoxState = [5][5]uint64{}
	c.closed = false
}

// Reset re-initializes c in place, preserving its backend/worker
// configuration. Equivalent to Init on the same storage (spec.md §8).
func (c *Context) Reset() {
	backend, workers := c.backend, c.workers
	if backend == nil { // Final or Wipe cleared the configuration
		backend = defaultBackend()
	}
	c.reset()
	c.backend, c.workers = backend, workers
}

// Update feeds more input bytes into the running hash (spec.md §8).
// Calling Update after Final or Wipe panics: that is programmer misuse,
// and spec.md §7 calls for failing loudly rather than silently corrupting
// state.
func (c *Context) Update(p []byte) {
	if c.closed {
		panic("xc320: Update called on a finalized or wiped Context")
	}
	c.bits += uint64(len(p)) * 8

	if c.n > 0 {
		k := copy(c.buf[c.n:], p)
		c.n += k
		p = p[k:]
		if c.n == BlockSize {
			block := parseBlock(c.buf[:])
			compressBlock(&c.h, &block)
			c.n = 0
		}
	}

	for len(p) >= BlockSize {
		block := parseBlock(p[:BlockSize])
		compressBlock(&c.h, &block)
		p = p[BlockSize:]
	}

	if len(p) > 0 {
		c.n = copy(c.buf[:], p)
	}
}

// Final runs the C7 finalizer and wipes the context (spec.md §8): a
// Context is consumed exactly once. Calling Final twice panics.
func (c *Context) Final() [Size]byte {
	if c.closed {
		panic("xc320: Final called twice on the same Context")
	}
	digest := finalize(c)
	c.Wipe()
	return digest
}

// Wipe overwrites all context storage with zeros (spec.md §8).
func (c *Context) Wipe() {
	*c = Context{closed: true}
}
