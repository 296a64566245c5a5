// Package xc320 implements XC320, a 320-bit ARX/SPN cryptographic hash
// built from a hierarchical LITTLE-box/BIG-box mixing core. It maps an
// arbitrary-length byte stream to a fixed 40-byte digest, bit-exactly
// regardless of host endianness, vector width, or back-end selection.
//
// The package exposes both the incremental streaming contract
// (NewContext/Update/Final, or the hash.Hash-compatible Digest returned by
// New) and a single-shot entry point (Sum320). Streaming and single-shot
// digests of the same input deliberately differ (see Sum320's doc
// comment), so callers must match whichever one their counterpart used.
package xc320

import "hash"

// Digest adapts a Context to the standard library's hash.Hash interface.
// Sum never mutates the underlying Context, matching the convention every
// stdlib-shaped hash in the pack follows (compare tdx-whirlpool's Sum,
// which works from a value copy of the receiver for the same reason).
type Digest struct {
	ctx *Context
}

// New returns a hash.Hash computing the XC320 streaming digest.
func New(opts ...Option) hash.Hash {
	return &Digest{ctx: NewContext(opts...)}
}

// Write implements io.Writer / hash.Hash.
func (d *Digest) Write(p []byte) (int, error) {
	d.ctx.Update(p)
	return len(p), nil
}

// Sum appends the streaming digest of everything written so far to b,
// without disturbing d's running state.
func (d *Digest) Sum(b []byte) []byte {
	cp := *d.ctx
	digest := finalize(&cp)
	return append(b, digest[:]...)
}

// Reset restores d to its initial state.
func (d *Digest) Reset() { d.ctx.Reset() }

// Size returns the digest length in bytes.
func (d *Digest) Size() int { return Size }

// BlockSize returns the compressor's block size in bytes.
func (d *Digest) BlockSize() int { return BlockSize }

// StreamSum computes the streaming digest of data in one call: equivalent
// to NewContext -> Update(data) -> Final.
func StreamSum(data []byte, opts ...Option) [Size]byte {
	ctx := NewContext(opts...)
	ctx.Update(data)
	return ctx.Final()
}

// Sum320 computes the single-shot digest of data: the streaming pipeline
// (spec.md §4.7 steps 1-8) followed by three extra post-serialization
// mixing passes over the re-read 40-byte output (spec.md §4.7's final
// paragraph, §9). Sum320(data) is therefore NOT, in general, equal to
// StreamSum(data); only the post-mix relationship holds between them.
// Callers choosing between this and the streaming API must match whatever
// their interoperating implementation uses.
func Sum320(data []byte, opts ...Option) [Size]byte {
	ctx := NewContext(opts...)
	ctx.Update(data)
	digest := finalizeSingleShot(ctx)
	ctx.Wipe()
	return digest
}

// Equals reports whether two digests are byte-identical. It is a plain
// loop, not constant-time: spec.md §1 explicitly disclaims a
// constant-time guarantee for this design.
func Equals(a, b [Size]byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
