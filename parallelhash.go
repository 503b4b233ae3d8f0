package sha3x

import (
	"fmt"

	"github.com/codahale/sha3x/internal/keccak"
	"github.com/codahale/sha3x/internal/sp800185"
)

// A ParallelHash is an instance of ParallelHash or ParallelHashXOF. The input is split into blocks of B bytes, each
// block is hashed with SHAKE, and the block digests are absorbed by a cSHAKE root.
//
// Blocks are hashed one at a time; the construction's output does not depend on how its blocks are scheduled.
type ParallelHash struct {
	root     *Sponge
	leaf     *Sponge // nil until the first byte is written
	leafRate int
	cvLen    int
	blockLen int
	blockPos int
	blocks   uint64
}

// NewParallelHash128 returns a new ParallelHash128 instance. Digest produces 32 bytes unless WithDkLen is given, and the
// block size is 8 bytes unless WithBlockLen is given.
func NewParallelHash128(opts ...Option) (*ParallelHash, error) {
	return newParallelHash(rate128, 32, false, opts)
}

// NewParallelHash256 returns a new ParallelHash256 instance. Digest produces 64 bytes unless WithDkLen is given, and
// the block size is 8 bytes unless WithBlockLen is given.
func NewParallelHash256(opts ...Option) (*ParallelHash, error) {
	return newParallelHash(rate256, 64, false, opts)
}

// NewParallelHashXOF128 returns a new ParallelHashXOF128 instance.
func NewParallelHashXOF128(opts ...Option) (*ParallelHash, error) {
	return newParallelHash(rate128, 32, true, opts)
}

// NewParallelHashXOF256 returns a new ParallelHashXOF256 instance.
func NewParallelHashXOF256(opts ...Option) (*ParallelHash, error) {
	return newParallelHash(rate256, 64, true, opts)
}

// SumParallelHash128 returns the ParallelHash128 digest of msg.
func SumParallelHash128(msg []byte, opts ...Option) ([]byte, error) {
	h, err := NewParallelHash128(opts...)
	if err != nil {
		return nil, err
	}
	h.absorb(msg)
	return h.Digest()
}

// SumParallelHash256 returns the ParallelHash256 digest of msg.
func SumParallelHash256(msg []byte, opts ...Option) ([]byte, error) {
	h, err := NewParallelHash256(opts...)
	if err != nil {
		return nil, err
	}
	h.absorb(msg)
	return h.Digest()
}

// Write absorbs p.
func (h *ParallelHash) Write(p []byte) (int, error) {
	if err := h.root.checkAbsorbing(); err != nil {
		return 0, err
	}
	h.absorb(p)
	return len(p), nil
}

// DigestInto finalizes the hash and writes Size bytes of output to dst.
func (h *ParallelHash) DigestInto(dst []byte) error {
	if err := h.root.checkDigest(len(dst)); err != nil {
		return err
	}
	h.finish()
	return h.root.DigestInto(dst)
}

// Digest finalizes the hash and returns Size bytes of output.
func (h *ParallelHash) Digest() ([]byte, error) {
	out := make([]byte, h.root.outputLen)
	if err := h.DigestInto(out); err != nil {
		return nil, err
	}
	return out, nil
}

// XOFInto fills dst with the next len(dst) bytes of output from a ParallelHashXOF instance.
func (h *ParallelHash) XOFInto(dst []byte) error {
	if err := h.root.checkXOF(); err != nil {
		return err
	}
	h.finish()
	return h.root.XOFInto(dst)
}

// XOF returns the next n bytes of output from a ParallelHashXOF instance.
func (h *ParallelHash) XOF(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative output length %d", ErrConfig, n)
	}
	out := make([]byte, n)
	if err := h.XOFInto(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Read fills p with the next len(p) bytes of output from a ParallelHashXOF instance. It implements io.Reader.
func (h *ParallelHash) Read(p []byte) (int, error) {
	if err := h.XOFInto(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Clone returns an independent copy of the hash.
func (h *ParallelHash) Clone() (*ParallelHash, error) {
	root, err := h.root.Clone()
	if err != nil {
		return nil, err
	}

	c := *h
	c.root = root
	if h.leaf != nil {
		leaf := *h.leaf
		c.leaf = &leaf
	}
	return &c, nil
}

// Destroy zeros the hash's state.
func (h *ParallelHash) Destroy() {
	h.root.Destroy()
	if h.leaf != nil {
		h.leaf.Destroy()
	}
}

// Size returns the number of bytes Digest produces.
func (h *ParallelHash) Size() int { return h.root.outputLen }

// BlockSize returns the block size B in bytes.
func (h *ParallelHash) BlockSize() int { return h.blockLen }

func (h *ParallelHash) absorb(p []byte) {
	for len(p) > 0 {
		if h.leaf == nil {
			h.leaf = newSponge(h.leafRate, dsSHAKE, h.cvLen, keccak.MaxRounds, false)
		} else if h.blockPos == h.blockLen {
			h.flushLeaf()
		}

		n := min(h.blockLen-h.blockPos, len(p))
		h.leaf.absorb(p[:n])
		h.blockPos += n
		p = p[n:]
	}
}

// flushLeaf absorbs the current block's digest into the root and starts a new block.
func (h *ParallelHash) flushLeaf() {
	var cv [64]byte
	h.leaf.chain(cv[:h.cvLen])
	h.root.absorb(cv[:h.cvLen])
	h.blockPos = 0
	h.blocks++
}

func (h *ParallelHash) finish() {
	if h.root.phase != absorbing {
		return
	}

	if h.leaf != nil {
		h.flushLeaf()
	}

	var buf [sp800185.MaxSize]byte
	h.root.absorb(sp800185.AppendRightEncode(buf[:0], h.blocks))
}

func newParallelHash(rate, defaultLen int, xof bool, opts []Option) (*ParallelHash, error) {
	o := newOptions(opts)
	n, err := o.outputLen(defaultLen)
	if err != nil {
		return nil, err
	}

	b := 8
	if o.blockLenSet {
		if o.blockLen <= 0 {
			return nil, fmt.Errorf("%w: block size %d must be positive", ErrConfig, o.blockLen)
		}
		b = o.blockLen
	}

	root := cshake(rate, n, xof, []byte("ParallelHash"), o.personalization)
	root.absorb(sp800185.AppendLeftEncode(nil, uint64(b))) //nolint:gosec // b > 0
	root.trailer = sp800185.AppendRightEncode(nil, outputBits(n, xof))

	// Each leaf is SHAKE at the same security level with an output as long as the capacity.
	return &ParallelHash{
		root:     root,
		leaf:     nil,
		leafRate: rate,
		cvLen:    keccak.Size - rate,
		blockLen: b,
		blockPos: 0,
		blocks:   0,
	}, nil
}
