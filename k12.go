package sha3x

import (
	"fmt"
	"math/bits"
)

const (
	// ChunkSize is the KangarooTwelve and MarsupilamiFourteen chunk size in bytes.
	ChunkSize = 8192

	dsSingleNode = 0x07
	dsFinalNode  = 0x06
	dsLeaf       = 0x0B
)

// treeMarker is the 8-byte marker absorbed into the final node after the first chunk.
var treeMarker = [8]byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

// A KangarooTwelve is an incremental KangarooTwelve or MarsupilamiFourteen instance.
//
// The first chunk of input is absorbed directly by the final node. Once input extends past it, the final node switches
// to its tree-mode domain byte and every further chunk is hashed by a leaf whose chain value the final node absorbs.
type KangarooTwelve struct {
	root            *Sponge
	tree            *leafTree // nil while all input fits in the first chunk
	personalization []byte    // C, immutable
	rate            int
	cvLen           int
	rounds          int
	chunkPos        int
}

// leafTree is the tree-mode state: the one active leaf and the number of leaves started so far.
type leafTree struct {
	leaf   *Sponge
	leaves uint64
}

// NewK12 returns a new KangarooTwelve (KT128) instance built on TurboSHAKE128. Digest produces 32 bytes unless
// WithDkLen is given. WithPersonalization sets the customization string C.
func NewK12(opts ...Option) (*KangarooTwelve, error) {
	return newKangaroo(rate128, 32, turboRounds, 32, opts)
}

// NewM14 returns a new MarsupilamiFourteen instance built on a 14-round TurboSHAKE256. Digest produces 64 bytes unless
// WithDkLen is given. WithPersonalization sets the customization string C.
func NewM14(opts ...Option) (*KangarooTwelve, error) {
	return newKangaroo(rate256, 64, 14, 64, opts)
}

// SumK12 returns the KangarooTwelve output of msg.
func SumK12(msg []byte, opts ...Option) ([]byte, error) {
	k, err := NewK12(opts...)
	if err != nil {
		return nil, err
	}
	k.absorb(msg)
	return k.Digest()
}

// SumM14 returns the MarsupilamiFourteen output of msg.
func SumM14(msg []byte, opts ...Option) ([]byte, error) {
	k, err := NewM14(opts...)
	if err != nil {
		return nil, err
	}
	k.absorb(msg)
	return k.Digest()
}

// Write absorbs message bytes. It must not be called after the instance is finalized.
func (k *KangarooTwelve) Write(p []byte) (int, error) {
	if err := k.root.checkAbsorbing(); err != nil {
		return 0, err
	}
	k.absorb(p)
	return len(p), nil
}

// DigestInto finalizes the instance and writes Size bytes of output to dst.
func (k *KangarooTwelve) DigestInto(dst []byte) error {
	if err := k.root.checkDigest(len(dst)); err != nil {
		return err
	}
	k.finish()
	return k.root.DigestInto(dst)
}

// Digest finalizes the instance and returns Size bytes of output.
func (k *KangarooTwelve) Digest() ([]byte, error) {
	out := make([]byte, k.root.outputLen)
	if err := k.DigestInto(out); err != nil {
		return nil, err
	}
	return out, nil
}

// XOFInto fills dst with the next len(dst) bytes of output. On the first call, it finalizes absorption.
func (k *KangarooTwelve) XOFInto(dst []byte) error {
	if err := k.root.checkXOF(); err != nil {
		return err
	}
	k.finish()
	return k.root.XOFInto(dst)
}

// XOF returns the next n bytes of output. On the first call, it finalizes absorption.
func (k *KangarooTwelve) XOF(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative output length %d", ErrConfig, n)
	}
	out := make([]byte, n)
	if err := k.XOFInto(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Read squeezes output from the XOF. It implements io.Reader.
func (k *KangarooTwelve) Read(p []byte) (int, error) {
	if err := k.XOFInto(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Clone returns an independent copy of the instance.
func (k *KangarooTwelve) Clone() (*KangarooTwelve, error) {
	var c KangarooTwelve
	if err := k.CloneInto(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// CloneInto overwrites dst with an independent copy of the instance.
func (k *KangarooTwelve) CloneInto(dst *KangarooTwelve) error {
	root, err := k.root.Clone()
	if err != nil {
		return err
	}

	*dst = *k
	dst.root = root
	if k.tree != nil {
		leaf := *k.tree.leaf
		dst.tree = &leafTree{leaf: &leaf, leaves: k.tree.leaves}
	}
	return nil
}

// Destroy zeros the instance's state.
func (k *KangarooTwelve) Destroy() {
	k.root.Destroy()
	if k.tree != nil {
		k.tree.leaf.Destroy()
	}
}

// Size returns the number of bytes Digest produces.
func (k *KangarooTwelve) Size() int { return k.root.outputLen }

// BlockSize returns the chunk size.
func (k *KangarooTwelve) BlockSize() int { return ChunkSize }

// absorb routes p to the final node or the active leaf, starting a new chunk whenever the current one is full and more
// input follows.
func (k *KangarooTwelve) absorb(p []byte) {
	for len(p) > 0 {
		if k.chunkPos == ChunkSize {
			k.nextChunk()
		}

		n := min(ChunkSize-k.chunkPos, len(p))
		if k.tree == nil {
			k.root.absorb(p[:n])
		} else {
			k.tree.leaf.absorb(p[:n])
		}
		k.chunkPos += n
		p = p[n:]
	}
}

// nextChunk starts a new leaf, entering tree mode on the first call.
func (k *KangarooTwelve) nextChunk() {
	if k.tree == nil {
		k.root.suffix = dsFinalNode
		k.root.absorb(treeMarker[:])
		k.tree = &leafTree{leaf: newSponge(k.rate, dsLeaf, k.cvLen, k.rounds, false), leaves: 0}
	} else {
		k.flushLeaf()
	}
	k.tree.leaves++
	k.chunkPos = 0
}

// flushLeaf absorbs the active leaf's chain value into the final node and resets the leaf for the next chunk.
func (k *KangarooTwelve) flushLeaf() {
	var cv [64]byte
	k.tree.leaf.chain(cv[:k.cvLen])
	k.root.absorb(cv[:k.cvLen])
}

// finish appends C || length_encode(|C|) and, in tree mode, the last chain value and the terminator
// length_encode(leaves) || 0xFF || 0xFF.
func (k *KangarooTwelve) finish() {
	if k.root.phase != absorbing {
		return
	}

	k.absorb(k.personalization)
	k.absorb(appendLengthEncode(nil, uint64(len(k.personalization))))

	if k.tree != nil {
		k.flushLeaf()
		k.root.absorb(appendLengthEncode(nil, k.tree.leaves))
		k.root.absorb([]byte{0xFF, 0xFF})
	}
}

func newKangaroo(rate, cvLen, rounds, defaultLen int, opts []Option) (*KangarooTwelve, error) {
	o := newOptions(opts)
	n := defaultLen
	if o.dkLenSet {
		if o.dkLen <= 0 {
			return nil, fmt.Errorf("%w: output length %d must be positive", ErrConfig, o.dkLen)
		}
		n = o.dkLen
	}

	return &KangarooTwelve{
		root:            newSponge(rate, dsSingleNode, n, rounds, true),
		tree:            nil,
		personalization: o.personalization,
		rate:            rate,
		cvLen:           cvLen,
		rounds:          rounds,
		chunkPos:        0,
	}, nil
}

// appendLengthEncode appends x as in KangarooTwelve to b: big-endian with no leading zeros, followed by a byte giving
// the length of the encoding.
func appendLengthEncode(b []byte, x uint64) []byte {
	n := (bits.Len64(x) + 7) / 8
	for i := n - 1; i >= 0; i-- {
		b = append(b, byte(x>>(8*i)))
	}
	return append(b, byte(n))
}
