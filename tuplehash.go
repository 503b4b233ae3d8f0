package sha3x

import (
	"github.com/codahale/sha3x/internal/sp800185"
)

// A TupleHash is an instance of TupleHash or TupleHashXOF, which hashes a sequence of byte strings such that the
// boundaries between them are unambiguous.
type TupleHash struct {
	s *Sponge
}

// NewTupleHash128 returns a new TupleHash128 instance. Digest produces 32 bytes unless WithDkLen is given.
func NewTupleHash128(opts ...Option) (*TupleHash, error) {
	return newTupleHash(rate128, 32, false, opts)
}

// NewTupleHash256 returns a new TupleHash256 instance. Digest produces 64 bytes unless WithDkLen is given.
func NewTupleHash256(opts ...Option) (*TupleHash, error) {
	return newTupleHash(rate256, 64, false, opts)
}

// NewTupleHashXOF128 returns a new TupleHashXOF128 instance.
func NewTupleHashXOF128(opts ...Option) (*TupleHash, error) {
	return newTupleHash(rate128, 32, true, opts)
}

// NewTupleHashXOF256 returns a new TupleHashXOF256 instance.
func NewTupleHashXOF256(opts ...Option) (*TupleHash, error) {
	return newTupleHash(rate256, 64, true, opts)
}

// SumTupleHash128 returns the TupleHash128 digest of elems.
func SumTupleHash128(elems [][]byte, opts ...Option) ([]byte, error) {
	t, err := NewTupleHash128(opts...)
	if err != nil {
		return nil, err
	}
	return t.sum(elems)
}

// SumTupleHash256 returns the TupleHash256 digest of elems.
func SumTupleHash256(elems [][]byte, opts ...Option) ([]byte, error) {
	t, err := NewTupleHash256(opts...)
	if err != nil {
		return nil, err
	}
	return t.sum(elems)
}

// WriteElement appends p to the tuple as a single element.
func (t *TupleHash) WriteElement(p []byte) error {
	if err := t.s.checkAbsorbing(); err != nil {
		return err
	}

	var buf [sp800185.MaxSize]byte
	t.s.absorb(sp800185.AppendLeftEncode(buf[:0], uint64(len(p))*8))
	t.s.absorb(p)
	return nil
}

// Digest finalizes the hash and returns Size bytes of output.
func (t *TupleHash) Digest() ([]byte, error) { return t.s.Digest() }

// DigestInto finalizes the hash and writes Size bytes of output to dst.
func (t *TupleHash) DigestInto(dst []byte) error { return t.s.DigestInto(dst) }

// XOF returns the next n bytes of output from a TupleHashXOF instance.
func (t *TupleHash) XOF(n int) ([]byte, error) { return t.s.XOF(n) }

// XOFInto fills dst with the next len(dst) bytes of output from a TupleHashXOF instance.
func (t *TupleHash) XOFInto(dst []byte) error { return t.s.XOFInto(dst) }

// Read fills p with the next len(p) bytes of output from a TupleHashXOF instance. It implements io.Reader.
func (t *TupleHash) Read(p []byte) (int, error) { return t.s.Read(p) }

// Clone returns an independent copy of the hash.
func (t *TupleHash) Clone() (*TupleHash, error) {
	s, err := t.s.Clone()
	if err != nil {
		return nil, err
	}
	return &TupleHash{s: s}, nil
}

// Destroy zeros the hash's state.
func (t *TupleHash) Destroy() { t.s.Destroy() }

// Size returns the number of bytes Digest produces.
func (t *TupleHash) Size() int { return t.s.Size() }

// BlockSize returns the rate of the underlying sponge in bytes.
func (t *TupleHash) BlockSize() int { return t.s.BlockSize() }

func (t *TupleHash) sum(elems [][]byte) ([]byte, error) {
	for _, e := range elems {
		if err := t.WriteElement(e); err != nil {
			return nil, err
		}
	}
	return t.Digest()
}

func newTupleHash(rate, defaultLen int, xof bool, opts []Option) (*TupleHash, error) {
	o := newOptions(opts)
	n, err := o.outputLen(defaultLen)
	if err != nil {
		return nil, err
	}

	s := cshake(rate, n, xof, []byte("TupleHash"), o.personalization)
	s.trailer = sp800185.AppendRightEncode(nil, outputBits(n, xof))
	return &TupleHash{s: s}, nil
}
