package sha3x

import (
	"github.com/codahale/sha3x/internal/keccak"
)

// Domain separation suffixes from FIPS 202 and NIST SP 800-185.
const (
	dsKeccak = 0x01
	dsSHA3   = 0x06
	dsSHAKE  = 0x1F
	dsCSHAKE = 0x04
)

// Rates in bytes for the 128-, 224-, 256-, 384-, and 512-bit security levels.
const (
	rate128 = 168
	rate224 = 144
	rate256 = 136
	rate384 = 104
	rate512 = 72
)

// New224 returns a new SHA3-224 instance.
func New224() *Sponge { return newSponge(rate224, dsSHA3, 28, keccak.MaxRounds, false) }

// New256 returns a new SHA3-256 instance.
func New256() *Sponge { return newSponge(rate256, dsSHA3, 32, keccak.MaxRounds, false) }

// New384 returns a new SHA3-384 instance.
func New384() *Sponge { return newSponge(rate384, dsSHA3, 48, keccak.MaxRounds, false) }

// New512 returns a new SHA3-512 instance.
func New512() *Sponge { return newSponge(rate512, dsSHA3, 64, keccak.MaxRounds, false) }

// NewKeccak224 returns a new Keccak-224 instance, which uses the original Keccak padding rather than SHA-3's.
func NewKeccak224() *Sponge { return newSponge(rate224, dsKeccak, 28, keccak.MaxRounds, false) }

// NewKeccak256 returns a new Keccak-256 instance, which uses the original Keccak padding rather than SHA-3's.
func NewKeccak256() *Sponge { return newSponge(rate256, dsKeccak, 32, keccak.MaxRounds, false) }

// NewKeccak384 returns a new Keccak-384 instance, which uses the original Keccak padding rather than SHA-3's.
func NewKeccak384() *Sponge { return newSponge(rate384, dsKeccak, 48, keccak.MaxRounds, false) }

// NewKeccak512 returns a new Keccak-512 instance, which uses the original Keccak padding rather than SHA-3's.
func NewKeccak512() *Sponge { return newSponge(rate512, dsKeccak, 64, keccak.MaxRounds, false) }

// Sum224 returns the SHA3-224 digest of msg.
func Sum224(msg []byte) (out [28]byte) {
	sumInto(New224(), msg, out[:])
	return out
}

// Sum256 returns the SHA3-256 digest of msg.
func Sum256(msg []byte) (out [32]byte) {
	sumInto(New256(), msg, out[:])
	return out
}

// Sum384 returns the SHA3-384 digest of msg.
func Sum384(msg []byte) (out [48]byte) {
	sumInto(New384(), msg, out[:])
	return out
}

// Sum512 returns the SHA3-512 digest of msg.
func Sum512(msg []byte) (out [64]byte) {
	sumInto(New512(), msg, out[:])
	return out
}

// SumKeccak224 returns the Keccak-224 digest of msg.
func SumKeccak224(msg []byte) (out [28]byte) {
	sumInto(NewKeccak224(), msg, out[:])
	return out
}

// SumKeccak256 returns the Keccak-256 digest of msg.
func SumKeccak256(msg []byte) (out [32]byte) {
	sumInto(NewKeccak256(), msg, out[:])
	return out
}

// SumKeccak384 returns the Keccak-384 digest of msg.
func SumKeccak384(msg []byte) (out [48]byte) {
	sumInto(NewKeccak384(), msg, out[:])
	return out
}

// SumKeccak512 returns the Keccak-512 digest of msg.
func SumKeccak512(msg []byte) (out [64]byte) {
	sumInto(NewKeccak512(), msg, out[:])
	return out
}

// NewSHAKE128 returns a new SHAKE128 instance. Digest produces 16 bytes unless WithDkLen is given.
func NewSHAKE128(opts ...Option) (*Sponge, error) {
	return newSHAKE(rate128, 16, opts)
}

// NewSHAKE256 returns a new SHAKE256 instance. Digest produces 32 bytes unless WithDkLen is given.
func NewSHAKE256(opts ...Option) (*Sponge, error) {
	return newSHAKE(rate256, 32, opts)
}

// SumSHAKE128 returns the SHAKE128 output of msg.
func SumSHAKE128(msg []byte, opts ...Option) ([]byte, error) {
	s, err := NewSHAKE128(opts...)
	if err != nil {
		return nil, err
	}
	return s.sum(msg)
}

// SumSHAKE256 returns the SHAKE256 output of msg.
func SumSHAKE256(msg []byte, opts ...Option) ([]byte, error) {
	s, err := NewSHAKE256(opts...)
	if err != nil {
		return nil, err
	}
	return s.sum(msg)
}

func newSHAKE(rate, defaultLen int, opts []Option) (*Sponge, error) {
	o := newOptions(opts)
	n, err := o.outputLen(defaultLen)
	if err != nil {
		return nil, err
	}
	return newSponge(rate, dsSHAKE, n, keccak.MaxRounds, true), nil
}

// sumInto absorbs msg into a fresh fixed-length instance and digests into out, which is exactly Size bytes long.
func sumInto(s *Sponge, msg []byte, out []byte) {
	s.absorb(msg)
	if err := s.DigestInto(out); err != nil {
		panic(err)
	}
}
