package sha3x

import (
	"github.com/codahale/sha3x/internal/keccak"
	"github.com/codahale/sha3x/internal/sp800185"
)

// NewCSHAKE128 returns a new cSHAKE128 instance customized by WithFunctionName and WithPersonalization. Digest produces
// 16 bytes unless WithDkLen is given. With neither string set, it is exactly SHAKE128.
func NewCSHAKE128(opts ...Option) (*Sponge, error) {
	return newCSHAKE(rate128, 16, opts)
}

// NewCSHAKE256 returns a new cSHAKE256 instance customized by WithFunctionName and WithPersonalization. Digest produces
// 32 bytes unless WithDkLen is given. With neither string set, it is exactly SHAKE256.
func NewCSHAKE256(opts ...Option) (*Sponge, error) {
	return newCSHAKE(rate256, 32, opts)
}

// SumCSHAKE128 returns the cSHAKE128 output of msg.
func SumCSHAKE128(msg []byte, opts ...Option) ([]byte, error) {
	s, err := NewCSHAKE128(opts...)
	if err != nil {
		return nil, err
	}
	return s.sum(msg)
}

// SumCSHAKE256 returns the cSHAKE256 output of msg.
func SumCSHAKE256(msg []byte, opts ...Option) ([]byte, error) {
	s, err := NewCSHAKE256(opts...)
	if err != nil {
		return nil, err
	}
	return s.sum(msg)
}

// NewKMAC128 returns a new KMAC128 instance keyed with key. Digest produces 32 bytes unless WithDkLen is given; the
// output length is bound into the MAC.
func NewKMAC128(key []byte, opts ...Option) (*Sponge, error) {
	return newKMAC(rate128, 32, false, key, opts)
}

// NewKMAC256 returns a new KMAC256 instance keyed with key. Digest produces 64 bytes unless WithDkLen is given; the
// output length is bound into the MAC.
func NewKMAC256(key []byte, opts ...Option) (*Sponge, error) {
	return newKMAC(rate256, 64, false, key, opts)
}

// NewKMACXOF128 returns a new KMACXOF128 instance keyed with key. Its output does not depend on the output length.
func NewKMACXOF128(key []byte, opts ...Option) (*Sponge, error) {
	return newKMAC(rate128, 32, true, key, opts)
}

// NewKMACXOF256 returns a new KMACXOF256 instance keyed with key. Its output does not depend on the output length.
func NewKMACXOF256(key []byte, opts ...Option) (*Sponge, error) {
	return newKMAC(rate256, 64, true, key, opts)
}

// SumKMAC128 returns the KMAC128 tag of msg under key.
func SumKMAC128(key, msg []byte, opts ...Option) ([]byte, error) {
	s, err := NewKMAC128(key, opts...)
	if err != nil {
		return nil, err
	}
	return s.sum(msg)
}

// SumKMAC256 returns the KMAC256 tag of msg under key.
func SumKMAC256(key, msg []byte, opts ...Option) ([]byte, error) {
	s, err := NewKMAC256(key, opts...)
	if err != nil {
		return nil, err
	}
	return s.sum(msg)
}

// SumKMACXOF128 returns the KMACXOF128 output of msg under key.
func SumKMACXOF128(key, msg []byte, opts ...Option) ([]byte, error) {
	s, err := NewKMACXOF128(key, opts...)
	if err != nil {
		return nil, err
	}
	return s.sum(msg)
}

// SumKMACXOF256 returns the KMACXOF256 output of msg under key.
func SumKMACXOF256(key, msg []byte, opts ...Option) ([]byte, error) {
	s, err := NewKMACXOF256(key, opts...)
	if err != nil {
		return nil, err
	}
	return s.sum(msg)
}

func newCSHAKE(rate, defaultLen int, opts []Option) (*Sponge, error) {
	o := newOptions(opts)
	n, err := o.outputLen(defaultLen)
	if err != nil {
		return nil, err
	}
	return cshake(rate, n, true, o.functionName, o.personalization), nil
}

// cshake returns a sponge customized with the function name n and the personalization s. If both are empty it returns
// plain SHAKE, so that cSHAKE(X, L, "", "") = SHAKE(X, L).
func cshake(rate, outputLen int, xof bool, n, s []byte) *Sponge {
	if len(n) == 0 && len(s) == 0 {
		return newSponge(rate, dsSHAKE, outputLen, keccak.MaxRounds, xof)
	}

	sp := newSponge(rate, dsCSHAKE, outputLen, keccak.MaxRounds, xof)
	sp.absorb(sp800185.AppendBytepad(make([]byte, 0, rate), rate, n, s))
	return sp
}

func newKMAC(rate, defaultLen int, xof bool, key []byte, opts []Option) (*Sponge, error) {
	o := newOptions(opts)
	n, err := o.outputLen(defaultLen)
	if err != nil {
		return nil, err
	}

	s := cshake(rate, n, xof, []byte("KMAC"), o.personalization)
	s.absorb(sp800185.AppendBytepad(make([]byte, 0, rate), rate, key))
	s.trailer = sp800185.AppendRightEncode(nil, outputBits(n, xof))
	return s, nil
}

// outputBits is the L encoded into the functions derived from cSHAKE: the output length in bits, or zero for their XOF
// variants.
func outputBits(n int, xof bool) uint64 {
	if xof {
		return 0
	}
	return uint64(n) * 8 //nolint:gosec // n is validated as non-negative
}
