package sha3x

import (
	"fmt"
)

// turboRounds is the number of Keccak-p[1600] rounds used by TurboSHAKE and KangarooTwelve.
const turboRounds = 12

// NewTurboSHAKE128 returns a new TurboSHAKE128 instance. Digest produces 32 bytes unless WithDkLen is given. The domain
// separation byte is 0x1F unless WithDomain is given, and must be in [0x01, 0x7F].
func NewTurboSHAKE128(opts ...Option) (*Sponge, error) {
	return newTurboSHAKE(rate128, 32, opts)
}

// NewTurboSHAKE256 returns a new TurboSHAKE256 instance. Digest produces 64 bytes unless WithDkLen is given. The domain
// separation byte is 0x1F unless WithDomain is given, and must be in [0x01, 0x7F].
func NewTurboSHAKE256(opts ...Option) (*Sponge, error) {
	return newTurboSHAKE(rate256, 64, opts)
}

// SumTurboSHAKE128 returns the TurboSHAKE128 output of msg.
func SumTurboSHAKE128(msg []byte, opts ...Option) ([]byte, error) {
	s, err := NewTurboSHAKE128(opts...)
	if err != nil {
		return nil, err
	}
	return s.sum(msg)
}

// SumTurboSHAKE256 returns the TurboSHAKE256 output of msg.
func SumTurboSHAKE256(msg []byte, opts ...Option) ([]byte, error) {
	s, err := NewTurboSHAKE256(opts...)
	if err != nil {
		return nil, err
	}
	return s.sum(msg)
}

func newTurboSHAKE(rate, defaultLen int, opts []Option) (*Sponge, error) {
	o := newOptions(opts)
	n, err := o.outputLen(defaultLen)
	if err != nil {
		return nil, err
	}

	d := byte(dsSHAKE)
	if o.domainSet {
		d = o.domain
	}
	if d < 0x01 || d > 0x7F {
		return nil, fmt.Errorf("%w: %#02x not in [0x01, 0x7F]", ErrDomain, d)
	}

	return newSponge(rate, d, n, turboRounds, true), nil
}
