// Package sha3x implements the Keccak-f[1600] sponge and the functions built on it: SHA-3, the legacy Keccak hashes,
// SHAKE, and from [NIST SP 800-185] cSHAKE, KMAC, TupleHash, and ParallelHash. From [RFC 9861] it also implements
// TurboSHAKE and KangarooTwelve, along with MarsupilamiFourteen.
//
// Every function is available as a one-shot Sum function and as an incremental instance. An instance absorbs input via
// Write until it is finalized by Digest (a fixed-length output, once) or by XOF (an unbounded stream, for XOF-capable
// functions). The two are mutually exclusive. Instances can be cloned before finalization, which allows a customized
// instance to be used as a template for many messages.
//
// Instances are not concurrent-safe.
//
// [NIST SP 800-185]: https://www.nist.gov/publications/sha-3-derived-functions-cshake-kmac-tuplehash-and-parallelhash
// [RFC 9861]: https://www.rfc-editor.org/rfc/rfc9861.html
package sha3x

import (
	"fmt"

	"github.com/codahale/sha3x/internal/keccak"
	"github.com/codahale/sha3x/internal/mem"
)

// A Config describes a sponge flavor.
type Config struct {
	// Rate is the number of bytes absorbed or squeezed per permutation call. It must be in (0, 200).
	Rate int

	// Suffix holds the domain separation bits appended to the input before padding.
	Suffix byte

	// OutputLen is the number of bytes produced by Digest.
	OutputLen int

	// Rounds is the number of Keccak-p[1600] rounds per permutation call. Zero means the full 24.
	Rounds int

	// XOF enables extendable output via XOF, XOFInto, and Read.
	XOF bool
}

type phase uint8

const (
	absorbing phase = iota
	squeezing       // finalized by XOF
	digested        // finalized by Digest
	destroyed
)

// A Sponge is an instance of the Keccak sponge construction.
type Sponge struct {
	state     [keccak.Size]byte
	trailer   []byte // absorbed during finalization, before padding
	rate      int
	outputLen int
	rounds    int
	pos       int
	posOut    int
	suffix    byte
	xof       bool
	phase     phase
}

// NewSponge returns a new Sponge of the given flavor.
func NewSponge(cfg Config) (*Sponge, error) {
	if cfg.Rate <= 0 || cfg.Rate >= keccak.Size {
		return nil, fmt.Errorf("%w: rate %d not in (0, %d)", ErrConfig, cfg.Rate, keccak.Size)
	}

	if cfg.Rounds < 0 || cfg.Rounds > keccak.MaxRounds {
		return nil, fmt.Errorf("%w: rounds %d not in [1, %d]", ErrConfig, cfg.Rounds, keccak.MaxRounds)
	}

	if cfg.OutputLen < 0 {
		return nil, fmt.Errorf("%w: negative output length %d", ErrConfig, cfg.OutputLen)
	}

	rounds := cfg.Rounds
	if rounds == 0 {
		rounds = keccak.MaxRounds
	}

	return newSponge(cfg.Rate, cfg.Suffix, cfg.OutputLen, rounds, cfg.XOF), nil
}

func newSponge(rate int, suffix byte, outputLen, rounds int, xof bool) *Sponge {
	return &Sponge{ //nolint:exhaustruct // zero state
		rate:      rate,
		suffix:    suffix,
		outputLen: outputLen,
		rounds:    rounds,
		xof:       xof,
	}
}

// Write absorbs p into the sponge. It returns ErrFinalized after the sponge has been finalized and ErrDestroyed after it
// has been destroyed.
func (s *Sponge) Write(p []byte) (int, error) {
	if err := s.checkAbsorbing(); err != nil {
		return 0, err
	}
	s.absorb(p)
	return len(p), nil
}

// DigestInto finalizes the sponge and writes Size bytes of output to dst.
func (s *Sponge) DigestInto(dst []byte) error {
	if err := s.checkDigest(len(dst)); err != nil {
		return err
	}
	s.finish()
	s.squeeze(dst[:s.outputLen])
	clear(s.state[:])
	s.phase = digested
	return nil
}

// Digest finalizes the sponge and returns Size bytes of output.
func (s *Sponge) Digest() ([]byte, error) {
	out := make([]byte, s.outputLen)
	if err := s.DigestInto(out); err != nil {
		return nil, err
	}
	return out, nil
}

// XOFInto fills dst with the next len(dst) bytes of the output stream, finalizing the sponge on first use.
func (s *Sponge) XOFInto(dst []byte) error {
	if err := s.checkXOF(); err != nil {
		return err
	}
	if s.phase == absorbing {
		s.finish()
		s.phase = squeezing
	}
	s.squeeze(dst)
	return nil
}

// XOF returns the next n bytes of the output stream, finalizing the sponge on first use.
func (s *Sponge) XOF(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative output length %d", ErrConfig, n)
	}
	out := make([]byte, n)
	if err := s.XOFInto(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Read fills p with the next len(p) bytes of the output stream. It implements io.Reader.
func (s *Sponge) Read(p []byte) (int, error) {
	if err := s.XOFInto(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Clone returns an independent copy of the sponge. Only sponges which have not been finalized can be cloned.
func (s *Sponge) Clone() (*Sponge, error) {
	var c Sponge
	if err := s.CloneInto(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// CloneInto overwrites dst with an independent copy of the sponge.
func (s *Sponge) CloneInto(dst *Sponge) error {
	if err := s.checkAbsorbing(); err != nil {
		return err
	}
	*dst = *s
	return nil
}

// Destroy zeros the sponge's state. All further operations return ErrDestroyed.
func (s *Sponge) Destroy() {
	clear(s.state[:])
	s.pos, s.posOut = 0, 0
	s.phase = destroyed
}

// Size returns the number of bytes Digest produces.
func (s *Sponge) Size() int { return s.outputLen }

// BlockSize returns the sponge's rate in bytes.
func (s *Sponge) BlockSize() int { return s.rate }

func (s *Sponge) checkAbsorbing() error {
	switch s.phase {
	case absorbing:
		return nil
	case destroyed:
		return ErrDestroyed
	default:
		return ErrFinalized
	}
}

func (s *Sponge) checkDigest(n int) error {
	switch s.phase {
	case destroyed:
		return ErrDestroyed
	case digested:
		return ErrFinalized
	case squeezing:
		return fmt.Errorf("%w: digest after xof", ErrMode)
	case absorbing:
	}

	if n < s.outputLen {
		return fmt.Errorf("%w: %d bytes, need %d", ErrShortBuffer, n, s.outputLen)
	}
	return nil
}

func (s *Sponge) checkXOF() error {
	switch {
	case s.phase == destroyed:
		return ErrDestroyed
	case !s.xof:
		return fmt.Errorf("%w: function has a fixed output length", ErrMode)
	case s.phase == digested:
		return fmt.Errorf("%w: xof after digest", ErrMode)
	default:
		return nil
	}
}

// absorb XORs p into the rate, permuting every time the rate is filled.
func (s *Sponge) absorb(p []byte) {
	for len(p) > 0 {
		n := min(s.rate-s.pos, len(p))
		mem.XORInPlace(s.state[s.pos:s.pos+n], p[:n])
		s.pos += n
		p = p[n:]
		if s.pos == s.rate {
			keccak.Permute(&s.state, s.rounds)
			s.pos = 0
		}
	}
}

func (s *Sponge) permute() {
	keccak.Permute(&s.state, s.rounds)
	s.pos, s.posOut = 0, 0
}

// finish absorbs the trailer and applies the suffix and pad10*1.
func (s *Sponge) finish() {
	s.absorb(s.trailer)
	s.state[s.pos] ^= s.suffix
	if s.suffix&0x80 != 0 && s.pos == s.rate-1 {
		s.permute()
	}
	s.state[s.rate-1] ^= 0x80
	s.permute()
}

func (s *Sponge) squeeze(dst []byte) {
	for len(dst) > 0 {
		if s.posOut == s.rate {
			s.permute()
		}
		n := copy(dst, s.state[s.posOut:s.rate])
		s.posOut += n
		dst = dst[n:]
	}
}

// chain finalizes the sponge into dst, which is at most Size bytes long, and resets it for the next input.
func (s *Sponge) chain(dst []byte) {
	s.finish()
	s.squeeze(dst)
	s.reset()
}

// reset returns the sponge to its freshly constructed state, keeping its flavor.
func (s *Sponge) reset() {
	clear(s.state[:])
	s.pos, s.posOut = 0, 0
	s.phase = absorbing
}

// sum absorbs msg and digests.
func (s *Sponge) sum(msg []byte) ([]byte, error) {
	s.absorb(msg)
	return s.Digest()
}
