// Package prg implements a pseudorandom generator built on a Keccak-f[1600] duplex.
//
// Seed material is absorbed with Feed, output is produced with Fetch or Read, and Forget irreversibly erases the
// part of the state an attacker would need to recover earlier outputs. Feeding after fetching is allowed and reseeds
// the generator.
package prg

import (
	"crypto/subtle"
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/codahale/sha3x/internal/keccak"
	"github.com/codahale/sha3x/internal/mem"
)

// DefaultCapacity is the capacity in bits used by NewDefault.
const DefaultCapacity = 254

var (
	// ErrInvalidCapacity is returned when a capacity is out of range or leaves a rate which is not whole bytes.
	ErrInvalidCapacity = errors.New("prg: invalid capacity")

	// ErrRateTooLow is returned by Forget when the rate is not larger than half the state.
	ErrRateTooLow = errors.New("prg: rate is too low to forget")

	// ErrInvalidState is returned when a serialized state cannot be restored.
	ErrInvalidState = errors.New("prg: invalid state")
)

// A State is a duplex PRG over Keccak-f[1600]. Each block of input or output is framed by a 0x01 byte after its last
// byte and a 0x02 byte at the block length, leaving the remaining capacity untouched.
type State struct {
	state    [keccak.Size]byte
	capacity int // in bits
	blockLen int
	pos      int
	posOut   int
}

// New returns a new PRG with the given capacity in bits. The capacity must be in [0, 1590] and leave a rate, minus the
// two framing bits, of whole bytes.
func New(capacity int) (*State, error) {
	if capacity < 0 || capacity > 1590 || (1598-capacity)%8 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	rate := 1600 - capacity
	return &State{ //nolint:exhaustruct // zero state
		capacity: capacity,
		blockLen: (rate - 2) / 8,
		posOut:   (rate + 7) / 8,
	}, nil
}

// NewDefault returns a new PRG with a capacity of 254 bits.
func NewDefault() *State {
	d, _ := New(DefaultCapacity)
	return d
}

// Feed absorbs seed material into the generator.
//
// Multiple Feed calls are effectively the same thing as a single Feed call with concatenated inputs.
func (d *State) Feed(b []byte) {
	for len(b) > 0 {
		n := min(d.blockLen-d.pos, len(b))
		mem.XORInPlace(d.state[d.pos:d.pos+n], b[:n])
		d.pos += n
		b = b[n:]
		if d.pos == d.blockLen {
			d.permute()
		}
	}
	d.posOut = d.blockLen
}

// Fetch returns the next n bytes of output.
func (d *State) Fetch(n int) []byte {
	out := make([]byte, n)
	d.squeeze(out)
	return out
}

// Read fills p with the next len(p) bytes of output. It implements io.Reader and never fails.
func (d *State) Read(p []byte) (int, error) {
	d.squeeze(p)
	return len(p), nil
}

// Forget erases the generator's previous state, so that a later compromise does not reveal earlier outputs.
func (d *State) Forget() error {
	if 1600-d.capacity < 801 {
		return fmt.Errorf("%w: %d bits", ErrRateTooLow, 1600-d.capacity)
	}

	d.permute()
	clear(d.state[:d.blockLen])
	d.pos = d.blockLen
	d.permute()
	d.posOut = d.blockLen
	return nil
}

// Clone returns an independent copy of the generator.
func (d *State) Clone() *State {
	c := *d
	return &c
}

// Equal returns 1 if d and d2 are equal, and 0 otherwise.
func (d *State) Equal(d2 *State) int {
	return subtle.ConstantTimeCompare(d.state[:], d2.state[:]) &
		subtle.ConstantTimeEq(int32(d.capacity), int32(d2.capacity)) & //nolint:gosec // capacity <= 1590
		subtle.ConstantTimeEq(int32(d.pos), int32(d2.pos)) & //nolint:gosec // pos < 200
		subtle.ConstantTimeEq(int32(d.posOut), int32(d2.posOut)) //nolint:gosec // posOut <= 200
}

// Clear zeros out the generator's state, keeping its capacity.
func (d *State) Clear() {
	clear(d.state[:])
	d.pos = 0
	d.posOut = (1600 - d.capacity + 7) / 8
}

// UnmarshalBinary restores the generator's state from the given binary representation. It implements
// encoding.BinaryUnmarshaler.
func (d *State) UnmarshalBinary(data []byte) error {
	if len(data) != stateLen {
		return fmt.Errorf("%w: length %d", ErrInvalidState, len(data))
	}

	c, err := New(int(binary.BigEndian.Uint16(data)))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	pos, posOut := int(data[2]), int(data[3])
	if pos >= c.blockLen || posOut > keccak.Size {
		return fmt.Errorf("%w: position out of range", ErrInvalidState)
	}

	c.pos, c.posOut = pos, posOut
	copy(c.state[:], data[4:])
	*d = *c
	return nil
}

// AppendBinary appends the binary representation of the generator's state to the given slice. It implements
// encoding.BinaryAppender.
func (d *State) AppendBinary(b []byte) ([]byte, error) {
	b = binary.BigEndian.AppendUint16(b, uint16(d.capacity)) //nolint:gosec // capacity <= 1590
	return append(append(b, byte(d.pos), byte(d.posOut)), d.state[:]...), nil
}

// MarshalBinary returns the binary representation of the generator's state. It implements encoding.BinaryMarshaler.
func (d *State) MarshalBinary() (data []byte, err error) {
	return d.AppendBinary(make([]byte, 0, stateLen))
}

func (d *State) permute() {
	d.state[d.pos] ^= 0x01
	d.state[d.blockLen] ^= 0x02
	keccak.F1600(&d.state)
	d.pos = 0
	d.posOut = 0
}

func (d *State) squeeze(out []byte) {
	for len(out) > 0 {
		if d.posOut >= d.blockLen {
			d.permute()
		}
		n := copy(out, d.state[d.posOut:d.blockLen])
		d.posOut += n
		out = out[n:]
	}
}

// stateLen is the length of a serialized State: capacity, pos, posOut, and the permutation state.
const stateLen = 2 + 1 + 1 + keccak.Size

var (
	_ encoding.BinaryAppender    = (*State)(nil)
	_ encoding.BinaryMarshaler   = (*State)(nil)
	_ encoding.BinaryUnmarshaler = (*State)(nil)
)
