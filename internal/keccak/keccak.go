// Package keccak implements the Keccak-p[1600] family of permutations.
//
// Lanes are handled as pairs of 32-bit halves so that no round needs 64-bit arithmetic. The state is always
// interpreted as 25 little-endian lanes; big-endian hosts are rejected when the package is initialized.
package keccak

import (
	"encoding/binary"

	"github.com/codahale/sha3x/internal/lane"
	"golang.org/x/sys/cpu"
)

const (
	// Size is the width of the permutation in bytes.
	Size = 200

	// MaxRounds is the number of rounds in Keccak-f[1600].
	MaxRounds = 24
)

// The π lane walk, the ρ rotation offsets, and the ι round constants (split into 32-bit halves). Computed once in init
// and read-only afterwards.
var (
	piLanes    [24]int
	rhoOffsets [24]uint
	rcHi, rcLo [MaxRounds]uint32
)

func init() {
	if cpu.IsBigEndian {
		panic("keccak: big-endian hosts are not supported")
	}

	x, y := 1, 0
	for t := range 24 {
		x, y = y, (2*x+3*y)%5
		piLanes[t] = 5*y + x
		rhoOffsets[t] = uint((t+1)*(t+2)/2) % 64
	}

	for r := range MaxRounds {
		var c uint64
		for j := range 7 {
			c |= rc(j+7*r) << (1<<j - 1)
		}
		rcHi[r], rcLo[r] = uint32(c>>32), uint32(c)
	}
}

// rc returns the output bit of the FIPS 202 round constant LFSR after t steps.
func rc(t int) uint64 {
	r := byte(1)
	for range t % 255 {
		r = r<<1 ^ (r>>7)*0x71
	}
	return uint64(r & 1)
}

// F1600 applies the Keccak-f[1600] permutation to the state (24 rounds).
func F1600(state *[Size]byte) {
	Permute(state, MaxRounds)
}

// Permute applies the last n rounds of Keccak-f[1600] to the state, as Keccak-p[1600, n] is defined. It panics if n is
// not in [1, 24].
func Permute(state *[Size]byte, n int) {
	if n < 1 || n > MaxRounds {
		panic("keccak: invalid round count")
	}

	var s [50]uint32
	for i := range s {
		s[i] = binary.LittleEndian.Uint32(state[4*i:])
	}
	permute(&s, n)
	for i := range s {
		binary.LittleEndian.PutUint32(state[4*i:], s[i])
	}
}

// permute runs the rounds over 50 words, where s[2i] is the low half of lane i and s[2i+1] is its high half.
func permute(s *[50]uint32, n int) {
	var b [10]uint32
	for round := MaxRounds - n; round < MaxRounds; round++ {
		// θ
		for x := range 10 {
			b[x] = s[x] ^ s[x+10] ^ s[x+20] ^ s[x+30] ^ s[x+40]
		}
		for x := 0; x < 10; x += 2 {
			next, prev := (x+2)%10, (x+8)%10
			dLo := lane.RotlSL(b[next+1], b[next], 1) ^ b[prev]
			dHi := lane.RotlSH(b[next+1], b[next], 1) ^ b[prev+1]
			for y := 0; y < 50; y += 10 {
				s[y+x] ^= dLo
				s[y+x+1] ^= dHi
			}
		}

		// ρ and π
		lo, hi := s[2], s[3]
		for t := range 24 {
			j, r := 2*piLanes[t], rhoOffsets[t]
			nLo, nHi := lane.RotlL(hi, lo, r), lane.RotlH(hi, lo, r)
			lo, hi = s[j], s[j+1]
			s[j], s[j+1] = nLo, nHi
		}

		// χ
		for y := 0; y < 50; y += 10 {
			copy(b[:], s[y:y+10])
			for x := range 10 {
				s[y+x] ^= ^b[(x+2)%10] & b[(x+4)%10]
			}
		}

		// ι
		s[0] ^= rcLo[round]
		s[1] ^= rcHi[round]
	}
	clear(b[:])
}
