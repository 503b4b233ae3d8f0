package keccak //nolint:testpackage // testing internals

import (
	"bytes"
	"encoding/binary"
	"math/bits"
	"math/rand"
	"testing"
	"time"
)

// roundConstants are the ι constants as printed in FIPS 202, used to audit the LFSR-derived tables.
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

var (
	rotc = [24]int{1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14, 27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44}
	piln = [24]int{10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4, 15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1}
)

// keccakF1600Generic is a straightforward 64-bit lane implementation used as a reference.
func keccakF1600Generic(state *[Size]byte, n int) {
	var a [25]uint64
	for i := range a {
		a[i] = binary.LittleEndian.Uint64(state[8*i:])
	}

	var bc [5]uint64
	for r := MaxRounds - n; r < MaxRounds; r++ {
		for i := range 5 {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := range 5 {
			t := bc[(i+4)%5] ^ bits.RotateLeft64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				a[j+i] ^= t
			}
		}

		t := a[1]
		for i := range 24 {
			j := piln[i]
			bc[0] = a[j]
			a[j] = bits.RotateLeft64(t, rotc[i])
			t = bc[0]
		}

		for j := 0; j < 25; j += 5 {
			copy(bc[:], a[j:j+5])
			for i := range 5 {
				a[j+i] ^= ^bc[(i+1)%5] & bc[(i+2)%5]
			}
		}

		a[0] ^= roundConstants[r]
	}

	for i := range a {
		binary.LittleEndian.PutUint64(state[8*i:], a[i])
	}
}

func TestTables(t *testing.T) {
	t.Parallel()

	for r := range MaxRounds {
		if got, want := uint64(rcHi[r])<<32|uint64(rcLo[r]), roundConstants[r]; got != want {
			t.Errorf("round constant %d = %016x, want = %016x", r, got, want)
		}
	}

	for i := range 24 {
		if got, want := piLanes[i], piln[i]; got != want {
			t.Errorf("piLanes[%d] = %d, want = %d", i, got, want)
		}
		if got, want := rhoOffsets[i], uint(rotc[i]); got != want {
			t.Errorf("rhoOffsets[%d] = %d, want = %d", i, got, want)
		}
	}
}

func TestF1600_ZeroState(t *testing.T) {
	t.Parallel()

	var state [Size]byte
	F1600(&state)

	if got, want := binary.LittleEndian.Uint64(state[:8]), uint64(0xF1258F7940E1DDE7); got != want {
		t.Errorf("lane[0] = %016x, want = %016x", got, want)
	}
}

func TestCompliance(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var state1, state2 [Size]byte

	for _, rounds := range []int{24, 14, 12, 1} {
		for i := range 100 {
			rng.Read(state1[:])
			copy(state2[:], state1[:])

			Permute(&state1, rounds)
			keccakF1600Generic(&state2, rounds)

			if !bytes.Equal(state1[:], state2[:]) {
				t.Errorf("iteration %d: 32-bit lanes (%d rounds) mismatch reference", i, rounds)
			}
		}
	}
}

func TestPermute_InvalidRounds(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1, 25} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Permute(%d rounds) did not panic", n)
				}
			}()

			var state [Size]byte
			Permute(&state, n)
		}()
	}
}

func BenchmarkKeccakF1600(b *testing.B) {
	var state [Size]byte
	b.SetBytes(int64(len(state)))
	b.ReportAllocs()
	for b.Loop() {
		F1600(&state)
	}
}

func BenchmarkKeccakF1600Rounds12(b *testing.B) {
	var state [Size]byte
	b.SetBytes(int64(len(state)))
	b.ReportAllocs()
	for b.Loop() {
		Permute(&state, 12)
	}
}
