package lane_test

import (
	"math/bits"
	"math/rand"
	"testing"
	"time"

	"github.com/codahale/sha3x/internal/lane"
)

func split(x uint64) (hi, lo uint32) {
	return uint32(x >> 32), uint32(x)
}

func join(hi, lo uint32) uint64 {
	return uint64(hi)<<32 | uint64(lo)
}

func TestRotl(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for range 100 {
		x := rng.Uint64()
		hi, lo := split(x)
		for s := uint(1); s < 64; s++ {
			want := bits.RotateLeft64(x, int(s))
			if got := join(lane.RotlH(hi, lo, s), lane.RotlL(hi, lo, s)); got != want {
				t.Fatalf("rotl(%016x, %d) = %016x, want = %016x", x, s, got, want)
			}
		}
	}
}

func TestRotr(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for range 100 {
		x := rng.Uint64()
		hi, lo := split(x)
		for s := uint(1); s < 32; s++ {
			want := bits.RotateLeft64(x, -int(s))
			if got := join(lane.RotrSH(hi, lo, s), lane.RotrSL(hi, lo, s)); got != want {
				t.Fatalf("rotr(%016x, %d) = %016x, want = %016x", x, s, got, want)
			}
		}
		for s := uint(33); s < 64; s++ {
			want := bits.RotateLeft64(x, -int(s))
			if got := join(lane.RotrBH(hi, lo, s), lane.RotrBL(hi, lo, s)); got != want {
				t.Fatalf("rotr(%016x, %d) = %016x, want = %016x", x, s, got, want)
			}
		}
	}
}

func TestRotr32(t *testing.T) {
	t.Parallel()

	x := uint64(0x0123456789abcdef)
	hi, lo := split(x)
	if got, want := join(lane.Rotr32H(hi, lo), lane.Rotr32L(hi, lo)), uint64(0x89abcdef01234567); got != want {
		t.Errorf("rotr32(%016x) = %016x, want = %016x", x, got, want)
	}
}
