package mem_test

import (
	"bytes"
	"testing"

	"github.com/codahale/sha3x/internal/mem"
)

func TestXORInPlace(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 16, 17, 168} {
		dst := bytes.Repeat([]byte{0xF0}, n)
		src := bytes.Repeat([]byte{0x0F}, n)
		mem.XORInPlace(dst, src)
		if want := bytes.Repeat([]byte{0xFF}, n); !bytes.Equal(dst, want) {
			t.Errorf("XORInPlace(n=%d) = %x, want = %x", n, dst, want)
		}
	}
}

func TestSliceForAppend(t *testing.T) {
	t.Parallel()

	in := make([]byte, 2, 10)
	head, tail := mem.SliceForAppend(in, 4)
	if len(head) != 6 || len(tail) != 4 {
		t.Fatalf("len(head), len(tail) = %d, %d, want = 6, 4", len(head), len(tail))
	}
	if &head[0] != &in[:1][0] {
		t.Error("SliceForAppend allocated despite sufficient capacity")
	}
	tail[0] = 0xFF
	if head[2] != 0xFF {
		t.Error("tail does not alias head")
	}
}
