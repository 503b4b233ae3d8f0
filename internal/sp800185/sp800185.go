// Package sp800185 implements the string encodings from [NIST SP 800-185] used to customize cSHAKE and the functions
// derived from it.
//
// [NIST SP 800-185]: https://www.nist.gov/publications/sha-3-derived-functions-cshake-kmac-tuplehash-and-parallelhash
package sp800185

import (
	"math/bits"
)

// MaxSize is the length, in bytes, of the largest encoded integer.
const MaxSize = 9

// AppendLeftEncode encodes an integer value using NIST SP 800-185's left_encode and appends it to b.
func AppendLeftEncode(b []byte, value uint64) []byte {
	n := 8 - (bits.LeadingZeros64(value|1) / 8)
	value <<= (8 - n) * 8
	b = append(b, byte(n))
	for range n {
		b = append(b, byte(value>>56))
		value <<= 8
	}
	return b
}

// AppendRightEncode encodes an integer value using NIST SP 800-185's right_encode and appends it to b.
func AppendRightEncode(b []byte, value uint64) []byte {
	n := 8 - (bits.LeadingZeros64(value|1) / 8)
	value <<= (8 - n) * 8
	for range n {
		b = append(b, byte(value>>56))
		value <<= 8
	}
	b = append(b, byte(n))
	return b
}

// AppendEncodeString appends encode_string(s), the left_encode of the bit length of s followed by s, to b.
func AppendEncodeString(b, s []byte) []byte {
	b = AppendLeftEncode(b, uint64(len(s))*8)
	return append(b, s...)
}

// AppendBytepad appends bytepad(encode_string(s[0]) || ... || encode_string(s[n-1]), w) to b: the strings are prefixed
// with left_encode(w) and the result is zero-padded to a multiple of w bytes.
func AppendBytepad(b []byte, w int, s ...[]byte) []byte {
	start := len(b)
	b = AppendLeftEncode(b, uint64(w)) //nolint:gosec // w is a sponge rate
	for _, x := range s {
		b = AppendEncodeString(b, x)
	}
	if r := (len(b) - start) % w; r != 0 {
		b = append(b, make([]byte, w-r)...)
	}
	return b
}
