// Package lane implements rotations of 64-bit Keccak lanes held as pairs of 32-bit halves.
//
// Each function takes the high and low halves of a lane and returns one half of the result. The S variants handle
// shift amounts in 1..31, the B variants handle 33..63, and Rotr32H/Rotr32L handle a rotation by exactly 32, which only
// swaps the halves.
package lane

// RotlSH returns the high half of (hi:lo) rotated left by s, 0 < s < 32.
func RotlSH(hi, lo uint32, s uint) uint32 { return hi<<s | lo>>(32-s) }

// RotlSL returns the low half of (hi:lo) rotated left by s, 0 < s < 32.
func RotlSL(hi, lo uint32, s uint) uint32 { return lo<<s | hi>>(32-s) }

// RotlBH returns the high half of (hi:lo) rotated left by s, 32 < s < 64.
func RotlBH(hi, lo uint32, s uint) uint32 { return lo<<(s-32) | hi>>(64-s) }

// RotlBL returns the low half of (hi:lo) rotated left by s, 32 < s < 64.
func RotlBL(hi, lo uint32, s uint) uint32 { return hi<<(s-32) | lo>>(64-s) }

// RotrSH returns the high half of (hi:lo) rotated right by s, 0 < s < 32.
func RotrSH(hi, lo uint32, s uint) uint32 { return hi>>s | lo<<(32-s) }

// RotrSL returns the low half of (hi:lo) rotated right by s, 0 < s < 32.
func RotrSL(hi, lo uint32, s uint) uint32 { return lo>>s | hi<<(32-s) }

// RotrBH returns the high half of (hi:lo) rotated right by s, 32 < s < 64.
func RotrBH(hi, lo uint32, s uint) uint32 { return lo>>(s-32) | hi<<(64-s) }

// RotrBL returns the low half of (hi:lo) rotated right by s, 32 < s < 64.
func RotrBL(hi, lo uint32, s uint) uint32 { return hi>>(s-32) | lo<<(64-s) }

// Rotr32H returns the high half of (hi:lo) rotated by 32 bits.
func Rotr32H(_, lo uint32) uint32 { return lo }

// Rotr32L returns the low half of (hi:lo) rotated by 32 bits.
func Rotr32L(hi, _ uint32) uint32 { return hi }

// RotlH returns the high half of (hi:lo) rotated left by s, 0 < s < 64.
func RotlH(hi, lo uint32, s uint) uint32 {
	switch {
	case s < 32:
		return RotlSH(hi, lo, s)
	case s == 32:
		return Rotr32H(hi, lo)
	default:
		return RotlBH(hi, lo, s)
	}
}

// RotlL returns the low half of (hi:lo) rotated left by s, 0 < s < 64.
func RotlL(hi, lo uint32, s uint) uint32 {
	switch {
	case s < 32:
		return RotlSL(hi, lo, s)
	case s == 32:
		return Rotr32L(hi, lo)
	default:
		return RotlBL(hi, lo, s)
	}
}
