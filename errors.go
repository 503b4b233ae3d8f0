package sha3x

import "errors"

var (
	// ErrConfig is returned when a construction is given an invalid rate, round count, or output length.
	ErrConfig = errors.New("sha3x: invalid configuration")

	// ErrFinalized is returned when an instance is written to, digested, or cloned after it has been finalized.
	ErrFinalized = errors.New("sha3x: instance already finalized")

	// ErrMode is returned when Digest and XOF are mixed on one instance, or when XOF output is requested from a
	// fixed-length function.
	ErrMode = errors.New("sha3x: invalid output mode")

	// ErrDestroyed is returned when an instance is used after Destroy.
	ErrDestroyed = errors.New("sha3x: instance destroyed")

	// ErrDomain is returned when a TurboSHAKE domain separation byte is outside [0x01, 0x7F].
	ErrDomain = errors.New("sha3x: invalid domain separation byte")

	// ErrShortBuffer is returned when a digest destination is shorter than the instance's output length.
	ErrShortBuffer = errors.New("sha3x: output buffer too short")
)
