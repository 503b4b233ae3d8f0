package sha3x

import (
	"bytes"
	"fmt"
)

// An Option customizes a construction. Options which do not apply to a construction are ignored by it.
type Option func(*options)

// WithDkLen sets the output length in bytes. For XOF-capable functions this is the length Digest produces.
func WithDkLen(n int) Option {
	return func(o *options) {
		o.dkLen, o.dkLenSet = n, true
	}
}

// WithPersonalization sets the customization string (S for cSHAKE and its derived functions, C for KangarooTwelve and
// MarsupilamiFourteen).
func WithPersonalization(s []byte) Option {
	return func(o *options) {
		o.personalization = bytes.Clone(s)
	}
}

// WithFunctionName sets the cSHAKE function-name string N. It is reserved for functions defined by NIST.
func WithFunctionName(n []byte) Option {
	return func(o *options) {
		o.functionName = bytes.Clone(n)
	}
}

// WithDomain sets the TurboSHAKE domain separation byte. It must be in [0x01, 0x7F]; the default is 0x1F.
func WithDomain(d byte) Option {
	return func(o *options) {
		o.domain, o.domainSet = d, true
	}
}

// WithBlockLen sets the ParallelHash block size B in bytes. The default is 8.
func WithBlockLen(b int) Option {
	return func(o *options) {
		o.blockLen, o.blockLenSet = b, true
	}
}

type options struct {
	dkLen           int
	personalization []byte
	functionName    []byte
	blockLen        int
	domain          byte
	dkLenSet        bool
	domainSet       bool
	blockLenSet     bool
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// outputLen returns the requested output length or def if none was given.
func (o *options) outputLen(def int) (int, error) {
	if !o.dkLenSet {
		return def, nil
	}
	if o.dkLen < 0 {
		return 0, fmt.Errorf("%w: negative output length %d", ErrConfig, o.dkLen)
	}
	return o.dkLen, nil
}
