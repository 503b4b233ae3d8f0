// Package digest adapts the sha3x constructions to the standard library's hashing interfaces and hashes batches of
// independent messages in parallel.
package digest

import (
	"context"
	"fmt"
	"hash"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/codahale/sha3x/internal/mem"
)

// A Hasher is an incremental construction with a fixed output length, such as a *sha3x.Sponge, a *sha3x.ParallelHash,
// or a *sha3x.KangarooTwelve.
type Hasher[H any] interface {
	io.Writer
	Clone() (H, error)
	DigestInto(dst []byte) error
	Destroy()
	Size() int
	BlockSize() int
}

// New returns a hash.Hash backed by instances from newFn. Sum finalizes a clone of the running instance, so more data
// can be written after it. Reset replaces the running instance with a fresh one from newFn.
func New[H Hasher[H]](newFn func() (H, error)) (hash.Hash, error) {
	h, err := newFn()
	if err != nil {
		return nil, err
	}
	return &digest[H]{h: h, newFn: newFn}, nil
}

type digest[H Hasher[H]] struct {
	h     H
	newFn func() (H, error)
}

func (d *digest[H]) Write(p []byte) (n int, err error) {
	return d.h.Write(p)
}

func (d *digest[H]) Sum(b []byte) []byte {
	c, err := d.h.Clone()
	if err != nil {
		panic(err) // the running instance is never finalized
	}

	ret, out := mem.SliceForAppend(b, c.Size())
	if err := c.DigestInto(out); err != nil {
		panic(err)
	}
	return ret
}

func (d *digest[H]) Reset() {
	h, err := d.newFn()
	if err != nil {
		panic(err) // newFn succeeded once with the same arguments
	}
	d.h.Destroy()
	d.h = h
}

func (d *digest[H]) Size() int {
	return d.h.Size()
}

func (d *digest[H]) BlockSize() int {
	return d.h.BlockSize()
}

// A Reader absorbs everything read through it into a hash.
type Reader struct {
	r   io.Reader
	w   io.Writer
	n   uint64
	err error
}

// NewReader returns a Reader which reads from r and writes every byte it reads to w, usually an unfinalized instance.
// If w returns an error, the Reader stops and returns that error.
func NewReader(r io.Reader, w io.Writer) *Reader {
	return &Reader{r: r, w: w, n: 0, err: nil}
}

func (r *Reader) Read(p []byte) (n int, err error) {
	if r.err != nil {
		return 0, r.err
	}

	n, err = r.r.Read(p)
	if _, werr := r.w.Write(p[:n]); werr != nil {
		r.err = werr
		return n, werr
	}
	r.n += uint64(n) //nolint:gosec // n can't be <0
	return n, err
}

// N returns the number of bytes read and absorbed so far.
func (r *Reader) N() uint64 {
	return r.n
}

// SumAll returns the digests of msgs, each computed by its own clone of template. At most limit messages are hashed
// at once; a limit of zero or less means no limit. The template is only cloned, never finalized, so it can be
// customized or keyed once and reused.
//
// SumAll stops early and returns an error if ctx is canceled or if any clone fails.
func SumAll[H Hasher[H]](ctx context.Context, template H, msgs [][]byte, limit int) ([][]byte, error) {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	out := make([][]byte, len(msgs))
	for i, msg := range msgs {
		if gctx.Err() != nil {
			break
		}

		h, err := template.Clone()
		if err != nil {
			_ = g.Wait()
			return nil, fmt.Errorf("clone template: %w", err)
		}

		g.Go(func() error {
			defer h.Destroy()

			if err := gctx.Err(); err != nil {
				return err
			}

			if _, err := h.Write(msg); err != nil {
				return err
			}

			out[i] = make([]byte, h.Size())
			return h.DigestInto(out[i])
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
