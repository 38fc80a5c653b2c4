// Package hash computes the xxHash64 digests used to verify round trips.
package hash

import (
	"io"

	"github.com/cespare/xxhash/v2"
)

// Digest returns the xxHash64 of data.
func Digest(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// DigestReader consumes r and returns its xxHash64 together with the number of bytes read.
func DigestReader(r io.Reader) (uint64, int64, error) {
	d := xxhash.New()
	n, err := io.Copy(d, r)
	if err != nil {
		return 0, n, err
	}

	return d.Sum64(), n, nil
}

// Writer hashes everything written through it and forwards the bytes to an
// optional destination.
type Writer struct {
	d   *xxhash.Digest
	dst io.Writer
}

var _ io.Writer = (*Writer)(nil)

// NewWriter returns a Writer forwarding to dst. A nil dst only hashes.
func NewWriter(dst io.Writer) *Writer {
	return &Writer{d: xxhash.New(), dst: dst}
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.dst != nil {
		n, err := w.dst.Write(p)
		_, _ = w.d.Write(p[:n])

		return n, err
	}

	return w.d.Write(p)
}

// Sum64 returns the digest of everything written so far.
func (w *Writer) Sum64() uint64 {
	return w.d.Sum64()
}
