package bitstream

import (
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/arloliu/hufftree/errs"
)

// StreamReader reads bits from an io.Reader.
//
// Reset is only supported when the source implements io.Seeker; the reader then
// seeks back to the offset the source was at when the StreamReader was created.
type StreamReader struct {
	src     io.Reader
	br      *bitio.Reader
	start   int64
	seekErr error
}

var _ ResettableReader = (*StreamReader)(nil)

// NewStreamReader creates a StreamReader over src.
func NewStreamReader(src io.Reader) *StreamReader {
	r := &StreamReader{
		src: src,
		br:  bitio.NewReader(src),
	}

	seeker, ok := src.(io.Seeker)
	if !ok {
		r.seekErr = errs.ErrNotResettable
		return r
	}

	start, err := seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		r.seekErr = fmt.Errorf("%w: %w", errs.ErrNotResettable, err)
		return r
	}
	r.start = start

	return r
}

// ReadBits returns the next n bits, or io.EOF if the source ends first.
func (r *StreamReader) ReadBits(n uint8) (uint64, error) {
	if err := checkBitCount(n); err != nil {
		return 0, err
	}
	// bitio returns its cached byte for a zero-width read
	if n == 0 {
		return 0, nil
	}

	v, err := r.br.ReadBits(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, io.EOF
		}

		return 0, err
	}

	return v, nil
}

// Reset seeks the source back to its starting offset and drops any buffered bits.
func (r *StreamReader) Reset() error {
	if r.seekErr != nil {
		return r.seekErr
	}

	seeker, _ := r.src.(io.Seeker)
	if _, err := seeker.Seek(r.start, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrNotResettable, err)
	}
	r.br = bitio.NewReader(r.src)

	return nil
}

// StreamWriter writes bits to an io.Writer.
type StreamWriter struct {
	bw     *bitio.Writer
	closed bool
}

var _ Writer = (*StreamWriter)(nil)

// NewStreamWriter creates a StreamWriter over dst.
func NewStreamWriter(dst io.Writer) *StreamWriter {
	return &StreamWriter{bw: bitio.NewWriter(dst)}
}

// WriteBits appends the low n bits of value.
func (w *StreamWriter) WriteBits(value uint64, n uint8) error {
	if w.closed {
		return errs.ErrWriterClosed
	}
	if err := checkBitCount(n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	return w.bw.WriteBits(value, n)
}

// Close pads the final byte with zeros and flushes to the destination.
// The destination itself is left open.
func (w *StreamWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	return w.bw.Close()
}
