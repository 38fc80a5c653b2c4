package bitstream

import (
	"encoding/binary"
	"io"

	"github.com/arloliu/hufftree/errs"
	"github.com/arloliu/hufftree/internal/pool"
)

// MemoryWriter accumulates bits into a pooled byte buffer.
//
// Bits are gathered in a 64-bit register and flushed to the buffer in big-endian
// order whenever the register fills. Call Release once the bytes are no longer
// needed to return the buffer to the pool.
type MemoryWriter struct {
	bitBuf   uint64           // pending bits, right-aligned
	bitCount int              // number of valid bits in bitBuf
	written  int64            // total bits accepted
	closed   bool             // set by Close
	buf      *pool.ByteBuffer // flushed bytes
}

var _ Writer = (*MemoryWriter)(nil)

// NewMemoryWriter creates a MemoryWriter backed by a pooled buffer.
func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{
		buf: pool.GetBitBuffer(),
	}
}

// WriteBits appends the low n bits of value.
func (w *MemoryWriter) WriteBits(value uint64, n uint8) error {
	if w.closed || w.buf == nil {
		return errs.ErrWriterClosed
	}
	if err := checkBitCount(n); err != nil {
		return err
	}

	w.writeBits(value, int(n))
	w.written += int64(n)

	return nil
}

// Close flushes pending bits, padding the last byte with zeros.
// Closing an already closed writer is a no-op.
func (w *MemoryWriter) Close() error {
	if w.closed {
		return nil
	}
	if w.buf != nil {
		w.flushBits()
	}
	w.closed = true

	return nil
}

// Bytes returns the flushed bytes. Bits still pending in the register are only
// included after Close.
//
// The returned slice aliases the internal buffer and is invalid after Release.
func (w *MemoryWriter) Bytes() []byte {
	if w.buf == nil {
		return nil
	}

	return w.buf.Bytes()
}

// BitsWritten returns the number of bits accepted so far, excluding padding.
func (w *MemoryWriter) BitsWritten() int64 {
	return w.written
}

// Release returns the buffer to the pool. The writer is unusable afterwards.
func (w *MemoryWriter) Release() {
	if w.buf == nil {
		return
	}

	pool.PutBitBuffer(w.buf)
	w.buf = nil
	w.closed = true
}

// writeBits handles 0-64 bits, splitting across the register boundary when needed.
func (w *MemoryWriter) writeBits(value uint64, numBits int) {
	if numBits == 0 {
		return
	}

	if numBits < 64 {
		value &= (1 << numBits) - 1
	}

	available := 64 - w.bitCount
	if numBits <= available {
		w.bitBuf = (w.bitBuf << numBits) | value
		w.bitCount += numBits

		if w.bitCount == 64 {
			w.flushBits()
		}

		return
	}

	// high part fills the register, low part starts the next one
	lowBits := numBits - available
	w.bitBuf = (w.bitBuf << available) | (value >> lowBits)
	w.bitCount = 64
	w.flushBits()

	w.bitBuf = value & ((1 << lowBits) - 1)
	w.bitCount = lowBits
}

// flushBits moves the register into the byte buffer, left-aligned, so a partial
// final byte is padded with zero bits.
func (w *MemoryWriter) flushBits() {
	if w.bitCount == 0 {
		return
	}

	numBytes := (w.bitCount + 7) / 8
	alignedBits := w.bitBuf << (64 - w.bitCount)

	startLen := w.buf.Len()
	w.buf.ExtendOrGrow(numBytes)
	bs := w.buf.Slice(startLen, startLen+numBytes)

	if numBytes == 8 {
		binary.BigEndian.PutUint64(bs, alignedBits)
	} else {
		for i := range numBytes {
			bs[i] = byte(alignedBits >> (56 - i*8))
		}
	}

	w.bitBuf = 0
	w.bitCount = 0
}

// MemoryReader reads bits from a byte slice.
type MemoryReader struct {
	data     []byte
	bytePos  int    // next byte to load into bitBuf
	bitBuf   uint64 // unread bits, left-aligned
	bitCount int    // number of valid bits in bitBuf
}

var _ ResettableReader = (*MemoryReader)(nil)

// NewMemoryReader creates a reader over data. The slice is not copied.
func NewMemoryReader(data []byte) *MemoryReader {
	return &MemoryReader{data: data}
}

// ReadBits returns the next n bits, or io.EOF if fewer than n bits remain.
func (r *MemoryReader) ReadBits(n uint8) (uint64, error) {
	if err := checkBitCount(n); err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	if r.remaining() < int(n) {
		return 0, io.EOF
	}

	return r.readBits(int(n)), nil
}

// Reset rewinds to the first bit.
func (r *MemoryReader) Reset() error {
	r.bytePos = 0
	r.bitBuf = 0
	r.bitCount = 0

	return nil
}

func (r *MemoryReader) remaining() int {
	return r.bitCount + (len(r.data)-r.bytePos)*8
}

// readBits assumes at least numBits are available.
func (r *MemoryReader) readBits(numBits int) uint64 {
	if numBits <= r.bitCount {
		result := r.bitBuf >> (64 - numBits)
		r.bitBuf <<= numBits
		r.bitCount -= numBits

		return result
	}

	var result uint64
	for numBits > 0 {
		if r.bitCount == 0 {
			r.fillBuffer()
		}

		take := min(numBits, r.bitCount)
		result = (result << take) | (r.bitBuf >> (64 - take))
		r.bitBuf <<= take
		r.bitCount -= take
		numBits -= take
	}

	return result
}

// fillBuffer loads up to 8 bytes into the empty register.
func (r *MemoryReader) fillBuffer() {
	bytesToRead := min(8, len(r.data)-r.bytePos)

	if bytesToRead == 8 {
		r.bitBuf = binary.BigEndian.Uint64(r.data[r.bytePos : r.bytePos+8])
		r.bytePos += 8
		r.bitCount = 64

		return
	}

	r.bitBuf = 0
	for i := 0; i < bytesToRead; i++ {
		r.bitBuf = (r.bitBuf << 8) | uint64(r.data[r.bytePos])
		r.bytePos++
	}
	r.bitBuf <<= (8 - bytesToRead) * 8
	r.bitCount = bytesToRead * 8
}
