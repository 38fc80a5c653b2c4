package bitstream

import (
	"fmt"

	"github.com/arloliu/hufftree/errs"
)

// MaxBitsPerCall is the widest field a single ReadBits or WriteBits call accepts.
const MaxBitsPerCall = 64

// Reader reads fixed-width bit fields.
type Reader interface {
	// ReadBits returns the next n bits as the low n bits of the result.
	// It returns io.EOF if fewer than n bits remain.
	ReadBits(n uint8) (uint64, error)
}

// ResettableReader is a Reader that can rewind to the start of its stream.
type ResettableReader interface {
	Reader

	// Reset rewinds the reader so the same bits can be read again.
	Reset() error
}

// Writer writes fixed-width bit fields.
type Writer interface {
	// WriteBits appends the low n bits of value.
	WriteBits(value uint64, n uint8) error

	// Close flushes buffered bits, zero-padding the final partial byte.
	Close() error
}

func checkBitCount(n uint8) error {
	if n > MaxBitsPerCall {
		return fmt.Errorf("%w: %d bits requested, max %d", errs.ErrInvalidBitCount, n, MaxBitsPerCall)
	}

	return nil
}
