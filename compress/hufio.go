package compress

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/icza/huffman/hufio"

	"github.com/arloliu/hufftree/errs"
	"github.com/arloliu/hufftree/internal/pool"
)

// maxAdaptiveSize bounds the length prefix accepted by Decompress.
const maxAdaptiveSize = 128 * 1024 * 1024

// AdaptiveHuffmanCompressor uses hufio, which adapts its code to the symbols seen so
// far and stores no tree. The payload is prefixed with the input length as a uvarint,
// since the trailing padding bits could otherwise decode as extra symbols.
type AdaptiveHuffmanCompressor struct{}

var _ Codec = (*AdaptiveHuffmanCompressor)(nil)

// NewAdaptiveHuffmanCompressor creates an adaptive Huffman codec.
func NewAdaptiveHuffmanCompressor() AdaptiveHuffmanCompressor {
	return AdaptiveHuffmanCompressor{}
}

// Compress writes the length prefix followed by the hufio stream.
func (c AdaptiveHuffmanCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := pool.GetCodecBuffer()
	defer pool.PutCodecBuffer(buf)

	buf.B = binary.AppendUvarint(buf.B, uint64(len(data)))

	hw := hufio.NewWriter(buf)
	if _, err := hw.Write(data); err != nil {
		return nil, fmt.Errorf("adaptive huffman compression failed: %w", err)
	}
	if err := hw.Close(); err != nil {
		return nil, fmt.Errorf("adaptive huffman compression failed: %w", err)
	}

	return bytes.Clone(buf.Bytes()), nil
}

// Decompress reads exactly as many bytes as the length prefix announces.
func (c AdaptiveHuffmanCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, fmt.Errorf("%w: adaptive huffman length prefix", errs.ErrTruncatedStream)
	}
	if size > maxAdaptiveSize {
		return nil, fmt.Errorf("%w: adaptive huffman length %d exceeds %d", errs.ErrInvalidFormat, size, maxAdaptiveSize)
	}

	out := make([]byte, size)
	if _, err := io.ReadFull(hufio.NewReader(bytes.NewReader(data[n:])), out); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: adaptive huffman payload", errs.ErrTruncatedStream)
		}

		return nil, fmt.Errorf("adaptive huffman decompression failed: %w", err)
	}

	return out, nil
}
