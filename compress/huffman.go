package compress

import (
	"bytes"
	"fmt"

	"github.com/arloliu/hufftree/bitstream"
	"github.com/arloliu/hufftree/huffman"
)

// HuffmanCompressor runs a huffman.Processor over in-memory bit streams.
type HuffmanCompressor struct {
	proc *huffman.Processor
}

var _ Codec = (*HuffmanCompressor)(nil)

// NewHuffmanCompressor creates a Huffman codec with default processor settings.
func NewHuffmanCompressor() HuffmanCompressor {
	proc, err := huffman.NewProcessor()
	if err != nil {
		panic(fmt.Sprintf("failed to create default huffman processor: %v", err))
	}

	return HuffmanCompressor{proc: proc}
}

// NewHuffmanCompressorWithOptions creates a Huffman codec whose processor is
// configured by opts, typically to enable logging.
func NewHuffmanCompressorWithOptions(opts ...huffman.Option) (HuffmanCompressor, error) {
	proc, err := huffman.NewProcessor(opts...)
	if err != nil {
		return HuffmanCompressor{}, err
	}

	return HuffmanCompressor{proc: proc}, nil
}

// Compress returns the header and payload for data. An empty input still yields
// a header.
func (c HuffmanCompressor) Compress(data []byte) ([]byte, error) {
	w := bitstream.NewMemoryWriter()
	defer w.Release()

	if _, err := c.proc.Compress(bitstream.NewMemoryReader(data), w); err != nil {
		return nil, err
	}

	return bytes.Clone(w.Bytes()), nil
}

// Decompress decodes a stream produced by Compress.
func (c HuffmanCompressor) Decompress(data []byte) ([]byte, error) {
	w := bitstream.NewMemoryWriter()
	defer w.Release()

	if _, err := c.proc.Decompress(bitstream.NewMemoryReader(data), w); err != nil {
		return nil, err
	}

	return bytes.Clone(w.Bytes()), nil
}
