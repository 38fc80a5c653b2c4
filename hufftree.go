// Package hufftree compresses byte streams with a Huffman code computed for each
// input and stored, as a preorder tree, in front of the coded payload.
//
// # Basic Usage
//
// Byte slices:
//
//	import "github.com/arloliu/hufftree"
//
//	compressed, err := hufftree.CompressBytes(data)
//	if err != nil {
//	    return err
//	}
//	original, err := hufftree.DecompressBytes(compressed)
//
// Files and other streams. Compression reads its input twice, so the source must
// be seekable:
//
//	in, _ := os.Open("input.txt")
//	out, _ := os.Create("input.txt.huf")
//	stats, err := hufftree.Compress(out, in)
//	fmt.Printf("%d -> %d bytes\n", stats.InputBytes(), stats.OutputBytes())
//
// Errors wrap the sentinels of package errs:
//
//	if errors.Is(err, errs.ErrInvalidFormat) {
//	    // not a hufftree stream
//	}
//
// # Package Structure
//
// This package wraps the huffman and bitstream packages for the common cases. Use
// huffman directly to inspect frequency tables, trees and code tables, and package
// compress to compare against general-purpose codecs.
package hufftree

import (
	"bytes"
	"io"

	"github.com/arloliu/hufftree/bitstream"
	"github.com/arloliu/hufftree/huffman"
	"github.com/arloliu/hufftree/internal/hash"
)

// CompressBytes compresses data.
//
// Parameters:
//   - data: Input bytes; may be empty
//   - opts: Processor options such as huffman.WithVerbosity
//
// Returns:
//   - []byte: Header and payload, never empty
//   - error: Option error
func CompressBytes(data []byte, opts ...huffman.Option) ([]byte, error) {
	p, err := huffman.NewProcessor(opts...)
	if err != nil {
		return nil, err
	}

	w := bitstream.NewMemoryWriter()
	defer w.Release()

	if _, err := p.Compress(bitstream.NewMemoryReader(data), w); err != nil {
		return nil, err
	}

	return bytes.Clone(w.Bytes()), nil
}

// DecompressBytes restores data compressed by CompressBytes or Compress.
//
// Parameters:
//   - data: A complete compressed stream; bytes after the end marker are ignored
//   - opts: Processor options such as huffman.WithVerbosity
//
// Returns:
//   - []byte: The original bytes, empty for an empty original
//   - error: errs.ErrInvalidFormat, errs.ErrTruncatedStream, errs.ErrCorruptTree or an option error
func DecompressBytes(data []byte, opts ...huffman.Option) ([]byte, error) {
	p, err := huffman.NewProcessor(opts...)
	if err != nil {
		return nil, err
	}

	w := bitstream.NewMemoryWriter()
	defer w.Release()

	if _, err := p.Decompress(bitstream.NewMemoryReader(data), w); err != nil {
		return nil, err
	}

	return bytes.Clone(w.Bytes()), nil
}

// Compress reads src from its current offset to the end, rewinds it, and writes
// the compressed stream to dst. dst is flushed but not closed.
//
// Parameters:
//   - dst: Destination of the header and payload
//   - src: Input, read twice; it is left at its end
//   - opts: Processor options such as huffman.WithVerbosity
//
// Returns:
//   - huffman.Stats: Input, header and payload sizes in bits
//   - error: Read, seek, write or option error
func Compress(dst io.Writer, src io.ReadSeeker, opts ...huffman.Option) (huffman.Stats, error) {
	p, err := huffman.NewProcessor(opts...)
	if err != nil {
		return huffman.Stats{}, err
	}

	return p.Compress(bitstream.NewStreamReader(src), bitstream.NewStreamWriter(dst))
}

// Decompress reads a compressed stream from src and writes the original bytes to
// dst. dst is flushed but not closed. src may be read past the end of the stream.
//
// Parameters:
//   - dst: Destination of the original bytes
//   - src: Compressed input; need not be seekable
//   - opts: Processor options such as huffman.WithVerbosity
//
// Returns:
//   - huffman.Stats: Compressed bits consumed and original bits produced
//   - error: errs.ErrInvalidFormat, errs.ErrTruncatedStream, errs.ErrCorruptTree, or a
//     read, write or option error
func Decompress(dst io.Writer, src io.Reader, opts ...huffman.Option) (huffman.Stats, error) {
	p, err := huffman.NewProcessor(opts...)
	if err != nil {
		return huffman.Stats{}, err
	}

	return p.Decompress(bitstream.NewStreamReader(src), bitstream.NewStreamWriter(dst))
}

// Checksum returns the 64-bit xxHash of data, for checking round trips.
func Checksum(data []byte) uint64 {
	return hash.Digest(data)
}
