// Package bitstream provides the bit-level transports the Huffman codec reads from
// and writes to.
//
// Bits are ordered most-significant first within each field and within each byte,
// so a 32-bit field written with WriteBits(v, 32) occupies the next four bytes in
// big-endian order when the stream is byte aligned.
//
// # Implementations
//
//   - MemoryReader / MemoryWriter: byte slices, with pooled output buffers
//   - StreamReader / StreamWriter: any io.Reader / io.Writer, backed by github.com/icza/bitio
//   - CountingReader / CountingWriter: decorators tracking how many bits passed through
//
// # End of Stream
//
// Readers return io.EOF when fewer than the requested number of bits remain. A
// short read never returns a partial value.
//
// # Padding
//
// Writers buffer a partial trailing byte until Close, which writes it padded with
// zero bits. Close never closes an underlying io.Writer.
package bitstream
