// Package compress exposes the Huffman processor and a set of general-purpose
// algorithms behind one Codec interface, so they can be selected by
// format.CompressionType and measured side by side.
//
// # Codecs
//
//   - None (format.CompressionNone): returns the input unchanged, the baseline
//   - Zstd (format.CompressionZstd): Zstandard, klauspost/compress by default or
//     valyala/gozstd when built with the gozstd tag and cgo enabled
//   - S2 (format.CompressionS2): klauspost/compress/s2
//   - LZ4 (format.CompressionLZ4): pierrec/lz4 frames
//   - Huffman (format.CompressionHuffman): the static per-input code of package huffman
//   - AdaptiveHuffman (format.CompressionAdaptiveHuffman): icza/huffman/hufio, which
//     rebuilds its code as it reads instead of storing a tree
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionHuffman)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(data)
//
// Compare runs every requested codec over its own copy of the input concurrently
// and reports sizes and timings, checking each round trip with an xxhash digest:
//
//	stats, err := compress.Compare(ctx, data)
//	for _, s := range stats {
//	    fmt.Printf("%-16s %8d %6.2f%%\n", s.Algorithm, s.CompressedSize, s.SpaceSavings())
//	}
//
// # Empty Input
//
// Every codec round-trips an empty input. The Huffman codec always emits a header,
// so its compressed form of an empty input is six bytes rather than nil.
//
// # Thread Safety
//
// All codecs are safe for concurrent use. Encoders, decoders and buffers are pooled.
package compress
