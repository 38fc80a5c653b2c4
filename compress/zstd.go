package compress

// ZstdCompressor uses Zstandard at its default level.
//
// The pure Go klauspost/compress implementation is used unless the module is
// built with the gozstd tag and cgo enabled, in which case valyala/gozstd binds
// the reference C library. Both produce standard frames, so data compressed by
// one build decompresses with the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
