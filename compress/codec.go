package compress

import (
	"fmt"
	"time"

	"github.com/arloliu/hufftree/errs"
	"github.com/arloliu/hufftree/format"
)

// Compressor compresses a complete payload.
type Compressor interface {
	// Compress returns the compressed form of data. The input is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Thread Safety: implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress returns the original data, or an error if data is corrupt or was
	// produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one measured round trip.
type CompressionStats struct {
	// Algorithm identifies the codec.
	Algorithm format.CompressionType

	// OriginalSize is the input size in bytes.
	OriginalSize int64

	// CompressedSize is the compressed size in bytes.
	CompressedSize int64

	// Ratio is CompressedSize / OriginalSize, 0 for an empty input.
	Ratio float64

	// CompressionTime is the wall time of Compress.
	CompressionTime time.Duration

	// DecompressionTime is the wall time of Decompress.
	DecompressionTime time.Duration
}

// CompressionRatio returns compressed size / original size, or 0 if the original is empty.
// Values below 1.0 mean the codec saved space.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage. It is negative when the
// codec expanded the input.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec creates a new Codec for compressionType.
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionHuffman:
		return NewHuffmanCompressor(), nil
	case format.CompressionAdaptiveHuffman:
		return NewAdaptiveHuffmanCompressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCodec, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:            NewNoOpCompressor(),
	format.CompressionZstd:            NewZstdCompressor(),
	format.CompressionS2:              NewS2Compressor(),
	format.CompressionLZ4:             NewLZ4Compressor(),
	format.CompressionHuffman:         NewHuffmanCompressor(),
	format.CompressionAdaptiveHuffman: NewAdaptiveHuffmanCompressor(),
}

// GetCodec returns the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCodec, compressionType)
}
