package compress

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/hufftree/errs"
	"github.com/arloliu/hufftree/format"
	"github.com/arloliu/hufftree/internal/hash"
)

// Measure compresses and decompresses data with codec, timing both directions.
// The restored data must hash to the same xxhash digest as the input, otherwise
// errs.ErrChecksumMismatch is returned.
func Measure(algorithm format.CompressionType, codec Codec, data []byte) (CompressionStats, error) {
	stats := CompressionStats{
		Algorithm:    algorithm,
		OriginalSize: int64(len(data)),
	}
	want := hash.Digest(data)

	start := time.Now()
	compressed, err := codec.Compress(data)
	stats.CompressionTime = time.Since(start)
	if err != nil {
		return stats, fmt.Errorf("%s compress: %w", algorithm, err)
	}
	stats.CompressedSize = int64(len(compressed))
	stats.Ratio = stats.CompressionRatio()

	start = time.Now()
	restored, err := codec.Decompress(compressed)
	stats.DecompressionTime = time.Since(start)
	if err != nil {
		return stats, fmt.Errorf("%s decompress: %w", algorithm, err)
	}

	if got := hash.Digest(restored); got != want {
		return stats, fmt.Errorf("%w: %s restored %016x, want %016x", errs.ErrChecksumMismatch, algorithm, got, want)
	}

	return stats, nil
}

// Compare measures each of types on its own copy of data, concurrently. With no
// types it measures every known codec. Results follow the order of types.
//
// The first failure cancels codecs that have not started yet and is returned.
func Compare(ctx context.Context, data []byte, types ...format.CompressionType) ([]CompressionStats, error) {
	if len(types) == 0 {
		types = format.CompressionTypes()
	}

	results := make([]CompressionStats, len(types))
	g, ctx := errgroup.WithContext(ctx)

	for i, typ := range types {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			codec, err := CreateCodec(typ)
			if err != nil {
				return err
			}

			stats, err := Measure(typ, codec, bytes.Clone(data))
			if err != nil {
				return err
			}
			results[i] = stats

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
