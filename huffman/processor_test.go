package huffman

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/hufftree/bitstream"
	"github.com/arloliu/hufftree/errs"
	"github.com/arloliu/hufftree/format"
)

func TestProcessor_EmptyInput(t *testing.T) {
	compressed, stats := compressBytes(t, nil)

	require.Equal(t, []byte{0xfa, 0xce, 0x82, 0x01, 0xc0, 0x00}, compressed)
	require.Equal(t, Stats{InputBits: 0, OutputBits: 42, HeaderBits: 42, PayloadBits: 0, Symbols: 1}, stats)
	require.Equal(t, int64(6), stats.OutputBytes())

	decoded, dstats, err := decompressBytes(compressed)
	require.NoError(t, err)
	require.Empty(t, decoded)
	require.Equal(t, Stats{InputBits: 42, OutputBits: 0, HeaderBits: 42, PayloadBits: 0, Symbols: 1}, dstats)
}

func TestProcessor_RepeatedByte(t *testing.T) {
	compressed, stats := compressBytes(t, []byte("AAAA"))

	// payload 11110 follows the 53 header bits
	require.Equal(t, []byte{0xfa, 0xce, 0x82, 0x01, 0x60, 0x12, 0x0f, 0x80}, compressed)
	require.Equal(t, Stats{InputBits: 32, OutputBits: 58, HeaderBits: 53, PayloadBits: 5, Symbols: 2}, stats)
	require.Equal(t, int64(4), stats.InputBytes())

	decoded, dstats, err := decompressBytes(compressed)
	require.NoError(t, err)
	require.Equal(t, []byte("AAAA"), decoded)
	require.Equal(t, Stats{InputBits: 58, OutputBits: 32, HeaderBits: 53, PayloadBits: 5, Symbols: 2}, dstats)
}

func TestProcessor_MalformedMagic(t *testing.T) {
	compressed, _ := compressBytes(t, []byte("AAAA"))
	compressed[0] ^= 0xff

	_, _, err := decompressBytes(compressed)
	require.ErrorIs(t, err, errs.ErrInvalidFormat)
	require.NotErrorIs(t, err, errs.ErrCorruptTree)
}

func TestProcessor_TruncatedStream(t *testing.T) {
	compressed, _ := compressBytes(t, []byte("AAAA"))

	tests := []struct {
		name string
		data []byte
	}{
		{"payload without pseudo eof", compressed[:7]},
		{"header cut", compressed[:6]},
		{"magic cut", compressed[:3]},
		{"nothing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := decompressBytes(tt.data)
			require.ErrorIs(t, err, errs.ErrTruncatedStream)
		})
	}
}

func TestProcessor_RoundTrip(t *testing.T) {
	for name, data := range sampleInputs {
		t.Run(name, func(t *testing.T) {
			compressed, stats := compressBytes(t, data)
			require.Equal(t, int64(len(data))*8, stats.InputBits)
			require.Equal(t, stats.HeaderBits+stats.PayloadBits, stats.OutputBits)
			require.Equal(t, stats.OutputBytes(), int64(len(compressed)))

			decoded, dstats, err := decompressBytes(compressed)
			require.NoError(t, err)
			require.Equal(t, len(data), len(decoded))
			require.True(t, bytes.Equal(data, decoded))
			require.Equal(t, stats.OutputBits, dstats.InputBits)
			require.Equal(t, stats.InputBits, dstats.OutputBits)
			require.Equal(t, stats.Symbols, dstats.Symbols)
		})
	}
}

func TestProcessor_Deterministic(t *testing.T) {
	for name, data := range sampleInputs {
		t.Run(name, func(t *testing.T) {
			first, _ := compressBytes(t, data)
			second, _ := compressBytes(t, data)
			require.Equal(t, first, second)
		})
	}
}

func TestProcessor_StreamTransport(t *testing.T) {
	data := sampleInputs["text"]
	want, _ := compressBytes(t, data)

	p, err := NewProcessor()
	require.NoError(t, err)

	var compressed bytes.Buffer
	_, err = p.Compress(bitstream.NewStreamReader(bytes.NewReader(data)), bitstream.NewStreamWriter(&compressed))
	require.NoError(t, err)
	require.Equal(t, want, compressed.Bytes())

	var decoded bytes.Buffer
	_, err = p.Decompress(bitstream.NewStreamReader(&compressed), bitstream.NewStreamWriter(&decoded))
	require.NoError(t, err)
	require.Equal(t, data, decoded.Bytes())
}

func TestProcessor_NonSeekableInput(t *testing.T) {
	p, err := NewProcessor()
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = p.Compress(bitstream.NewStreamReader(bytes.NewBufferString("abc")), bitstream.NewStreamWriter(&out))
	require.ErrorIs(t, err, errs.ErrNotResettable)
}

func TestProcessor_ConcurrentUse(t *testing.T) {
	p, err := NewProcessor()
	require.NoError(t, err)

	var g errgroup.Group
	for _, data := range sampleInputs {
		g.Go(func() error {
			w := bitstream.NewMemoryWriter()
			defer w.Release()
			if _, err := p.Compress(bitstream.NewMemoryReader(data), w); err != nil {
				return err
			}

			out := bitstream.NewMemoryWriter()
			defer out.Release()
			if _, err := p.Decompress(bitstream.NewMemoryReader(w.Bytes()), out); err != nil {
				return err
			}
			if !bytes.Equal(data, out.Bytes()) {
				return fmt.Errorf("round trip mismatch for %d bytes", len(data))
			}

			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestProcessor_Options(t *testing.T) {
	_, err := NewProcessor(WithVerbosity(format.Verbosity(3)))
	require.ErrorIs(t, err, errs.ErrInvalidVerbosity)

	_, err = NewProcessor(WithLogger(nil))
	require.ErrorIs(t, err, errs.ErrNilLogger)

	p, err := NewProcessor(WithVerbosity(format.VerbosityHigh), WithLogger(slog.Default()))
	require.NoError(t, err)
	require.Equal(t, format.VerbosityHigh, p.cfg.verbosity)
}

func TestProcessor_Logging(t *testing.T) {
	tests := []struct {
		verbosity format.Verbosity
		contains  []string
		excludes  []string
	}{
		{
			verbosity: format.VerbosityNone,
			excludes:  []string{"frequencies counted", "compressed", "decompressed"},
		},
		{
			verbosity: format.VerbosityLow,
			contains:  []string{"frequencies counted", "distinct_symbols=2", "msg=compressed", "msg=decompressed", "payload_bits=5"},
			excludes:  []string{"code tree", "msg=frequency"},
		},
		{
			verbosity: format.VerbosityHigh,
			contains:  []string{"frequencies counted", "msg=frequency", "symbol=EOF", "code tree", "code table", "msg=compressed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.verbosity.String(), func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			opts := []Option{WithVerbosity(tt.verbosity), WithLogger(logger)}

			compressed, _ := compressBytes(t, []byte("AAAA"), opts...)
			_, _, err := decompressBytes(compressed, opts...)
			require.NoError(t, err)

			out := buf.String()
			for _, s := range tt.contains {
				require.True(t, strings.Contains(out, s), "missing %q in:\n%s", s, out)
			}
			for _, s := range tt.excludes {
				require.False(t, strings.Contains(out, s), "unexpected %q in:\n%s", s, out)
			}
		})
	}
}

func TestProcessor_LogAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	// attrs given before the logger still reach it
	opts := []Option{
		WithLogAttrs(slog.String("file", "input.txt")),
		WithVerbosity(format.VerbosityLow),
		WithLogger(logger),
		WithLogAttrs(slog.Int("run", 2)),
	}
	compressed, _ := compressBytes(t, []byte("AAAA"), opts...)
	_, _, err := decompressBytes(compressed, opts...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		require.Contains(t, line, "file=input.txt")
		require.Contains(t, line, "run=2")
	}
}

func BenchmarkProcessor_Compress(b *testing.B) {
	data := skewed(64 * 1024)
	p, _ := NewProcessor()

	b.SetBytes(int64(len(data)))
	for b.Loop() {
		w := bitstream.NewMemoryWriter()
		_, _ = p.Compress(bitstream.NewMemoryReader(data), w)
		w.Release()
	}
}

func BenchmarkProcessor_Decompress(b *testing.B) {
	data := skewed(64 * 1024)
	p, _ := NewProcessor()

	w := bitstream.NewMemoryWriter()
	_, _ = p.Compress(bitstream.NewMemoryReader(data), w)
	compressed := bytes.Clone(w.Bytes())
	w.Release()

	b.SetBytes(int64(len(data)))
	for b.Loop() {
		out := bitstream.NewMemoryWriter()
		_, _ = p.Decompress(bitstream.NewMemoryReader(compressed), out)
		out.Release()
	}
}
