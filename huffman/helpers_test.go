package huffman

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hufftree/bitstream"
	"github.com/arloliu/hufftree/format"
)

func bitsOf(c Code) string {
	var sb strings.Builder
	for i := range c.Len() {
		sb.WriteByte('0' + c.Bit(i))
	}

	return sb.String()
}

func freqOf(t *testing.T, data []byte) FrequencyTable {
	t.Helper()
	freq, err := CountFrequencies(bitstream.NewMemoryReader(data))
	require.NoError(t, err)

	return freq
}

func compressBytes(t *testing.T, data []byte, opts ...Option) ([]byte, Stats) {
	t.Helper()
	p, err := NewProcessor(opts...)
	require.NoError(t, err)

	w := bitstream.NewMemoryWriter()
	defer w.Release()

	stats, err := p.Compress(bitstream.NewMemoryReader(data), w)
	require.NoError(t, err)

	return bytes.Clone(w.Bytes()), stats
}

func decompressBytes(data []byte, opts ...Option) ([]byte, Stats, error) {
	p, err := NewProcessor(opts...)
	if err != nil {
		return nil, Stats{}, err
	}

	w := bitstream.NewMemoryWriter()
	defer w.Release()

	stats, err := p.Decompress(bitstream.NewMemoryReader(data), w)
	if err != nil {
		return nil, stats, err
	}

	return bytes.Clone(w.Bytes()), stats, nil
}

// rawStream writes fields MSB-first, for crafting headers by hand.
func rawStream(t *testing.T, fields ...[2]uint64) []byte {
	t.Helper()
	w := bitstream.NewMemoryWriter()
	defer w.Release()

	for _, f := range fields {
		require.NoError(t, w.WriteBits(f[0], uint8(f[1])))
	}
	require.NoError(t, w.Close())

	return bytes.Clone(w.Bytes())
}

func magicField() [2]uint64 {
	return [2]uint64{uint64(format.TreeHeaderMagic), format.BitsPerInt}
}

func leafField(sym uint64) [2]uint64 {
	return [2]uint64{leafMarker | sym, 1 + format.SymbolBits}
}

func nodeField() [2]uint64 {
	return [2]uint64{0, 1}
}

func sameShape(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.IsLeaf() != b.IsLeaf() {
		return false
	}
	if a.IsLeaf() {
		return a.Symbol == b.Symbol
	}

	return sameShape(a.Left, b.Left) && sameShape(a.Right, b.Right)
}

var sampleInputs = map[string][]byte{
	"empty":       {},
	"single byte": {0x00},
	"one symbol":  bytes.Repeat([]byte{'z'}, 1000),
	"text":        []byte("abracadabra, the quick brown fox jumps over the lazy dog"),
	"all bytes":   allBytes(),
	"skewed":      skewed(8192),
	"random":      randomBytes(64 * 1024),
}

func allBytes() []byte {
	b := make([]byte, 0, 512)
	for i := range 512 {
		b = append(b, byte(i))
	}

	return b
}

func skewed(n int) []byte {
	rng := rand.New(rand.NewPCG(1, 2))
	b := make([]byte, n)
	for i := range b {
		// roughly geometric distribution over a small alphabet
		v := 0
		for v < 40 && rng.IntN(2) == 0 {
			v++
		}
		b[i] = byte('a' + v)
	}

	return b
}

func randomBytes(n int) []byte {
	rng := rand.New(rand.NewPCG(3, 4))
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.Uint32())
	}

	return b
}
