package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hufftree/bitstream"
	"github.com/arloliu/hufftree/format"
)

// chainTree hangs symbol i off the left of the i-th node of a right spine, with
// PseudoEOF at the bottom, so symbol i has code 1^i 0 and PseudoEOF has 1^depth.
func chainTree(depth int) *Node {
	node := NewLeaf(format.PseudoEOF, 1)
	for i := depth - 1; i >= 0; i-- {
		node = NewInternal(NewLeaf(format.Symbol(i), 1), node)
	}

	return node
}

func TestGenerateCodes_LeafRoot(t *testing.T) {
	codes := GenerateCodes(NewLeaf(format.PseudoEOF, 1))

	require.Equal(t, 1, codes.Len())
	code, ok := codes.Lookup(format.PseudoEOF)
	require.True(t, ok)
	require.Zero(t, code.Len())
	require.Equal(t, `""`, code.String())
}

func TestGenerateCodes_RepeatedByte(t *testing.T) {
	codes := GenerateCodes(BuildTree(freqOf(t, []byte("AAAA"))))

	eof, ok := codes.Lookup(format.PseudoEOF)
	require.True(t, ok)
	require.Equal(t, `"0"`, eof.String())

	a, ok := codes.Lookup(65)
	require.True(t, ok)
	require.Equal(t, `"1"`, a.String())

	_, ok = codes.Lookup(66)
	require.False(t, ok)
	_, ok = codes.Lookup(format.Symbol(300))
	require.False(t, ok)
}

func TestGenerateCodes_PrefixFree(t *testing.T) {
	for name, data := range sampleInputs {
		t.Run(name, func(t *testing.T) {
			freq := freqOf(t, data)
			codes := GenerateCodes(BuildTree(freq))
			require.Equal(t, freq.Distinct(), codes.Len())

			var all []string
			for sym, code := range codes.All() {
				require.NotZero(t, freq[sym], "symbol %s has a code but no count", sym)
				all = append(all, bitsOf(code))
			}
			if len(all) == 1 {
				return
			}

			for i, a := range all {
				require.NotEmpty(t, a)
				for j, b := range all {
					if i != j {
						require.False(t, strings.HasPrefix(b, a), "%q is a prefix of %q", a, b)
					}
				}
			}
		})
	}
}

func TestCodeTable_AllAscending(t *testing.T) {
	codes := GenerateCodes(BuildTree(freqOf(t, []byte("zyxzyxabc"))))

	var syms []format.Symbol
	for sym := range codes.All() {
		syms = append(syms, sym)
	}
	require.Equal(t, []format.Symbol{'a', 'b', 'c', 'x', 'y', 'z', format.PseudoEOF}, syms)
}

func TestCode_LongerThanOneWord(t *testing.T) {
	codes := GenerateCodes(chainTree(100))
	require.Equal(t, 101, codes.Len())

	eof, ok := codes.Lookup(format.PseudoEOF)
	require.True(t, ok)
	require.Equal(t, strings.Repeat("1", 100), bitsOf(eof))

	last, ok := codes.Lookup(99)
	require.True(t, ok)
	require.Equal(t, strings.Repeat("1", 99)+"0", bitsOf(last))

	w := bitstream.NewMemoryWriter()
	defer w.Release()
	require.NoError(t, eof.writeTo(w))
	require.NoError(t, w.Close())

	want := append([]byte(strings.Repeat("\xff", 12)), 0xf0)
	require.Equal(t, want, w.Bytes())
}

func TestCodeTable_Dump(t *testing.T) {
	codes := GenerateCodes(BuildTree(freqOf(t, []byte("AAAA"))))

	var sb strings.Builder
	_, err := codes.Dump(&sb)
	require.NoError(t, err)
	require.Equal(t, "CodeTable{\n\tLen() = 2\n\tLookup(65) = 1 \"1\"\n\tLookup(EOF) = 1 \"0\"\n}\n", sb.String())
}

func TestCodeTable_Cost(t *testing.T) {
	freq := freqOf(t, []byte("AAAA"))
	codes := GenerateCodes(BuildTree(freq))

	require.Equal(t, uint64(5), codes.Cost(freq))
}
