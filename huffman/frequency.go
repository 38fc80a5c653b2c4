package huffman

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/hufftree/bitstream"
	"github.com/arloliu/hufftree/format"
)

// FrequencyTable holds the occurrence count of every symbol, indexed by symbol.
type FrequencyTable [format.AlphabetSize]uint64

// CountFrequencies reads 8-bit words from r until end of stream and counts each
// byte value. The PseudoEOF count is always set to 1.
//
// The reader is left at end of stream; callers rewind it before encoding.
func CountFrequencies(r bitstream.Reader) (FrequencyTable, error) {
	var freq FrequencyTable

	for {
		word, err := r.ReadBits(format.BitsPerWord)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return freq, fmt.Errorf("count frequencies: %w", err)
		}
		freq[word]++
	}
	freq[format.PseudoEOF] = 1

	return freq, nil
}

// Distinct returns the number of symbols with a nonzero count, PseudoEOF included.
func (f *FrequencyTable) Distinct() int {
	n := 0
	for _, count := range f {
		if count > 0 {
			n++
		}
	}

	return n
}

// Literals returns the total count of literal bytes, which is the input length.
func (f *FrequencyTable) Literals() uint64 {
	var total uint64
	for _, count := range f[:format.LiteralCount] {
		total += count
	}

	return total
}
