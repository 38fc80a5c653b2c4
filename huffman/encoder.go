package huffman

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/hufftree/bitstream"
	"github.com/arloliu/hufftree/errs"
	"github.com/arloliu/hufftree/format"
)

// Encode reads 8-bit words from r until end of stream and writes the code of each,
// followed by the code of PseudoEOF. It returns the number of payload bits written.
//
// The writer is not closed, so the trailing padding is left to the caller.
func Encode(r bitstream.Reader, codes CodeTable, w bitstream.Writer) (int64, error) {
	var written int64

	for {
		word, err := r.ReadBits(format.BitsPerWord)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return written, fmt.Errorf("encode: read input: %w", err)
		}

		n, err := emit(w, codes, format.Symbol(word))
		written += n
		if err != nil {
			return written, err
		}
	}

	n, err := emit(w, codes, format.PseudoEOF)

	return written + n, err
}

func emit(w bitstream.Writer, codes CodeTable, sym format.Symbol) (int64, error) {
	code, ok := codes.Lookup(sym)
	if !ok {
		return 0, fmt.Errorf("%w: %s", errs.ErrMissingCode, sym)
	}
	if err := code.writeTo(w); err != nil {
		return 0, fmt.Errorf("encode: write %s: %w", sym, err)
	}

	return int64(code.Len()), nil
}
