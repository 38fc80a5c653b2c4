package huffman

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/hufftree/bitstream"
	"github.com/arloliu/hufftree/errs"
	"github.com/arloliu/hufftree/format"
)

// Decode walks the tree one bit at a time, writing each literal leaf reached as an
// 8-bit word, until it reaches the PseudoEOF leaf. It returns the number of bytes
// decoded.
//
// A root that is the PseudoEOF leaf decodes to nothing without reading any bit.
// End of stream before PseudoEOF returns errs.ErrTruncatedStream, and a step to a
// missing child returns errs.ErrCorruptTree. Bits after PseudoEOF are not read.
func Decode(root *Node, r bitstream.Reader, w bitstream.Writer) (int64, error) {
	if root == nil {
		return 0, fmt.Errorf("%w: nil root", errs.ErrCorruptTree)
	}
	if root.IsLeaf() {
		if root.Symbol == format.PseudoEOF {
			return 0, nil
		}

		return 0, fmt.Errorf("%w: root leaf %s is not %s", errs.ErrCorruptTree, root.Symbol, format.PseudoEOF)
	}

	var decoded int64
	node := root
	for {
		bit, err := r.ReadBits(1)
		if errors.Is(err, io.EOF) {
			return decoded, fmt.Errorf("%w: payload ended after %d bytes without %s",
				errs.ErrTruncatedStream, decoded, format.PseudoEOF)
		}
		if err != nil {
			return decoded, fmt.Errorf("decode: read payload: %w", err)
		}

		if bit == 0 {
			node = node.Left
		} else {
			node = node.Right
		}
		if node == nil {
			return decoded, fmt.Errorf("%w: missing child after %d bytes", errs.ErrCorruptTree, decoded)
		}
		if !node.IsLeaf() {
			continue
		}

		if node.Symbol == format.PseudoEOF {
			return decoded, nil
		}
		if !node.Symbol.IsLiteral() {
			return decoded, fmt.Errorf("%w: leaf symbol %d out of range", errs.ErrCorruptTree, node.Symbol)
		}
		if err := w.WriteBits(uint64(node.Symbol), format.BitsPerWord); err != nil {
			return decoded, fmt.Errorf("decode: write output: %w", err)
		}
		decoded++
		node = root
	}
}
