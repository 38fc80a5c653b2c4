package huffman

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/hufftree/bitstream"
	"github.com/arloliu/hufftree/errs"
	"github.com/arloliu/hufftree/format"
)

const leafMarker = 1 << format.SymbolBits

// WriteHeader writes the magic number followed by the preorder serialization of
// the tree: 0 for an internal node then both subtrees, 1 plus the 9-bit symbol for
// a leaf.
func WriteHeader(w bitstream.Writer, root *Node) error {
	if root == nil {
		return fmt.Errorf("%w: nil root", errs.ErrCorruptTree)
	}

	if err := w.WriteBits(uint64(format.TreeHeaderMagic), format.BitsPerInt); err != nil {
		return fmt.Errorf("write header magic: %w", err)
	}

	return writeTree(w, root)
}

func writeTree(w bitstream.Writer, n *Node) error {
	if n.IsLeaf() {
		if n.Symbol > format.PseudoEOF {
			return fmt.Errorf("%w: leaf symbol %d out of range", errs.ErrCorruptTree, n.Symbol)
		}
		if err := w.WriteBits(leafMarker|uint64(n.Symbol), 1+format.SymbolBits); err != nil {
			return fmt.Errorf("write header leaf: %w", err)
		}

		return nil
	}

	if n.Left == nil || n.Right == nil {
		return fmt.Errorf("%w: internal node with one child", errs.ErrCorruptTree)
	}
	if err := w.WriteBits(0, 1); err != nil {
		return fmt.Errorf("write header node: %w", err)
	}
	if err := writeTree(w, n.Left); err != nil {
		return err
	}

	return writeTree(w, n.Right)
}

// ReadHeader reads the magic number and the tree written by WriteHeader.
//
// A magic mismatch returns errs.ErrInvalidFormat before any tree bit is read. End
// of stream inside the header returns errs.ErrTruncatedStream. A tree that repeats
// a symbol, uses a symbol above PseudoEOF, nests deeper than format.MaxTreeDepth or
// lacks a PseudoEOF leaf returns errs.ErrCorruptTree. Leaf weights are zero.
func ReadHeader(r bitstream.Reader) (*Node, error) {
	magic, err := r.ReadBits(format.BitsPerInt)
	if err != nil {
		return nil, headerError("magic", err)
	}
	if uint32(magic) != format.TreeHeaderMagic {
		return nil, fmt.Errorf("%w: got %#08x, want %#08x", errs.ErrInvalidFormat, magic, format.TreeHeaderMagic)
	}

	tr := treeReader{r: r}
	root, err := tr.read(0)
	if err != nil {
		return nil, err
	}
	if !tr.seen[format.PseudoEOF] {
		return nil, fmt.Errorf("%w: no %s leaf", errs.ErrCorruptTree, format.PseudoEOF)
	}

	return root, nil
}

// treeReader parses the preorder tree. Rejecting repeated symbols also bounds the
// leaf count to format.AlphabetSize.
type treeReader struct {
	r    bitstream.Reader
	seen [format.AlphabetSize]bool
}

func (tr *treeReader) read(depth int) (*Node, error) {
	if depth > format.MaxTreeDepth {
		return nil, fmt.Errorf("%w: depth exceeds %d", errs.ErrCorruptTree, format.MaxTreeDepth)
	}

	bit, err := tr.r.ReadBits(1)
	if err != nil {
		return nil, headerError("node", err)
	}

	if bit == 1 {
		v, err := tr.r.ReadBits(format.SymbolBits)
		if err != nil {
			return nil, headerError("leaf symbol", err)
		}

		sym := format.Symbol(v)
		if sym > format.PseudoEOF {
			return nil, fmt.Errorf("%w: leaf symbol %d out of range", errs.ErrCorruptTree, v)
		}
		if tr.seen[sym] {
			return nil, fmt.Errorf("%w: duplicate leaf %s", errs.ErrCorruptTree, sym)
		}
		tr.seen[sym] = true

		return NewLeaf(sym, 0), nil
	}

	left, err := tr.read(depth + 1)
	if err != nil {
		return nil, err
	}
	right, err := tr.read(depth + 1)
	if err != nil {
		return nil, err
	}

	return &Node{Left: left, Right: right}, nil
}

func headerError(field string, err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: header ended reading %s", errs.ErrTruncatedStream, field)
	}

	return fmt.Errorf("read header %s: %w", field, err)
}
