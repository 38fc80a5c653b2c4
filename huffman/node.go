package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/arloliu/hufftree/format"
)

// Node is a node of a Huffman code tree.
//
// A leaf has no children and carries a Symbol. An internal node has both children
// and its Weight is the sum of theirs; its Symbol is unused.
type Node struct {
	Symbol format.Symbol
	Weight uint64
	Left   *Node
	Right  *Node
}

// NewLeaf creates a leaf node.
func NewLeaf(sym format.Symbol, weight uint64) *Node {
	return &Node{Symbol: sym, Weight: weight}
}

// NewInternal creates an internal node over left and right. The weight saturates
// at math.MaxUint64.
func NewInternal(left, right *Node) *Node {
	weight := left.Weight + right.Weight
	if weight < left.Weight {
		weight = math.MaxUint64
	}

	return &Node{Weight: weight, Left: left, Right: right}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Leaves returns the number of leaves under n.
func (n *Node) Leaves() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}

	return n.Left.Leaves() + n.Right.Leaves()
}

// Depth returns the length of the longest root-to-leaf path. A lone leaf has depth 0.
func (n *Node) Depth() int {
	if n == nil || n.IsLeaf() {
		return 0
	}

	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

// Dump writes an indented, programmer-readable rendering of the tree rooted at n.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	n.dump(&buf, 1)
	buf.WriteString("}\n")

	return buf.WriteTo(w)
}

func (n *Node) dump(buf *bytes.Buffer, depth int) {
	indent := strings.Repeat("\t", depth)
	switch {
	case n == nil:
		fmt.Fprintf(buf, "%snil\n", indent)
	case n.IsLeaf():
		fmt.Fprintf(buf, "%s%s (%d)\n", indent, n.Symbol, n.Weight)
	default:
		fmt.Fprintf(buf, "%s* (%d)\n", indent, n.Weight)
		n.Left.dump(buf, depth+1)
		n.Right.dump(buf, depth+1)
	}
}
