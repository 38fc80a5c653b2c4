package huffman

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/arloliu/hufftree/bitstream"
	"github.com/arloliu/hufftree/format"
)

const codeWords = format.MaxCodeBits / 64

// Code is a sequence of up to format.MaxCodeBits bits. The first bit is the
// most significant bit of the first word.
type Code struct {
	words [codeWords]uint64
	size  uint16
}

// Len returns the number of bits in c.
func (c Code) Len() int {
	return int(c.size)
}

// Bit returns bit i of c, 0 or 1.
func (c Code) Bit(i int) uint8 {
	return uint8(c.words[i/64]>>(63-i%64)) & 1
}

// append returns c extended by one bit.
func (c Code) append(bit uint8) Code {
	if bit != 0 {
		c.words[c.size/64] |= 1 << (63 - c.size%64)
	}
	c.size++

	return c
}

// writeTo emits c to w in chunks of at most 64 bits.
func (c Code) writeTo(w bitstream.Writer) error {
	remaining := int(c.size)
	for i := 0; remaining > 0; i++ {
		n := min(remaining, 64)
		if err := w.WriteBits(c.words[i]>>(64-n), uint8(n)); err != nil {
			return err
		}
		remaining -= n
	}

	return nil
}

// String returns the bits of c as a quoted string of 0s and 1s.
func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(int(c.size))
	for i := range int(c.size) {
		sb.WriteByte('0' + c.Bit(i))
	}

	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Code{}

type codeEntry struct {
	code    Code
	present bool
}

// CodeTable maps the symbols of a tree to their codes.
type CodeTable struct {
	entries []codeEntry
	size    int
}

// GenerateCodes derives the code of every leaf under root: a left edge appends 0,
// a right edge appends 1. A root that is itself a leaf gets the empty code.
func GenerateCodes(root *Node) CodeTable {
	t := CodeTable{entries: make([]codeEntry, format.AlphabetSize)}
	if root != nil {
		t.walk(root, Code{})
	}

	return t
}

func (t *CodeTable) walk(n *Node, prefix Code) {
	if n.IsLeaf() {
		t.entries[n.Symbol] = codeEntry{code: prefix, present: true}
		t.size++

		return
	}

	if n.Left != nil {
		t.walk(n.Left, prefix.append(0))
	}
	if n.Right != nil {
		t.walk(n.Right, prefix.append(1))
	}
}

// Lookup returns the code of sym and whether sym has one.
func (t CodeTable) Lookup(sym format.Symbol) (Code, bool) {
	if int(sym) >= len(t.entries) {
		return Code{}, false
	}
	e := t.entries[sym]

	return e.code, e.present
}

// Len returns the number of symbols with a code.
func (t CodeTable) Len() int {
	return t.size
}

// All yields every symbol with a code in ascending symbol order.
func (t CodeTable) All() iter.Seq2[format.Symbol, Code] {
	return func(yield func(format.Symbol, Code) bool) {
		for sym, e := range t.entries {
			if !e.present {
				continue
			}
			if !yield(format.Symbol(sym), e.code) {
				return
			}
		}
	}
}

// Cost returns the payload size in bits of an input with the given frequencies,
// PseudoEOF included.
func (t CodeTable) Cost(freq FrequencyTable) uint64 {
	var bits uint64
	for sym, code := range t.All() {
		bits += freq[sym] * uint64(code.Len())
	}

	return bits
}

// Dump writes a programmer-readable listing of the table.
func (t CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", t.size)
	for sym, code := range t.All() {
		fmt.Fprintf(&buf, "\tLookup(%s) = %d %s\n", sym, code.Len(), code)
	}
	buf.WriteString("}\n")

	return buf.WriteTo(w)
}
