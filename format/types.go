// Package format defines the alphabet, stream constants and enumerations shared by
// every hufftree package.
package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/hufftree/errs"
)

type (
	// Symbol is a value of the coded alphabet: a literal byte (0-255) or PseudoEOF.
	Symbol uint16

	// Verbosity controls how much diagnostic logging a processor emits.
	Verbosity uint8

	// CompressionType identifies a codec in the compress registry.
	CompressionType uint8
)

const (
	BitsPerWord  = 8                    // BitsPerWord is the width of a literal input symbol.
	BitsPerInt   = 32                   // BitsPerInt is the width of the header magic number.
	SymbolBits   = BitsPerWord + 1      // SymbolBits is the width of a leaf symbol in the tree header.
	LiteralCount = 1 << BitsPerWord     // LiteralCount is the number of literal byte symbols.
	AlphabetSize = LiteralCount + 1     // AlphabetSize counts the literals plus PseudoEOF.
	MaxTreeDepth = AlphabetSize - 1     // MaxTreeDepth bounds the depth of any valid code tree.
	MaxCodeBits  = MaxTreeDepth         // MaxCodeBits bounds the length of any code.
	PseudoEOF    = Symbol(LiteralCount) // PseudoEOF terminates the coded payload.
)

const (
	MagicNumber     uint32 = 0xface8200      // MagicNumber is the hufftree family marker.
	TreeHeaderMagic        = MagicNumber | 1 // TreeHeaderMagic marks a stream framed with a preorder tree header.
)

const (
	VerbosityNone Verbosity = 0 // VerbosityNone disables diagnostic logging.
	VerbosityLow  Verbosity = 1 // VerbosityLow logs per-phase summaries.
	VerbosityHigh Verbosity = 4 // VerbosityHigh also logs frequencies, codes and the tree.
)

const (
	CompressionNone            CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd            CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2              CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4             CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionHuffman         CompressionType = 0x5 // CompressionHuffman represents the tree-header Huffman codec.
	CompressionAdaptiveHuffman CompressionType = 0x6 // CompressionAdaptiveHuffman represents adaptive Huffman coding.
)

// IsLiteral reports whether s is a literal byte value.
func (s Symbol) IsLiteral() bool {
	return s < PseudoEOF
}

func (s Symbol) String() string {
	if s == PseudoEOF {
		return "EOF"
	}

	return fmt.Sprintf("%d", uint16(s))
}

func (v Verbosity) String() string {
	switch v {
	case VerbosityNone:
		return "None"
	case VerbosityLow:
		return "Low"
	case VerbosityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// IsValid reports whether v is one of the defined verbosity levels.
func (v Verbosity) IsValid() bool {
	switch v {
	case VerbosityNone, VerbosityLow, VerbosityHigh:
		return true
	default:
		return false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionHuffman:
		return "Huffman"
	case CompressionAdaptiveHuffman:
		return "AdaptiveHuffman"
	default:
		return "Unknown"
	}
}

// CompressionTypes returns every defined compression type in declaration order.
func CompressionTypes() []CompressionType {
	return []CompressionType{
		CompressionNone,
		CompressionZstd,
		CompressionS2,
		CompressionLZ4,
		CompressionHuffman,
		CompressionAdaptiveHuffman,
	}
}

// ParseCompressionType resolves a case-insensitive codec name as returned by String.
func ParseCompressionType(name string) (CompressionType, error) {
	for _, c := range CompressionTypes() {
		if strings.EqualFold(name, c.String()) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedCodec, name)
}
