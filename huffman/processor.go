package huffman

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/arloliu/hufftree/bitstream"
	"github.com/arloliu/hufftree/format"
	"github.com/arloliu/hufftree/internal/options"
)

// Stats reports the bits moved by one Compress or Decompress call.
type Stats struct {
	InputBits   int64 // bits consumed from the input, excluding trailing padding
	OutputBits  int64 // bits produced, excluding trailing padding
	HeaderBits  int64 // magic number plus serialized tree
	PayloadBits int64 // symbol codes, PseudoEOF included
	Symbols     int   // leaves in the tree, PseudoEOF included
}

// InputBytes returns the input size rounded up to whole bytes.
func (s Stats) InputBytes() int64 {
	return (s.InputBits + 7) / 8
}

// OutputBytes returns the output size rounded up to whole bytes.
func (s Stats) OutputBytes() int64 {
	return (s.OutputBits + 7) / 8
}

// Processor runs the full compression and decompression pipelines.
//
// A Processor holds only configuration and is safe for concurrent use with
// distinct readers and writers.
type Processor struct {
	cfg *Config
}

// NewProcessor creates a Processor.
func NewProcessor(opts ...Option) (*Processor, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if len(cfg.attrs) > 0 {
		cfg.logger = slog.New(cfg.logger.Handler().WithAttrs(cfg.attrs))
	}

	return &Processor{cfg: cfg}, nil
}

// Compress reads in twice, once to count frequencies and once to encode, and
// writes the header and payload to out. out is closed, which pads the final byte.
func (p *Processor) Compress(in bitstream.ResettableReader, out bitstream.Writer) (Stats, error) {
	var stats Stats

	freq, err := CountFrequencies(in)
	if err != nil {
		return stats, err
	}
	stats.InputBits = int64(freq.Literals()) * format.BitsPerWord
	p.logFrequencies(&freq)

	root := BuildTree(freq)
	codes := GenerateCodes(root)
	stats.Symbols = codes.Len()
	p.logTree(root, codes)

	if err := in.Reset(); err != nil {
		return stats, fmt.Errorf("rewind input: %w", err)
	}

	cw := bitstream.NewCountingWriter(out)
	if err := WriteHeader(cw, root); err != nil {
		return stats, err
	}
	stats.HeaderBits = cw.BitsWritten()

	stats.PayloadBits, err = Encode(in, codes, cw)
	if err != nil {
		return stats, err
	}
	if err := cw.Close(); err != nil {
		return stats, fmt.Errorf("close output: %w", err)
	}
	stats.OutputBits = cw.BitsWritten()

	p.logStats("compressed", stats)

	return stats, nil
}

// Decompress reads a header and payload from in and writes the decoded bytes to
// out. out is closed on success. Bits after the PseudoEOF code are not read.
func (p *Processor) Decompress(in bitstream.Reader, out bitstream.Writer) (Stats, error) {
	var stats Stats

	cr := bitstream.NewCountingReader(in)
	root, err := ReadHeader(cr)
	if err != nil {
		return stats, err
	}
	stats.HeaderBits = cr.BitsRead()
	stats.Symbols = root.Leaves()
	if p.enabled(format.VerbosityHigh) {
		p.logTree(root, GenerateCodes(root))
	}

	cw := bitstream.NewCountingWriter(out)
	_, err = Decode(root, cr, cw)
	stats.InputBits = cr.BitsRead()
	stats.PayloadBits = stats.InputBits - stats.HeaderBits
	stats.OutputBits = cw.BitsWritten()
	if err != nil {
		return stats, err
	}
	if err := cw.Close(); err != nil {
		return stats, fmt.Errorf("close output: %w", err)
	}

	p.logStats("decompressed", stats)

	return stats, nil
}

func (p *Processor) enabled(v format.Verbosity) bool {
	return p.cfg.verbosity >= v
}

func (p *Processor) logFrequencies(freq *FrequencyTable) {
	if !p.enabled(format.VerbosityLow) {
		return
	}

	p.cfg.logger.Info("frequencies counted",
		slog.Uint64("input_bytes", freq.Literals()),
		slog.Int("distinct_symbols", freq.Distinct()),
	)

	if !p.enabled(format.VerbosityHigh) {
		return
	}
	for sym, count := range freq {
		if count == 0 {
			continue
		}
		p.cfg.logger.Debug("frequency",
			slog.String("symbol", format.Symbol(sym).String()),
			slog.Uint64("count", count),
		)
	}
}

func (p *Processor) logTree(root *Node, codes CodeTable) {
	if !p.enabled(format.VerbosityHigh) {
		return
	}

	var tree, table strings.Builder
	_, _ = root.Dump(&tree)
	_, _ = codes.Dump(&table)

	p.cfg.logger.Debug("code tree",
		slog.Int("leaves", root.Leaves()),
		slog.Int("depth", root.Depth()),
		slog.String("tree", tree.String()),
	)
	p.cfg.logger.Debug("code table", slog.String("codes", table.String()))
}

func (p *Processor) logStats(msg string, stats Stats) {
	if !p.enabled(format.VerbosityLow) {
		return
	}

	p.cfg.logger.Info(msg,
		slog.Int64("input_bits", stats.InputBits),
		slog.Int64("output_bits", stats.OutputBits),
		slog.Int64("header_bits", stats.HeaderBits),
		slog.Int64("payload_bits", stats.PayloadBits),
		slog.Int("symbols", stats.Symbols),
	)
}
