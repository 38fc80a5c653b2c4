// Command hufftree compresses and decompresses files with a per-file Huffman code
// and compares it against general-purpose codecs.
//
// Usage:
//
//	hufftree compress   [-o output] [-v|-vv] [-verify] input
//	hufftree decompress [-o output] [-v|-vv] input
//	hufftree compare    [-codecs huffman,zstd,...] input
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/arloliu/hufftree"
	"github.com/arloliu/hufftree/compress"
	"github.com/arloliu/hufftree/errs"
	"github.com/arloliu/hufftree/format"
	"github.com/arloliu/hufftree/huffman"
	"github.com/arloliu/hufftree/internal/hash"
)

const compressedExt = ".huf"

var errUsage = errors.New("usage: hufftree <compress|decompress|compare> [flags] input")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "hufftree: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "compress":
		return runCompress(args[1:], stdout, stderr)
	case "decompress":
		return runDecompress(args[1:], stdout, stderr)
	case "compare":
		return runCompare(ctx, args[1:], stdout, stderr)
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}
}

// commonFlags are shared by compress and decompress.
type commonFlags struct {
	output      string
	verbose     bool
	veryVerbose bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.output, "o", "", "output file")
	fs.BoolVar(&c.verbose, "v", false, "log per-phase summaries")
	fs.BoolVar(&c.veryVerbose, "vv", false, "also log frequencies, codes and the tree")
}

func (c *commonFlags) options(stderr io.Writer, input string) []huffman.Option {
	verbosity := format.VerbosityNone
	level := slog.LevelInfo
	switch {
	case c.veryVerbose:
		verbosity = format.VerbosityHigh
		level = slog.LevelDebug
	case c.verbose:
		verbosity = format.VerbosityLow
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return []huffman.Option{
		huffman.WithVerbosity(verbosity),
		huffman.WithLogger(logger),
		huffman.WithLogAttrs(slog.String("file", input)),
	}
}

func parseInput(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() != 1 {
		return "", errUsage
	}

	return fs.Arg(0), nil
}

func runCompress(args []string, stdout, stderr io.Writer) error {
	var flags commonFlags
	var verify bool

	fs := flag.NewFlagSet("compress", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags.register(fs)
	fs.BoolVar(&verify, "verify", false, "decompress the output and compare checksums")

	input, err := parseInput(fs, args)
	if err != nil {
		return err
	}
	output := flags.output
	if output == "" {
		output = input + compressedExt
	}

	stats, err := compressFile(input, output, flags.options(stderr, input))
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(stdout, "%s: %d -> %d bytes, %d symbols, header %d bits, payload %d bits\n",
		input, stats.InputBytes(), stats.OutputBytes(), stats.Symbols, stats.HeaderBits, stats.PayloadBits)

	if !verify {
		return nil
	}
	if err := verifyRoundTrip(input, output); err != nil {
		return err
	}
	p.Fprintf(stdout, "%s: verified\n", output)

	return nil
}

func compressFile(input, output string, opts []huffman.Option) (stats huffman.Stats, err error) {
	in, err := os.Open(input)
	if err != nil {
		return stats, err
	}
	defer in.Close()

	out, err := os.Create(output)
	if err != nil {
		return stats, err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	return hufftree.Compress(out, in, opts...)
}

func runDecompress(args []string, stdout, stderr io.Writer) error {
	var flags commonFlags

	fs := flag.NewFlagSet("decompress", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags.register(fs)

	input, err := parseInput(fs, args)
	if err != nil {
		return err
	}
	output := flags.output
	if output == "" {
		output = strings.TrimSuffix(input, compressedExt)
		if output == input {
			output = input + ".out"
		}
	}

	stats, err := decompressFile(input, output, flags.options(stderr, input))
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(stdout, "%s: %d -> %d bytes\n", input, stats.InputBytes(), stats.OutputBytes())

	return nil
}

func decompressFile(input, output string, opts []huffman.Option) (stats huffman.Stats, err error) {
	in, err := os.Open(input)
	if err != nil {
		return stats, err
	}
	defer in.Close()

	out, err := os.Create(output)
	if err != nil {
		return stats, err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	return hufftree.Decompress(out, in, opts...)
}

// verifyRoundTrip decompresses output into a hashing writer and compares the
// digest with the digest of input.
func verifyRoundTrip(input, output string) error {
	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	want, _, err := hash.DigestReader(in)
	if err != nil {
		return err
	}

	compressed, err := os.Open(output)
	if err != nil {
		return err
	}
	defer compressed.Close()

	hw := hash.NewWriter(nil)
	if _, err := hufftree.Decompress(hw, compressed); err != nil {
		return fmt.Errorf("verify %s: %w", output, err)
	}
	if got := hw.Sum64(); got != want {
		return fmt.Errorf("%w: %s decompresses to %016x, input is %016x", errs.ErrChecksumMismatch, output, got, want)
	}

	return nil
}

func runCompare(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var codecs string

	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&codecs, "codecs", "", "comma-separated codec names (default all)")

	input, err := parseInput(fs, args)
	if err != nil {
		return err
	}

	var types []format.CompressionType
	if codecs != "" {
		for _, name := range strings.Split(codecs, ",") {
			typ, err := format.ParseCompressionType(strings.TrimSpace(name))
			if err != nil {
				return err
			}
			types = append(types, typ)
		}
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	results, err := compress.Compare(ctx, data, types...)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(stdout, "%-16s %14s %9s %12s %12s\n", "codec", "bytes", "savings", "compress", "decompress")
	for _, s := range results {
		p.Fprintf(stdout, "%-16s %14d %8.2f%% %12v %12v\n",
			s.Algorithm, s.CompressedSize, s.SpaceSavings(), s.CompressionTime, s.DecompressionTime)
	}

	return nil
}
