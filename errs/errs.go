// Package errs defines the sentinel errors returned by hufftree.
//
// Errors are returned wrapped with context using fmt.Errorf and "%w", so callers
// should inspect them with errors.Is:
//
//	if errors.Is(err, errs.ErrTruncatedStream) {
//	    // the compressed input ended early
//	}
package errs

import "errors"

// Stream format errors.
var (
	// ErrInvalidFormat indicates the input does not start with the tree header magic number.
	ErrInvalidFormat = errors.New("invalid format: magic number mismatch")

	// ErrTruncatedStream indicates end-of-stream was reached while header, leaf symbol
	// or payload bits were still expected.
	ErrTruncatedStream = errors.New("truncated stream")

	// ErrCorruptTree indicates a structurally invalid code tree, either read from a
	// header or handed to the decoder.
	ErrCorruptTree = errors.New("corrupt tree")
)

// Encoding errors.
var (
	// ErrMissingCode indicates the encoder met a symbol that has no code in the code table.
	ErrMissingCode = errors.New("symbol has no code")

	// ErrInvalidBitCount indicates a bit transport was asked for more than 64 bits at once.
	ErrInvalidBitCount = errors.New("invalid bit count")

	// ErrWriterClosed indicates a write to a bit writer after Close.
	ErrWriterClosed = errors.New("bit writer already closed")

	// ErrNotResettable indicates Reset on a reader whose source cannot seek back to its start.
	ErrNotResettable = errors.New("bit reader cannot be reset")
)

// Configuration errors.
var (
	// ErrUnsupportedCodec indicates an unknown compression type was requested.
	ErrUnsupportedCodec = errors.New("unsupported compression type")

	// ErrChecksumMismatch indicates a decompressed payload does not hash to the same
	// digest as the original input.
	ErrChecksumMismatch = errors.New("round trip checksum mismatch")

	// ErrInvalidVerbosity indicates a verbosity level outside the known range.
	ErrInvalidVerbosity = errors.New("invalid verbosity level")

	// ErrNilLogger indicates a nil logger was passed as an option.
	ErrNilLogger = errors.New("logger must not be nil")
)
