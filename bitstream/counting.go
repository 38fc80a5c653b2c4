package bitstream

// CountingReader counts the bits successfully read through it.
type CountingReader struct {
	r    Reader
	bits int64
}

// NewCountingReader wraps r.
func NewCountingReader(r Reader) *CountingReader {
	return &CountingReader{r: r}
}

// ReadBits reads from the wrapped reader and counts n bits on success.
func (c *CountingReader) ReadBits(n uint8) (uint64, error) {
	v, err := c.r.ReadBits(n)
	if err != nil {
		return 0, err
	}
	c.bits += int64(n)

	return v, nil
}

// BitsRead returns the number of bits read so far.
func (c *CountingReader) BitsRead() int64 {
	return c.bits
}

// CountingWriter counts the bits successfully written through it. Padding added
// by Close is not counted.
type CountingWriter struct {
	w    Writer
	bits int64
}

// NewCountingWriter wraps w.
func NewCountingWriter(w Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

// WriteBits writes to the wrapped writer and counts n bits on success.
func (c *CountingWriter) WriteBits(value uint64, n uint8) error {
	if err := c.w.WriteBits(value, n); err != nil {
		return err
	}
	c.bits += int64(n)

	return nil
}

// Close closes the wrapped writer.
func (c *CountingWriter) Close() error {
	return c.w.Close()
}

// BitsWritten returns the number of bits written so far.
func (c *CountingWriter) BitsWritten() int64 {
	return c.bits
}
