package rope

import (
	"io"
	"strings"
)

// Builder provides efficient incremental construction of a rope: writes
// accumulate in a plain strings.Builder and only get chunked into
// leaves once, in Build, rather than on every write.
type Builder struct {
	buffer strings.Builder
}

// NewBuilder returns a new, empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WriteString appends s.
func (b *Builder) WriteString(s string) (int, error) {
	return b.buffer.WriteString(s)
}

// Write implements io.Writer.
func (b *Builder) Write(p []byte) (int, error) {
	return b.buffer.Write(p)
}

// WriteByte appends a single byte.
func (b *Builder) WriteByte(c byte) error {
	return b.buffer.WriteByte(c)
}

// WriteRune appends a single rune.
func (b *Builder) WriteRune(r rune) (int, error) {
	return b.buffer.WriteRune(r)
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int {
	return b.buffer.Len()
}

// Reset clears the builder for reuse.
func (b *Builder) Reset() {
	b.buffer.Reset()
}

// Build returns a Rope over everything written so far and resets the
// builder.
func (b *Builder) Build() Rope {
	s := b.buffer.String()
	b.Reset()
	return FromString(s)
}

// String returns the accumulated text. Primarily for debugging; prefer
// Build to produce a Rope.
func (b *Builder) String() string {
	return b.buffer.String()
}

// ReadFrom implements io.ReaderFrom, letting a Builder accumulate an
// entire io.Reader before a single Build call.
func (b *Builder) ReadFrom(r io.Reader) (int64, error) {
	return io.Copy(&b.buffer, r)
}

// FromReader builds a rope from the full contents of r.
func FromReader(r io.Reader) (Rope, error) {
	var b Builder
	if _, err := b.ReadFrom(r); err != nil {
		return Rope{}, err
	}
	return b.Build(), nil
}
