package stream

import (
	"bytes"
	"fmt"
)

// Assembler rebuilds a payload from chunks received in order.
type Assembler struct {
	format string
	next   uint32
	buf    bytes.Buffer
}

// Add appends c. Any index other than the expected one, or a format
// different from the first chunk's, is a corruption.
func (a *Assembler) Add(c Chunk) error {
	if c.Index != a.next {
		return fmt.Errorf("%w: got index %d, want %d", ErrOutOfOrder, c.Index, a.next)
	}
	if a.next == 0 {
		a.format = c.Format
	} else if c.Format != a.format {
		return fmt.Errorf("%w: chunk %d has format %q, stream is %q", ErrOutOfOrder, c.Index, c.Format, a.format)
	}
	a.buf.Write(c.Data)
	a.next++
	return nil
}

// Format returns the format of the received chunks.
func (a *Assembler) Format() string { return a.format }

// Count returns the number of chunks accepted so far.
func (a *Assembler) Count() int { return int(a.next) }

// Bytes returns the concatenated payload.
func (a *Assembler) Bytes() []byte { return a.buf.Bytes() }
