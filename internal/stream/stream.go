// Package stream splits an exported mesh into ordered, size-bounded chunks
// and reassembles them on the receiving side.
package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"sync"

	"github.com/fyrsmithlabs/zinspector/internal/mesh"
)

// Defaults for GetMeshData.
const (
	DefaultChunkSize = 2 << 20
	DefaultFormat    = mesh.FormatGLB
	MaxChunkSize     = 16 << 20
)

var (
	// ErrClosed is returned by Next after Close.
	ErrClosed = errors.New("stream closed")
	// ErrOutOfOrder reports a gap, a repeat or a format change in a
	// received chunk sequence.
	ErrOutOfOrder = errors.New("chunk out of order")
	// ErrChunkSize rejects a chunk size outside (0, MaxChunkSize].
	ErrChunkSize = errors.New("invalid chunk size")
)

// Chunk is one fragment of an exported payload.
type Chunk struct {
	Format string `json:"format"`
	Index  uint32 `json:"index"`
	Data   []byte `json:"data"`
}

// Stream yields the chunks of one export. It is finite and cannot be
// restarted. A Stream is not safe for concurrent Next calls; Close may be
// called from any goroutine.
type Stream struct {
	format    string
	chunkSize int
	size      int

	mu     sync.Mutex
	buf    []byte
	off    int
	next   uint32
	done   bool
	closed bool
}

// Export encodes geometry in format and prepares it for chunking. Encoding
// happens before Export returns, so a codec failure yields no chunk at all.
func Export(ctx context.Context, geometry *mesh.Mesh, format mesh.Format, chunkSize int) (*Stream, error) {
	if chunkSize <= 0 || chunkSize > MaxChunkSize {
		return nil, fmt.Errorf("%w: %d", ErrChunkSize, chunkSize)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := mesh.Encode(geometry, format)
	if err != nil {
		return nil, err
	}
	return FromBytes(data, format.String(), chunkSize)
}

// FromBytes chunks an already exported buffer. The stream takes ownership
// of data.
func FromBytes(data []byte, format string, chunkSize int) (*Stream, error) {
	if chunkSize <= 0 || chunkSize > MaxChunkSize {
		return nil, fmt.Errorf("%w: %d", ErrChunkSize, chunkSize)
	}
	return &Stream{format: format, chunkSize: chunkSize, size: len(data), buf: data}, nil
}

// Format returns the wire encoding tag carried by every chunk.
func (s *Stream) Format() string { return s.format }

// Size returns the total payload size.
func (s *Stream) Size() int { return s.size }

// Len returns the number of chunks the stream produces in total.
func (s *Stream) Len() int { return ChunkCount(s.size, s.chunkSize) }

// Next returns the next chunk, io.EOF once every chunk was produced, or the
// context error if ctx is done. A done context closes the stream, so no
// chunk is produced after cancellation is observed.
func (s *Stream) Next(ctx context.Context) (Chunk, error) {
	if err := ctx.Err(); err != nil {
		s.Close()
		return Chunk{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return Chunk{}, io.EOF
	}
	if s.closed {
		return Chunk{}, ErrClosed
	}
	if s.off >= len(s.buf) {
		s.done = true
		s.buf = nil
		return Chunk{}, io.EOF
	}

	end := min(s.off+s.chunkSize, len(s.buf))
	c := Chunk{
		Format: s.format,
		Index:  s.next,
		Data:   s.buf[s.off:end:end],
	}
	s.off = end
	s.next++
	return c, nil
}

// Close releases the export buffer. Chunks already returned stay valid.
func (s *Stream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.buf = nil
}

// All iterates the remaining chunks. Iteration stops after the first error;
// io.EOF ends it without being yielded. Breaking out closes the stream.
func (s *Stream) All(ctx context.Context) iter.Seq2[Chunk, error] {
	return func(yield func(Chunk, error) bool) {
		defer s.Close()
		for {
			c, err := s.Next(ctx)
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(c, err) || err != nil {
				return
			}
		}
	}
}

// ChunkCount returns how many chunks of at most chunkSize bytes cover size
// bytes.
func ChunkCount(size, chunkSize int) int {
	if size <= 0 || chunkSize <= 0 {
		return 0
	}
	return (size + chunkSize - 1) / chunkSize
}
