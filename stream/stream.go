package stream

import (
	"fmt"
	"io"

	"github.com/arloliu/squish/internal/pool"
)

// DefaultBufferSize is the default chunk size used by the Stream driver.
// It only affects read/write granularity, never the produced byte stream.
const DefaultBufferSize = pool.ChunkBufferDefaultSize

// Stream drives a Processor over a byte source and writes its output to a
// byte sink.
//
// The driver is strictly sequential: one chunk is fully processed and written
// before the next is read. A Stream owns its processor for the processor's
// whole lifetime; neither may be shared across streams.
type Stream struct {
	src  io.Reader
	dst  io.Writer
	proc Processor
	buf  []byte
}

// New creates a Stream with the default buffer size.
func New(src io.Reader, dst io.Writer, proc Processor) *Stream {
	return NewSize(src, dst, proc, DefaultBufferSize)
}

// NewSize creates a Stream with a custom read buffer size.
// Sizes below 1 fall back to the default.
func NewSize(src io.Reader, dst io.Writer, proc Processor, size int) *Stream {
	if size < 1 {
		size = DefaultBufferSize
	}

	return &Stream{
		src:  src,
		dst:  dst,
		proc: proc,
		buf:  make([]byte, size),
	}
}

// Consume reads the source to exhaustion, feeding each chunk through the
// processor and writing the emitted bytes to the sink. Once the source
// reports io.EOF the processor is finished and the sink flushed, if it
// supports flushing. It returns the number of source bytes read.
//
// Any source, sink or processor error aborts the stream immediately; a
// partially consumed stream cannot be resumed.
func (s *Stream) Consume() (int, error) {
	out := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(out)

	consumed := 0
	for {
		n, rerr := s.src.Read(s.buf)
		if n > 0 {
			consumed += n

			emitted, err := s.proc.Process(out.Bytes(), s.buf[:n])
			if err != nil {
				return consumed, fmt.Errorf("process chunk: %w", err)
			}
			if err := s.writeAll(emitted); err != nil {
				return consumed, err
			}
			// Keep the possibly grown backing array for the next chunk.
			out.B = emitted[:0]
		}

		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return consumed, fmt.Errorf("read source: %w", rerr)
		}
	}

	emitted, err := s.proc.Finish(out.Bytes())
	if err != nil {
		return consumed, fmt.Errorf("finish stream: %w", err)
	}
	if err := s.writeAll(emitted); err != nil {
		return consumed, err
	}

	if f, ok := s.dst.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return consumed, fmt.Errorf("flush sink: %w", err)
		}
	}

	return consumed, nil
}

func (s *Stream) writeAll(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if _, err := s.dst.Write(data); err != nil {
		return fmt.Errorf("write sink: %w", err)
	}

	return nil
}
