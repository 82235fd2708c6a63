// Package squish provides a streaming byte-codec framework and a family of
// run-length style compressors and checksums built on it.
//
// Every codec implements the stream.Processor contract: chunks of input
// bytes fold into output bytes, with per-codec state carried across chunk
// boundaries and a final flush at end of stream. The stream.Stream driver
// pumps any buffered byte source through a processor into a byte sink
// without ever buffering the whole stream.
//
// # Codec family
//
//   - stream.Duplicate: identity passthrough.
//   - checksum: Adler32, CRC32 and XXHash64 digests rendered as text.
//   - rle.Classic: MNP5 run-length coding, exact round trip.
//   - rle.Lossy: run merging below a threshold, reduced reconstruction.
//   - rle.Telemetry: differential coding for near-monotonic byte streams.
//   - rle.Conditional: context-adaptive symbol remapping driven by
//     per-context rank tables.
//   - compress: whole-payload block codecs (S2, LZ4, Zstd) bridged onto the
//     same contract.
//
// # Basic usage
//
// Compress a file with the classic run-length codec:
//
//	enc := rle.NewClassicEncoder()
//	n, err := squish.Pipe(input, output, enc)
//
// Or build a default processor from its type tag:
//
//	p, err := squish.NewProcessor(format.TypeTelemetryRLE)
//	if err != nil {
//	    return err
//	}
//	n, err := squish.Pipe(input, output, p)
package squish

import (
	"fmt"
	"io"

	"github.com/arloliu/squish/checksum"
	"github.com/arloliu/squish/format"
	"github.com/arloliu/squish/rle"
	"github.com/arloliu/squish/stream"
)

// NewProcessor creates a default-configured processor for the given type.
// Types with tunable parameters (thresholds, order, bit width) use their
// documented defaults; construct them directly for custom settings.
func NewProcessor(t format.ProcessorType) (stream.Processor, error) {
	switch t {
	case format.TypeDuplicate:
		return stream.NewDuplicate(), nil
	case format.TypeAdler32:
		return checksum.NewAdler32(), nil
	case format.TypeCRC32:
		return checksum.NewCRC32(), nil
	case format.TypeXXHash64:
		return checksum.NewXXHash64(), nil
	case format.TypeClassicRLE:
		return rle.NewClassicEncoder(), nil
	case format.TypeLossyRLE:
		return rle.NewLossyEncoder(), nil
	case format.TypeTelemetryRLE:
		return rle.NewTelemetryEncoder(), nil
	case format.TypeConditionalRLE:
		return rle.NewConditionalEncoder()
	default:
		return nil, fmt.Errorf("invalid processor type: %s", t)
	}
}

// Pipe drives the processor over src until exhaustion, writing its output to
// dst. It returns the number of source bytes consumed.
func Pipe(src io.Reader, dst io.Writer, p stream.Processor) (int, error) {
	return stream.New(src, dst, p).Consume()
}

// Apply runs a processor over an in-memory payload in one shot: a single
// Process call followed by Finish. The processor is spent afterwards.
func Apply(p stream.Processor, data []byte) ([]byte, error) {
	out, err := p.Process(nil, data)
	if err != nil {
		return nil, err
	}

	return p.Finish(out)
}
