package rle

import (
	"errors"

	"github.com/arloliu/squish/stream"
)

var (
	_ stream.Processor = (*ClassicEncoder)(nil)
	_ stream.Processor = (*ClassicDecoder)(nil)
	_ stream.Processor = (*LossyEncoder)(nil)
	_ stream.Processor = (*LossyDecoder)(nil)
	_ stream.Processor = (*TelemetryEncoder)(nil)
	_ stream.Processor = (*TelemetryDecoder)(nil)
	_ stream.Processor = (*ConditionalEncoder)(nil)
	_ stream.Processor = (*ConditionalDecoder)(nil)
)

var (
	// ErrRunTooLong reports a run whose trailing count byte would exceed 255.
	// The classic and lossy encoders fail fast instead of emitting a
	// truncated count; callers must pick a threshold compatible with the
	// expected run lengths.
	ErrRunTooLong = errors.New("rle: run exceeds count byte range")

	// ErrInvalidThreshold reports a run-length threshold of 1 or less.
	// The repeated-symbol escape scheme is meaningless below 2.
	ErrInvalidThreshold = errors.New("rle: threshold must be greater than 1")

	// ErrInvalidBitWidth reports a conditional code width outside 1..8 bits.
	ErrInvalidBitWidth = errors.New("rle: bit width must be between 1 and 8")

	// ErrInvalidOrder reports a negative conditional context length.
	ErrInvalidOrder = errors.New("rle: order must not be negative")

	// ErrInvalidDeltaThreshold reports a telemetry delta threshold above 128,
	// which cannot be represented around the 128 bias.
	ErrInvalidDeltaThreshold = errors.New("rle: delta threshold must be at most 128")
)

// byteProcessor is the per-byte transition contract shared by codecs whose
// logic is inherently byte-at-a-time. runBytes adapts it to the chunk-level
// stream.Processor contract.
type byteProcessor interface {
	processByte(dst []byte, b byte) ([]byte, error)
	finishByte(dst []byte) ([]byte, error)
}

func runBytes(p byteProcessor, dst, src []byte) ([]byte, error) {
	var err error
	for _, b := range src {
		dst, err = p.processByte(dst, b)
		if err != nil {
			return dst, err
		}
	}

	return dst, nil
}

// appendRepeat appends n copies of b to dst.
func appendRepeat(dst []byte, b byte, n int) []byte {
	for range n {
		dst = append(dst, b)
	}

	return dst
}
