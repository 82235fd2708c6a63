package rle

import "math"

// DefaultThreshold is the default run-length threshold of the classic and
// lossy codecs. Runs of at least this many repetitions are escaped.
const DefaultThreshold = 2

// ClassicEncoder implements the MNP5 run-length scheme.
//
// A run of a symbol is encoded by emitting the symbol threshold times
// followed by a count byte holding the number of repetitions beyond the
// threshold. Runs shorter than the threshold are emitted verbatim, so the
// stream needs no dedicated escape byte. The encoder fails with ErrRunTooLong
// when a run's trailing count would not fit in a single byte.
type ClassicEncoder struct {
	threshold  int
	repetition int
	last       byte
	hasLast    bool
}

// NewClassicEncoder creates a classic run-length encoder with the default
// threshold.
func NewClassicEncoder() *ClassicEncoder {
	return &ClassicEncoder{threshold: DefaultThreshold}
}

// NewClassicEncoderThreshold creates a classic run-length encoder with a
// custom threshold. The threshold must be greater than 1.
func NewClassicEncoderThreshold(threshold int) (*ClassicEncoder, error) {
	if threshold <= 1 {
		return nil, ErrInvalidThreshold
	}

	return &ClassicEncoder{threshold: threshold}, nil
}

// Threshold returns the encoder's run-length threshold.
func (e *ClassicEncoder) Threshold() int {
	return e.threshold
}

// Reset discards any open run. The threshold is retained.
func (e *ClassicEncoder) Reset() {
	e.repetition = 0
	e.hasLast = false
}

// Decoder creates a decoder matching this encoder's threshold.
// Only the threshold carries over, never run state.
func (e *ClassicEncoder) Decoder() *ClassicDecoder {
	return &ClassicDecoder{threshold: e.threshold}
}

// Process encodes src, appending output to dst.
func (e *ClassicEncoder) Process(dst, src []byte) ([]byte, error) {
	return runBytes(e, dst, src)
}

// Finish flushes the open run, if any.
func (e *ClassicEncoder) Finish(dst []byte) ([]byte, error) {
	return e.finishByte(dst)
}

func (e *ClassicEncoder) processByte(dst []byte, b byte) ([]byte, error) {
	if !e.hasLast {
		e.newSymbol(b)
		return dst, nil
	}
	if b == e.last {
		e.repetition++
		return dst, nil
	}

	dst, err := e.flushRun(dst)
	if err != nil {
		return dst, err
	}
	e.newSymbol(b)

	return dst, nil
}

func (e *ClassicEncoder) finishByte(dst []byte) ([]byte, error) {
	if !e.hasLast {
		return dst, nil
	}

	dst, err := e.flushRun(dst)
	if err != nil {
		return dst, err
	}
	e.Reset()

	return dst, nil
}

// flushRun writes the pending run: either the escaped form for runs reaching
// the threshold or the literal bytes for shorter runs.
func (e *ClassicEncoder) flushRun(dst []byte) ([]byte, error) {
	if e.repetition >= e.threshold {
		diff := e.repetition - e.threshold
		if diff > math.MaxUint8 {
			return dst, ErrRunTooLong
		}
		dst = appendRepeat(dst, e.last, e.threshold)

		return append(dst, byte(diff)), nil
	}

	return appendRepeat(dst, e.last, e.repetition), nil
}

func (e *ClassicEncoder) newSymbol(b byte) {
	e.last = b
	e.repetition = 1
	e.hasLast = true
}

// ClassicDecoder decodes the MNP5 run-length scheme produced by
// ClassicEncoder. Encoder and decoder thresholds must match for a correct
// round trip.
//
// Once a symbol has repeated threshold times, the next byte is always the
// trailing count, even when its value equals the run symbol.
type ClassicDecoder struct {
	threshold  int
	repetition int
	last       byte
	hasLast    bool
}

// NewClassicDecoder creates a classic run-length decoder with the default
// threshold.
func NewClassicDecoder() *ClassicDecoder {
	return &ClassicDecoder{threshold: DefaultThreshold}
}

// NewClassicDecoderThreshold creates a classic run-length decoder with a
// custom threshold. The threshold must be greater than 1.
func NewClassicDecoderThreshold(threshold int) (*ClassicDecoder, error) {
	if threshold <= 1 {
		return nil, ErrInvalidThreshold
	}

	return &ClassicDecoder{threshold: threshold}, nil
}

// Threshold returns the decoder's run-length threshold.
func (d *ClassicDecoder) Threshold() int {
	return d.threshold
}

// Reset discards any tracked run. The threshold is retained.
func (d *ClassicDecoder) Reset() {
	d.repetition = 0
	d.hasLast = false
}

// Encoder creates an encoder matching this decoder's threshold.
func (d *ClassicDecoder) Encoder() *ClassicEncoder {
	return &ClassicEncoder{threshold: d.threshold}
}

// Process decodes src, appending output to dst.
func (d *ClassicDecoder) Process(dst, src []byte) ([]byte, error) {
	return runBytes(d, dst, src)
}

// Finish resets the decoder; a well-formed stream leaves nothing to flush.
func (d *ClassicDecoder) Finish(dst []byte) ([]byte, error) {
	return d.finishByte(dst)
}

func (d *ClassicDecoder) processByte(dst []byte, b byte) ([]byte, error) {
	if !d.hasLast {
		d.last = b
		d.repetition = 1
		d.hasLast = true

		return append(dst, b), nil
	}
	if d.repetition == d.threshold {
		// b is the trailing count of the completed escape sequence.
		dst = appendRepeat(dst, d.last, int(b))
		d.Reset()

		return dst, nil
	}
	if b == d.last {
		d.repetition++
		return append(dst, b), nil
	}

	d.last = b
	d.repetition = 1

	return append(dst, b), nil
}

func (d *ClassicDecoder) finishByte(dst []byte) ([]byte, error) {
	d.Reset()
	return dst, nil
}
