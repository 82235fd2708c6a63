package rle

import "math"

// LossyEncoder is a run-length encoder that trades exactness for a denser
// output format.
//
// The output is always <symbol, count> pairs, where the decoded length is
// count+1. Runs shorter than the threshold are never emitted; their length is
// folded into the following run instead. Decoding therefore yields a
// reduced-information reconstruction in which short runs have been absorbed
// by their right neighbor.
type LossyEncoder struct {
	threshold  int
	repetition int
	lossCount  int
	last       byte
	hasLast    bool
}

// NewLossyEncoder creates a lossy run-length encoder with the default
// threshold.
func NewLossyEncoder() *LossyEncoder {
	return &LossyEncoder{threshold: DefaultThreshold}
}

// NewLossyEncoderThreshold creates a lossy run-length encoder with a custom
// threshold. The threshold must be greater than 1.
func NewLossyEncoderThreshold(threshold int) (*LossyEncoder, error) {
	if threshold <= 1 {
		return nil, ErrInvalidThreshold
	}

	return &LossyEncoder{threshold: threshold}, nil
}

// Threshold returns the encoder's run-length threshold.
func (e *LossyEncoder) Threshold() int {
	return e.threshold
}

// Reset discards the open run and any accumulated loss.
func (e *LossyEncoder) Reset() {
	e.repetition = 0
	e.lossCount = 0
	e.hasLast = false
}

// Process encodes src, appending output to dst.
func (e *LossyEncoder) Process(dst, src []byte) ([]byte, error) {
	return runBytes(e, dst, src)
}

// Finish flushes the pending run unconditionally, even below the threshold.
func (e *LossyEncoder) Finish(dst []byte) ([]byte, error) {
	return e.finishByte(dst)
}

func (e *LossyEncoder) processByte(dst []byte, b byte) ([]byte, error) {
	if !e.hasLast {
		e.newSymbol(b)
		return dst, nil
	}
	if b == e.last {
		e.repetition++
		return dst, nil
	}
	if e.repetition < e.threshold {
		// Too short to keep: fold the run into the one that follows.
		e.lossCount += e.repetition
		e.newSymbol(b)

		return dst, nil
	}

	dst, err := e.flushRun(dst)
	if err != nil {
		return dst, err
	}
	e.newSymbol(b)

	return dst, nil
}

func (e *LossyEncoder) finishByte(dst []byte) ([]byte, error) {
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

func (e *LossyEncoder) flushRun(dst []byte) ([]byte, error) {
	count := e.repetition + e.lossCount - 1
	if count > math.MaxUint8 {
		return dst, ErrRunTooLong
	}
	e.lossCount = 0

	return append(dst, e.last, byte(count)), nil
}

func (e *LossyEncoder) newSymbol(b byte) {
	e.last = b
	e.repetition = 1
	e.hasLast = true
}

// LossyDecoder expands the <symbol, count> pairs produced by LossyEncoder.
// Each pair decodes to count+1 copies of the symbol.
type LossyDecoder struct {
	last    byte
	hasLast bool
}

// NewLossyDecoder creates a lossy run-length decoder.
func NewLossyDecoder() *LossyDecoder {
	return &LossyDecoder{}
}

// Reset discards a pending symbol byte.
func (d *LossyDecoder) Reset() {
	d.hasLast = false
}

// Process decodes src, appending output to dst.
func (d *LossyDecoder) Process(dst, src []byte) ([]byte, error) {
	return runBytes(d, dst, src)
}

// Finish emits a dangling symbol byte from a truncated pair, if any.
func (d *LossyDecoder) Finish(dst []byte) ([]byte, error) {
	return d.finishByte(dst)
}

func (d *LossyDecoder) processByte(dst []byte, b byte) ([]byte, error) {
	if !d.hasLast {
		d.last = b
		d.hasLast = true

		return dst, nil
	}

	dst = appendRepeat(dst, d.last, int(b)+1)
	d.hasLast = false

	return dst, nil
}

func (d *LossyDecoder) finishByte(dst []byte) ([]byte, error) {
	if !d.hasLast {
		return dst, nil
	}
	d.hasLast = false

	return append(dst, d.last), nil
}
