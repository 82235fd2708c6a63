package stream

// Processor transforms a stream of input bytes into a stream of output bytes.
//
// Process consumes all of src, appends any produced output to dst and returns
// the extended slice, following the dst-first append convention of the
// compression ecosystem. State that spans chunk boundaries is carried inside
// the processor, so consecutive Process calls over a split input produce the
// same output as a single call over the whole input.
//
// Finish is called exactly once, after the last chunk, to flush trailing
// state (an open run, an unterminated group, a checksum digest). After Finish
// the processor must be reset or rebuilt before further Process calls.
type Processor interface {
	Process(dst, src []byte) ([]byte, error)
	Finish(dst []byte) ([]byte, error)
}

// Duplicate is the identity processor: every input byte is copied to the
// output unchanged. It serves as the baseline implementation of the Processor
// contract and as a passthrough for testing drivers and sinks.
type Duplicate struct{}

var _ Processor = (*Duplicate)(nil)

// NewDuplicate creates a new identity processor.
func NewDuplicate() *Duplicate {
	return &Duplicate{}
}

// Process appends src to dst unchanged.
func (d *Duplicate) Process(dst, src []byte) ([]byte, error) {
	return append(dst, src...), nil
}

// Finish emits nothing; the identity transform has no trailing state.
func (d *Duplicate) Finish(dst []byte) ([]byte, error) {
	return dst, nil
}
