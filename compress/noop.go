package compress

// NoopCodec passes payloads through unmodified. It serves as the disabled
// setting of every compression knob and as a baseline for measurements.
//
// Both directions return the input slice as-is, sharing its memory with the
// caller.
type NoopCodec struct{}

var _ Codec = (*NoopCodec)(nil)

// NewNoopCodec creates a passthrough codec.
func NewNoopCodec() NoopCodec {
	return NoopCodec{}
}

// Compress returns data unchanged.
func (c NoopCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoopCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
