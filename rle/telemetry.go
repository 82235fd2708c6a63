package rle

// DefaultDeltaThreshold is the default magnitude up to which the telemetry
// codec stores a byte as a delta instead of a raw value.
const DefaultDeltaThreshold = 10

// telemetryGroupSize is the number of data bytes covered by one info byte.
const telemetryGroupSize = 8

// TelemetryEncoder is a differential encoder for near-monotonic numeric
// streams such as sensor readings.
//
// Each input byte is compared with its predecessor. When the absolute
// difference fits the threshold, the byte is stored biased around 128:
// 128+diff for an increase, 128-diff for a decrease. Otherwise the raw byte
// is stored. After every eight data bytes an info byte follows whose bits
// record, MSB-first, which positions hold raw values. A trailing partial
// group is flushed by Finish with its info bits left-aligned the same way.
type TelemetryEncoder struct {
	threshold byte
	pending   []byte
	last      byte
}

// NewTelemetryEncoder creates a telemetry encoder with the default delta
// threshold.
func NewTelemetryEncoder() *TelemetryEncoder {
	return &TelemetryEncoder{
		threshold: DefaultDeltaThreshold,
		pending:   make([]byte, 0, telemetryGroupSize),
	}
}

// NewTelemetryEncoderThreshold creates a telemetry encoder with a custom
// delta threshold. The threshold must be at most 128.
func NewTelemetryEncoderThreshold(threshold byte) (*TelemetryEncoder, error) {
	if threshold > 128 {
		return nil, ErrInvalidDeltaThreshold
	}

	return &TelemetryEncoder{
		threshold: threshold,
		pending:   make([]byte, 0, telemetryGroupSize),
	}, nil
}

// Threshold returns the encoder's delta threshold.
func (e *TelemetryEncoder) Threshold() byte {
	return e.threshold
}

// Reset discards the pending partial group and the delta reference.
func (e *TelemetryEncoder) Reset() {
	e.pending = e.pending[:0]
	e.last = 0
}

// Decoder creates a decoder for streams produced by this encoder.
func (e *TelemetryEncoder) Decoder() *TelemetryDecoder {
	return NewTelemetryDecoder()
}

// Process encodes src, appending complete 9-byte groups to dst. Up to seven
// trailing bytes are carried until the next Process or Finish call.
func (e *TelemetryEncoder) Process(dst, src []byte) ([]byte, error) {
	for _, b := range src {
		e.pending = append(e.pending, b)
		if len(e.pending) == telemetryGroupSize {
			dst = e.encodeGroup(dst, e.pending)
			e.pending = e.pending[:0]
		}
	}

	return dst, nil
}

// Finish flushes the trailing partial group, appending an info byte sized to
// the remainder.
func (e *TelemetryEncoder) Finish(dst []byte) ([]byte, error) {
	if len(e.pending) == 0 {
		return dst, nil
	}

	dst = e.encodeGroup(dst, e.pending)
	e.pending = e.pending[:0]

	return dst, nil
}

// encodeGroup encodes up to eight data bytes followed by their info byte.
// Info bits are left-aligned so the first byte of the group always maps to
// the most significant bit, full group or not.
func (e *TelemetryEncoder) encodeGroup(dst []byte, group []byte) []byte {
	var infobyte byte
	for _, c := range group {
		infobyte <<= 1
		diff := absDiff(e.last, c)
		if diff <= e.threshold {
			if e.last > c {
				dst = append(dst, 128-diff)
			} else {
				dst = append(dst, 128+diff)
			}
		} else {
			infobyte |= 1
			dst = append(dst, c)
		}
		e.last = c
	}
	infobyte <<= telemetryGroupSize - len(group)

	return append(dst, infobyte)
}

func absDiff(a, b byte) byte {
	if a > b {
		return a - b
	}

	return b - a
}

// TelemetryDecoder reconstructs the byte stream produced by TelemetryEncoder.
//
// Input arrives in groups of nine bytes: eight data bytes and one info byte.
// The info byte decides per position whether the data byte is a raw value or
// a 128-biased delta applied to the running reference. The reference carried
// out of one group seeds the delta decisions of the next, so decoding must
// start at the beginning of the stream.
type TelemetryDecoder struct {
	pending []byte
	last    byte
}

// NewTelemetryDecoder creates a telemetry decoder.
func NewTelemetryDecoder() *TelemetryDecoder {
	return &TelemetryDecoder{
		pending: make([]byte, 0, telemetryGroupSize+1),
	}
}

// Reset discards the pending partial group and the delta reference.
func (d *TelemetryDecoder) Reset() {
	d.pending = d.pending[:0]
	d.last = 0
}

// Process decodes src, appending output for every complete 9-byte group.
// An incomplete group is carried until the next Process or Finish call.
func (d *TelemetryDecoder) Process(dst, src []byte) ([]byte, error) {
	for _, b := range src {
		d.pending = append(d.pending, b)
		if len(d.pending) == telemetryGroupSize+1 {
			dst = d.decodeGroup(dst, d.pending[:telemetryGroupSize], d.pending[telemetryGroupSize])
			d.pending = d.pending[:0]
		}
	}

	return dst, nil
}

// Finish decodes the trailing partial group; its last byte is the info byte
// for the preceding data bytes.
func (d *TelemetryDecoder) Finish(dst []byte) ([]byte, error) {
	if len(d.pending) == 0 {
		return dst, nil
	}

	n := len(d.pending)
	dst = d.decodeGroup(dst, d.pending[:n-1], d.pending[n-1])
	d.pending = d.pending[:0]

	return dst, nil
}

func (d *TelemetryDecoder) decodeGroup(dst []byte, data []byte, infobyte byte) []byte {
	for _, b := range data {
		if infobyte&0x80 != 0 {
			d.last = b
			dst = append(dst, b)
		} else {
			if b >= 128 {
				d.last += b - 128
			} else {
				d.last -= 128 - b
			}
			dst = append(dst, d.last)
		}
		infobyte <<= 1
	}

	return dst
}
