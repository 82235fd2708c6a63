package rle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTelemetryEncoder_New(t *testing.T) {
	enc := NewTelemetryEncoder()

	require.Equal(t, byte(DefaultDeltaThreshold), enc.Threshold())
}

func TestTelemetryEncoder_InvalidThreshold(t *testing.T) {
	_, err := NewTelemetryEncoderThreshold(129)
	require.ErrorIs(t, err, ErrInvalidDeltaThreshold)

	enc, err := NewTelemetryEncoderThreshold(128)
	require.NoError(t, err)
	require.Equal(t, byte(128), enc.Threshold())
}

func TestTelemetryEncoder_Process(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{
			"all deltas",
			[]byte{1, 2, 3, 4, 5, 6, 7, 8},
			[]byte{129, 129, 129, 129, 129, 129, 129, 129, 0},
		},
		{
			"delta remainder",
			[]byte{1, 2, 3, 4, 5, 6, 7, 8, 9},
			[]byte{129, 129, 129, 129, 129, 129, 129, 129, 0, 129, 0},
		},
		{
			"raw at end",
			[]byte{1, 2, 3, 4, 5, 6, 7, 18},
			[]byte{129, 129, 129, 129, 129, 129, 129, 18, 0b0000_0001},
		},
		{
			"raw in middle",
			[]byte{1, 2, 29, 4, 5, 6, 7, 18},
			[]byte{129, 129, 29, 4, 129, 129, 129, 18, 0b0011_0001},
		},
		{
			"raw at start",
			[]byte{14, 5, 29, 4, 5, 6, 7, 18},
			[]byte{14, 119, 29, 4, 129, 129, 129, 18, 0b1011_0001},
		},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := NewTelemetryEncoder()
			out := processAll(t, enc, tt.input)
			require.Equal(t, tt.expected, out)
		})
	}
}

func TestTelemetryDecoder_Process(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{
			"all deltas",
			[]byte{129, 129, 129, 129, 129, 129, 129, 129, 0},
			[]byte{1, 2, 3, 4, 5, 6, 7, 8},
		},
		{
			"delta remainder",
			[]byte{129, 129, 129, 129, 129, 129, 129, 129, 0, 129, 0},
			[]byte{1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		{
			"raw at end",
			[]byte{129, 129, 129, 129, 129, 129, 129, 18, 0b0000_0001},
			[]byte{1, 2, 3, 4, 5, 6, 7, 18},
		},
		{
			"raw in middle",
			[]byte{129, 129, 29, 4, 129, 129, 129, 18, 0b0011_0001},
			[]byte{1, 2, 29, 4, 5, 6, 7, 18},
		},
		{
			"raw at start",
			[]byte{14, 119, 29, 4, 129, 129, 129, 18, 0b1011_0001},
			[]byte{14, 5, 29, 4, 5, 6, 7, 18},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := NewTelemetryDecoder()
			out := processAll(t, dec, tt.input)
			require.Equal(t, tt.expected, out)
		})
	}
}

func TestTelemetry_Roundtrip(t *testing.T) {
	inputs := [][]byte{
		{1, 2, 3, 4, 5, 6, 7, 8},
		{1, 2, 3, 4, 5, 6, 7, 9},
		{1, 2, 3, 4, 5, 6, 7, 18},
		{1, 2, 29, 4, 5, 6, 7, 18},
		{14, 5, 29, 4, 5, 6, 7, 18},
		{1},
		{200},
		{1, 200},
		{0, 255, 0, 255, 0},
		{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120, 130},
		{},
	}

	for _, input := range inputs {
		enc := NewTelemetryEncoder()
		encoded := processAll(t, enc, input)

		dec := NewTelemetryDecoder()
		decoded := processAll(t, dec, encoded)

		require.Equal(t, input, append([]byte{}, decoded...), "input %v", input)
	}
}

func TestTelemetry_Roundtrip_Chunked(t *testing.T) {
	input := []byte{1, 2, 3, 40, 5, 255, 7, 8, 9, 10, 11, 212, 13, 14}

	ref := processAll(t, NewTelemetryEncoder(), input)

	for _, size := range []int{1, 3, 5, 8, 13} {
		enc := NewTelemetryEncoder()
		encoded := processChunked(t, enc, input, size)

		// A group spanning two Process calls must encode exactly as one call.
		require.Equal(t, ref, encoded, "chunk size %d", size)

		dec := NewTelemetryDecoder()
		decoded := processChunked(t, dec, encoded, size)
		require.Equal(t, input, decoded, "chunk size %d", size)
	}
}

func TestTelemetry_PartialGroup_RawValues(t *testing.T) {
	// Raw values in a trailing partial group exercise the left-aligned info
	// bits written by Finish.
	input := []byte{1, 200}

	enc := NewTelemetryEncoder()
	encoded := processAll(t, enc, input)
	require.Equal(t, []byte{129, 200, 0b0100_0000}, encoded)

	dec := NewTelemetryDecoder()
	decoded := processAll(t, dec, encoded)
	require.Equal(t, input, decoded)
}
