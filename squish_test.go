package squish

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/squish/checksum"
	"github.com/arloliu/squish/format"
	"github.com/arloliu/squish/rle"
	"github.com/arloliu/squish/stream"
)

func TestNewProcessor(t *testing.T) {
	tests := []struct {
		processorType format.ProcessorType
		expected      stream.Processor
	}{
		{format.TypeDuplicate, &stream.Duplicate{}},
		{format.TypeAdler32, &checksum.Adler32{}},
		{format.TypeCRC32, &checksum.CRC32{}},
		{format.TypeXXHash64, &checksum.XXHash64{}},
		{format.TypeClassicRLE, &rle.ClassicEncoder{}},
		{format.TypeLossyRLE, &rle.LossyEncoder{}},
		{format.TypeTelemetryRLE, &rle.TelemetryEncoder{}},
		{format.TypeConditionalRLE, &rle.ConditionalEncoder{}},
	}

	for _, tt := range tests {
		p, err := NewProcessor(tt.processorType)
		require.NoError(t, err, "type %s", tt.processorType)
		require.IsType(t, tt.expected, p, "type %s", tt.processorType)
	}
}

func TestNewProcessor_InvalidType(t *testing.T) {
	_, err := NewProcessor(format.ProcessorType(0xEE))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid processor type")
}

func TestPipe_ClassicRoundtrip(t *testing.T) {
	input := "Aweeeeee" + strings.Repeat("zzzzzzzops", 20)

	var encoded bytes.Buffer
	n, err := Pipe(strings.NewReader(input), &encoded, rle.NewClassicEncoder())
	require.NoError(t, err)
	require.Equal(t, len(input), n)

	var decoded bytes.Buffer
	_, err = Pipe(&encoded, &decoded, rle.NewClassicDecoder())
	require.NoError(t, err)
	require.Equal(t, input, decoded.String())
}

func TestPipe_ChecksumSink(t *testing.T) {
	var sink bytes.Buffer

	n, err := Pipe(strings.NewReader("Wikipedia"), &sink, checksum.NewAdler32())
	require.NoError(t, err)
	require.Equal(t, len("Wikipedia"), n)
	require.Equal(t, "Adler32<0x11E60398>", sink.String())
}

func TestApply_Duplicate(t *testing.T) {
	out, err := Apply(stream.NewDuplicate(), []byte("payload"))
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), out)
}

func TestApply_MatchesPipe(t *testing.T) {
	input := []byte("eeezzzzzzzopsaa")

	applied, err := Apply(rle.NewClassicEncoder(), input)
	require.NoError(t, err)

	var piped bytes.Buffer
	_, err = Pipe(bytes.NewReader(input), &piped, rle.NewClassicEncoder())
	require.NoError(t, err)

	require.Equal(t, piped.Bytes(), applied)
}
