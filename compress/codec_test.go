package compress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/squish/format"
	"github.com/arloliu/squish/stream"
)

func testPayload() []byte {
	return []byte(strings.Repeat("squish squish squish compressible payload ", 64))
}

func TestGetCodec(t *testing.T) {
	tests := []struct {
		compressionType format.CompressionType
		expected        Codec
	}{
		{format.CompressionNone, NoopCodec{}},
		{format.CompressionZstd, ZstdCodec{}},
		{format.CompressionS2, S2Codec{}},
		{format.CompressionLZ4, LZ4Codec{}},
	}

	for _, tt := range tests {
		codec, err := GetCodec(tt.compressionType)
		require.NoError(t, err)
		require.IsType(t, tt.expected, codec)
	}
}

func TestGetCodec_InvalidType(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xEE))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid compression type")
}

func TestCodec_Roundtrip(t *testing.T) {
	payload := testPayload()

	for _, compressionType := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compressionType)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err, "compress with %s", compressionType)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err, "decompress with %s", compressionType)
		require.Equal(t, payload, restored, "roundtrip with %s", compressionType)
	}
}

func TestCodec_CompressesRedundantPayload(t *testing.T) {
	payload := testPayload()

	for _, compressionType := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compressionType)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), "%s should shrink a redundant payload", compressionType)
	}
}

func TestCodec_EmptyPayload(t *testing.T) {
	for _, compressionType := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compressionType)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, restored, "empty roundtrip with %s", compressionType)
	}
}

func TestNoopCodec_SharesInput(t *testing.T) {
	codec := NewNoopCodec()
	payload := []byte("untouched")

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}

func TestDecompress_CorruptedInput(t *testing.T) {
	for _, compressionType := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
	} {
		codec, err := GetCodec(compressionType)
		require.NoError(t, err)

		_, err = codec.Decompress([]byte{0xDE, 0xAD, 0xBE, 0xEF})
		require.Error(t, err, "corrupted input with %s", compressionType)
	}
}

func TestBlock_RoundtripThroughStreams(t *testing.T) {
	payload := testPayload()

	for _, compressionType := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compressionType)
		require.NoError(t, err)

		var compressed bytes.Buffer
		n, err := stream.NewSize(bytes.NewReader(payload), &compressed, NewBlockEncoder(codec), 128).Consume()
		require.NoError(t, err)
		require.Equal(t, len(payload), n)

		var restored bytes.Buffer
		n, err = stream.NewSize(&compressed, &restored, NewBlockDecoder(codec), 128).Consume()
		require.NoError(t, err)
		require.Positive(t, n)
		require.Equal(t, payload, restored.Bytes(), "block roundtrip with %s", compressionType)
	}
}

func TestBlockEncoder_EmitsOnlyOnFinish(t *testing.T) {
	enc := NewBlockEncoder(NewNoopCodec())

	out, err := enc.Process(nil, []byte("abc"))
	require.NoError(t, err)
	require.Empty(t, out)

	out, err = enc.Finish(nil)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), out)
}
