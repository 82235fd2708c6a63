package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProcessorType_String(t *testing.T) {
	tests := []struct {
		processorType ProcessorType
		expected      string
	}{
		{TypeDuplicate, "Duplicate"},
		{TypeAdler32, "Adler32"},
		{TypeCRC32, "CRC32"},
		{TypeXXHash64, "XXHash64"},
		{TypeClassicRLE, "ClassicRLE"},
		{TypeLossyRLE, "LossyRLE"},
		{TypeTelemetryRLE, "TelemetryRLE"},
		{TypeConditionalRLE, "ConditionalRLE"},
		{ProcessorType(0xEE), "Unknown"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, tt.processorType.String())
	}
}

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		compressionType CompressionType
		expected        string
	}{
		{CompressionNone, "None"},
		{CompressionZstd, "Zstd"},
		{CompressionS2, "S2"},
		{CompressionLZ4, "LZ4"},
		{CompressionType(0xEE), "Unknown"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, tt.compressionType.String())
	}
}
