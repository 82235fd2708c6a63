// Package format defines the type tags naming the processors and compression
// algorithms available in squish.
package format

type (
	ProcessorType   uint8
	CompressionType uint8
)

const (
	TypeDuplicate      ProcessorType = 0x1 // TypeDuplicate is the identity passthrough.
	TypeAdler32        ProcessorType = 0x2 // TypeAdler32 is the Adler32 rolling checksum.
	TypeCRC32          ProcessorType = 0x3 // TypeCRC32 is the CRC32/IEEE checksum.
	TypeXXHash64       ProcessorType = 0x4 // TypeXXHash64 is the 64-bit xxHash checksum.
	TypeClassicRLE     ProcessorType = 0x5 // TypeClassicRLE is the MNP5 run-length codec.
	TypeLossyRLE       ProcessorType = 0x6 // TypeLossyRLE is the lossy run-length codec.
	TypeTelemetryRLE   ProcessorType = 0x7 // TypeTelemetryRLE is the differential telemetry codec.
	TypeConditionalRLE ProcessorType = 0x8 // TypeConditionalRLE is the context-adaptive remapper.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (p ProcessorType) String() string {
	switch p {
	case TypeDuplicate:
		return "Duplicate"
	case TypeAdler32:
		return "Adler32"
	case TypeCRC32:
		return "CRC32"
	case TypeXXHash64:
		return "XXHash64"
	case TypeClassicRLE:
		return "ClassicRLE"
	case TypeLossyRLE:
		return "LossyRLE"
	case TypeTelemetryRLE:
		return "TelemetryRLE"
	case TypeConditionalRLE:
		return "ConditionalRLE"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
