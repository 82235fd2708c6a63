package compress

// ZstdCodec compresses payloads with Zstandard, trading some speed for the
// best ratio among the built-in codecs.
//
// The Compress and Decompress methods are provided by one of two build
// variants: the cgo-backed gozstd implementation, or a pure-Go
// implementation when cgo is unavailable.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstandard codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
