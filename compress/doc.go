// Package compress provides block compression codecs and the processors that
// bridge them onto the stream framework.
//
// A Codec compresses and decompresses a complete payload in one call; it is
// the "block mode" counterpart of the byte-at-a-time codecs in package rle.
// BlockEncoder and BlockDecoder wrap a Codec as a stream.Processor by
// accumulating the whole stream and emitting the transformed payload when
// the stream finishes.
//
// Available algorithms: Noop (passthrough), S2, LZ4 and Zstandard. The Zstd
// codec uses the cgo-backed gozstd implementation when cgo is available and
// falls back to the pure-Go implementation otherwise.
package compress
