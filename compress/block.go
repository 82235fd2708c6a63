package compress

import (
	"github.com/arloliu/squish/internal/pool"
	"github.com/arloliu/squish/stream"
)

// BlockEncoder adapts a Codec to the stream.Processor contract.
//
// Block compression needs the complete payload before it can emit anything,
// so Process only accumulates input; the compressed payload is produced by
// Finish in a single piece.
type BlockEncoder struct {
	codec Codec
	buf   *pool.ByteBuffer
}

var _ stream.Processor = (*BlockEncoder)(nil)

// NewBlockEncoder creates a processor that compresses the whole stream with
// the given codec.
func NewBlockEncoder(codec Codec) *BlockEncoder {
	return &BlockEncoder{
		codec: codec,
		buf:   pool.GetBlockBuffer(),
	}
}

// Process accumulates src; nothing is emitted until Finish.
func (e *BlockEncoder) Process(dst, src []byte) ([]byte, error) {
	_, _ = e.buf.Write(src)
	return dst, nil
}

// Finish compresses the accumulated payload and appends it to dst.
// The accumulation buffer is released back to its pool.
func (e *BlockEncoder) Finish(dst []byte) ([]byte, error) {
	compressed, err := e.codec.Compress(e.buf.Bytes())
	if err != nil {
		pool.PutBlockBuffer(e.buf)
		e.buf = nil

		return dst, err
	}

	// The codec may return a slice aliasing the accumulation buffer (Noop
	// does), so copy into dst before releasing it.
	dst = append(dst, compressed...)
	pool.PutBlockBuffer(e.buf)
	e.buf = nil

	return dst, nil
}

// BlockDecoder adapts a Codec's decompression side to the stream.Processor
// contract, mirroring BlockEncoder.
type BlockDecoder struct {
	codec Codec
	buf   *pool.ByteBuffer
}

var _ stream.Processor = (*BlockDecoder)(nil)

// NewBlockDecoder creates a processor that decompresses the whole stream
// with the given codec.
func NewBlockDecoder(codec Codec) *BlockDecoder {
	return &BlockDecoder{
		codec: codec,
		buf:   pool.GetBlockBuffer(),
	}
}

// Process accumulates src; nothing is emitted until Finish.
func (d *BlockDecoder) Process(dst, src []byte) ([]byte, error) {
	_, _ = d.buf.Write(src)
	return dst, nil
}

// Finish decompresses the accumulated payload and appends it to dst.
// The accumulation buffer is released back to its pool.
func (d *BlockDecoder) Finish(dst []byte) ([]byte, error) {
	decompressed, err := d.codec.Decompress(d.buf.Bytes())
	if err != nil {
		pool.PutBlockBuffer(d.buf)
		d.buf = nil

		return dst, err
	}

	dst = append(dst, decompressed...)
	pool.PutBlockBuffer(d.buf)
	d.buf = nil

	return dst, nil
}
