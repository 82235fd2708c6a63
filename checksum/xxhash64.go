package checksum

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// XXHash64 is a checksum processor over the 64-bit xxHash algorithm, a
// non-cryptographic hash considerably faster than the 32-bit checksums for
// large streams.
type XXHash64 struct {
	digest *xxhash.Digest
}

// NewXXHash64 creates an xxHash64 checksum processor.
func NewXXHash64() *XXHash64 {
	return &XXHash64{digest: xxhash.New()}
}

// Sum64 returns the current 64-bit digest.
func (c *XXHash64) Sum64() uint64 {
	return c.digest.Sum64()
}

// String renders the digest as XXHash64<0xXXXXXXXXXXXXXXXX>.
func (c *XXHash64) String() string {
	return fmt.Sprintf("XXHash64<0x%016X>", c.Sum64())
}

// Reset restores the seed state.
func (c *XXHash64) Reset() {
	c.digest.Reset()
}

// Process folds src into the running digest. No output is emitted.
func (c *XXHash64) Process(dst, src []byte) ([]byte, error) {
	_, _ = c.digest.Write(src) // never fails
	return dst, nil
}

// Finish appends the formatted digest.
func (c *XXHash64) Finish(dst []byte) ([]byte, error) {
	return append(dst, c.String()...), nil
}
