package checksum

import (
	"fmt"
	"hash/crc32"
)

// CRC32 is a cyclic-redundancy checksum processor over the IEEE polynomial.
type CRC32 struct {
	sum uint32
}

// NewCRC32 creates a CRC32 checksum processor.
func NewCRC32() *CRC32 {
	return &CRC32{}
}

// Sum32 returns the current 32-bit digest.
func (c *CRC32) Sum32() uint32 {
	return c.sum
}

// String renders the digest as CRC32<0xXXXXXXXX>.
func (c *CRC32) String() string {
	return fmt.Sprintf("CRC32<0x%08X>", c.sum)
}

// Reset restores the seed state.
func (c *CRC32) Reset() {
	c.sum = 0
}

// Process folds src into the running digest. No output is emitted.
func (c *CRC32) Process(dst, src []byte) ([]byte, error) {
	c.sum = crc32.Update(c.sum, crc32.IEEETable, src)
	return dst, nil
}

// Finish appends the formatted digest.
func (c *CRC32) Finish(dst []byte) ([]byte, error) {
	return append(dst, c.String()...), nil
}
