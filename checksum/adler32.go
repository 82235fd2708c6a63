package checksum

import "fmt"

// Adler32 is a rolling checksum processor.
//
// The running state is the pair (a, b), seeded (1, 0). Every input byte c
// advances a by c and b by the new a, both modulo the 16-bit field; the
// final digest is (b<<16)|a.
type Adler32 struct {
	a uint16
	b uint16
}

// NewAdler32 creates an Adler32 checksum processor.
func NewAdler32() *Adler32 {
	return &Adler32{a: 1, b: 0}
}

// Sum32 returns the current 32-bit digest.
func (c *Adler32) Sum32() uint32 {
	return uint32(c.b)<<16 | uint32(c.a)
}

// String renders the digest as Adler32<0xXXXXXXXX>.
func (c *Adler32) String() string {
	return fmt.Sprintf("Adler32<0x%08X>", c.Sum32())
}

// Reset restores the seed state.
func (c *Adler32) Reset() {
	c.a = 1
	c.b = 0
}

// Process folds src into the running digest. No output is emitted.
func (c *Adler32) Process(dst, src []byte) ([]byte, error) {
	for _, b := range src {
		c.a += uint16(b) % 65535
		c.b += c.a % 65535
	}

	return dst, nil
}

// Finish appends the formatted digest.
func (c *Adler32) Finish(dst []byte) ([]byte, error) {
	return append(dst, c.String()...), nil
}
