package rle

// DefaultBitWidth is the default output code width of the conditional codec.
const DefaultBitWidth = 8

// codeTable is the fixed-width bijection between ranks and output symbols.
// With a width of n bits the ranks 0..2^n-1 map onto the low 2^n byte
// values; ranks beyond that have no code and force the raw-symbol fallback.
type codeTable struct {
	bits int
}

func newCodeTable(bits int) (codeTable, error) {
	if bits < 1 || bits > 8 {
		return codeTable{}, ErrInvalidBitWidth
	}

	return codeTable{bits: bits}, nil
}

// size returns the number of assignable codes.
func (c codeTable) size() int {
	return 1 << c.bits
}

// encode maps a rank to its output symbol. The second return is false when
// the rank lies outside the code width.
func (c codeTable) encode(rank int) (byte, bool) {
	if rank < 0 || rank >= c.size() {
		return 0, false
	}

	return byte(rank), true
}

// decode maps a wire byte back to the rank it encodes.
func (c codeTable) decode(b byte) int {
	return int(b)
}
