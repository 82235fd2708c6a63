package rle

import (
	"github.com/arloliu/squish/internal/options"
	"github.com/arloliu/squish/stats"
)

// DefaultOrder is the default context length of the conditional codec.
const DefaultOrder = 1

// conditionalConfig holds the construction-time parameters shared by the
// conditional encoder and decoder.
type conditionalConfig struct {
	order int
	bits  int
}

// ConditionalOption configures a conditional encoder or decoder.
type ConditionalOption = options.Option[*conditionalConfig]

// WithOrder sets the context length: the number of preceding true symbols
// that select the per-context frequency table. Order 0 uses a single shared
// context. The order must not be negative.
func WithOrder(order int) ConditionalOption {
	return options.New(func(cfg *conditionalConfig) error {
		if order < 0 {
			return ErrInvalidOrder
		}
		cfg.order = order

		return nil
	})
}

// WithBitWidth sets the output code width in bits (1-8). Symbols whose rank
// exceeds the width are emitted unmodified.
func WithBitWidth(bits int) ConditionalOption {
	return options.New(func(cfg *conditionalConfig) error {
		if bits < 1 || bits > 8 {
			return ErrInvalidBitWidth
		}
		cfg.bits = bits

		return nil
	})
}

func newConditionalConfig(opts []ConditionalOption) (conditionalConfig, error) {
	cfg := conditionalConfig{order: DefaultOrder, bits: DefaultBitWidth}
	if err := options.Apply(&cfg, opts...); err != nil {
		return conditionalConfig{}, err
	}

	return cfg, nil
}

// symbolRange is the uniform pre-seed of every lazily created context table.
var symbolRange = func() []byte {
	v := make([]byte, 256)
	for i := range v {
		v[i] = byte(i)
	}

	return v
}()

// ConditionalEncoder is a context-adaptive symbol remapper.
//
// For every context, the window of the preceding order true symbols, the
// encoder keeps a stats.RankTable counting which symbols followed that
// context so far. Each incoming symbol is replaced by the code assigned to
// its rank within its context's table, concentrating frequent symbols on
// small output values. After each processed batch all context tables are
// updated with the true symbols, so the decoder can evolve identical tables
// from its decoded output alone.
//
// Tables are created lazily per context and pre-seeded with the full byte
// range at uniform rank before the first real count.
//
// Known gap, kept for wire compatibility: when a symbol was never counted in
// its exact context (or no code exists for its rank), the raw symbol value is
// emitted as if it were itself a code. The decoder interprets that value as a
// rank; once the context's table ranks more symbols than the raw value, the
// round trip silently corrupts. This is a property of the format, not a
// defect to patch here.
type ConditionalEncoder struct {
	order  int
	tables map[string]*stats.RankTable[byte]
	code   codeTable
}

// NewConditionalEncoder creates a conditional encoder. Without options the
// context order is 1 and the code width 8 bits.
func NewConditionalEncoder(opts ...ConditionalOption) (*ConditionalEncoder, error) {
	cfg, err := newConditionalConfig(opts)
	if err != nil {
		return nil, err
	}

	code, err := newCodeTable(cfg.bits)
	if err != nil {
		return nil, err
	}

	return &ConditionalEncoder{
		order:  cfg.order,
		tables: make(map[string]*stats.RankTable[byte]),
		code:   code,
	}, nil
}

// Order returns the context length.
func (e *ConditionalEncoder) Order() int {
	return e.order
}

// BitWidth returns the output code width in bits.
func (e *ConditionalEncoder) BitWidth() int {
	return e.code.bits
}

// Contexts returns the number of contexts observed so far.
func (e *ConditionalEncoder) Contexts() int {
	return len(e.tables)
}

// Decoder creates a decoder matching this encoder's order and code width.
// Only the configuration carries over; table state does not.
func (e *ConditionalEncoder) Decoder() *ConditionalDecoder {
	return &ConditionalDecoder{
		order:  e.order,
		tables: make(map[string]*stats.RankTable[byte]),
		code:   e.code,
	}
}

// Process encodes src as one batch, appending one output byte per input
// byte to dst. The batch's leading symbols are encoded under their shorter
// prefix contexts; afterwards every context table is updated with the true
// symbols of the batch.
func (e *ConditionalEncoder) Process(dst, src []byte) ([]byte, error) {
	n := min(e.order, len(src))
	for i, val := range src[:n] {
		dst = e.encodeSymbol(src[:i], val, dst)
	}
	for i := 0; i+e.order < len(src); i++ {
		dst = e.encodeSymbol(src[i:i+e.order], src[i+e.order], dst)
	}
	updateTables(e.tables, e.order, src)

	return dst, nil
}

// Finish emits nothing; the conditional codec has no trailing state.
func (e *ConditionalEncoder) Finish(dst []byte) ([]byte, error) {
	return dst, nil
}

func (e *ConditionalEncoder) encodeSymbol(cx []byte, next byte, dst []byte) []byte {
	out := next
	if t, ok := e.tables[string(cx)]; ok {
		if rank, ok := t.Rank(next); ok {
			if code, ok := e.code.encode(rank); ok {
				out = code
			}
		}
	}

	return append(dst, out)
}

// ConditionalDecoder mirrors ConditionalEncoder.
//
// It rebuilds the context window from decoded (true) symbols, resolves each
// wire byte through the code table to a rank and through the context's table
// back to the symbol, then updates the tables exactly as the encoder did.
// After N symbols both sides hold byte-identical table state. The raw-symbol
// fallback gap described on ConditionalEncoder applies here symmetrically.
type ConditionalDecoder struct {
	order  int
	tables map[string]*stats.RankTable[byte]
	code   codeTable
}

// NewConditionalDecoder creates a conditional decoder. The options must
// match the encoder's for a correct round trip.
func NewConditionalDecoder(opts ...ConditionalOption) (*ConditionalDecoder, error) {
	cfg, err := newConditionalConfig(opts)
	if err != nil {
		return nil, err
	}

	code, err := newCodeTable(cfg.bits)
	if err != nil {
		return nil, err
	}

	return &ConditionalDecoder{
		order:  cfg.order,
		tables: make(map[string]*stats.RankTable[byte]),
		code:   code,
	}, nil
}

// Order returns the context length.
func (d *ConditionalDecoder) Order() int {
	return d.order
}

// BitWidth returns the output code width in bits.
func (d *ConditionalDecoder) BitWidth() int {
	return d.code.bits
}

// Contexts returns the number of contexts observed so far.
func (d *ConditionalDecoder) Contexts() int {
	return len(d.tables)
}

// Process decodes src as one batch, appending one output byte per input
// byte to dst, then updates every context table with the decoded symbols.
func (d *ConditionalDecoder) Process(dst, src []byte) ([]byte, error) {
	decoded := make([]byte, 0, len(src))
	ctx := make([]byte, 0, d.order)

	n := min(d.order, len(src))
	for _, val := range src[:n] {
		sym := d.decodeSymbol(ctx, val)
		dst = append(dst, sym)
		decoded = append(decoded, sym)
		ctx = append(ctx, sym)
	}
	for _, val := range src[n:] {
		sym := d.decodeSymbol(ctx, val)
		dst = append(dst, sym)
		decoded = append(decoded, sym)
		if d.order > 0 {
			copy(ctx, ctx[1:])
			ctx[d.order-1] = sym
		}
	}
	updateTables(d.tables, d.order, decoded)

	return dst, nil
}

// Finish emits nothing; the conditional codec has no trailing state.
func (d *ConditionalDecoder) Finish(dst []byte) ([]byte, error) {
	return dst, nil
}

func (d *ConditionalDecoder) decodeSymbol(cx []byte, val byte) byte {
	rank := d.code.decode(val)
	if t, ok := d.tables[string(cx)]; ok {
		if sym, ok := t.Position(rank); ok {
			return sym
		}
	}

	// Fallback: the wire byte was an unmapped raw symbol.
	return byte(rank)
}

// updateTables counts the true symbols of a batch into their context tables,
// creating pre-seeded tables for contexts seen for the first time. Encoder
// and decoder share this routine so their table state cannot diverge.
func updateTables(tables map[string]*stats.RankTable[byte], order int, syms []byte) {
	n := min(order, len(syms))
	for i, val := range syms[:n] {
		countSymbol(tables, syms[:i], val)
	}
	for i := 0; i+order < len(syms); i++ {
		countSymbol(tables, syms[i:i+order], syms[i+order])
	}
}

func countSymbol(tables map[string]*stats.RankTable[byte], cx []byte, val byte) {
	if t, ok := tables[string(cx)]; ok {
		t.Insert(val)
		return
	}

	t := stats.NewCapacity[byte](len(symbolRange))
	t.Feed(symbolRange)
	t.Insert(val)
	tables[string(cx)] = t
}
