package checksum

import (
	"fmt"

	"github.com/arloliu/squish/stream"
)

// Checksum is a stream processor that folds the input into a digest.
// Process never emits output; Finish appends the formatted digest, which
// String renders without consuming the processor.
type Checksum interface {
	stream.Processor
	fmt.Stringer
}

var (
	_ Checksum = (*Adler32)(nil)
	_ Checksum = (*CRC32)(nil)
	_ Checksum = (*XXHash64)(nil)
)
