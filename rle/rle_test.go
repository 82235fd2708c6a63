package rle

import (
	"testing"

	"github.com/arloliu/squish/stream"
	"github.com/stretchr/testify/require"
)

// processAll runs src through p in a single Process call followed by Finish.
func processAll(t *testing.T, p stream.Processor, src []byte) []byte {
	t.Helper()

	out, err := p.Process(nil, src)
	require.NoError(t, err)

	out, err = p.Finish(out)
	require.NoError(t, err)

	return out
}

// processChunked runs src through p split into chunks of the given size.
func processChunked(t *testing.T, p stream.Processor, src []byte, size int) []byte {
	t.Helper()

	var (
		out []byte
		err error
	)
	for len(src) > 0 {
		n := min(size, len(src))
		out, err = p.Process(out, src[:n])
		require.NoError(t, err)
		src = src[n:]
	}

	out, err = p.Finish(out)
	require.NoError(t, err)

	return out
}
