// Package rle implements a family of run-length style codecs on top of the
// stream.Processor contract.
//
// Run-length encoding compresses consecutive repetitions of the same byte by
// replacing the run with the byte and a count. The codecs in this package
// differ in how they mark counts and in what they trade for compression:
//
//   - Classic: the MNP5 scheme. No dedicated escape byte exists; instead the
//     run symbol itself is repeated threshold times and the next byte is the
//     count of additional repetitions. Exact round trip.
//
//   - Lossy: runs shorter than the threshold are merged into the following
//     run instead of being emitted, so the output is always <symbol, count>
//     pairs. Decoding yields a reduced-information reconstruction, never the
//     original.
//
//   - Telemetry: a differential coder for near-monotonic numeric streams.
//     Each byte is stored either as a signed delta from its predecessor
//     (when the difference fits the threshold) or as a raw value, in groups
//     of eight with a trailing info byte recording which form each position
//     used. Exact round trip.
//
//   - Conditional: a context-adaptive remapper. One frequency table is kept
//     per context (the window of the preceding order bytes); each symbol is
//     replaced by the code assigned to its rank within its context's table,
//     concentrating the output alphabet on few values so that a later run
//     or entropy stage compresses better. One output byte per input byte.
//
// All encoders carry run state across Process calls, so chunk boundaries
// never change the produced stream.
package rle
