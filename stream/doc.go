// Package stream defines the processing contract shared by every codec in
// squish and the driver that pumps a byte source through a processor into a
// byte sink.
//
// A Processor folds chunks of input bytes into output bytes. It owns whatever
// state must survive a chunk boundary (an open run, a partial telemetry
// group, a running checksum), so callers may split the input at arbitrary
// positions without changing the produced stream. The Stream driver repeats a
// simple cycle: read a chunk from the source, hand it to the processor, write
// whatever the processor emitted to the sink, and once the source is
// exhausted flush the processor's trailing state with Finish.
//
// Basic usage:
//
//	p := stream.NewDuplicate()
//	s := stream.New(bytes.NewReader(input), &out, p)
//	n, err := s.Consume()
package stream
