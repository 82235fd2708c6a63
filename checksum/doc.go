// Package checksum provides checksum processors for the stream framework.
//
// A checksum processor consumes the whole stream without emitting anything;
// its Finish step appends a human-readable rendering of the digest in the
// form <AlgorithmName><hex-value>, for example Adler32<0x11E60398>.
package checksum
