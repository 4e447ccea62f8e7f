// Package filters provides PDF stream filters for the writer.
//
// PDF streams can be compressed with various algorithms. This package
// implements the Flate (zlib/deflate) filter, the only filter the writer
// emits:
//
//	compressed, err := filters.FlateEncode(data, 6)
//
// Compression levels follow zlib: 0 (store) through 9 (best). Levels
// outside that range are clamped, not rejected.
//
// The matching decoder is also provided:
//
//	decoded, err := filters.FlateDecode(compressed)
package filters
