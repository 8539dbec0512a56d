// Package transcript reconstructs two timestamped word sequences from the
// line-oriented "srt compare" stream.
//
// Each input line belongs to one of two sides. A side owns a WordStream (the
// append-only sequence of WordRecords) and a SegmentParser, a small state
// machine that accumulates I/T/R/S/W lines into the current subtitle Segment
// and freezes it when a short line terminates the block. DualStreamReader
// routes lines to the two sides by prefix and tracks line numbers so parse
// failures can be reported precisely.
//
// Word tags are an opaque payload decoded by a caller-supplied TagDecoder;
// NLPTags is the decoder for the part-of-speech / stop-word columns produced
// by the upstream classifier.
package transcript
