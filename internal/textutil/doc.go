// Package textutil provides the small text transforms shared by the parser,
// the aligner and the report writers.
//
// The primary use cases are:
//   - Stripping the output delimiter from free-text fields before they are
//     written into a delimited row
//   - Folding words to a locale-aware comparison key when alignment runs in
//     case-insensitive mode
//   - Rendering stop-word flags and other booleans the way the upstream NLP
//     classifier prints them
package textutil
