// Package language normalizes the language setting used for case-folded word
// comparison.
//
// Users may name a language by ISO 639-1 code, ISO 639-2 code (either the
// terminology or the bibliographic form) or English name; all of them map to
// the two-letter tag golang.org/x/text understands. Anything unrecognized is
// passed through so full BCP 47 tags such as "pt-BR" still work.
package language
