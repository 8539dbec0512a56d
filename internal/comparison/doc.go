// Package comparison wires a transcript pair through alignment and report
// rendering.
//
// Run reads the combined line stream, verifies both sides, guards the matrix
// size, aligns side 1 against side 2 with either exact or case-folded word
// equality, streams the correlated rows into a report writer and optionally
// records a summary in the run history.
package comparison
