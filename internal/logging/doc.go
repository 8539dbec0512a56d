// Package logging builds the slog loggers used by srtdiff.
//
// Two handlers are available: a compact console handler for people reading
// stderr, and a JSON handler for tooling. Reports go to stdout, so loggers
// default to stderr and may additionally append to a file. Components tag
// their output through NewComponentLogger; tests and library callers that do
// not care use NewNop.
package logging
