// Package main hosts the srtdiff CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once per invocation, applies
// flag overrides, builds the slog logger and hands off to the internal
// packages: comparison for the aligned report, transcript for the parse dump,
// history for stored runs and config for scaffolding. Reports go to stdout and
// logs to stderr so the report can be piped.
package main
