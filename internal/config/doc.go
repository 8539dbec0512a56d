// Package config loads, normalizes, and validates srtdiff configuration.
//
// It supplies defaults that reproduce the reference report, expands user
// paths (including tilde shortcuts), reads TOML files, and honours the
// SRTDIFF_LOG_LEVEL environment fallback. Command flags are applied on top of
// the loaded Config by the CLI; everything else should read settings from here
// so validation errors name the TOML key at fault.
package config
