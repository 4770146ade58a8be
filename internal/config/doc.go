// Package config loads, normalizes, and validates dataproj configuration.
//
// It supplies repository defaults, expands tilde paths, reads TOML files,
// and centralizes every knob the CLI needs: workspace location, default
// subdirectory, fuzzy-search behavior, and log routing. Obtain settings
// through this package so downstream code receives sanitized paths and
// canonical log formats.
package config
