// Package logging assembles the structured slog loggers used across
// dataproj. It owns the console and JSON handlers and centralizes level
// parsing so the CLI and workspace emit log lines with the same shape.
//
// Prefer these constructors over hand-rolled slog setup; NewNop provides a
// discard logger for tests and wiring code that cannot fail.
package logging
