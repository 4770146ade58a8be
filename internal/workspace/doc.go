// Package workspace manages a data-analysis project's directory layout: a
// base directory with data/ and results/ subdirectories, created on
// construction and reused idempotently afterwards.
//
// The workspace owns naming policy only. It resolves logical file names to
// concrete paths (exact, suffix-completed by the codec, or fuzzy
// substring-searched) and hands the resulting path to the codec package,
// which owns all encode/decode policy. Ambiguous fuzzy matches are an
// explicit failure, never a silent pick.
package workspace
