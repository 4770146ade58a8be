// Package main hosts the dataproj CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the workspace and codec packages on
// the terminal: workspace scaffolding, directory listings, table previews,
// format conversion, and configuration scaffolding. It centralizes
// configuration resolution and structured logging setup so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
