// Package main hosts the tradehall CLI entrypoint and command graph.
//
// The Cobra-based command tree covers interactive trade entry, reference
// data sync, read-only views of the database, and configuration
// scaffolding. It centralizes configuration resolution, database locking,
// and structured logging setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
