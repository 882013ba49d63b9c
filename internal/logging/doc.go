// Package logging assembles the structured slog loggers used across
// tradehall commands.
//
// It centralizes level and output plumbing so the interactive workflow and
// the reference loader emit data with the same shape: console text for a
// terminal session, JSON when requested, and an append-only log file in the
// data directory. The package also provides a no-op logger for tests and
// wiring code that cannot fail.
package logging
