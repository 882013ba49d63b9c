// Package tradedb persists trading-hall data in SQLite and exposes the
// queries the interactive workflow and the reference loader need.
//
// The Store manages the database connection, the single-writer lock file,
// schema initialization, and mechanical CRUD over five tables: locations,
// villagers, enchantments, jobs, and librarian_trades. Business rules (the
// librarian-only restriction, the four-slot limit, level bounds, duplicate
// confirmation) live in the workflow, not here; the schema deliberately
// carries no uniqueness constraint on trades.
//
// The enchantments and jobs tables are owned by the reference loader and
// are replaced wholesale on each sync. Callers must tolerate rows
// disappearing or changing max levels between syncs.
//
// Treat this package as the single source of truth for schema semantics;
// schema changes bump the version in schema.go.
package tradedb
