// Package entry implements the interactive librarian trade entry workflow.
//
// A Session drives a loop of entry attempts over the trading database: it
// resolves a trading-hall location and a librarian villager (creating or
// relocating them with confirmation), gates on the four-slot trade limit,
// validates enchantment, level, and cost against loader-owned reference
// data, guards against accidental duplicate offers, and appends the trade.
// Each confirmed mutation commits immediately; an interrupted session leaves
// a partially-applied but individually-consistent database.
//
// Validation is split into pure parse functions that an outer prompt loop
// calls until they succeed, so the rules are unit-testable without a
// terminal. Attempt outcomes are an explicit enum that feeds the session
// continuation state machine, which remembers the last villager and location
// between attempts.
package entry
