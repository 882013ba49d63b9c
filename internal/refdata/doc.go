// Package refdata syncs enchantment and villager job reference data from
// the Mojang piston-meta service into the trading database.
//
// A sync resolves the latest release through the version manifest, downloads
// that release's client archive into memory, verifies its SHA-1, and parses
// the bundled JSON resources: enchantment definitions filtered down to the
// tradeable set, and job identifiers from the acquirable job site tag. The
// extracted rows replace the loader-owned tables wholesale in one
// transaction, so a failed sync never leaves a partial reference set.
package refdata
