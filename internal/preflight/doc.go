// Package preflight provides readiness checks for the filesystem paths
// and the version metadata endpoint that tradehall depends on.
//
// The add command checks the data directory before opening an entry
// session, and the sync command additionally checks that the version
// manifest endpoint answers before committing to a large download.
package preflight
