// Package config loads, normalizes, and validates tradehall configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: the data directory that holds the trading database, the
// reference loader endpoints and timeouts, and logging output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
