// Package config loads, normalizes, and validates subweave configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes the grouping
// thresholds, alignment settings, and batch operations the CLI needs, and
// builds the option structs the subtitles package consumes.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical format names, and clear validation errors.
package config
