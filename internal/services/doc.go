// Package services defines shared utilities consumed by the subweave
// operations and the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and operation names for
//     logging.
//   - Structured error markers plus the Wrap helper that classify failures
//     (parse, I/O, configuration, validation) into process exit codes.
//
// Use these helpers when wiring new operations so error handling and
// observability stay uniform.
package services
