// Package logging assembles structured slog loggers and formatting helpers used
// across subweave.
//
// It owns the console and JSON handlers, level and output plumbing, and
// context-aware helpers that tag log lines with the run ID and the batch
// operation being executed. A no-op logger is provided for tests and for
// callers that do not care about diagnostics.
package logging
