// Package logging assembles structured slog loggers and formatting helpers used
// across MovieShows components.
//
// It owns the configurable console/JSON handlers, rotating file output, and
// the per-process session identifier, and exposes context-aware helpers so
// catalog and queue code can tag log lines with item ids and payload
// locations. The package also provides a no-op logger for tests and wiring
// code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
