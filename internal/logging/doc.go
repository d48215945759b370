// Package logging constructs the module's slog loggers: a compact console
// handler for interactive runs and a JSON handler for machine consumption,
// plus helpers that derive structured fields from context.
package logging
