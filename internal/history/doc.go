// Package history persists per-file marking results to a local SQLite
// database so past runs can be inspected with the history subcommand. A file
// lock serializes schema setup and writes across concurrent invocations
// sharing one database.
package history
