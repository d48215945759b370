// Command markmymedia overlays filename markers onto photos, audio, and
// video files in batch. The root command runs the pipeline; subcommands
// cover dependency checks, run history, and configuration management.
package main
