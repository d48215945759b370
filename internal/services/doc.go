// Package services defines shared utilities consumed by the marking
// routines and the batch runner.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that tag failures with a
//     stable kind for later classification and reporting.
//   - Context helpers that stamp the current file and modality so log lines
//     emitted deep inside a marking routine stay attributable.
package services
