// Package batch drives the marking routines over many files: a fixed-size
// worker pool per modality, processed in a stable order (photos, audio,
// videos), with per-file results, stage timings, and an end-of-run summary.
// One file's failure never aborts the batch.
package batch
