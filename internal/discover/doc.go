// Package discover resolves the CLI's input arguments into a flat list of
// files and derives per-file output locations under the output tree.
package discover
