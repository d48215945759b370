// Package config loads, validates, and defaults the TOML configuration.
//
// Resolution order: an explicit --config path, then
// ~/.config/markmymedia/config.toml. A missing file yields defaults; a
// malformed file is an error. CLI flags override loaded values at the
// command layer.
package config
