package config

import "fmt"

func (c *Config) validate() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	if c.Workers > 256 {
		return fmt.Errorf("workers: %d exceeds the supported maximum of 256", c.Workers)
	}
	return nil
}
