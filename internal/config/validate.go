package config

import (
	"errors"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.PreviewRows < 1 {
		return errors.New("preview_rows must be positive")
	}
	if strings.ContainsRune(c.DefaultSubdir, '/') {
		return errors.New("default_subdir must be a bare directory name")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("log_level must be one of debug, info, warn, error")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return errors.New("log_format must be console or json")
	}
	return nil
}
