package config

import (
	"fmt"
	"strings"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed database.max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Audit.validate(); err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	return nil
}

func (l *LogConfig) validate() error {
	if !oneOf(strings.ToLower(l.Level), validLogLevels) {
		return fmt.Errorf("level must be one of %v (got %q)", validLogLevels, l.Level)
	}
	if !oneOf(strings.ToLower(l.Format), validLogFormats) {
		return fmt.Errorf("format must be one of %v (got %q)", validLogFormats, l.Format)
	}
	return nil
}

func (a *AuditConfig) validate() error {
	a.DefaultAction = strings.TrimSpace(a.DefaultAction)
	if a.DefaultAction == "" {
		return fmt.Errorf("default_action must not be empty")
	}
	if a.LockTimeout < 0 {
		return fmt.Errorf("lock_timeout must be >= 0 (got %s)", a.LockTimeout)
	}
	if a.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must be >= 0 (got %d)", a.HistoryLimit)
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
