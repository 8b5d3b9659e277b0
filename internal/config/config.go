package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Audit    AuditConfig    `yaml:"audit"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// AuditConfig holds audit trail settings.
type AuditConfig struct {
	// DefaultAction labels manual snapshots that name no action.
	DefaultAction string `yaml:"default_action" env:"AUDIT_DEFAULT_ACTION" env-default:"update"`
	// LockTimeout bounds the wait for another writer of the same record.
	// Zero keeps the server default.
	LockTimeout time.Duration `yaml:"lock_timeout" env:"AUDIT_LOCK_TIMEOUT" env-default:"5s"`
	// HistoryLimit caps the entries printed by the CLI history command.
	HistoryLimit int `yaml:"history_limit" env:"AUDIT_HISTORY_LIMIT" env-default:"50"`
}
