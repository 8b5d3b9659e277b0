// Package app wires configuration, logging, the database and the audit
// service into one ready-to-use container.
package app

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/snaptrail/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/snaptrail/internal/adapter/postgres/audit"
	"github.com/heartmarshall/snaptrail/internal/config"
	"github.com/heartmarshall/snaptrail/internal/domain"
	"github.com/heartmarshall/snaptrail/internal/service/audit"
)

// App holds the wired dependencies. Callers register their trackable types
// on Registry before snapshotting.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Pool     *pgxpool.Pool
	Registry *domain.Registry
	Audit    *audit.Service
}

// New loads configuration from configPath (empty: CONFIG_PATH, then the
// default path) and builds an App from it.
func New(ctx context.Context, configPath string) (*App, error) {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(ctx, cfg)
}

// NewWithConfig initializes the logger, connects to the database and creates
// the audit service. The returned App must be closed.
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	registry := domain.NewRegistry()
	txm := postgres.NewTxManager(pool, postgres.WithLockTimeout(cfg.Audit.LockTimeout))
	svc := audit.NewService(logger, registry, auditrepo.New(pool), txm, cfg.Audit)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Pool:     pool,
		Registry: registry,
		Audit:    svc,
	}, nil
}

// Close releases the database pool.
func (a *App) Close() {
	a.Pool.Close()
}
