package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/casaflow/property-service/internal/config"
	"github.com/casaflow/property-service/internal/fallback"
	"github.com/casaflow/property-service/internal/resilience"
	"github.com/casaflow/property-service/internal/utils"
)

const (
	maxConnectRetries = 5
	connectTimeout    = 5 * time.Second
	initialBackoff    = 500 * time.Millisecond
)

/*
App holds the process-wide pieces: the remote pool, the local store and
the shared availability flag.

App itself satisfies repositories.DB. The pool lives behind a mutex so
the availability probe can establish it after boot (the service starts
fine with the backend down and picks it up later); repositories calling
through a missing pool get resilience.ErrRemoteUnavailable instead of a
nil dereference.
*/
type App struct {
	Config       *config.Config
	Fallback     *fallback.Store
	Availability *resilience.Availability

	mu   sync.RWMutex
	pool *pgxpool.Pool
}

func NewApp(cfg *config.Config) (*App, error) {
	app := &App{
		Config:       cfg,
		Fallback:     fallback.NewStore(),
		Availability: resilience.NewAvailability(cfg.RemoteConfigured),
	}

	if !cfg.RemoteConfigured {
		return app, nil
	}

	backoff := initialBackoff
	for i := 1; i <= maxConnectRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		pool, err := newDBPool(ctx, cfg.DatabaseURL)
		cancel()
		if err == nil {
			utils.Logger.Infof("Connected to remote backend on attempt %d", i)
			app.setPool(pool)
			return app, nil
		}

		utils.Logger.WithError(err).Warnf(
			"Failed remote connect on attempt %d/%d. Retrying in %v...",
			i, maxConnectRetries, backoff,
		)
		if i < maxConnectRetries {
			time.Sleep(backoff)
			backoff *= 2
		}
	}

	// Boot anyway: the probe keeps trying and the fallback store
	// serves in the meantime.
	utils.Logger.Errorf("Unable to connect after %d attempts; starting on the local store", maxConnectRetries)
	app.Availability.MarkDown()
	return app, nil
}

func (a *App) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pool != nil {
		a.pool.Close()
		a.pool = nil
		utils.Logger.Info("Remote backend connection closed.")
	}
}

/* ---------- repositories.DB ---------- */

func (a *App) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	pool := a.getPool()
	if pool == nil {
		return nil, resilience.ErrRemoteUnavailable
	}
	return pool.Exec(ctx, sql, args...)
}

func (a *App) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	pool := a.getPool()
	if pool == nil {
		return nil, resilience.ErrRemoteUnavailable
	}
	return pool.Query(ctx, sql, args...)
}

func (a *App) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	pool := a.getPool()
	if pool == nil {
		return unavailableRow{}
	}
	return pool.QueryRow(ctx, sql, args...)
}

// unavailableRow satisfies pgx.Row when no pool exists; QueryRow has no
// error return so the failure must come out of Scan.
type unavailableRow struct{}

func (unavailableRow) Scan(...any) error { return resilience.ErrRemoteUnavailable }

/* ---------- internals ---------- */

func (a *App) getPool() *pgxpool.Pool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.pool
}

func (a *App) setPool(p *pgxpool.Pool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pool = p
}

func newDBPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	poolCfg.MaxConns = 10
	return pgxpool.ConnectConfig(ctx, poolCfg)
}
