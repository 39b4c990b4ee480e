package app

import (
	"context"
	"time"

	cron "github.com/robfig/cron/v3"

	"github.com/casaflow/property-service/internal/utils"
)

const probeTimeout = 3 * time.Second

// StartAvailabilityProbe pings the remote backend every minute and
// flips the shared availability flag. With no pool yet (boot-time
// connect failed) it re-dials instead. No-op for an unconfigured
// backend. Returns the scheduler so main can stop it on shutdown.
func (a *App) StartAvailabilityProbe() *cron.Cron {
	c := cron.New()
	if !a.Config.RemoteConfigured {
		return c
	}

	_, err := c.AddFunc("* * * * *", a.probeOnce)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to schedule availability probe")
	}
	c.Start()
	return c
}

func (a *App) probeOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	pool := a.getPool()
	if pool == nil {
		pool, err := newDBPool(ctx, a.Config.DatabaseURL)
		if err != nil {
			utils.Logger.WithError(err).Debug("availability probe: backend still unreachable")
			a.Availability.MarkDown()
			return
		}
		a.setPool(pool)
		a.Availability.MarkUp()
		return
	}

	if err := pool.Ping(ctx); err != nil {
		utils.Logger.WithError(err).Debug("availability probe: ping failed")
		a.Availability.MarkDown()
		return
	}
	a.Availability.MarkUp()
}
