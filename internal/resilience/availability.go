package resilience

import (
	"sync/atomic"

	"github.com/casaflow/property-service/internal/utils"
)

// Availability is the shared up/down flag for the remote backend. It is
// seeded from the configuration check (placeholder credentials mean the
// backend was never configured) and afterwards flipped by the periodic
// probe. Write paths consult it to decide between a remote write and a
// local fallback write.
type Availability struct {
	up         atomic.Bool
	configured bool
}

// NewAvailability seeds the flag. An unconfigured backend is permanently
// down; a configured one starts optimistic and lets the probe decide.
func NewAvailability(configured bool) *Availability {
	a := &Availability{configured: configured}
	a.up.Store(configured)
	return a
}

func (a *Availability) Configured() bool { return a.configured }

func (a *Availability) Available() bool { return a.up.Load() }

func (a *Availability) MarkUp() {
	if !a.configured {
		return
	}
	if !a.up.Swap(true) {
		utils.Logger.Info("remote backend is reachable again")
	}
}

func (a *Availability) MarkDown() {
	if a.up.Swap(false) {
		utils.Logger.Warn("remote backend marked unavailable; writes go to the local store")
	}
}
