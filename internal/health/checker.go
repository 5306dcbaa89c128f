// Package health provides liveness probing for the store behind the service.
package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/mindful-labs/mood-tracker/internal/store"
)

// HealthPinger is implemented by stores that can cheaply verify their
// backing file or connection.
type HealthPinger interface {
	HealthPing(ctx context.Context) error
}

// StoreChecker monitors store health via periodic probes.
type StoreChecker struct {
	store        store.Store
	healthy      atomic.Int32
	log          zerolog.Logger
	probeTimeout time.Duration
}

// NewStoreChecker creates a new store health checker.
func NewStoreChecker(s store.Store, log zerolog.Logger, probeTimeout time.Duration) *StoreChecker {
	hc := &StoreChecker{
		store:        s,
		log:          log,
		probeTimeout: probeTimeout,
	}
	hc.healthy.Store(0) // start unhealthy until first successful probe
	return hc
}

// IsHealthy returns the cached health status (non-blocking).
func (hc *StoreChecker) IsHealthy() bool {
	return hc.healthy.Load() == 1
}

// Start begins periodic health checking and blocks until ctx is done.
func (hc *StoreChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	check := func() {
		to := hc.probeTimeout
		if to <= 0 {
			to = 2 * time.Second
		}
		checkCtx, cancel := context.WithTimeout(ctx, to)
		defer cancel()

		if hc.probe(checkCtx) {
			hc.healthy.Store(1)
		} else {
			hc.healthy.Store(0)
		}
	}

	// Initial check
	check()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}

func (hc *StoreChecker) probe(ctx context.Context) bool {
	// Prefer specialized HealthPing if the store provides it
	if p, ok := hc.store.(HealthPinger); ok {
		if err := p.HealthPing(ctx); err != nil {
			hc.log.Error().Err(err).Msg("store health check failed")
			return false
		}
		return true
	}

	// Fallback: a full scan is cheap at this scale
	if _, err := hc.store.List(ctx); err != nil {
		hc.log.Error().Err(err).Msg("store health check failed")
		return false
	}
	return true
}
