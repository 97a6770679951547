package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/terra-clan/paradigm-advisor/internal/metrics"
)

// Sweeper removes expired sessions from a store
type Sweeper interface {
	DeleteExpired(ctx context.Context) (int, error)
}

// Cleaner handles periodic cleanup of expired page sessions
type Cleaner struct {
	store    Sweeper
	interval time.Duration
	done     chan struct{}
}

// NewCleaner creates a new cleanup worker
func NewCleaner(store Sweeper, interval time.Duration) *Cleaner {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	return &Cleaner{
		store:    store,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins the cleanup worker in a goroutine
func (c *Cleaner) Start(ctx context.Context) {
	go c.run(ctx)
}

// Done is closed once the worker has stopped
func (c *Cleaner) Done() <-chan struct{} {
	return c.done
}

// run is the main loop for the cleanup worker
func (c *Cleaner) run(ctx context.Context) {
	defer close(c.done)
	slog.Info("session cleanup worker started", "interval", c.interval)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	// Run immediately on start
	c.cleanup(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("session cleanup worker stopped")
			return
		case <-ticker.C:
			c.cleanup(ctx)
		}
	}
}

// cleanup removes expired sessions once
func (c *Cleaner) cleanup(ctx context.Context) {
	slog.Debug("running session cleanup cycle")

	removed, err := c.store.DeleteExpired(ctx)
	if err != nil {
		slog.Error("failed to delete expired sessions", "error", err)
		return
	}

	if removed == 0 {
		slog.Debug("no expired sessions found")
		return
	}

	metrics.SessionsExpired.Add(float64(removed))
	slog.Info("expired sessions deleted", "count", removed)
}
