// Package backup runs the periodic snapshot schedule. Snapshot failures are
// logged and the schedule keeps running; durability is opportunistic, never
// fatal to the application.
package backup

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/pulsework/okrboard/internal/sqlite"
)

// Runner snapshots a store on a fixed interval. Start and Stop form an
// explicit arm/disarm pair; Stop must be called on teardown so no write is
// left dangling.
type Runner struct {
	store    *sqlite.Store
	interval time.Duration
	cron     *cron.Cron
	log      *logrus.Entry
}

// NewRunner builds a runner for the given store. A non-positive interval
// falls back to the store's configured backup interval.
func NewRunner(store *sqlite.Store, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = store.Config().BackupInterval
	}
	return &Runner{
		store:    store,
		interval: interval,
		log:      logrus.WithField("component", "backup"),
	}
}

// Start arms the schedule. Returns an error if the interval cannot be
// expressed as a schedule; the first snapshot fires one full interval after
// Start.
func (r *Runner) Start() error {
	if r.cron != nil {
		return nil
	}

	c := cron.New()
	spec := fmt.Sprintf("@every %s", r.interval)
	if _, err := c.AddFunc(spec, r.snapshot); err != nil {
		return fmt.Errorf("scheduling backup: %w", err)
	}
	c.Start()
	r.cron = c
	r.log.WithField("interval", r.interval).Info("auto-backup armed")
	return nil
}

// Stop disarms the schedule and waits for any in-flight snapshot to finish.
// Idempotent.
func (r *Runner) Stop() {
	if r.cron == nil {
		return
	}
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.cron = nil
	r.log.Info("auto-backup disarmed")
}

func (r *Runner) snapshot() {
	start := time.Now()
	if err := r.store.Snapshot(); err != nil {
		r.log.WithError(err).Warn("periodic snapshot failed")
		return
	}
	r.log.WithField("elapsed", time.Since(start)).Debug("periodic snapshot complete")
}
