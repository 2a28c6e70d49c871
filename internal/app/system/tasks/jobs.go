// internal/app/system/tasks/jobs.go
package tasks

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Job is a named unit of periodic background work.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// StaleExpirer marks planned events whose scheduled time has passed as
// completed.
type StaleExpirer interface {
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}

// EventSweepJob creates a job that completes planned events whose
// scheduled time has already passed. Listing sweeps opportunistically;
// this job catches events nobody has listed recently.
func EventSweepJob(expirer StaleExpirer, logger *zap.Logger, interval time.Duration) Job {
	return Job{
		Name:     "event-sweep",
		Interval: interval,
		Run: func(ctx context.Context) error {
			count, err := expirer.ExpireStale(ctx, time.Now().UTC())
			if err != nil {
				return err
			}
			if count > 0 {
				logger.Info("completed past events", zap.Int64("count", count))
			}
			return nil
		},
	}
}
