// internal/app/system/workers/eventsweep.go
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/redlight/internal/app/system/tasks"
	"go.uber.org/zap"
)

// EventSweep is a background worker that runs the event sweep job,
// completing planned events whose scheduled time has passed.
type EventSweep struct {
	job    tasks.Job
	log    *zap.Logger
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewEventSweep creates a new event sweep worker.
func NewEventSweep(expirer tasks.StaleExpirer, logger *zap.Logger, interval time.Duration) *EventSweep {
	return &EventSweep{
		job:    tasks.EventSweepJob(expirer, logger, interval),
		log:    logger,
		stopCh: make(chan struct{}),
	}
}

// Start begins the background sweep loop.
func (w *EventSweep) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("event sweep worker started",
		zap.Duration("interval", w.job.Interval))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *EventSweep) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("event sweep worker stopped")
}

func (w *EventSweep) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *EventSweep) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := w.job.Run(ctx); err != nil {
		w.log.Error("event sweep failed", zap.Error(err))
	}
}
