package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

type countingExpirer struct {
	calls atomic.Int64
}

func (c *countingExpirer) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	c.calls.Add(1)
	return 0, nil
}

func TestEventSweep_RunsAndStops(t *testing.T) {
	exp := &countingExpirer{}
	w := NewEventSweep(exp, zap.NewNop(), 10*time.Millisecond)

	w.Start()
	time.Sleep(60 * time.Millisecond)
	w.Stop()

	if exp.calls.Load() == 0 {
		t.Fatal("expected at least one sweep before stop")
	}

	after := exp.calls.Load()
	time.Sleep(40 * time.Millisecond)
	if exp.calls.Load() != after {
		t.Error("sweep continued after Stop")
	}
}
