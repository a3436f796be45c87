package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsJobOnStartAndOnTicks(t *testing.T) {
	s := NewScheduler()
	ran := make(chan struct{}, 16)
	s.AddJob("tick", 5*time.Millisecond, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})
	s.Start()
	defer s.Stop()

	// Once immediately, then again on the interval.
	for i := 0; i < 2; i++ {
		select {
		case <-ran:
		case <-time.After(2 * time.Second):
			t.Fatal("job did not run")
		}
	}
}

func TestSchedulerStopWaitsForJobs(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	s.AddJob("count", time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})
	s.Start()

	time.Sleep(20 * time.Millisecond)
	s.Stop()

	after := runs.Load()
	assert.Greater(t, after, int32(0))

	// No further executions once Stop returns.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestSchedulerKeepsRunningAfterJobError(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	s.AddJob("flaky", 5*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return errors.New("boom")
	})
	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return runs.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond)
}
