package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestIntervalSchedulerRunsImmediatelyAndRepeats(t *testing.T) {
	t.Parallel()

	var runs int32
	s := NewIntervalScheduler(20 * time.Millisecond)

	if err := s.Start(context.Background(), func(time.Time) {
		atomic.AddInt32(&runs, 1)
	}); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	defer s.Stop(context.Background())

	deadline := time.Now().Add(time.Second)
	for atomic.LoadInt32(&runs) < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	if got := atomic.LoadInt32(&runs); got < 2 {
		t.Fatalf("expected at least 2 runs, got %d", got)
	}
}

func TestIntervalSchedulerStopHaltsJob(t *testing.T) {
	t.Parallel()

	var runs int32
	s := NewIntervalScheduler(10 * time.Millisecond)
	if err := s.Start(context.Background(), func(time.Time) {
		atomic.AddInt32(&runs, 1)
	}); err != nil {
		t.Fatalf("Start error: %v", err)
	}

	time.Sleep(15 * time.Millisecond)
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("Stop error: %v", err)
	}

	settled := atomic.LoadInt32(&runs)
	time.Sleep(50 * time.Millisecond)
	if after := atomic.LoadInt32(&runs); after > settled+1 {
		t.Fatalf("job kept running after Stop: %d -> %d", settled, after)
	}
}

func TestIntervalSchedulerNilJob(t *testing.T) {
	t.Parallel()

	s := NewIntervalScheduler(time.Hour)
	if err := s.Start(context.Background(), nil); err != nil {
		t.Fatalf("Start with nil job: %v", err)
	}
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("Stop error: %v", err)
	}
}
