package scheduler

import (
	"testing"
	"time"
)

type fixedCounter int

func (c fixedCounter) Len() int { return int(c) }

func TestSchedulerStartStop(t *testing.T) {
	s := New(fixedCounter(3), time.Hour)
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Stop()
}

func TestSchedulerDefaultInterval(t *testing.T) {
	s := New(fixedCounter(0), 0)
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Stop()
}
