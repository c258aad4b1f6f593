package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// RecordCounter reports how many records a store holds.
type RecordCounter interface {
	Len() int
}

// Scheduler periodically logs the size of the record store. The store only
// grows, so the log line doubles as a rough memory usage signal.
type Scheduler struct {
	scheduler *gocron.Scheduler
	records   RecordCounter
	interval  time.Duration
}

// New creates a new Scheduler.
func New(records RecordCounter, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		records:   records,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	interval := s.interval
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	_, err := s.scheduler.Every(interval).Do(func() {
		log.Printf("scheduler: store holds %d weather records", s.records.Len())
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
