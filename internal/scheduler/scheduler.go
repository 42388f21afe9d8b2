package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler re-imports the dataset on a cron cadence so a refreshed CSV
// drop shows up without a restart.
type Scheduler struct {
	Cron   *cron.Cron
	reload func() error
}

// NewScheduler creates a new Scheduler around a reload function.
func NewScheduler(reload func() error) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		reload: reload,
	}
}

// Register adds the reload task with the given cron expression.
func (s *Scheduler) Register(expr string) error {
	if _, err := s.Cron.AddFunc(expr, s.runReload); err != nil {
		return fmt.Errorf("register reload task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) runReload() {
	log.Println("[INFO] running scheduled dataset reload")
	if err := s.reload(); err != nil {
		log.Printf("[ERROR] scheduled reload: %v", err)
	}
}
