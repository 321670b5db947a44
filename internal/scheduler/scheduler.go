package scheduler

import (
	"context"
	"fmt"
	"time"

	"eurobot-backend/internal/ingest"
	"eurobot-backend/internal/logger"

	"github.com/robfig/cron/v3"
)

// Runner performs one reseed
type Runner interface {
	Run(ctx context.Context) (*ingest.Report, error)
}

// Scheduler triggers periodic reseeds on a standard five-field cron spec
type Scheduler struct {
	c       *cron.Cron
	spec    string
	runner  Runner
	timeout time.Duration
	log     *logger.Logger
}

// New registers the reseed job. The schedule runs in UTC.
func New(spec string, runner Runner, timeout time.Duration) (*Scheduler, error) {
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	s := &Scheduler{
		c:       cron.New(cron.WithLocation(time.UTC)),
		spec:    spec,
		runner:  runner,
		timeout: timeout,
		log:     logger.WithComponent("scheduler"),
	}
	if _, err := s.c.AddFunc(spec, s.tick); err != nil {
		return nil, fmt.Errorf("invalid reseed schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	s.log.Info("Scheduler tick: running reseed")
	report, err := s.runner.Run(ctx)
	if err != nil {
		s.log.WithError(err).Error("Scheduled reseed failed")
		return
	}
	s.log.WithFields(map[string]interface{}{
		"series":   report.SeriesWritten,
		"teams":    report.Teams,
		"matches":  report.Matches,
		"rankings": report.Rankings,
	}).Info("Scheduled reseed done")
}

// Start runs the cron loop in its own goroutine
func (s *Scheduler) Start() {
	s.log.WithField("cron", s.spec).Info("Starting scheduler")
	s.c.Start()
}

// Stop halts scheduling and waits for a running reseed to finish
func (s *Scheduler) Stop() {
	<-s.c.Stop().Done()
}

// Next reports when the reseed will next fire
func (s *Scheduler) Next() time.Time {
	entries := s.c.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}
