package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs named background jobs on cron schedules.
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
	jobs   []string
}

func NewScheduler(loc *time.Location, logger *zap.Logger) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		logger: logger,
	}
}

// Add registers fn under a standard 5-field cron spec. An empty spec
// disables the job.
func (s *Scheduler) Add(ctx context.Context, name, spec string, fn func(ctx context.Context) error) error {
	if spec == "" {
		s.logger.Info("job disabled", zap.String("job", name))
		return nil
	}

	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("job %s: parse schedule %q: %w", name, spec, err)
	}

	_, err := s.cron.AddFunc(spec, func() {
		s.logger.Info("cron triggered", zap.String("job", name))
		if err := fn(ctx); err != nil {
			s.logger.Error("job failed", zap.String("job", name), zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("job %s: add: %w", name, err)
	}

	s.jobs = append(s.jobs, name)
	return nil
}

// Jobs returns the names of registered jobs.
func (s *Scheduler) Jobs() []string {
	return append([]string(nil), s.jobs...)
}

// Start runs the scheduler until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.cron.Start()
	s.logger.Info("cron scheduler started", zap.Strings("jobs", s.jobs))

	<-ctx.Done()

	<-s.cron.Stop().Done()
	s.logger.Info("cron scheduler stopped")
}
