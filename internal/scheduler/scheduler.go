// Package scheduler runs the resolution pipeline on a fixed schedule.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/puzzlewire/wordled/internal/models"
)

// Resolver is the part of the pipeline the scheduler depends on.
type Resolver interface {
	Resolve(ctx context.Context, date time.Time) (*models.PuzzleRecord, error)
}

// Scheduler triggers resolution of the current day's puzzle on each
// configured cron spec. Failures are logged and retried on the next tick;
// the upsert keying makes overlapping runs for the same date safe.
type Scheduler struct {
	cron     *cron.Cron
	resolver Resolver
}

// New creates a scheduler with one job per cron spec.
func New(specs []string, resolver Resolver) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(),
		resolver: resolver,
	}
	for _, spec := range specs {
		if _, err := s.cron.AddFunc(spec, s.run); err != nil {
			return nil, fmt.Errorf("invalid cron spec %q: %w", spec, err)
		}
	}
	return s, nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	record, err := s.resolver.Resolve(ctx, time.Now().UTC())
	if err != nil {
		log.Error().Err(err).Msg("Scheduled resolution failed")
		return
	}

	log.Info().
		Str("date", record.Date).
		Str("answer", record.Answer).
		Msg("Scheduled resolution complete")
}

// Start begins running the scheduled jobs.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info().Int("jobs", len(s.cron.Entries())).Msg("Scheduler started")
}

// Shutdown stops the scheduler and waits for any running job to finish.
func (s *Scheduler) Shutdown() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("Scheduler stopped")
}
