// Package resolve provides the multi-source resolution pipeline.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/puzzlewire/wordled/internal/database"
	"github.com/puzzlewire/wordled/internal/definition"
	"github.com/puzzlewire/wordled/internal/hints"
	"github.com/puzzlewire/wordled/internal/models"
	"github.com/puzzlewire/wordled/internal/puzzle"
	"github.com/puzzlewire/wordled/internal/source"
)

var (
	// ErrExhausted indicates no strategy produced a validated answer.
	ErrExhausted = errors.New("no source produced a valid answer")

	// ErrPersistence indicates the answer was resolved but the upsert failed.
	ErrPersistence = errors.New("failed to persist puzzle record")
)

// Notifier announces new content after a successful write. Implementations
// must swallow their own errors; the pipeline dispatches and forgets.
type Notifier interface {
	Announce(date string)
}

// Pipeline resolves a date into a validated, persisted puzzle record. The
// primary strategy runs first and short-circuits on success; on failure
// all secondary strategies are fanned out concurrently and their results
// consumed in slice order, so priority is a property of the secondary
// list, never of response latency. The pipeline holds no mutable state
// across invocations.
type Pipeline struct {
	primary      source.Strategy
	secondary    []source.Strategy // fixed priority order
	store        database.Store
	definer      definition.Provider // optional
	notifier     Notifier            // optional
	fetchTimeout time.Duration
}

// NewPipeline creates a resolution pipeline. definer and notifier may be
// nil; fetchTimeout bounds each individual outbound fetch.
func NewPipeline(primary source.Strategy, secondary []source.Strategy, store database.Store,
	definer definition.Provider, notifier Notifier, fetchTimeout time.Duration) *Pipeline {
	if fetchTimeout <= 0 {
		fetchTimeout = 20 * time.Second
	}
	return &Pipeline{
		primary:      primary,
		secondary:    secondary,
		store:        store,
		definer:      definer,
		notifier:     notifier,
		fetchTimeout: fetchTimeout,
	}
}

// Resolve determines the answer for the given date, derives hints and a
// difficulty rating, and upserts the full record keyed on the date. It
// returns ErrExhausted when every strategy fails and wraps store failures
// in ErrPersistence. Notification failures never surface.
func (p *Pipeline) Resolve(ctx context.Context, date time.Time) (*models.PuzzleRecord, error) {
	day := puzzle.FormatDate(date)
	q := source.Query{Date: date, Number: puzzle.Number(date)}
	log.Info().Str("date", day).Int("puzzle_number", q.Number).Msg("Resolving puzzle")

	answer, src := p.tryPrimary(ctx, q)
	if answer == "" {
		answer, src = p.trySecondary(ctx, q)
	}
	if answer == "" {
		log.Warn().Str("date", day).Msg("All strategies exhausted")
		return nil, ErrExhausted
	}

	hintList, difficulty := hints.Generate(answer)

	var gloss string
	if p.definer != nil {
		var err error
		gloss, err = p.definer.Define(ctx, answer)
		if err != nil {
			log.Warn().Err(err).Str("provider", p.definer.Name()).Msg("Definition lookup failed")
			gloss = ""
		}
	}

	record := &models.PuzzleRecord{
		ID:           uuid.New().String(),
		Date:         day,
		PuzzleNumber: q.Number,
		Answer:       answer,
		Hints:        hintList,
		Difficulty:   difficulty,
		Definition:   gloss,
		Source:       src,
		CreatedAt:    time.Now().UTC(),
	}

	if err := p.store.UpsertPuzzle(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if p.notifier != nil {
		go p.notifier.Announce(record.Date)
	}

	log.Info().
		Str("date", day).
		Str("answer", answer).
		Str("source", src).
		Str("difficulty", string(difficulty)).
		Msg("Puzzle resolved")

	return record, nil
}

// tryPrimary runs the official strategy; network, parse, and validation
// failures all collapse to "no answer".
func (p *Pipeline) tryPrimary(ctx context.Context, q source.Query) (string, string) {
	if p.primary == nil {
		return "", ""
	}

	cctx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
	defer cancel()

	token, err := p.primary.Fetch(cctx, q)
	if err != nil {
		log.Debug().Err(err).Str("strategy", p.primary.Name()).Msg("Primary strategy produced no candidate")
		return "", ""
	}

	answer, err := ValidateAnswer(token)
	if err != nil {
		log.Warn().Err(err).Str("strategy", p.primary.Name()).Msg("Primary candidate rejected")
		return "", ""
	}
	return answer, p.primary.Name()
}

// trySecondary fans out every secondary strategy concurrently, waits for
// all of them to settle, then validates candidates in priority order. A
// slow high-priority source still beats a fast low-priority one. Siblings
// are never cancelled mid-flight; losing results are simply discarded.
func (p *Pipeline) trySecondary(ctx context.Context, q source.Query) (string, string) {
	candidates := make([]models.RawCandidate, len(p.secondary))
	errs := make([]error, len(p.secondary))

	var wg sync.WaitGroup
	for i, s := range p.secondary {
		wg.Add(1)
		go func(i int, s source.Strategy) {
			defer wg.Done()
			cctx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
			defer cancel()

			token, err := s.Fetch(cctx, q)
			if err != nil {
				errs[i] = err
				return
			}
			candidates[i] = models.RawCandidate{Source: s.Name(), Token: token}
		}(i, s)
	}
	wg.Wait()

	for i, c := range candidates {
		if c.Token == "" {
			if errs[i] != nil {
				log.Debug().Err(errs[i]).Str("strategy", p.secondary[i].Name()).Msg("Secondary strategy produced no candidate")
			}
			continue
		}
		answer, err := ValidateAnswer(c.Token)
		if err != nil {
			log.Warn().Err(err).Str("strategy", c.Source).Msg("Secondary candidate rejected")
			continue
		}
		return answer, c.Source
	}
	return "", ""
}
