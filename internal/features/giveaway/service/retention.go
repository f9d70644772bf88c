package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"giveaway-bot-backend/internal/common/config"
	"giveaway-bot-backend/internal/common/logger"
	"giveaway-bot-backend/internal/features/giveaway/repository"
)

const (
	sweepInterval = 24 * time.Hour
	maxJitter     = 5 * time.Minute
)

// RetentionSweeper deletes terminated giveaways once they are older than
// the configured retention window. Entries disappear with them through the
// store cascade. Sweeps are best effort: a failed run is logged and the
// schedule continues.
type RetentionSweeper struct {
	repo   repository.GiveawayRepository
	window time.Duration
	clock  Clock

	// One-time delay before the first recurring cycle, so several
	// instances sharing a store do not sweep in lockstep.
	jitter time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRetentionSweeper(repo repository.GiveawayRepository, cfg *config.Config, clock Clock) *RetentionSweeper {
	return &RetentionSweeper{
		repo:   repo,
		window: cfg.RetentionWindow(),
		clock:  clock,
		jitter: time.Duration(rand.Int63n(int64(maxJitter))),
	}
}

// Start sweeps once immediately, then once per day after the initial jitter.
func (s *RetentionSweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	logger.Info().
		Dur("window", s.window).
		Dur("jitter", s.jitter).
		Msg("Starting retention sweeper")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.sweep(ctx)

		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(s.jitter):
		}

		for {
			s.sweep(ctx)
			select {
			case <-ctx.Done():
				return
			case <-s.clock.After(sweepInterval):
			}
		}
	}()
}

// Stop cancels the schedule and waits for an in-flight sweep to finish.
func (s *RetentionSweeper) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	logger.Info().Msg("Retention sweeper stopped")
}

func (s *RetentionSweeper) sweep(ctx context.Context) {
	cutoff := s.clock.Now().Add(-s.window)

	deleted, err := s.repo.DeleteEnded(ctx, cutoff)
	if err != nil {
		logger.Error().Err(err).Msg("Retention sweep failed")
		return
	}
	if deleted > 0 {
		logger.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("Retention sweep removed old giveaways")
	}
}
