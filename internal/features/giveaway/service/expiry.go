package service

import (
	"context"
	"sync"
	"time"

	"giveaway-bot-backend/internal/common/config"
	"giveaway-bot-backend/internal/common/logger"
	"giveaway-bot-backend/internal/features/giveaway/repository"
)

// ExpiryMarker transitions running giveaways to ended once their ends_at
// has passed, making them eligible for the retention sweep. Winner drawing
// is a separate concern and not performed here.
type ExpiryMarker struct {
	repo     repository.GiveawayRepository
	interval time.Duration
	clock    Clock

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewExpiryMarker builds a marker ticking every G_TICK_MS milliseconds.
// A zero interval disables it.
func NewExpiryMarker(repo repository.GiveawayRepository, cfg *config.Config, clock Clock) *ExpiryMarker {
	return &ExpiryMarker{
		repo:     repo,
		interval: time.Duration(cfg.Giveaway.TickMillis) * time.Millisecond,
		clock:    clock,
	}
}

func (m *ExpiryMarker) Start() {
	if m.interval <= 0 {
		logger.Info().Msg("Expiry marker disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	logger.Info().Dur("interval", m.interval).Msg("Starting expiry marker")

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case <-m.clock.After(m.interval):
				m.mark(ctx)
			}
		}
	}()
}

func (m *ExpiryMarker) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
	m.wg.Wait()
}

func (m *ExpiryMarker) mark(ctx context.Context) {
	ended, err := m.repo.MarkEnded(ctx, m.clock.Now())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to mark expired giveaways")
		return
	}
	if ended > 0 {
		logger.Info().Int64("ended", ended).Msg("Marked expired giveaways as ended")
	}
}
