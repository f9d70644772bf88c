package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"giveaway-bot-backend/internal/common/config"
	"giveaway-bot-backend/internal/features/giveaway/models"
	"giveaway-bot-backend/internal/features/giveaway/repository"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, g *models.Giveaway) (int64, error) {
	args := m.Called(ctx, g)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) SetMessageID(ctx context.Context, id int64, messageID string) error {
	args := m.Called(ctx, id, messageID)
	return args.Error(0)
}

func (m *mockRepository) AddEntry(ctx context.Context, giveawayID int64, userID string) (repository.EntryOutcome, error) {
	args := m.Called(ctx, giveawayID, userID)
	return args.Get(0).(repository.EntryOutcome), args.Error(1)
}

func (m *mockRepository) MarkEnded(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) DeleteEnded(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type mockMessenger struct {
	mock.Mock
}

func (m *mockMessenger) AnnounceGiveaway(ctx context.Context, g *models.Giveaway) (string, error) {
	args := m.Called(ctx, g)
	return args.String(0), args.Error(1)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Giveaway.DefaultWinners = 1
	cfg.Giveaway.DefaultDuration = "1h"
	cfg.Giveaway.RetentionDays = 7
	return cfg
}
