package service

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"giveaway-bot-backend/internal/common/config"
	apperrors "giveaway-bot-backend/internal/common/errors"
	"giveaway-bot-backend/internal/common/logger"
	"giveaway-bot-backend/internal/features/giveaway/models"
	"giveaway-bot-backend/internal/features/giveaway/repository"
)

// Messenger posts the public giveaway announcement and returns the id of
// the created message.
type Messenger interface {
	AnnounceGiveaway(ctx context.Context, g *models.Giveaway) (string, error)
}

// CreateInput carries the raw form fields of a creation request. All values
// are free text as submitted by the user.
type CreateInput struct {
	GuildID   string
	ChannelID string
	CreatedBy string

	Prize       string
	Title       string
	Description string
	Duration    string
	Winners     string
	HostID      string
}

// CreatePhase names how far the creation sequence got. A giveaway persists
// in pending-announcement when the public post failed; the row is kept for
// the retention sweep rather than rolled back.
type CreatePhase string

const (
	PhasePendingAnnouncement CreatePhase = "pending-announcement"
	PhaseAnnounced           CreatePhase = "announced"
)

// CreateResult is the outcome of a creation attempt that persisted a row.
type CreateResult struct {
	Giveaway *models.Giveaway
	Phase    CreatePhase
}

// JoinStatus is the user-facing outcome of a join attempt.
type JoinStatus int

const (
	JoinAccepted JoinStatus = iota
	JoinAlreadyEntered
)

// GiveawayService owns the giveaway lifecycle: creation, entry and the
// background expiry/retention transitions.
type GiveawayService struct {
	repo      repository.GiveawayRepository
	messenger Messenger
	cfg       *config.Config
	clock     Clock
}

func NewGiveawayService(
	repo repository.GiveawayRepository,
	messenger Messenger,
	cfg *config.Config,
	clock Clock,
) *GiveawayService {
	return &GiveawayService{
		repo:      repo,
		messenger: messenger,
		cfg:       cfg,
		clock:     clock,
	}
}

// Create validates the form input, persists a running giveaway and posts
// its public announcement. The sequence is deliberately not transactional:
// an announcement failure leaves the row in place (pending-announcement)
// and a failed message-id write-back is logged only.
func (s *GiveawayService) Create(ctx context.Context, in CreateInput) (*CreateResult, error) {
	prize := strings.TrimSpace(in.Prize)
	if prize == "" {
		return nil, apperrors.NewValidationError("prize", "must not be empty")
	}

	durationText := strings.TrimSpace(in.Duration)
	if durationText == "" {
		durationText = s.cfg.Giveaway.DefaultDuration
	}
	duration, ok := models.ParseDuration(durationText)
	if !ok {
		return nil, apperrors.NewValidationError("duration", "must contain at least one positive token like `1h 30m`, `2d` or `45m`")
	}

	now := s.clock.Now()
	giveaway := &models.Giveaway{
		GuildID:     in.GuildID,
		ChannelID:   in.ChannelID,
		Prize:       prize,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Winners:     parseWinners(in.Winners, s.cfg.Giveaway.DefaultWinners),
		HostID:      strings.TrimSpace(in.HostID),
		CreatedBy:   in.CreatedBy,
		CreatedAt:   now,
		EndsAt:      now.Add(duration),
		Status:      models.StatusRunning,
	}

	if _, err := s.repo.Create(ctx, giveaway); err != nil {
		return nil, apperrors.NewDatabaseError("create giveaway", err)
	}

	messageID, err := s.messenger.AnnounceGiveaway(ctx, giveaway)
	if err != nil {
		logger.Error().Err(err).Int64("giveaway_id", giveaway.ID).Msg("Announcement post failed; keeping giveaway for cleanup")
		return &CreateResult{Giveaway: giveaway, Phase: PhasePendingAnnouncement}, apperrors.NewPostFailureError(err)
	}

	giveaway.MessageID = messageID
	if err := s.repo.SetMessageID(ctx, giveaway.ID, messageID); err != nil {
		// The public message is live; losing the back-reference is an
		// accepted inconsistency.
		logger.Error().Err(err).Int64("giveaway_id", giveaway.ID).Str("message_id", messageID).Msg("Failed to record announcement message id")
	}

	return &CreateResult{Giveaway: giveaway, Phase: PhaseAnnounced}, nil
}

// Join records userID's entry in the given giveaway. When an entry role is
// configured the member's roles must contain it before the store is touched.
// A duplicate join is a normal outcome, not an error.
func (s *GiveawayService) Join(ctx context.Context, giveawayID int64, userID string, memberRoles []string) (JoinStatus, error) {
	if required := s.cfg.Giveaway.EntryRoleID; required != "" {
		if !slices.Contains(memberRoles, required) {
			return 0, apperrors.NewForbiddenError("missing required role").WithDetail("role_id", required)
		}
	}

	outcome, err := s.repo.AddEntry(ctx, giveawayID, userID)
	if err != nil {
		return 0, apperrors.NewDatabaseError("add entry", err)
	}
	if outcome == repository.EntryDuplicate {
		return JoinAlreadyEntered, nil
	}
	return JoinAccepted, nil
}

// parseWinners applies the winners rules: absent → configured default,
// non-numeric or below one → one.
func parseWinners(raw string, defaultWinners int) int {
	v := strings.TrimSpace(raw)
	if v == "" {
		if defaultWinners < 1 {
			return 1
		}
		return defaultWinners
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
