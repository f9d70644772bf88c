package repository

import (
	"context"
	"time"

	"giveaway-bot-backend/internal/features/giveaway/models"
)

// EntryOutcome is the typed result of an entry insert, so callers never
// inspect store-specific error shapes to tell "already joined" from a fault.
type EntryOutcome int

const (
	EntryAdded EntryOutcome = iota
	EntryDuplicate
)

// GiveawayRepository is the persistence contract for the giveaway lifecycle.
type GiveawayRepository interface {
	// Create persists a new giveaway and returns its store-assigned id.
	Create(ctx context.Context, g *models.Giveaway) (int64, error)

	// SetMessageID records the announcement message on an existing giveaway.
	SetMessageID(ctx context.Context, id int64, messageID string) error

	// AddEntry inserts an entry for (giveaway, user). A violation of the
	// pair uniqueness reports EntryDuplicate with a nil error; any other
	// failure is returned as an error.
	AddEntry(ctx context.Context, giveawayID int64, userID string) (EntryOutcome, error)

	// MarkEnded transitions running giveaways whose ends_at has passed to
	// the ended status and returns how many rows changed.
	MarkEnded(ctx context.Context, now time.Time) (int64, error)

	// DeleteEnded removes non-running giveaways whose ends_at is before
	// cutoff. Their entries are removed by the store's cascade.
	DeleteEnded(ctx context.Context, cutoff time.Time) (int64, error)
}
