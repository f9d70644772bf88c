package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"giveaway-bot-backend/internal/features/giveaway/models"
	"giveaway-bot-backend/internal/features/giveaway/repository"
)

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) repository.GiveawayRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, g *models.Giveaway) (int64, error) {
	query := `
		INSERT INTO giveaways
			(guild_id, channel_id, prize, title, description, winners, host_id, created_by, created_at, ends_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		g.GuildID, g.ChannelID, g.Prize,
		nullString(g.Title), nullString(g.Description),
		g.Winners, nullString(g.HostID), g.CreatedBy,
		g.CreatedAt, g.EndsAt, g.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create giveaway: %w", err)
	}

	g.ID = id
	return id, nil
}

func (r *postgresRepository) SetMessageID(ctx context.Context, id int64, messageID string) error {
	query := `UPDATE giveaways SET message_id = $1 WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, messageID, id); err != nil {
		return fmt.Errorf("failed to set message id: %w", err)
	}
	return nil
}

func (r *postgresRepository) AddEntry(ctx context.Context, giveawayID int64, userID string) (repository.EntryOutcome, error) {
	query := `INSERT INTO giveaway_entries (giveaway_id, user_id) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, giveawayID, userID); err != nil {
		if isUniqueViolation(err) {
			return repository.EntryDuplicate, nil
		}
		return 0, fmt.Errorf("failed to add entry: %w", err)
	}
	return repository.EntryAdded, nil
}

func (r *postgresRepository) MarkEnded(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE giveaways SET status = $1 WHERE status = $2 AND ends_at <= $3`
	res, err := r.db.ExecContext(ctx, query, models.StatusEnded, models.StatusRunning, now)
	if err != nil {
		return 0, fmt.Errorf("failed to mark ended giveaways: %w", err)
	}
	return res.RowsAffected()
}

func (r *postgresRepository) DeleteEnded(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM giveaways WHERE status <> $1 AND ends_at < $2`
	res, err := r.db.ExecContext(ctx, query, models.StatusRunning, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old giveaways: %w", err)
	}
	return res.RowsAffected()
}

// isUniqueViolation reports whether err is the postgres unique_violation
// condition (SQLSTATE 23505), the only failure treated as "already joined".
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
