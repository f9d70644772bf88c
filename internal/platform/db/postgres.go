package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"giveaway-bot-backend/internal/common/config"
	"giveaway-bot-backend/internal/common/logger"
)

// Open initializes a pooled PostgreSQL connection using database/sql and lib/pq.
func Open(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("empty postgres DSN")
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Msg("PostgreSQL connection established")
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS giveaways (
	id          BIGSERIAL PRIMARY KEY,
	guild_id    TEXT        NOT NULL,
	channel_id  TEXT        NOT NULL,
	message_id  TEXT,
	prize       TEXT        NOT NULL,
	title       TEXT,
	description TEXT,
	winners     INT         NOT NULL DEFAULT 1,
	host_id     TEXT,
	created_by  TEXT        NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	ends_at     TIMESTAMPTZ NOT NULL,
	status      TEXT        NOT NULL DEFAULT 'running'
);

CREATE TABLE IF NOT EXISTS giveaway_entries (
	giveaway_id BIGINT      NOT NULL REFERENCES giveaways(id) ON DELETE CASCADE,
	user_id     TEXT        NOT NULL,
	joined_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (giveaway_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_giveaways_status_ends_at ON giveaways (status, ends_at);
`

// Migrate applies the giveaway schema. Entries are owned by their giveaway:
// deleting a giveaway cascades to its entries at the store level.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	logger.Info().Msg("Database schema up to date")
	return nil
}
