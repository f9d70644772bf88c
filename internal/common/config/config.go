package config

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port int `env:"PORT" envDefault:"3000"`
	}

	Database struct {
		URL             string        `env:"DATABASE_URL,required"`
		MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
		MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
		ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
		AutoMigrate     bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	}

	Discord struct {
		PublicKey     string `env:"DISCORD_PUBLIC_KEY,required"`
		BotToken      string `env:"DISCORD_BOT_TOKEN,required"`
		ApplicationID string `env:"DISCORD_APPLICATION_ID"`
		GuildID       string `env:"DISCORD_GUILD_ID"`
		InfoChannelID string `env:"INFO_CHANNEL_ID"`
	}

	Giveaway struct {
		DefaultWinners  int    `env:"G_DEFAULT_WINNERS" envDefault:"1"`
		DefaultDuration string `env:"G_DEFAULT_DURATION" envDefault:"1h"`
		EntryRoleID     string `env:"G_GIVEAWAY_ROLE_ID"`
		RetentionDays   int    `env:"G_RETENTION_DAYS" envDefault:"7"`
		TickMillis      int    `env:"G_TICK_MS" envDefault:"0"`
	}
}

// Load reads the environment (with an optional .env overlay) into a Config
// and applies the documented floors.
func Load() (*Config, error) {
	// In production the variables are set directly; a missing .env is fine.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.Giveaway.DefaultWinners < 1 {
		cfg.Giveaway.DefaultWinners = 1
	}
	if cfg.Giveaway.RetentionDays < 1 {
		cfg.Giveaway.RetentionDays = 1
	}
	if cfg.Giveaway.TickMillis < 0 {
		cfg.Giveaway.TickMillis = 0
	}

	if _, err := cfg.VerificationKey(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// RetentionWindow returns the minimum age a terminated giveaway must reach
// before the sweep may delete it.
func (c *Config) RetentionWindow() time.Duration {
	return time.Duration(c.Giveaway.RetentionDays) * 24 * time.Hour
}

// VerificationKey decodes the configured hex public key used to verify
// inbound interaction signatures.
func (c *Config) VerificationKey() (ed25519.PublicKey, error) {
	raw, err := hex.DecodeString(c.Discord.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("decode DISCORD_PUBLIC_KEY: %w", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("DISCORD_PUBLIC_KEY must be %d bytes, got %d", ed25519.PublicKeySize, len(raw))
	}
	return ed25519.PublicKey(raw), nil
}
