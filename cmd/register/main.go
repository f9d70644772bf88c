// Command register overwrites the guild's application commands with the
// set this bot answers. Run once per deployment; existing commands not in
// the set are removed.
package main

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"giveaway-bot-backend/internal/common/config"
	"giveaway-bot-backend/internal/common/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init("register", cfg.Debug)

	if cfg.Discord.ApplicationID == "" {
		logger.Fatal().Msg("DISCORD_APPLICATION_ID is required")
	}

	session, err := discordgo.New("Bot " + cfg.Discord.BotToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create discord session")
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "gstart",
			Description: "Create a giveaway",
		},
		{
			Name:        "donate",
			Description: "Show the info catalog in this channel",
		},
		{
			Name:        "post_info",
			Description: "Post and pin the info catalog in the info channel (admin only)",
		},
	}

	registered, err := session.ApplicationCommandBulkOverwrite(cfg.Discord.ApplicationID, cfg.Discord.GuildID, commands)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to register commands")
	}

	for _, cmd := range registered {
		logger.Info().Str("name", cmd.Name).Str("id", cmd.ID).Msg("Registered command")
	}
}
