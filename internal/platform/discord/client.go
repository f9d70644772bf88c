package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"giveaway-bot-backend/internal/common/config"
	"giveaway-bot-backend/internal/common/logger"
	"giveaway-bot-backend/internal/features/giveaway/models"
)

// joinButtonPrefix tags the announcement button so the component dispatcher
// can route clicks back to the right giveaway.
const joinButtonPrefix = "g_join:"

// Client wraps a discordgo session used purely for REST calls; the gateway
// is never opened because interactions arrive over the webhook.
type Client struct {
	session     *discordgo.Session
	entryRoleID string
}

func NewClient(cfg *config.Config) (*Client, error) {
	session, err := discordgo.New("Bot " + cfg.Discord.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	return &Client{
		session:     session,
		entryRoleID: cfg.Giveaway.EntryRoleID,
	}, nil
}

// AnnounceGiveaway posts the public giveaway message (embed + join button)
// into the giveaway's channel and returns the created message id.
func (c *Client) AnnounceGiveaway(ctx context.Context, g *models.Giveaway) (string, error) {
	msg, err := c.session.ChannelMessageSendComplex(
		g.ChannelID,
		buildAnnouncement(g, c.entryRoleID),
		discordgo.WithContext(ctx),
	)
	if err != nil {
		return "", fmt.Errorf("failed to post giveaway announcement: %w", err)
	}

	logger.Debug().
		Int64("giveaway_id", g.ID).
		Str("channel_id", g.ChannelID).
		Str("message_id", msg.ID).
		Msg("Posted giveaway announcement")

	return msg.ID, nil
}

// SendMessage posts an arbitrary message and returns its id.
func (c *Client) SendMessage(ctx context.Context, channelID string, send *discordgo.MessageSend) (string, error) {
	msg, err := c.session.ChannelMessageSendComplex(channelID, send, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}
	return msg.ID, nil
}

// PinMessage pins a previously posted message in its channel.
func (c *Client) PinMessage(ctx context.Context, channelID, messageID string) error {
	if err := c.session.ChannelMessagePin(channelID, messageID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to pin message: %w", err)
	}
	return nil
}

func buildAnnouncement(g *models.Giveaway, entryRoleID string) *discordgo.MessageSend {
	var desc strings.Builder
	if g.Title != "" {
		fmt.Fprintf(&desc, "**%s**\n", g.Title)
	}
	if g.Description != "" {
		fmt.Fprintf(&desc, "%s\n\n", g.Description)
	}
	fmt.Fprintf(&desc, "Ends %s\n", RelativeTimestamp(g.EndsAt))
	fmt.Fprintf(&desc, "Winners: **%d**", g.Winners)
	if entryRoleID != "" {
		fmt.Fprintf(&desc, "\nRequirement: <@&%s>", entryRoleID)
	}
	if g.HostID != "" {
		fmt.Fprintf(&desc, "\nHost: <@%s>", g.HostID)
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "🎉 Giveaway: " + g.Prize,
			Description: desc.String(),
		}},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Join 🎉",
						Style:    discordgo.PrimaryButton,
						CustomID: JoinButtonID(g.ID),
					},
				},
			},
		},
	}
}

// JoinButtonID builds the join-button custom id for a giveaway.
func JoinButtonID(giveawayID int64) string {
	return joinButtonPrefix + strconv.FormatInt(giveawayID, 10)
}

// ParseJoinButtonID extracts the giveaway id from a join-button custom id.
func ParseJoinButtonID(customID string) (int64, bool) {
	raw, found := strings.CutPrefix(customID, joinButtonPrefix)
	if !found {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// RelativeTimestamp renders t as Discord's relative-time markup.
func RelativeTimestamp(t time.Time) string {
	return fmt.Sprintf("<t:%d:R>", t.Unix())
}
