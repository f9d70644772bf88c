package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"giveaway-bot-backend/internal/common/config"
	"giveaway-bot-backend/internal/common/logger"
)

const (
	// DonateCommand previews the info catalog publicly in the channel it
	// is invoked from.
	DonateCommand = "donate"

	// PostInfoCommand posts and pins the catalog into the configured
	// info channel. Admin only.
	PostInfoCommand = "post_info"
)

// Poster is the outbound surface the info feature needs.
type Poster interface {
	SendMessage(ctx context.Context, channelID string, send *discordgo.MessageSend) (string, error)
	PinMessage(ctx context.Context, channelID, messageID string) error
}

// Handler serves the static info catalog: the /donate preview, the
// admin-only /post_info post-and-pin and the category dropdown.
type Handler struct {
	poster Poster
	cfg    *config.Config
}

func NewHandler(poster Poster, cfg *config.Config) *Handler {
	return &Handler{poster: poster, cfg: cfg}
}

// HandleDonate answers with the catalog as a public message.
func (h *Handler) HandleDonate(i *discordgo.Interaction) *discordgo.InteractionResponse {
	msg := catalogMessage()
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     msg.Embeds,
			Components: msg.Components,
		},
	}
}

// HandlePostInfo posts the catalog into the info channel and pins it.
// A failed pin is reported but does not fail the post.
func (h *Handler) HandlePostInfo(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse {
	if h.cfg.Discord.InfoChannelID == "" {
		return ephemeral("Missing INFO_CHANNEL_ID.")
	}
	if !isAdmin(i) {
		return ephemeral("Only admins can run this.")
	}

	channelID := h.cfg.Discord.InfoChannelID

	messageID, err := h.poster.SendMessage(ctx, channelID, catalogMessage())
	if err != nil {
		logger.Error().Err(err).Str("channel_id", channelID).Msg("Failed to post info catalog")
		return ephemeral("Couldn't post the info message.")
	}

	pinned := true
	if err := h.poster.PinMessage(ctx, channelID, messageID); err != nil {
		logger.Warn().Err(err).Str("message_id", messageID).Msg("Failed to pin info catalog")
		pinned = false
	}

	if pinned {
		return ephemeral(fmt.Sprintf("Posted and pinned in <#%s>.", channelID))
	}
	return ephemeral(fmt.Sprintf("Posted in <#%s>.", channelID))
}

// HandleCategorySelect answers a dropdown pick with its detail embed.
func (h *Handler) HandleCategorySelect(i *discordgo.Interaction) *discordgo.InteractionResponse {
	data := i.MessageComponentData()

	key := ""
	if len(data.Values) > 0 {
		key = data.Values[0]
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags:  discordgo.MessageFlagsEphemeral,
			Embeds: []*discordgo.MessageEmbed{categoryEmbed(key)},
		},
	}
}

// isAdmin checks the administrator bit on the invoking member's resolved
// permissions.
func isAdmin(i *discordgo.Interaction) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

func ephemeral(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags:   discordgo.MessageFlagsEphemeral,
			Content: content,
		},
	}
}
