package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giveaway-bot-backend/internal/common/config"
)

type stubPoster struct {
	sendErr error
	pinErr  error

	sentChannelID   string
	pinnedMessageID string
}

func (s *stubPoster) SendMessage(_ context.Context, channelID string, _ *discordgo.MessageSend) (string, error) {
	if s.sendErr != nil {
		return "", s.sendErr
	}
	s.sentChannelID = channelID
	return "msg-1", nil
}

func (s *stubPoster) PinMessage(_ context.Context, _ string, messageID string) error {
	if s.pinErr != nil {
		return s.pinErr
	}
	s.pinnedMessageID = messageID
	return nil
}

func infoConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Discord.InfoChannelID = "info-1"
	return cfg
}

func adminInteraction() *discordgo.Interaction {
	return &discordgo.Interaction{
		Member: &discordgo.Member{
			User:        &discordgo.User{ID: "admin-1"},
			Permissions: discordgo.PermissionAdministrator,
		},
	}
}

func TestHandleDonateReturnsPublicCatalog(t *testing.T) {
	h := NewHandler(&stubPoster{}, infoConfig())

	resp := h.HandleDonate(&discordgo.Interaction{})

	require.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	assert.Zero(t, resp.Data.Flags, "preview must be public")
	require.Len(t, resp.Data.Embeds, 2)
	require.Len(t, resp.Data.Components, 1)

	row, ok := resp.Data.Components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	menu, ok := row.Components[0].(discordgo.SelectMenu)
	require.True(t, ok)
	assert.Equal(t, SelectID, menu.CustomID)
	assert.Len(t, menu.Options, 4)
}

func TestHandlePostInfoPostsAndPins(t *testing.T) {
	poster := &stubPoster{}
	h := NewHandler(poster, infoConfig())

	resp := h.HandlePostInfo(context.Background(), adminInteraction())

	assert.Contains(t, resp.Data.Content, "Posted and pinned in <#info-1>")
	assert.Equal(t, "info-1", poster.sentChannelID)
	assert.Equal(t, "msg-1", poster.pinnedMessageID)
}

func TestHandlePostInfoRejectsNonAdmin(t *testing.T) {
	poster := &stubPoster{}
	h := NewHandler(poster, infoConfig())

	member := &discordgo.Member{User: &discordgo.User{ID: "user-1"}}
	resp := h.HandlePostInfo(context.Background(), &discordgo.Interaction{Member: member})

	assert.Contains(t, resp.Data.Content, "Only admins")
	assert.Empty(t, poster.sentChannelID)
}

func TestHandlePostInfoRequiresConfiguredChannel(t *testing.T) {
	h := NewHandler(&stubPoster{}, &config.Config{})

	resp := h.HandlePostInfo(context.Background(), adminInteraction())

	assert.Contains(t, resp.Data.Content, "INFO_CHANNEL_ID")
}

func TestHandlePostInfoToleratesPinFailure(t *testing.T) {
	poster := &stubPoster{pinErr: errors.New("missing permission")}
	h := NewHandler(poster, infoConfig())

	resp := h.HandlePostInfo(context.Background(), adminInteraction())

	assert.Contains(t, resp.Data.Content, "Posted in <#info-1>")
	assert.NotContains(t, resp.Data.Content, "pinned")
}

func TestHandlePostInfoReportsPostFailure(t *testing.T) {
	poster := &stubPoster{sendErr: errors.New("HTTP 403")}
	h := NewHandler(poster, infoConfig())

	resp := h.HandlePostInfo(context.Background(), adminInteraction())

	assert.Contains(t, resp.Data.Content, "Couldn't post")
	assert.Empty(t, poster.pinnedMessageID)
}

func TestHandleCategorySelect(t *testing.T) {
	h := NewHandler(&stubPoster{}, infoConfig())

	tests := []struct {
		value string
		title string
	}{
		{"donation_info", "Donation information"},
		{"applying_info", "Applying for a Staff or Developer position"},
		{"products_info", "Products information"},
		{"affiliation_info", "Affiliation information"},
		{"bogus", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			resp := h.HandleCategorySelect(&discordgo.Interaction{
				Type: discordgo.InteractionMessageComponent,
				Data: discordgo.MessageComponentInteractionData{
					CustomID: SelectID,
					Values:   []string{tt.value},
				},
			})

			assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
			require.Len(t, resp.Data.Embeds, 1)
			assert.Equal(t, tt.title, resp.Data.Embeds[0].Title)
		})
	}
}
