package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giveaway-bot-backend/internal/features/giveaway/models"
)

func sampleGiveaway() *models.Giveaway {
	return &models.Giveaway{
		ID:        42,
		ChannelID: "channel-1",
		Prize:     "Nitro",
		Winners:   2,
		EndsAt:    time.Unix(1_750_000_000, 0),
	}
}

func TestBuildAnnouncementMinimal(t *testing.T) {
	send := buildAnnouncement(sampleGiveaway(), "")

	require.Len(t, send.Embeds, 1)
	embed := send.Embeds[0]
	assert.Equal(t, "🎉 Giveaway: Nitro", embed.Title)
	assert.Contains(t, embed.Description, "Ends <t:1750000000:R>")
	assert.Contains(t, embed.Description, "Winners: **2**")
	assert.NotContains(t, embed.Description, "Requirement")
	assert.NotContains(t, embed.Description, "Host")

	require.Len(t, send.Components, 1)
	row, ok := send.Components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 1)
	button, ok := row.Components[0].(discordgo.Button)
	require.True(t, ok)
	assert.Equal(t, "g_join:42", button.CustomID)
	assert.Equal(t, "Join 🎉", button.Label)
}

func TestBuildAnnouncementOptionalSections(t *testing.T) {
	g := sampleGiveaway()
	g.Title = "Summer drop"
	g.Description = "One week only"
	g.HostID = "host-9"

	send := buildAnnouncement(g, "role-55")
	desc := send.Embeds[0].Description

	assert.Contains(t, desc, "**Summer drop**")
	assert.Contains(t, desc, "One week only")
	assert.Contains(t, desc, "Requirement: <@&role-55>")
	assert.Contains(t, desc, "Host: <@host-9>")
}

func TestJoinButtonIDRoundTrip(t *testing.T) {
	id, ok := ParseJoinButtonID(JoinButtonID(987))
	require.True(t, ok)
	assert.Equal(t, int64(987), id)
}

func TestParseJoinButtonIDRejectsForeignIDs(t *testing.T) {
	for _, customID := range []string{"crc_info_select", "g_join:", "g_join:abc", "join:5", ""} {
		_, ok := ParseJoinButtonID(customID)
		assert.False(t, ok, customID)
	}
}
