package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"giveaway-bot-backend/internal/common/config"
	apperrors "giveaway-bot-backend/internal/common/errors"
	"giveaway-bot-backend/internal/common/logger"
	"giveaway-bot-backend/internal/features/giveaway/service"
	platformdiscord "giveaway-bot-backend/internal/platform/discord"
)

const (
	// StartCommand opens the creation modal.
	StartCommand = "gstart"

	// ModalID tags the creation modal so its submit comes back to us.
	ModalID = "gstart_modal"
)

// Handler translates giveaway interactions into service calls and service
// outcomes back into interaction responses. Every response is ephemeral;
// the only public message is the announcement posted by the service.
type Handler struct {
	service *service.GiveawayService
	cfg     *config.Config
}

func NewHandler(svc *service.GiveawayService, cfg *config.Config) *Handler {
	return &Handler{service: svc, cfg: cfg}
}

// HandleStartCommand answers /gstart with the creation modal.
func (h *Handler) HandleStartCommand(i *discordgo.Interaction) *discordgo.InteractionResponse {
	textRow := func(input discordgo.TextInput) discordgo.MessageComponent {
		return discordgo.ActionsRow{Components: []discordgo.MessageComponent{input}}
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: ModalID,
			Title:    "Create Giveaway",
			Components: []discordgo.MessageComponent{
				textRow(discordgo.TextInput{
					CustomID:  "prize",
					Label:     "Prize",
					Style:     discordgo.TextInputShort,
					Required:  true,
					MaxLength: 100,
				}),
				textRow(discordgo.TextInput{
					CustomID:  "title",
					Label:     "Title (optional)",
					Style:     discordgo.TextInputShort,
					MaxLength: 100,
				}),
				textRow(discordgo.TextInput{
					CustomID:  "description",
					Label:     "Description (optional)",
					Style:     discordgo.TextInputParagraph,
					MaxLength: 1000,
				}),
				textRow(discordgo.TextInput{
					CustomID: "duration",
					Label:    fmt.Sprintf("Duration (e.g. %s)", h.cfg.Giveaway.DefaultDuration),
					Style:    discordgo.TextInputShort,
					Required: true,
				}),
				textRow(discordgo.TextInput{
					CustomID: "winners",
					Label:    fmt.Sprintf("Winners (default %d)", h.cfg.Giveaway.DefaultWinners),
					Style:    discordgo.TextInputShort,
				}),
				textRow(discordgo.TextInput{
					CustomID: "host_id",
					Label:    "Host ID (optional)",
					Style:    discordgo.TextInputShort,
				}),
			},
		},
	}
}

// HandleModalSubmit creates the giveaway from the submitted form.
func (h *Handler) HandleModalSubmit(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse {
	values := modalValues(i.ModalSubmitData())

	result, err := h.service.Create(ctx, service.CreateInput{
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		CreatedBy:   interactionUserID(i),
		Prize:       values["prize"],
		Title:       values["title"],
		Description: values["description"],
		Duration:    values["duration"],
		Winners:     values["winners"],
		HostID:      values["host_id"],
	})
	if err != nil {
		appErr, _ := apperrors.AsAppError(err)
		switch {
		case appErr != nil && appErr.IsValidation():
			return ephemeral(fmt.Sprintf("Invalid form: need Prize and valid Duration (e.g. `1h 30m`, `2d`). (%s)", appErr.Message))
		case appErr != nil && appErr.Code == apperrors.ErrCodePostFailure:
			return ephemeral("Couldn't post the giveaway announcement.")
		default:
			logger.Error().Err(err).Msg("Giveaway creation failed")
			return ephemeral("Could not create the giveaway (error).")
		}
	}

	return ephemeral(fmt.Sprintf("Giveaway created (ends %s).", platformdiscord.RelativeTimestamp(result.Giveaway.EndsAt)))
}

// HandleJoinButton records the click as an entry.
func (h *Handler) HandleJoinButton(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse {
	giveawayID, ok := platformdiscord.ParseJoinButtonID(i.MessageComponentData().CustomID)
	if !ok {
		return ephemeral("This button is no longer valid.")
	}

	var memberRoles []string
	if i.Member != nil {
		memberRoles = i.Member.Roles
	}

	status, err := h.service.Join(ctx, giveawayID, interactionUserID(i), memberRoles)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.ErrCodeForbidden {
			if roleID, ok := appErr.Details["role_id"].(string); ok {
				return ephemeral(fmt.Sprintf("You need <@&%s> to join this giveaway.", roleID))
			}
			return ephemeral("You don't have the role required to join this giveaway.")
		}
		logger.Error().Err(err).Int64("giveaway_id", giveawayID).Msg("Join failed")
		return ephemeral("Could not record your entry, try again later.")
	}

	if status == service.JoinAlreadyEntered {
		return ephemeral("You're already in.")
	}
	return ephemeral("✅ You joined!")
}

// modalValues flattens the submitted rows into a custom_id → value map.
func modalValues(data discordgo.ModalSubmitInteractionData) map[string]string {
	values := make(map[string]string)
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actionsRow.Components {
			if input, ok := component.(*discordgo.TextInput); ok {
				values[input.CustomID] = input.Value
			}
		}
	}
	return values
}

// interactionUserID resolves the acting user for both guild (member) and
// DM (user) interactions.
func interactionUserID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
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
