package http

import (
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/gin-gonic/gin"

	"giveaway-bot-backend/internal/common/logger"
	giveawaydelivery "giveaway-bot-backend/internal/features/giveaway/delivery/discord"
	infodelivery "giveaway-bot-backend/internal/features/info/delivery/discord"
	platformdiscord "giveaway-bot-backend/internal/platform/discord"
)

var commandSeparators = regexp.MustCompile(`[-\s]+`)

// InteractionDispatcher routes verified interactions to their handlers.
// Every path produces an interaction response; handler faults degrade to a
// generic ephemeral message rather than a transport error.
type InteractionDispatcher struct {
	giveaways *giveawaydelivery.Handler
	info      *infodelivery.Handler
}

func NewInteractionDispatcher(giveaways *giveawaydelivery.Handler, info *infodelivery.Handler) *InteractionDispatcher {
	return &InteractionDispatcher{giveaways: giveaways, info: info}
}

// Handle is the POST /interactions endpoint.
func (d *InteractionDispatcher) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "Bad request")
		return
	}

	var interaction discordgo.Interaction
	if err := json.Unmarshal(body, &interaction); err != nil {
		logger.Warn().Err(err).Msg("Undecodable interaction payload")
		c.String(http.StatusBadRequest, "Bad request")
		return
	}

	// The handshake must be answered before anything else can get in the
	// way.
	if interaction.Type == discordgo.InteractionPing {
		c.JSON(http.StatusOK, discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong})
		return
	}

	c.JSON(http.StatusOK, d.dispatch(c, &interaction))
}

func (d *InteractionDispatcher) dispatch(c *gin.Context, i *discordgo.Interaction) (resp *discordgo.InteractionResponse) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Interface("panic", r).
				Int("interaction_type", int(i.Type)).
				Str("request_id", c.GetString("request_id")).
				Msg("Interaction handler panicked")
			resp = genericFailure()
		}
	}()

	ctx := c.Request.Context()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch commandName(i.ApplicationCommandData().Name) {
		case giveawaydelivery.StartCommand:
			return d.giveaways.HandleStartCommand(i)
		case infodelivery.DonateCommand:
			return d.info.HandleDonate(i)
		case infodelivery.PostInfoCommand:
			return d.info.HandlePostInfo(ctx, i)
		}

	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		if _, ok := platformdiscord.ParseJoinButtonID(customID); ok {
			return d.giveaways.HandleJoinButton(ctx, i)
		}
		if customID == infodelivery.SelectID {
			return d.info.HandleCategorySelect(i)
		}

	case discordgo.InteractionModalSubmit:
		if i.ModalSubmitData().CustomID == giveawaydelivery.ModalID {
			return d.giveaways.HandleModalSubmit(ctx, i)
		}
	}

	logger.Debug().Int("interaction_type", int(i.Type)).Msg("Unhandled interaction")
	return unhandled()
}

// commandName normalizes a command name so `g-start` and `g start`
// variants hit the same handler.
func commandName(raw string) string {
	return commandSeparators.ReplaceAllString(strings.ToLower(raw), "_")
}

func unhandled() *discordgo.InteractionResponse {
	return ephemeralMessage("Unhandled.")
}

func genericFailure() *discordgo.InteractionResponse {
	return ephemeralMessage("Sorry, something went wrong.")
}

func ephemeralMessage(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags:   discordgo.MessageFlagsEphemeral,
			Content: content,
		},
	}
}
