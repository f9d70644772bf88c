package http

import (
	"crypto/ed25519"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/gin-gonic/gin"

	"giveaway-bot-backend/internal/common/logger"
)

// VerifySignature rejects any request whose ed25519 interaction signature
// (timestamp || body against the application public key) does not check
// out. Nothing behind it runs for an unsigned request.
func VerifySignature(key ed25519.PublicKey) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !discordgo.VerifyInteraction(c.Request, key) {
			logger.Warn().
				Str("client_ip", c.ClientIP()).
				Str("request_id", c.GetString("request_id")).
				Msg("Rejected interaction with bad signature")
			c.String(http.StatusUnauthorized, "Bad signature")
			c.Abort()
			return
		}
		c.Next()
	}
}
