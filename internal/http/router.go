package http

import (
	"crypto/ed25519"
	"net/http"

	"github.com/gin-gonic/gin"

	"giveaway-bot-backend/internal/common/middleware"
)

// NewRouter wires the interaction endpoint behind the signature check plus
// a liveness probe.
func NewRouter(key ed25519.PublicKey, dispatcher *InteractionDispatcher, debug bool) *gin.Engine {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/interactions", VerifySignature(key), dispatcher.Handle)

	return router
}
