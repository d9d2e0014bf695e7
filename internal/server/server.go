// Package server exposes the bot over HTTP: the webhook endpoint Telegram
// delivers updates to, plus a liveness probe.
package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dieortin/escultoide-bot/internal/bot"
	"github.com/dieortin/escultoide-bot/internal/logger"
	"github.com/dieortin/escultoide-bot/internal/middleware/requestid"
)

// Router builds the gin engine with the full middleware chain and routes
func Router(log *zap.Logger, dispatcher *bot.Dispatcher) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestid.Middleware())
	r.Use(logger.GinMiddleware(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/webhook", handleUpdate(dispatcher))

	return r
}

// handleUpdate feeds the raw webhook body to the dispatcher and answers
// with the outcome's bounded status code. The body keeps the
// {"statusCode": N} contract; no error detail ever leaks to the caller.
func handleUpdate(dispatcher *bot.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			respond(c, bot.OutcomeBadRequest)
			return
		}

		respond(c, dispatcher.Dispatch(c.Request.Context(), payload))
	}
}

func respond(c *gin.Context, outcome bot.Outcome) {
	code := outcome.StatusCode()
	c.JSON(code, gin.H{"statusCode": code})
}
