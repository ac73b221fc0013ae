package routes

import (
	"github.com/gin-gonic/gin"

	replyhandlers "labdesk/internal/interfaces/http/handlers/reply"
	"labdesk/internal/interfaces/http/middleware"
)

type ReplyRouteConfig struct {
	ReplyHandler   *replyhandlers.ReplyHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupReplyRoutes(engine *gin.Engine, config *ReplyRouteConfig) {
	replies := engine.Group("/api/replies")
	replies.Use(config.AuthMiddleware.RequireAuth())
	{
		replies.POST("/request/:id",
			middleware.RequireTA(),
			config.ReplyHandler.PostReply)
		replies.GET("/request/:id",
			config.ReplyHandler.ListReplies)
		replies.GET("/request/:id/page",
			config.ReplyHandler.ListRepliesPage)
	}
}
