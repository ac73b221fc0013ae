package routes

import (
	"github.com/gin-gonic/gin"

	requesthandlers "labdesk/internal/interfaces/http/handlers/request"
	"labdesk/internal/interfaces/http/middleware"
)

type RequestRouteConfig struct {
	RequestHandler *requesthandlers.RequestHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRequestRoutes(engine *gin.Engine, config *RequestRouteConfig) {
	requests := engine.Group("/api/requests")
	requests.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		requests.POST("",
			middleware.RequireStudent(),
			config.RequestHandler.CreateRequest)
		requests.GET("",
			middleware.RequireTA(),
			config.RequestHandler.ListRequests)

		// Specific paths must be registered before parameterized paths.
		requests.GET("/my",
			middleware.RequireStudent(),
			config.RequestHandler.ListMyRequests)
		requests.GET("/stats",
			middleware.RequireTA(),
			config.RequestHandler.GetStats)

		// Lifecycle actions
		requests.PUT("/:id/assign",
			middleware.RequireTA(),
			config.RequestHandler.ClaimRequest)
		requests.PUT("/:id/resolve",
			middleware.RequireTA(),
			config.RequestHandler.ResolveRequest)
		requests.PUT("/:id/release",
			middleware.RequireTA(),
			config.RequestHandler.ReleaseRequest)
		requests.PUT("/:id/priority",
			middleware.RequireTA(),
			config.RequestHandler.ReprioritizeRequest)
		requests.PUT("/:id/cancel",
			config.RequestHandler.CancelRequest)

		// Generic parameterized routes (must come LAST)
		requests.GET("/:id",
			config.RequestHandler.GetRequest)
		requests.PUT("/:id",
			config.RequestHandler.UpdateRequest)
		requests.DELETE("/:id",
			config.RequestHandler.DeleteRequest)
	}
}
