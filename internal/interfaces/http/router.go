package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	replyusecases "labdesk/internal/application/reply/usecases"
	requestusecases "labdesk/internal/application/request/usecases"
	"labdesk/internal/domain/shared/events"
	"labdesk/internal/infrastructure/auth"
	"labdesk/internal/infrastructure/config"
	"labdesk/internal/infrastructure/repository"
	replyhandlers "labdesk/internal/interfaces/http/handlers/reply"
	requesthandlers "labdesk/internal/interfaces/http/handlers/request"
	"labdesk/internal/interfaces/http/middleware"
	"labdesk/internal/interfaces/http/routes"
	"labdesk/internal/shared/logger"
)

// Router wires repositories, use cases and handlers onto a Gin engine.
type Router struct {
	engine         *gin.Engine
	requestHandler *requesthandlers.RequestHandler
	replyHandler   *replyhandlers.ReplyHandler
	authMiddleware *middleware.AuthMiddleware
	allowedOrigins []string
	log            logger.Interface
}

// NewRouter creates the HTTP router with all dependencies.
func NewRouter(db *gorm.DB, dispatcher events.EventPublisher, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	requestRepo := repository.NewRequestRepository(db)
	replyRepo := repository.NewReplyRepository(db)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	requestHandler := requesthandlers.NewRequestHandler(
		requestusecases.NewCreateRequestUseCase(requestRepo, dispatcher, log),
		requestusecases.NewClaimRequestUseCase(requestRepo, dispatcher, log),
		requestusecases.NewResolveRequestUseCase(requestRepo, dispatcher, log),
		requestusecases.NewReleaseRequestUseCase(requestRepo, dispatcher, log),
		requestusecases.NewCancelRequestUseCase(requestRepo, dispatcher, log),
		requestusecases.NewReprioritizeRequestUseCase(requestRepo, dispatcher, log),
		requestusecases.NewUpdateRequestUseCase(requestRepo, dispatcher, log),
		requestusecases.NewDeleteRequestUseCase(requestRepo, dispatcher, log),
		requestusecases.NewGetRequestUseCase(requestRepo, log),
		requestusecases.NewListRequestsUseCase(requestRepo, log),
		requestusecases.NewListMyRequestsUseCase(requestRepo, log),
		requestusecases.NewGetStatsUseCase(requestRepo, log),
	)

	replyHandler := replyhandlers.NewReplyHandler(
		replyusecases.NewPostReplyUseCase(requestRepo, replyRepo, log),
		replyusecases.NewListRepliesUseCase(requestRepo, replyRepo, log),
		replyusecases.NewListRepliesPageUseCase(requestRepo, replyRepo, log),
	)

	return &Router{
		engine:         engine,
		requestHandler: requestHandler,
		replyHandler:   replyHandler,
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
		allowedOrigins: cfg.Server.AllowedOrigins,
		log:            log,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupRequestRoutes(r.engine, &routes.RequestRouteConfig{
		RequestHandler: r.requestHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupReplyRoutes(r.engine, &routes.ReplyRouteConfig{
		ReplyHandler:   r.replyHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
