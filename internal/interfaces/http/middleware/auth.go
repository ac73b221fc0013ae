package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"labdesk/internal/domain/actor"
	"labdesk/internal/infrastructure/auth"
	"labdesk/internal/shared/constants"
	"labdesk/internal/shared/logger"
	"labdesk/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyActorID, claims.Subject)
		c.Set(constants.ContextKeyActorRoles, claims.Roles)

		c.Next()
	}
}

// ActorFromContext rebuilds the authenticated actor set by RequireAuth.
func ActorFromContext(c *gin.Context) actor.Actor {
	id, _ := c.Get(constants.ContextKeyActorID)
	roles, _ := c.Get(constants.ContextKeyActorRoles)

	actorID, _ := id.(string)
	actorRoles, _ := roles.([]actor.Role)

	return actor.New(actorID, actorRoles...)
}

// RequireTA rejects requests from actors without the TA role. Must run
// after RequireAuth.
func RequireTA() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorFromContext(c).IsTA() {
			utils.ErrorResponse(c, http.StatusForbidden, "TA role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireStudent rejects requests from actors without the student role.
// Must run after RequireAuth.
func RequireStudent() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorFromContext(c).IsStudent() {
			utils.ErrorResponse(c, http.StatusForbidden, "student role required")
			c.Abort()
			return
		}
		c.Next()
	}
}
