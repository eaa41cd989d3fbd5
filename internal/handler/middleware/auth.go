package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"aqualux-api/internal/handler/httperr"
	"aqualux-api/internal/pkg/cookie"
	"aqualux-api/internal/pkg/jwt"
	"aqualux-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const ctxActorKey = "actor"

type AuthMiddleware struct {
	jwtService *jwt.Service
}

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func (m *AuthMiddleware) resolveActor(token string) (shared.Actor, error) {
	claims, err := m.jwtService.ValidateToken(token)
	if err != nil {
		return shared.Actor{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return shared.Actor{}, jwt.ErrInvalidToken
	}

	return shared.Actor{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.DomainRole(),
	}, nil
}

func setActor(c *gin.Context, actor shared.Actor) {
	c.Set(ctxActorKey, actor)
	c.Set("jwt_claims", map[string]any{
		"user_id": actor.ID.String(),
		"role":    string(actor.Role),
	})
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required")
			c.Abort()
			return
		}

		actor, err := m.resolveActor(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token")
			c.Abort()
			return
		}

		setActor(c, actor)
		c.Next()
	}
}

// RequireAdmin must be used after RequireAuth().
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
			c.Abort()
			return
		}

		if !actor.IsAdmin() {
			httperr.AbortWithError(c, http.StatusForbidden, nil, "Insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			// No token present; continue without setting context.
			c.Next()
			return
		}

		actor, err := m.resolveActor(token)
		if err != nil {
			// Invalid token; continue without aborting.
			c.Next()
			return
		}

		setActor(c, actor)
		c.Next()
	}
}

func GetActor(c *gin.Context) (shared.Actor, bool) {
	value, exists := c.Get(ctxActorKey)
	if !exists {
		return shared.Actor{}, false
	}

	actor, ok := value.(shared.Actor)
	return actor, ok
}

// ActorOrAnonymous is for OptionalAuth routes where an absent actor is valid.
func ActorOrAnonymous(c *gin.Context) shared.Actor {
	actor, ok := GetActor(c)
	if !ok {
		return shared.Actor{}
	}
	return actor
}
