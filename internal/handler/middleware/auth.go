package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"resort-checkout/internal/handler/httperr"
	"resort-checkout/internal/pkg/cookie"
	"resort-checkout/internal/pkg/jwt"
	"resort-checkout/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenValidator verifies access tokens issued by the auth service.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
	logger         *slog.Logger
}

const (
	ctxUserIDKey    = "user_id"
	ctxUserRoleKey  = "user_role"
	ctxUserTokenKey = "user_token"
)

func NewAuthMiddleware(tokenValidator TokenValidator, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		logger:         logger,
	}
}

func bearerToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, jwt.ErrInvalidToken, "Access token required", nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			m.logger.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		setPrincipal(c, claims, token)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but never
// aborts. A guest and a user with an expired token look the same downstream.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			m.logger.Debug("Ignoring invalid optional token", "error", err.Error())
			c.Next()
			return
		}

		setPrincipal(c, claims, token)
		c.Next()
	}
}

func setPrincipal(c *gin.Context, claims *jwt.Claims, token string) {
	c.Set(ctxUserIDKey, claims.UserID)
	c.Set(ctxUserRoleKey, claims.Role)
	c.Set(ctxUserTokenKey, token)
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetPrincipal returns the authenticated user together with the raw token,
// which is forwarded to the booking API.
func GetPrincipal(c *gin.Context) (*shared.Principal, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		return nil, false
	}
	token := c.GetString(ctxUserTokenKey)
	if token == "" {
		return nil, false
	}
	return &shared.Principal{UserID: userID, Token: token}, true
}
