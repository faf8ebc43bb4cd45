package middleware

import (
	"resort-checkout/internal/pkg/config"
	"resort-checkout/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxClientIDKey = "client_id"

// ClientIDMiddleware issues the client id cookie on first contact. Malformed
// ids are replaced rather than trusted.
func ClientIDMiddleware(cfg config.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := cookie.GetClientID(c)
		if _, err := uuid.Parse(clientID); err != nil {
			clientID = uuid.NewString()
			cookie.SetClientID(c, cfg, clientID)
		}
		c.Set(ctxClientIDKey, clientID)
		c.Next()
	}
}

func GetClientID(c *gin.Context) string {
	return c.GetString(ctxClientIDKey)
}
