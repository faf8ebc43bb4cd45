package cookie

import (
	"net/http"
	"strings"

	"resort-checkout/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName = "access_token"
	ClientIDCookieName    = "checkout_client_id"
)

// SetClientID issues the browser's client id. It keys the pending-reservation
// mailbox, so it outlives any single checkout session.
func SetClientID(c *gin.Context, cfg config.CookieConfig, clientID string) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		ClientIDCookieName,
		clientID,
		int(cfg.MaxAge.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func GetClientID(c *gin.Context) string {
	id, _ := c.Cookie(ClientIDCookieName)
	return id
}

// GetAccessToken reads the token set by the auth service's frontend, if any.
func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch strings.ToLower(sameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
