package middleware

import (
	"log/slog"
	"net/http"

	"resort-checkout/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error a handler attached. Server-side
// failures are logged with the checkout they happened on.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		resp, cause, found := lastPublicResponse(c)
		if found && resp.Status >= http.StatusInternalServerError {
			logger.Error("checkout request failed",
				append(requestContext(c), "status", resp.Status, "error", cause)...)
		}
		if c.Writer.Written() {
			return
		}
		if found {
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		logger.Error("request finished without a response", requestContext(c)...)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func lastPublicResponse(c *gin.Context) (httperr.Response, error, bool) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		err := c.Errors[i]
		if !err.IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := err.Meta.(httperr.Response); ok {
			return resp, err.Err, true
		}
	}
	return httperr.Response{}, nil, false
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("recovered from panic", append(requestContext(c), "error", err)...)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}

func requestContext(c *gin.Context) []any {
	args := []any{"path", c.Request.URL.Path, "request_id", GetRequestID(c)}
	if id := c.Param("id"); id != "" {
		args = append(args, "checkout_id", id)
	}
	if clientID := GetClientID(c); clientID != "" {
		args = append(args, "client_id", clientID)
	}
	return args
}
